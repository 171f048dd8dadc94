package noise

import (
	"math"

	"github.com/MeKo-Tech/noiseplane/internal/lattice"
)

var (
	skew1   = 0.5 * (math.Sqrt(3) - 1)
	unskew1 = (3 - math.Sqrt(3)) / 6
)

const (
	skew2   = 0.3660254037844386  // (sqrt(3)-1)/2
	unskew2 = 0.21132486540518713 // (3-sqrt(3))/6
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

// Simplex is simplex gradient noise.
type Simplex struct {
	leaf
}

// NewSimplex returns simplex noise for seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{leaf{seed: seed}}
}

// falloff returns the radial kernel (r-d²)⁴ or 0 outside the radius.
func falloff(r, d2 float64) float64 {
	t := r - d2
	if t < 0 {
		return 0
	}
	t *= t
	return t * t
}

func (s *Simplex) Noise1D(x float64) float64 {
	i := lattice.FastFloor(x + x*skew1)
	x0 := x - (float64(i) - float64(i)*unskew1)
	var i1 int64
	if x0 > 0.5 {
		i1 = 1
	}
	x1 := x0 - float64(i1) + unskew1
	x2 := x0 - 1 + 2*unskew1

	n := 0.0
	if k := falloff(0.5, x0*x0); k > 0 {
		n += k * lattice.Grad1(s.seed, i, x0)
	}
	if k := falloff(0.5, x1*x1); k > 0 {
		n += k * lattice.Grad1(s.seed, i+i1, x1)
	}
	if k := falloff(0.5, x2*x2); k > 0 {
		n += k * lattice.Grad1(s.seed, i+1, x2)
	}
	return 50 * n
}

func (s *Simplex) Noise2D(x, y float64) float64 {
	t := (x + y) * skew2
	i := lattice.FastFloor(x + t)
	j := lattice.FastFloor(y + t)
	t = float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 int64
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	n := 0.0
	if k := falloff(0.5, x0*x0+y0*y0); k > 0 {
		n += k * lattice.Grad2(s.seed, i, j, x0, y0)
	}
	if k := falloff(0.5, x1*x1+y1*y1); k > 0 {
		n += k * lattice.Grad2(s.seed, i+i1, j+j1, x1, y1)
	}
	if k := falloff(0.5, x2*x2+y2*y2); k > 0 {
		n += k * lattice.Grad2(s.seed, i+1, j+1, x2, y2)
	}
	return 70 * n
}

// simplexOrder returns the second and third corner offsets of the 3D simplex
// containing the unskewed offset (x0,y0,z0).
func simplexOrder(x0, y0, z0 float64) (c1, c2 [3]int64) {
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			return [3]int64{1, 0, 0}, [3]int64{1, 1, 0}
		case x0 >= z0:
			return [3]int64{1, 0, 0}, [3]int64{1, 0, 1}
		default:
			return [3]int64{0, 0, 1}, [3]int64{1, 0, 1}
		}
	}
	switch {
	case y0 < z0:
		return [3]int64{0, 0, 1}, [3]int64{0, 1, 1}
	case x0 < z0:
		return [3]int64{0, 1, 0}, [3]int64{0, 1, 1}
	default:
		return [3]int64{0, 1, 0}, [3]int64{1, 1, 0}
	}
}

func (s *Simplex) Noise3D(x, y, z float64) float64 {
	t := (x + y + z) * skew3
	i := lattice.FastFloor(x + t)
	j := lattice.FastFloor(y + t)
	k := lattice.FastFloor(z + t)
	t = float64(i+j+k) * unskew3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	c1, c2 := simplexOrder(x0, y0, z0)

	x1 := x0 - float64(c1[0]) + unskew3
	y1 := y0 - float64(c1[1]) + unskew3
	z1 := z0 - float64(c1[2]) + unskew3
	x2 := x0 - float64(c2[0]) + skew3
	y2 := y0 - float64(c2[1]) + skew3
	z2 := z0 - float64(c2[2]) + skew3
	const last = unskew3*3 - 1
	x3 := x0 + last
	y3 := y0 + last
	z3 := z0 + last

	n := 0.0
	if f := falloff(0.6, x0*x0+y0*y0+z0*z0); f > 0 {
		n += f * lattice.Grad3(s.seed, i, j, k, x0, y0, z0)
	}
	if f := falloff(0.6, x1*x1+y1*y1+z1*z1); f > 0 {
		n += f * lattice.Grad3(s.seed, i+c1[0], j+c1[1], k+c1[2], x1, y1, z1)
	}
	if f := falloff(0.6, x2*x2+y2*y2+z2*z2); f > 0 {
		n += f * lattice.Grad3(s.seed, i+c2[0], j+c2[1], k+c2[2], x2, y2, z2)
	}
	if f := falloff(0.6, x3*x3+y3*y3+z3*z3); f > 0 {
		n += f * lattice.Grad3(s.seed, i+1, j+1, k+1, x3, y3, z3)
	}
	return 32 * n
}

// Package interp holds the scalar interpolation kernels and the cell/box arithmetic
// used to lift a coarse lattice of samples into a continuous field.
package interp

import (
	"math"

	"github.com/MeKo-Tech/noiseplane/internal/lattice"
)

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Blerp interpolates bilinearly. a,b are the y0 row and c,d the y1 row.
func Blerp(a, b, c, d, tx, ty float64) float64 {
	return Lerp(Lerp(a, b, tx), Lerp(c, d, tx), ty)
}

// Trilerp interpolates trilinearly over the eight corners of a cube, ordered
// x fastest, then y, then z.
func Trilerp(v [8]float64, tx, ty, tz float64) float64 {
	return Lerp(Blerp(v[0], v[1], v[2], v[3], tx, ty), Blerp(v[4], v[5], v[6], v[7], tx, ty), tz)
}

// Cubic fits a cubic through four evenly spaced samples and evaluates it at mu
// between p1 and p2.
func Cubic(p0, p1, p2, p3, mu float64) float64 {
	mu2 := mu * mu
	a0 := p3 - p2 - p0 + p1
	a1 := p0 - p1 - a0
	a2 := p2 - p0
	a3 := p1
	return a0*mu*mu2 + a1*mu2 + a2*mu + a3
}

// Hermite evaluates a tension/bias controlled hermite spline at mu between p1 and p2.
// Tension 1 flattens the tangents, bias shifts them toward the earlier or later segment.
func Hermite(p0, p1, p2, p3, mu, tension, bias float64) float64 {
	mu2 := mu * mu
	mu3 := mu2 * mu
	m0 := (p1 - p0) * (1 + bias) * (1 - tension) / 2
	m0 += (p2 - p1) * (1 - bias) * (1 - tension) / 2
	m1 := (p2 - p1) * (1 + bias) * (1 - tension) / 2
	m1 += (p3 - p2) * (1 - bias) * (1 - tension) / 2
	a0 := 2*mu3 - 3*mu2 + 1
	a1 := mu3 - 2*mu2 + mu
	a2 := mu3 - mu2
	a3 := -2*mu3 + 3*mu2
	return a0*p1 + a1*m0 + a2*m1 + a3*p2
}

// Spline is a four point kernel such as Cubic or a Hermite with fixed parameters.
type Spline func(p0, p1, p2, p3, mu float64) float64

// HermiteSpline binds tension and bias into a Spline.
func HermiteSpline(tension, bias float64) Spline {
	return func(p0, p1, p2, p3, mu float64) float64 {
		return Hermite(p0, p1, p2, p3, mu, tension, bias)
	}
}

// Bi applies s along y for each of the four x columns, then along x.
// p is indexed [x][y].
func (s Spline) Bi(p *[4][4]float64, mux, muy float64) float64 {
	return s(
		s(p[0][0], p[0][1], p[0][2], p[0][3], muy),
		s(p[1][0], p[1][1], p[1][2], p[1][3], muy),
		s(p[2][0], p[2][1], p[2][2], p[2][3], muy),
		s(p[3][0], p[3][1], p[3][2], p[3][3], muy),
		mux)
}

// Tri applies Bi to each z slice, then s along z. p is indexed [z][x][y].
func (s Spline) Tri(p *[4][4][4]float64, mux, muy, muz float64) float64 {
	return s(
		s.Bi(&p[0], mux, muy),
		s.Bi(&p[1], mux, muy),
		s.Bi(&p[2], mux, muy),
		s.Bi(&p[3], mux, muy),
		muz)
}

// RangeScale maps b from [bmin,bmax] onto [amin,amax].
func RangeScale(amin, amax, bmin, bmax, b float64) float64 {
	return amin + ((amax - amin) * ((b - bmin) / (bmax - bmin)))
}

// Normalize returns the position of b between bmin and bmax as a fraction.
func Normalize(bmin, bmax, b float64) float64 {
	return (b - bmin) / (bmax - bmin)
}

// Grid divides an axis into cells of a fixed width.
type Grid struct {
	scale float64
	shift uint
	pow2  bool
}

// NewGrid returns a Grid with cells of the given width. Widths that are exact powers
// of two between 2 and 1024 index cells with a shift instead of a division.
func NewGrid(scale float64) Grid {
	g := Grid{scale: scale}
	for k := uint(1); k <= 10; k++ {
		if scale == float64(int64(1)<<k) {
			g.shift = k
			g.pow2 = true
			break
		}
	}
	return g
}

// Scale returns the cell width.
func (g Grid) Scale() float64 { return g.scale }

// Cell returns the index of the cell containing coord.
func (g Grid) Cell(coord float64) int64 {
	if g.pow2 {
		return int64(math.Floor(coord)) >> g.shift
	}
	return int64(math.Floor(coord / g.scale))
}

func (g Grid) edge(cell int64) float64 {
	return float64(lattice.Round(float64(cell) * g.scale))
}

// Bounds2 returns the left and right cell edges around coord.
func (g Grid) Bounds2(coord float64) [2]float64 {
	c := g.Cell(coord)
	return [2]float64{g.edge(c), g.edge(c + 1)}
}

// Bounds4 returns the four cell edges used by four point kernels: one edge before
// the containing cell, its two edges and one after.
func (g Grid) Bounds4(coord float64) [4]float64 {
	c := g.Cell(coord)
	return [4]float64{g.edge(c - 1), g.edge(c), g.edge(c + 1), g.edge(c + 2)}
}

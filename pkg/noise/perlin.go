package noise

import (
	"github.com/MeKo-Tech/noiseplane/internal/interp"
	"github.com/MeKo-Tech/noiseplane/internal/lattice"
)

// Perlin is classic gradient noise over the integer lattice.
type Perlin struct {
	leaf
}

// NewPerlin returns gradient noise for seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{leaf{seed: seed}}
}

func (p *Perlin) Noise1D(x float64) float64 {
	x0 := lattice.FastFloor(x)
	xd0 := x - float64(x0)
	return interp.Lerp(
		lattice.Grad1(p.seed, x0, xd0),
		lattice.Grad1(p.seed, x0+1, xd0-1),
		lattice.Ease(xd0))
}

func (p *Perlin) Noise2D(x, y float64) float64 {
	x0 := lattice.FastFloor(x)
	y0 := lattice.FastFloor(y)
	x1, y1 := x0+1, y0+1
	xd0 := x - float64(x0)
	yd0 := y - float64(y0)
	xd1, yd1 := xd0-1, yd0-1
	xs := lattice.Ease(xd0)
	ys := lattice.Ease(yd0)

	xf0 := interp.Lerp(lattice.Grad2(p.seed, x0, y0, xd0, yd0), lattice.Grad2(p.seed, x1, y0, xd1, yd0), xs)
	xf1 := interp.Lerp(lattice.Grad2(p.seed, x0, y1, xd0, yd1), lattice.Grad2(p.seed, x1, y1, xd1, yd1), xs)
	return interp.Lerp(xf0, xf1, ys)
}

func (p *Perlin) Noise3D(x, y, z float64) float64 {
	x0 := lattice.FastFloor(x)
	y0 := lattice.FastFloor(y)
	z0 := lattice.FastFloor(z)
	x1, y1, z1 := x0+1, y0+1, z0+1
	xd0 := x - float64(x0)
	yd0 := y - float64(y0)
	zd0 := z - float64(z0)
	xd1, yd1, zd1 := xd0-1, yd0-1, zd0-1
	xs := lattice.Ease(xd0)
	ys := lattice.Ease(yd0)
	zs := lattice.Ease(zd0)

	s := p.seed
	xf00 := interp.Lerp(lattice.Grad3(s, x0, y0, z0, xd0, yd0, zd0), lattice.Grad3(s, x1, y0, z0, xd1, yd0, zd0), xs)
	xf10 := interp.Lerp(lattice.Grad3(s, x0, y1, z0, xd0, yd1, zd0), lattice.Grad3(s, x1, y1, z0, xd1, yd1, zd0), xs)
	xf01 := interp.Lerp(lattice.Grad3(s, x0, y0, z1, xd0, yd0, zd1), lattice.Grad3(s, x1, y0, z1, xd1, yd0, zd1), xs)
	xf11 := interp.Lerp(lattice.Grad3(s, x0, y1, z1, xd0, yd1, zd1), lattice.Grad3(s, x1, y1, z1, xd1, yd1, zd1), xs)
	yf0 := interp.Lerp(xf00, xf10, ys)
	yf1 := interp.Lerp(xf01, xf11, ys)
	return interp.Lerp(yf0, yf1, zs)
}

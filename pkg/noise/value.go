package noise

import (
	"github.com/MeKo-Tech/noiseplane/internal/interp"
	"github.com/MeKo-Tech/noiseplane/internal/lattice"
)

// Value is lattice value noise: every integer lattice point carries a pseudo-random
// value and points in between are blended.
type Value struct {
	leaf
	blend func(float64) float64
}

func linearBlend(t float64) float64 { return t }

// NewValue returns value noise blended linearly between lattice points.
func NewValue(seed int64) *Value {
	return &Value{leaf: leaf{seed: seed}, blend: linearBlend}
}

// NewValueHermite returns value noise blended with the eased fraction t²(3−2t),
// which hides the lattice creases of the linear form.
func NewValueHermite(seed int64) *Value {
	return &Value{leaf: leaf{seed: seed}, blend: lattice.Ease}
}

func (v *Value) Noise1D(x float64) float64 {
	x0 := lattice.FastFloor(x)
	xs := v.blend(x - float64(x0))
	return interp.Lerp(lattice.Value1(v.seed, x0), lattice.Value1(v.seed, x0+1), xs)
}

func (v *Value) Noise2D(x, y float64) float64 {
	x0 := lattice.FastFloor(x)
	y0 := lattice.FastFloor(y)
	x1, y1 := x0+1, y0+1
	xs := v.blend(x - float64(x0))
	ys := v.blend(y - float64(y0))

	return interp.Blerp(
		lattice.Value2(v.seed, x0, y0), lattice.Value2(v.seed, x1, y0),
		lattice.Value2(v.seed, x0, y1), lattice.Value2(v.seed, x1, y1),
		xs, ys)
}

func (v *Value) Noise3D(x, y, z float64) float64 {
	x0 := lattice.FastFloor(x)
	y0 := lattice.FastFloor(y)
	z0 := lattice.FastFloor(z)
	x1, y1, z1 := x0+1, y0+1, z0+1
	s := v.seed

	return interp.Trilerp([8]float64{
		lattice.Value3(s, x0, y0, z0), lattice.Value3(s, x1, y0, z0),
		lattice.Value3(s, x0, y1, z0), lattice.Value3(s, x1, y1, z0),
		lattice.Value3(s, x0, y0, z1), lattice.Value3(s, x1, y0, z1),
		lattice.Value3(s, x0, y1, z1), lattice.Value3(s, x1, y1, z1),
	}, v.blend(x-float64(x0)), v.blend(y-float64(y0)), v.blend(z-float64(z0)))
}

// White is uncorrelated noise: every distinct coordinate hashes independently.
type White struct {
	leaf
}

// NewWhite returns white noise for seed.
func NewWhite(seed int64) *White {
	return &White{leaf{seed: seed}}
}

func (w *White) Noise1D(x float64) float64 {
	return lattice.Value1(w.seed, lattice.FoldBits(x))
}

func (w *White) Noise2D(x, y float64) float64 {
	return lattice.Value2(w.seed, lattice.FoldBits(x), lattice.FoldBits(y))
}

func (w *White) Noise3D(x, y, z float64) float64 {
	return lattice.Value3(w.seed, lattice.FoldBits(x), lattice.FoldBits(y), lattice.FoldBits(z))
}

// Caps marks white noise as not scalable: it has no spatial frequency.
func (w *White) Caps() Caps {
	c := defaultCaps
	c.Scalable = false
	return c
}

// Flat is the constant zero field.
type Flat struct {
	leaf
}

// NewFlat returns the zero field. The seed is only reported back.
func NewFlat(seed int64) *Flat {
	return &Flat{leaf{seed: seed}}
}

func (*Flat) Noise1D(float64) float64                   { return 0 }
func (*Flat) Noise2D(float64, float64) float64          { return 0 }
func (*Flat) Noise3D(float64, float64, float64) float64 { return 0 }

func (*Flat) Caps() Caps {
	c := defaultCaps
	c.Flat = true
	c.Scalable = false
	return c
}

package noise

import "math"

// octaveStride separates the extra samples of an Averaged plane.
const octaveStride = 100000

// Averaged is the mean of several samples of one plane taken far apart. Unlike a
// fractal, every sample carries the same weight.
type Averaged struct {
	wrapped
	octaves int
	gain    float64
}

// Octave averages p(coord) with p((coord + i·100000)·gain·i) for i in [1,octaves).
func Octave(p Plane, octaves int, gain float64) (*Averaged, error) {
	if octaves < 1 {
		return nil, invalid("octave: octaves %d must be at least 1", octaves)
	}
	if math.IsNaN(gain) {
		return nil, invalid("octave: gain is NaN")
	}
	return &Averaged{wrapped: wrapped{in: p}, octaves: octaves, gain: gain}, nil
}

func (a *Averaged) shift(c float64, i int) float64 {
	return (c + float64(i*octaveStride)) * a.gain * float64(i)
}

func (a *Averaged) Noise1D(x float64) float64 {
	n := a.in.Noise1D(x)
	for i := 1; i < a.octaves; i++ {
		n += a.in.Noise1D(a.shift(x, i))
	}
	return n / float64(a.octaves)
}

func (a *Averaged) Noise2D(x, y float64) float64 {
	n := a.in.Noise2D(x, y)
	for i := 1; i < a.octaves; i++ {
		n += a.in.Noise2D(a.shift(x, i), a.shift(y, i))
	}
	return n / float64(a.octaves)
}

func (a *Averaged) Noise3D(x, y, z float64) float64 {
	n := a.in.Noise3D(x, y, z)
	for i := 1; i < a.octaves; i++ {
		n += a.in.Noise3D(a.shift(x, i), a.shift(y, i), a.shift(z, i))
	}
	return n / float64(a.octaves)
}

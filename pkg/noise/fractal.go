package noise

import "math"

// Factory builds the generator for one octave from its seed.
type Factory func(seed int64) Plane

// FractalOption configures a fractal composer.
type FractalOption func(*fractalConfig)

type fractalConfig struct {
	octaves    int
	gain       float64
	lacunarity float64
}

// WithOctaves sets the number of octaves. Default 3.
func WithOctaves(n int) FractalOption {
	return func(c *fractalConfig) { c.octaves = n }
}

// WithGain sets the per-octave amplitude multiplier. Default 0.5.
func WithGain(g float64) FractalOption {
	return func(c *fractalConfig) { c.gain = g }
}

// WithLacunarity sets the per-octave frequency multiplier. Default 2.
func WithLacunarity(l float64) FractalOption {
	return func(c *fractalConfig) { c.lacunarity = l }
}

type fractalMode int

const (
	modeFBM fractalMode = iota
	modeBillow
	modeRigid
)

func (m fractalMode) String() string {
	switch m {
	case modeBillow:
		return "billow"
	case modeRigid:
		return "rigid multi"
	default:
		return "fbm"
	}
}

// Fractal sums octaves of independently seeded generators. Octave i is built from
// seed+i and sampled at coord·lacunarity^i with weight gain^i.
type Fractal struct {
	mode       fractalMode
	seed       int64
	planes     []Plane
	gain       float64
	lacunarity float64
	bounding   float64
	rng        Range
}

func newFractal(mode fractalMode, factory Factory, seed int64, opts []FractalOption) (*Fractal, error) {
	cfg := fractalConfig{octaves: 3, gain: 0.5, lacunarity: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	if factory == nil {
		return nil, invalid("%s: nil factory", mode)
	}
	if cfg.octaves < 1 {
		return nil, invalid("%s: octaves %d must be at least 1", mode, cfg.octaves)
	}
	if math.IsNaN(cfg.gain) || math.IsNaN(cfg.lacunarity) {
		return nil, invalid("%s: gain and lacunarity must be numbers", mode)
	}

	f := &Fractal{
		mode:       mode,
		seed:       seed,
		planes:     make([]Plane, cfg.octaves),
		gain:       cfg.gain,
		lacunarity: cfg.lacunarity,
	}

	total, tail, amp := 1.0, 0.0, 1.0
	for i := range f.planes {
		f.planes[i] = factory(seed + int64(i))
		if f.planes[i] == nil {
			return nil, invalid("%s: factory returned nil for octave %d", mode, i)
		}
		if i > 0 {
			amp *= cfg.gain
			total += amp
			tail += amp
		}
	}
	f.bounding = 1 / total

	switch mode {
	case modeRigid:
		f.rng = Range{Min: -tail, Max: 1}
	default:
		f.rng = Unit
	}
	return f, nil
}

// NewFBM returns fractional brownian motion: the bounded weighted sum of octaves.
func NewFBM(factory Factory, seed int64, opts ...FractalOption) (*Fractal, error) {
	return newFractal(modeFBM, factory, seed, opts)
}

// NewBillow returns billow noise: each octave folded to |n|·2−1 before weighting,
// producing puffy rounded shapes.
func NewBillow(factory Factory, seed int64, opts ...FractalOption) (*Fractal, error) {
	return newFractal(modeBillow, factory, seed, opts)
}

// NewRigidMulti returns ridged noise: 1−|n₀| minus the weighted ridges of the
// remaining octaves. The sum is not normalised; compose Fit to bound it.
func NewRigidMulti(factory Factory, seed int64, opts ...FractalOption) (*Fractal, error) {
	return newFractal(modeRigid, factory, seed, opts)
}

func (f *Fractal) Seed() int64   { return f.seed }
func (f *Fractal) Range() Range  { return f.rng }
func (f *Fractal) Caps() Caps    { return f.planes[0].Caps() }
func (f *Fractal) Octaves() int  { return len(f.planes) }
func (f *Fractal) Gain() float64 { return f.gain }

func (f *Fractal) shape(n float64) float64 {
	switch f.mode {
	case modeBillow:
		return math.Abs(n)*2 - 1
	case modeRigid:
		return 1 - math.Abs(n)
	default:
		return n
	}
}

func (f *Fractal) finish(sum float64) float64 {
	if f.mode == modeRigid {
		return sum
	}
	return sum * f.bounding
}

func (f *Fractal) accumulate(sum, n, amp float64) float64 {
	if f.mode == modeRigid {
		return sum - f.shape(n)*amp
	}
	return sum + f.shape(n)*amp
}

func (f *Fractal) Noise1D(x float64) float64 {
	sum := f.shape(f.planes[0].Noise1D(x))
	amp := 1.0
	for _, p := range f.planes[1:] {
		x *= f.lacunarity
		amp *= f.gain
		sum = f.accumulate(sum, p.Noise1D(x), amp)
	}
	return f.finish(sum)
}

func (f *Fractal) Noise2D(x, y float64) float64 {
	sum := f.shape(f.planes[0].Noise2D(x, y))
	amp := 1.0
	for _, p := range f.planes[1:] {
		x *= f.lacunarity
		y *= f.lacunarity
		amp *= f.gain
		sum = f.accumulate(sum, p.Noise2D(x, y), amp)
	}
	return f.finish(sum)
}

func (f *Fractal) Noise3D(x, y, z float64) float64 {
	sum := f.shape(f.planes[0].Noise3D(x, y, z))
	amp := 1.0
	for _, p := range f.planes[1:] {
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
		amp *= f.gain
		sum = f.accumulate(sum, p.Noise3D(x, y, z), amp)
	}
	return f.finish(sum)
}

// Package ext adapts third-party noise generators to noise.Plane so they can be
// dropped into any pipeline next to the built-in generators.
package ext

import (
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Default go-perlin parameters: weight falloff, frequency multiplier and octave count.
const (
	DefaultAlpha  = 2.0
	DefaultBeta   = 2.0
	DefaultOctave = 3
)

// ClassicPerlin is Ken Perlin's reference permutation-table noise summed over a few
// octaves by go-perlin. Its output is roughly within [-1,1].
type ClassicPerlin struct {
	p    *perlin.Perlin
	seed int64
}

// NewClassicPerlin uses the default parameters.
func NewClassicPerlin(seed int64) *ClassicPerlin {
	return NewClassicPerlinWith(DefaultAlpha, DefaultBeta, DefaultOctave, seed)
}

// NewClassicPerlinWith exposes go-perlin's alpha, beta and octave count.
func NewClassicPerlinWith(alpha, beta float64, octaves int32, seed int64) *ClassicPerlin {
	return &ClassicPerlin{p: perlin.NewPerlin(alpha, beta, octaves, seed), seed: seed}
}

func (c *ClassicPerlin) Noise1D(x float64) float64       { return c.p.Noise1D(x) }
func (c *ClassicPerlin) Noise2D(x, y float64) float64    { return c.p.Noise2D(x, y) }
func (c *ClassicPerlin) Noise3D(x, y, z float64) float64 { return c.p.Noise3D(x, y, z) }
func (c *ClassicPerlin) Range() noise.Range              { return noise.Unit }
func (c *ClassicPerlin) Seed() int64                     { return c.seed }

func (c *ClassicPerlin) Caps() noise.Caps {
	return noise.Caps{Dim1: true, Dim2: true, Dim3: true, Scalable: true}
}

// OpenSimplex is Kurt Spencer's OpenSimplex noise. It has no 1D form; 1D samples
// read the x axis of the 2D field.
type OpenSimplex struct {
	n    opensimplex.Noise
	seed int64
	rng  noise.Range
}

// NewOpenSimplex returns OpenSimplex noise in [-1,1].
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(seed), seed: seed, rng: noise.Unit}
}

// NewOpenSimplexNormalized returns OpenSimplex noise in [0,1).
func NewOpenSimplexNormalized(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.NewNormalized(seed), seed: seed, rng: noise.Range{Min: 0, Max: 1}}
}

func (o *OpenSimplex) Noise1D(x float64) float64       { return o.n.Eval2(x, 0) }
func (o *OpenSimplex) Noise2D(x, y float64) float64    { return o.n.Eval2(x, y) }
func (o *OpenSimplex) Noise3D(x, y, z float64) float64 { return o.n.Eval3(x, y, z) }
func (o *OpenSimplex) Range() noise.Range              { return o.rng }
func (o *OpenSimplex) Seed() int64                     { return o.seed }

func (o *OpenSimplex) Caps() noise.Caps {
	return noise.Caps{Dim1: true, Dim2: true, Dim3: true, Scalable: true}
}

var (
	_ noise.Seeded = (*ClassicPerlin)(nil)
	_ noise.Seeded = (*OpenSimplex)(nil)
)

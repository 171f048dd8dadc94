package ext

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptersDeterministic(t *testing.T) {
	planes := map[string]func() noise.Plane{
		"classic-perlin": func() noise.Plane { return NewClassicPerlin(9) },
		"opensimplex":    func() noise.Plane { return NewOpenSimplex(9) },
		"normalized":     func() noise.Plane { return NewOpenSimplexNormalized(9) },
	}

	for name, build := range planes {
		t.Run(name, func(t *testing.T) {
			a, b := build(), build()
			assert.Equal(t, int64(9), noise.SeedOf(a))
			for i := 0; i < 100; i++ {
				x, y, z := float64(i)*0.31, float64(i)*-0.17, float64(i)*0.05
				require.Equal(t, a.Noise1D(x), b.Noise1D(x))
				require.Equal(t, a.Noise2D(x, y), b.Noise2D(x, y))
				require.Equal(t, a.Noise3D(x, y, z), b.Noise3D(x, y, z))
			}
		})
	}
}

func TestOpenSimplexRanges(t *testing.T) {
	signed := NewOpenSimplex(4)
	unsigned := NewOpenSimplexNormalized(4)
	assert.Equal(t, noise.Unit, signed.Range())
	assert.Equal(t, noise.Range{Min: 0, Max: 1}, unsigned.Range())

	for i := 0; i < 500; i++ {
		x, y := float64(i)*0.13-20, float64(i)*0.29+3
		v := unsigned.Noise2D(x, y)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
		require.LessOrEqual(t, math.Abs(signed.Noise2D(x, y)), 1.0)
	}
}

func TestAdaptersCompose(t *testing.T) {
	p, err := noise.From(NewClassicPerlin(2)).
		Warp(NewOpenSimplex(3), 0.5, 0.25).
		Fit(0, 1).
		Plane()
	require.NoError(t, err)

	v := p.Noise2D(1.5, 2.5)
	assert.False(t, math.IsNaN(v))

	fbm, err := noise.NewFBM(func(seed int64) noise.Plane { return NewOpenSimplex(seed) }, 5, noise.WithOctaves(4))
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(fbm.Noise2D(0.3, 0.4)), 1.0)
}

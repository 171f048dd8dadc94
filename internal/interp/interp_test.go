package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, Lerp(2, 6, 0))
	assert.Equal(t, 6.0, Lerp(2, 6, 1))
	assert.Equal(t, 4.0, Lerp(2, 6, 0.5))
	assert.Equal(t, 2.5, Blerp(1, 2, 3, 4, 0.5, 0.5))
	assert.Equal(t, 7.0, Trilerp([8]float64{0, 1, 2, 3, 4, 5, 6, 7}, 1, 1, 1))
	assert.Equal(t, 4.0, Trilerp([8]float64{0, 1, 2, 3, 4, 5, 6, 7}, 0, 0, 1))
}

func TestSplinesHitInnerPoints(t *testing.T) {
	splines := map[string]Spline{
		"cubic":         Cubic,
		"hermite":       HermiteSpline(0, 0),
		"hermite-tense": HermiteSpline(0.5, -0.3),
	}

	for name, s := range splines {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 3.0, s(1, 3, -2, 7, 0), 1e-12)
			assert.InDelta(t, -2.0, s(1, 3, -2, 7, 1), 1e-12)

			var p [4][4]float64
			for i := range p {
				for j := range p[i] {
					p[i][j] = 5
				}
			}
			assert.InDelta(t, 5.0, s.Bi(&p, 0.3, 0.8), 1e-12)

			var q [4][4][4]float64
			for k := range q {
				q[k] = p
			}
			assert.InDelta(t, 5.0, s.Tri(&q, 0.3, 0.8, 0.1), 1e-12)
		})
	}
}

func TestCubicPinned(t *testing.T) {
	assert.InDelta(t, 1.5, Cubic(0, 1, 2, 3, 0.5), 1e-12)
	assert.InDelta(t, 1.34375, Cubic(0, 1, 2, 3, 0.25), 1e-12)
}

func TestBiOrdering(t *testing.T) {
	// value equals the x index: interpolating along x must see it, along y must not
	var p [4][4]float64
	for i := range p {
		for j := range p[i] {
			p[i][j] = float64(i)
		}
	}
	assert.InDelta(t, 1.34375, Spline(Cubic).Bi(&p, 0.25, 0.9), 1e-12)
}

func TestRangeScale(t *testing.T) {
	assert.Equal(t, 0.5, RangeScale(0, 1, -1, 1, 0))
	assert.Equal(t, 10.0, RangeScale(0, 10, -1, 1, 1))
	assert.Equal(t, 0.25, Normalize(4, 8, 5))
}

func TestGridFastPathMatchesFloor(t *testing.T) {
	coords := []float64{0, 0.5, 1, 3.999, 4, 17.2, 1023.9, 1024, -0.01, -1, -2, -3.5, -4, -17.2, -1024, -1025.5}

	for k := uint(1); k <= 10; k++ {
		scale := float64(int64(1) << k)
		g := NewGrid(scale)
		require.True(t, g.pow2, "scale %g should take the shift path", scale)

		for _, c := range coords {
			want := int64(math.Floor(c / scale))
			require.Equal(t, want, g.Cell(c), "scale %g coord %g", scale, c)
		}
	}
}

func TestGridNonPowerOfTwo(t *testing.T) {
	for _, scale := range []float64{1, 3, 5, 2.5, 7.9, 1000} {
		g := NewGrid(scale)
		assert.False(t, g.pow2)
		assert.Equal(t, int64(math.Floor(10.3/scale)), g.Cell(10.3))
	}

	// 49·(1/49) rounds below 1; the division must not
	g := NewGrid(49)
	assert.Equal(t, int64(1), g.Cell(49))
	assert.Equal(t, int64(-1), g.Cell(-49))
	assert.Equal(t, [2]float64{49, 98}, g.Bounds2(49))
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(4)
	assert.Equal(t, [2]float64{0, 4}, g.Bounds2(2))
	assert.Equal(t, [2]float64{-4, 0}, g.Bounds2(-0.5))
	assert.Equal(t, [4]float64{4, 8, 12, 16}, g.Bounds4(9))

	g = NewGrid(3)
	assert.Equal(t, [2]float64{3, 6}, g.Bounds2(3.1))
	assert.Equal(t, [4]float64{-6, -3, 0, 3}, g.Bounds4(-2))
}

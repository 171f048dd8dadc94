package noise

import (
	"math"

	"github.com/MeKo-Tech/noiseplane/internal/interp"
)

// Interpolated lifts the integer lattice of its input into a continuous field by
// sampling the input at cell edges spaced scale apart and interpolating between them.
// Scale is a whole number of lattice units so every edge lies on the lattice.
// The input is only ever sampled at integer coordinates.
type Interpolated struct {
	wrapped
	grid   interp.Grid
	spline interp.Spline // nil selects linear interpolation
}

// HermiteOption configures a hermite interpolator.
type HermiteOption func(*hermiteConfig)

type hermiteConfig struct {
	tension float64
	bias    float64
}

// WithTension sets the hermite tension. 1 flattens the curve at every sample.
func WithTension(t float64) HermiteOption {
	return func(c *hermiteConfig) { c.tension = t }
}

// WithBias sets the hermite bias. Positive values lean toward the earlier segment.
func WithBias(b float64) HermiteOption {
	return func(c *hermiteConfig) { c.bias = b }
}

func newInterpolated(op string, p Plane, scale float64, s interp.Spline) (*Interpolated, error) {
	if !(scale > 0) || math.IsInf(scale, 0) || scale != math.Trunc(scale) {
		return nil, invalid("%s: scale %g must be a positive integer", op, scale)
	}
	return &Interpolated{wrapped: wrapped{in: p}, grid: interp.NewGrid(scale), spline: s}, nil
}

// NewLinear interpolates p linearly between cells of width scale.
func NewLinear(p Plane, scale float64) (*Interpolated, error) {
	return newInterpolated("linear", p, scale, nil)
}

// NewCubic interpolates p with a four point cubic between cells of width scale.
func NewCubic(p Plane, scale float64) (*Interpolated, error) {
	return newInterpolated("cubic", p, scale, interp.Cubic)
}

// NewHermite interpolates p with a hermite spline between cells of width scale.
// Tension and bias default to 0.
func NewHermite(p Plane, scale float64, opts ...HermiteOption) (*Interpolated, error) {
	var cfg hermiteConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return newInterpolated("hermite", p, scale, interp.HermiteSpline(cfg.tension, cfg.bias))
}

// Input returns the interpolated plane.
func (n *Interpolated) Input() Plane { return n.in }

// Scale returns the cell width.
func (n *Interpolated) Scale() float64 { return n.grid.Scale() }

func (n *Interpolated) Noise1D(x float64) float64 {
	if n.spline == nil {
		bx := n.grid.Bounds2(x)
		return interp.Lerp(n.in.Noise1D(bx[0]), n.in.Noise1D(bx[1]), interp.Normalize(bx[0], bx[1], x))
	}

	bx := n.grid.Bounds4(x)
	return n.spline(
		n.in.Noise1D(bx[0]), n.in.Noise1D(bx[1]), n.in.Noise1D(bx[2]), n.in.Noise1D(bx[3]),
		interp.Normalize(bx[1], bx[2], x))
}

func (n *Interpolated) Noise2D(x, y float64) float64 {
	if n.spline == nil {
		bx := n.grid.Bounds2(x)
		by := n.grid.Bounds2(y)
		return interp.Blerp(
			n.in.Noise2D(bx[0], by[0]), n.in.Noise2D(bx[1], by[0]),
			n.in.Noise2D(bx[0], by[1]), n.in.Noise2D(bx[1], by[1]),
			interp.Normalize(bx[0], bx[1], x), interp.Normalize(by[0], by[1], y))
	}

	bx := n.grid.Bounds4(x)
	by := n.grid.Bounds4(y)
	var p [4][4]float64
	for i := range bx {
		for j := range by {
			p[i][j] = n.in.Noise2D(bx[i], by[j])
		}
	}
	return n.spline.Bi(&p, interp.Normalize(bx[1], bx[2], x), interp.Normalize(by[1], by[2], y))
}

func (n *Interpolated) Noise3D(x, y, z float64) float64 {
	if n.spline == nil {
		bx := n.grid.Bounds2(x)
		by := n.grid.Bounds2(y)
		bz := n.grid.Bounds2(z)
		var v [8]float64
		for k := range bz {
			for j := range by {
				for i := range bx {
					v[k*4+j*2+i] = n.in.Noise3D(bx[i], by[j], bz[k])
				}
			}
		}
		return interp.Trilerp(v,
			interp.Normalize(bx[0], bx[1], x),
			interp.Normalize(by[0], by[1], y),
			interp.Normalize(bz[0], bz[1], z))
	}

	bx := n.grid.Bounds4(x)
	by := n.grid.Bounds4(y)
	bz := n.grid.Bounds4(z)
	var p [4][4][4]float64
	for k := range bz {
		for i := range bx {
			for j := range by {
				p[k][i][j] = n.in.Noise3D(bx[i], by[j], bz[k])
			}
		}
	}
	return n.spline.Tri(&p,
		interp.Normalize(bx[1], bx[2], x),
		interp.Normalize(by[1], by[2], y),
		interp.Normalize(bz[1], bz[2], z))
}

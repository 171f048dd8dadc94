package noise

import (
	"math"

	"github.com/MeKo-Tech/noiseplane/internal/interp"
)

// Scaled multiplies coordinates before sampling its input. Factors below 1 zoom in.
type Scaled struct {
	wrapped
	factor float64
}

// Scale returns p sampled at coord·factor.
func Scale(p Plane, factor float64) *Scaled {
	return &Scaled{wrapped: wrapped{in: p}, factor: factor}
}

func (s *Scaled) Noise1D(x float64) float64 {
	return s.in.Noise1D(x * s.factor)
}

func (s *Scaled) Noise2D(x, y float64) float64 {
	return s.in.Noise2D(x*s.factor, y*s.factor)
}

func (s *Scaled) Noise3D(x, y, z float64) float64 {
	return s.in.Noise3D(x*s.factor, y*s.factor, z*s.factor)
}

// Inverted mirrors its input inside the declared range.
type Inverted struct {
	wrapped
}

// Invert returns (max − v) + min for every sample v of p.
func Invert(p Plane) *Inverted {
	return &Inverted{wrapped{in: p}}
}

func (n *Inverted) invert(v float64) float64 {
	r := n.in.Range()
	return (r.Max - v) + r.Min
}

func (n *Inverted) Noise1D(x float64) float64       { return n.invert(n.in.Noise1D(x)) }
func (n *Inverted) Noise2D(x, y float64) float64    { return n.invert(n.in.Noise2D(x, y)) }
func (n *Inverted) Noise3D(x, y, z float64) float64 { return n.invert(n.in.Noise3D(x, y, z)) }

// Clipped clamps its input into a fixed interval.
type Clipped struct {
	wrapped
	min, max float64
}

// Clip clamps every sample of p into [min,max].
func Clip(p Plane, min, max float64) (*Clipped, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return nil, invalid("clip: bounds [%g,%g]", min, max)
	}
	return &Clipped{wrapped: wrapped{in: p}, min: min, max: max}, nil
}

func (c *Clipped) clip(v float64) float64 {
	return math.Min(c.max, math.Max(v, c.min))
}

func (c *Clipped) Noise1D(x float64) float64       { return c.clip(c.in.Noise1D(x)) }
func (c *Clipped) Noise2D(x, y float64) float64    { return c.clip(c.in.Noise2D(x, y)) }
func (c *Clipped) Noise3D(x, y, z float64) float64 { return c.clip(c.in.Noise3D(x, y, z)) }

// Range clamps the input range, so it never reaches outside [min,max].
func (c *Clipped) Range() Range {
	r := c.in.Range()
	return Range{Min: c.clip(r.Min), Max: c.clip(r.Max)}
}

// Contrasted scales the distance of each sample from the middle of its input range.
type Contrasted struct {
	wrapped
	amount float64
	mid    float64
	rng    Range
}

// Contrast multiplies each sample's deviation from the range midpoint by amount and
// clamps the result back into the input range. Amounts above 1 sharpen, below 1 flatten.
func Contrast(p Plane, amount float64) (*Contrasted, error) {
	r := p.Range()
	if err := requireSpan("contrast", r); err != nil {
		return nil, err
	}
	return &Contrasted{
		wrapped: wrapped{in: p},
		amount:  amount,
		mid:     (r.Min + r.Max) / 2,
		rng:     r,
	}, nil
}

func (c *Contrasted) contrast(v float64) float64 {
	v = c.mid + (v-c.mid)*c.amount
	return math.Min(c.rng.Max, math.Max(v, c.rng.Min))
}

func (c *Contrasted) Noise1D(x float64) float64       { return c.contrast(c.in.Noise1D(x)) }
func (c *Contrasted) Noise2D(x, y float64) float64    { return c.contrast(c.in.Noise2D(x, y)) }
func (c *Contrasted) Noise3D(x, y, z float64) float64 { return c.contrast(c.in.Noise3D(x, y, z)) }

// Posturized quantizes its input into integer buckets.
type Posturized struct {
	wrapped
	buckets int
}

// Posturize maps the input range onto [0,buckets] and rounds to the nearest integer,
// ties to even.
func Posturize(p Plane, buckets int) (*Posturized, error) {
	if buckets < 1 {
		return nil, invalid("posturize: buckets %d must be at least 1", buckets)
	}
	if err := requireSpan("posturize", p.Range()); err != nil {
		return nil, err
	}
	return &Posturized{wrapped: wrapped{in: p}, buckets: buckets}, nil
}

func (n *Posturized) posturize(v float64) float64 {
	r := n.in.Range()
	return math.RoundToEven(interp.RangeScale(0, float64(n.buckets), r.Min, r.Max, v))
}

func (n *Posturized) Noise1D(x float64) float64       { return n.posturize(n.in.Noise1D(x)) }
func (n *Posturized) Noise2D(x, y float64) float64    { return n.posturize(n.in.Noise2D(x, y)) }
func (n *Posturized) Noise3D(x, y, z float64) float64 { return n.posturize(n.in.Noise3D(x, y, z)) }
func (n *Posturized) Range() Range                    { return Range{Min: 0, Max: float64(n.buckets)} }

// Exponentiated raises each sample to a fixed power.
type Exponentiated struct {
	wrapped
	k float64
}

// Exponent returns v^k for every sample v. Negative samples with a fractional k
// produce NaN; callers that need that combination fit the input first.
func Exponent(p Plane, k float64) *Exponentiated {
	return &Exponentiated{wrapped: wrapped{in: p}, k: k}
}

func (e *Exponentiated) Noise1D(x float64) float64       { return math.Pow(e.in.Noise1D(x), e.k) }
func (e *Exponentiated) Noise2D(x, y float64) float64    { return math.Pow(e.in.Noise2D(x, y), e.k) }
func (e *Exponentiated) Noise3D(x, y, z float64) float64 { return math.Pow(e.in.Noise3D(x, y, z), e.k) }

type fitMode int

const (
	fitScale fitMode = iota
	fitIdentity
	fitUnitToZero
)

// Fitted maps its input range affinely onto a target range.
type Fitted struct {
	wrapped
	out  Range
	mode fitMode
}

// Fit maps the declared range of p onto [min,max]. A plane already declaring
// [min,max] passes through untouched.
func Fit(p Plane, min, max float64) (*Fitted, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, invalid("fit: bounds [%g,%g]", min, max)
	}
	in := p.Range()
	out := Range{Min: min, Max: max}
	f := &Fitted{wrapped: wrapped{in: p}, out: out}

	switch {
	case in == out:
		f.mode = fitIdentity
	case in == Unit && min == 0:
		f.mode = fitUnitToZero
	default:
		if err := requireSpan("fit", in); err != nil {
			return nil, err
		}
		f.mode = fitScale
	}
	return f, nil
}

func (f *Fitted) fit(v float64) float64 {
	switch f.mode {
	case fitIdentity:
		return v
	case fitUnitToZero:
		return ((v + 1) * 0.5) * f.out.Max
	}
	r := f.in.Range()
	return interp.RangeScale(f.out.Min, f.out.Max, r.Min, r.Max, v)
}

func (f *Fitted) Noise1D(x float64) float64       { return f.fit(f.in.Noise1D(x)) }
func (f *Fitted) Noise2D(x, y float64) float64    { return f.fit(f.in.Noise2D(x, y)) }
func (f *Fitted) Noise3D(x, y, z float64) float64 { return f.fit(f.in.Noise3D(x, y, z)) }
func (f *Fitted) Range() Range                    { return f.out }

// Sum adds two planes sample by sample.
type Sum struct {
	a, b Plane
}

// Add returns a(coord) + b(coord). The declared range is the sum of both ranges.
func Add(a, b Plane) *Sum {
	return &Sum{a: a, b: b}
}

func (s *Sum) Noise1D(x float64) float64       { return s.a.Noise1D(x) + s.b.Noise1D(x) }
func (s *Sum) Noise2D(x, y float64) float64    { return s.a.Noise2D(x, y) + s.b.Noise2D(x, y) }
func (s *Sum) Noise3D(x, y, z float64) float64 { return s.a.Noise3D(x, y, z) + s.b.Noise3D(x, y, z) }

func (s *Sum) Range() Range {
	ra, rb := s.a.Range(), s.b.Range()
	return Range{Min: ra.Min + rb.Min, Max: ra.Max + rb.Max}
}

func (s *Sum) Caps() Caps {
	ca, cb := s.a.Caps(), s.b.Caps()
	return Caps{
		Dim1:     true,
		Dim2:     true,
		Dim3:     ca.Dim3 && cb.Dim3,
		Flat:     ca.Flat && cb.Flat,
		Scalable: ca.Scalable || cb.Scalable,
	}
}

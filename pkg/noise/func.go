package noise

// Func adapts plain functions into a plane. Missing coordinates are passed as zero
// and a 2D function ignores z.
type Func struct {
	fn3  func(x, y, z float64) float64
	rng  Range
	is3D bool
}

// Func1D wraps a 1D function. Its declared range is Unit.
func Func1D(fn func(x float64) float64) *Func {
	return &Func{fn3: func(x, _, _ float64) float64 { return fn(x) }, rng: Unit}
}

// Func2D wraps a 2D function. Its declared range is Unit.
func Func2D(fn func(x, y float64) float64) *Func {
	return &Func{fn3: func(x, y, _ float64) float64 { return fn(x, y) }, rng: Unit}
}

// Func3D wraps a 3D function. Its declared range is Unit.
func Func3D(fn func(x, y, z float64) float64) *Func {
	return &Func{fn3: fn, rng: Unit, is3D: true}
}

// Constant returns a plane that is v everywhere, declaring [v,v].
func Constant(v float64) *Func {
	return &Func{fn3: func(float64, float64, float64) float64 { return v }, rng: Range{Min: v, Max: v}, is3D: true}
}

// WithRange returns a copy of f declaring r.
func (f *Func) WithRange(r Range) *Func {
	c := *f
	c.rng = r
	return &c
}

func (f *Func) Noise1D(x float64) float64       { return f.fn3(x, 0, 0) }
func (f *Func) Noise2D(x, y float64) float64    { return f.fn3(x, y, 0) }
func (f *Func) Noise3D(x, y, z float64) float64 { return f.fn3(x, y, z) }
func (f *Func) Range() Range                    { return f.rng }

func (f *Func) Caps() Caps {
	c := defaultCaps
	c.Dim3 = f.is3D
	return c
}

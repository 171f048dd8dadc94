package noise

// Chain builds a pipeline fluently. The first failing stage is remembered and every
// later stage becomes a no-op, so a whole chain is checked once at the end:
//
//	p, err := noise.From(noise.NewSimplex(seed)).Scale(0.01).Fit(0, 1).Plane()
type Chain struct {
	p   Plane
	err error
}

// From starts a chain at p.
func From(p Plane) Chain {
	if p == nil {
		return Chain{err: invalid("chain: nil plane")}
	}
	return Chain{p: p}
}

// Plane returns the built pipeline or the first error.
func (c Chain) Plane() (Plane, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.p, nil
}

// Err returns the first error recorded by the chain.
func (c Chain) Err() error { return c.err }

func (c Chain) then(stage func(Plane) (Plane, error)) Chain {
	if c.err != nil {
		return c
	}
	p, err := stage(c.p)
	if err != nil {
		return Chain{err: err}
	}
	return Chain{p: p}
}

func (c Chain) wrap(stage func(Plane) Plane) Chain {
	if c.err != nil {
		return c
	}
	return Chain{p: stage(c.p)}
}

func (c Chain) Scale(factor float64) Chain {
	return c.wrap(func(p Plane) Plane { return Scale(p, factor) })
}

func (c Chain) Invert() Chain {
	return c.wrap(func(p Plane) Plane { return Invert(p) })
}

func (c Chain) Exponent(k float64) Chain {
	return c.wrap(func(p Plane) Plane { return Exponent(p, k) })
}

func (c Chain) Cellularize(seed int64) Chain {
	return c.wrap(func(p Plane) Plane { return Cellularize(p, seed) })
}

// Warp displaces the chain by w. See Warp.
func (c Chain) Warp(w Plane, scale, multiplier float64) Chain {
	if w == nil {
		return c.then(func(Plane) (Plane, error) { return nil, invalid("warp: nil warp plane") })
	}
	return c.wrap(func(p Plane) Plane { return Warp(p, w, scale, multiplier) })
}

func (c Chain) Add(other Plane) Chain {
	if other == nil {
		return c.then(func(Plane) (Plane, error) { return nil, invalid("add: nil plane") })
	}
	return c.wrap(func(p Plane) Plane { return Add(p, other) })
}

func (c Chain) Clip(min, max float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return Clip(p, min, max) })
}

func (c Chain) Contrast(amount float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return Contrast(p, amount) })
}

func (c Chain) Posturize(buckets int) Chain {
	return c.then(func(p Plane) (Plane, error) { return Posturize(p, buckets) })
}

func (c Chain) Fit(min, max float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return Fit(p, min, max) })
}

func (c Chain) EdgeDetect(threshold float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return EdgeDetect(p, threshold) })
}

func (c Chain) EdgeDetectFast(threshold float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return EdgeDetectFast(p, threshold) })
}

func (c Chain) Octave(octaves int, gain float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return Octave(p, octaves, gain) })
}

func (c Chain) Linear(scale float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return NewLinear(p, scale) })
}

func (c Chain) Cubic(scale float64) Chain {
	return c.then(func(p Plane) (Plane, error) { return NewCubic(p, scale) })
}

func (c Chain) Hermite(scale float64, opts ...HermiteOption) Chain {
	return c.then(func(p Plane) (Plane, error) { return NewHermite(p, scale, opts...) })
}

func (c Chain) Starcast(radius float64, checks int) Chain {
	return c.then(func(p Plane) (Plane, error) { return NewStarcast(p, radius, checks) })
}

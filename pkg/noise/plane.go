// Package noise builds deterministic, seed-derived scalar fields ("planes") that can
// be sampled at any 1D, 2D or 3D real coordinate, and composes them into pipelines.
//
// A pipeline is a tree: base generators (Perlin, Simplex, Cellular, Value, White,
// Flat) sit at the leaves, decorators and interpolators wrap them. Every plane is
// immutable once built, so one pipeline can be sampled from many goroutines
// without coordination. Nothing is cached; each sample walks the tree.
package noise

// Range is a closed interval of plane output values.
type Range struct {
	Min float64
	Max float64
}

// Unit is the default output range of generators.
var Unit = Range{Min: -1, Max: 1}

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Degenerate reports whether the range has no width.
func (r Range) Degenerate() bool { return r.Min == r.Max }

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Caps describes what a plane supports.
type Caps struct {
	Dim1     bool
	Dim2     bool
	Dim3     bool
	Flat     bool // constant zero everywhere
	Scalable bool // has a spatial frequency, so scaling coordinates is meaningful
}

var defaultCaps = Caps{Dim1: true, Dim2: true, Dim3: true, Scalable: true}

// Plane is a continuous scalar field.
type Plane interface {
	Noise1D(x float64) float64
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
	// Range is the declared output interval. Leaves declare it; Clip and Fit
	// enforce it.
	Range() Range
	Caps() Caps
}

// Seeded is a plane that owns a seed.
type Seeded interface {
	Plane
	Seed() int64
}

// SeedOf returns the seed of p. Interpolators report their input's seed.
// Planes without a seed report -1.
func SeedOf(p Plane) int64 {
	switch v := p.(type) {
	case Seeded:
		return v.Seed()
	case interface{ Input() Plane }:
		return SeedOf(v.Input())
	}
	return -1
}

// leaf carries the defaults shared by the base generators.
type leaf struct {
	seed int64
}

func (l leaf) Seed() int64 { return l.seed }
func (leaf) Range() Range  { return Unit }
func (leaf) Caps() Caps    { return defaultCaps }

// wrapped carries the defaults for decorators that keep their input's contract.
type wrapped struct {
	in Plane
}

func (w wrapped) Range() Range { return w.in.Range() }
func (w wrapped) Caps() Caps   { return w.in.Caps() }

package noise

import "math"

// Edges marks sample points whose value differs from a neighbour one unit away.
// Edge samples return the input's maximum, everything else its minimum.
type Edges struct {
	wrapped
	threshold float64
	diff      float64
	full      bool
}

// EdgeDetect tests all eight neighbours in 2D. Differences are measured as a fraction
// of the input range and must exceed threshold to count as an edge.
func EdgeDetect(p Plane, threshold float64) (*Edges, error) {
	return newEdges("edge detect", p, threshold, true)
}

// EdgeDetectFast tests only the +x and +y neighbours in 2D.
func EdgeDetectFast(p Plane, threshold float64) (*Edges, error) {
	return newEdges("edge detect fast", p, threshold, false)
}

func newEdges(op string, p Plane, threshold float64, full bool) (*Edges, error) {
	r := p.Range()
	if err := requireSpan(op, r); err != nil {
		return nil, err
	}
	if math.IsNaN(threshold) {
		return nil, invalid("%s: threshold is NaN", op)
	}
	return &Edges{wrapped: wrapped{in: p}, threshold: threshold, diff: 1 / r.Span(), full: full}, nil
}

// Caps reports no 3D support: 3D samples evaluate the 2D neighbourhood.
func (e *Edges) Caps() Caps {
	c := e.in.Caps()
	c.Dim3 = false
	return c
}

func (e *Edges) differs(a, b float64) bool {
	return math.Abs(a-b)*e.diff > e.threshold
}

func (e *Edges) Noise1D(x float64) float64 {
	r := e.in.Range()
	c := e.in.Noise1D(x)
	if e.differs(c, e.in.Noise1D(x+1)) || e.differs(c, e.in.Noise1D(x-1)) {
		return r.Max
	}
	return r.Min
}

var (
	fastNeighbours = [][2]float64{{1, 0}, {0, 1}}
	fullNeighbours = [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

func (e *Edges) Noise2D(x, y float64) float64 {
	r := e.in.Range()
	c := e.in.Noise2D(x, y)
	offsets := fastNeighbours
	if e.full {
		offsets = fullNeighbours
	}
	for _, o := range offsets {
		if e.differs(c, e.in.Noise2D(x+o[0], y+o[1])) {
			return r.Max
		}
	}
	return r.Min
}

func (e *Edges) Noise3D(x, y, _ float64) float64 {
	return e.Noise2D(x, y)
}

package noise

import (
	"math"

	"github.com/MeKo-Tech/noiseplane/internal/lattice"
)

// Starcast smooths its input by averaging samples taken on a ring around the query
// point. It is a 2D filter: 1D samples the x axis and 3D ignores z.
type Starcast struct {
	wrapped
	radius float32
	step   int
}

// NewStarcast averages p over checks points on a circle of the given radius.
// The ring is walked in whole degrees, so checks above 360 behave like 360.
func NewStarcast(p Plane, radius float64, checks int) (*Starcast, error) {
	if checks <= 0 {
		return nil, invalid("starcast: checks %d must be positive", checks)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, invalid("starcast: radius %g must be positive", radius)
	}
	step := int(lattice.Round(360 / float64(checks)))
	if step < 1 {
		step = 1
	}
	return &Starcast{wrapped: wrapped{in: p}, radius: float32(radius), step: step}, nil
}

// Input returns the smoothed plane.
func (s *Starcast) Input() Plane { return s.in }

func (s *Starcast) Noise1D(x float64) float64 {
	return s.Noise2D(x, 0)
}

func (s *Starcast) Noise2D(x, y float64) float64 {
	cx, cy, r := float32(x), float32(y), s.radius
	v := 0.0
	n := 0
	for deg := 0; deg < 360; deg += s.step {
		rad := float64(deg) * (math.Pi / 180)
		sin := float32(math.Sin(rad))
		cos := float32(math.Cos(rad))
		px := cx + (r*cos - r*sin)
		py := cy + (r*sin + r*cos)
		v += s.in.Noise2D(float64(px), float64(py))
		n++
	}
	return v / float64(n)
}

func (s *Starcast) Noise3D(x, y, _ float64) float64 {
	return s.Noise2D(x, y)
}

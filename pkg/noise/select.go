package noise

import (
	"fmt"
	"math"
)

// Sample dispatches on the number of coordinates given.
func Sample(p Plane, coords ...float64) (float64, error) {
	switch len(coords) {
	case 1:
		return p.Noise1D(coords[0]), nil
	case 2:
		return p.Noise2D(coords[0], coords[1]), nil
	case 3:
		return p.Noise3D(coords[0], coords[1], coords[2]), nil
	}
	return 0, fmt.Errorf("%d coordinates: %w", len(coords), ErrDimension)
}

// Float samples p fitted to [min,max].
func Float(p Plane, min, max float64, coords ...float64) (float64, error) {
	f, err := Fit(p, min, max)
	if err != nil {
		return 0, err
	}
	return Sample(f, coords...)
}

// Int samples p fitted to [min,max] and rounds to the nearest integer, ties to even.
func Int(p Plane, min, max int, coords ...float64) (int, error) {
	v, err := Float(p, float64(min), float64(max), coords...)
	if err != nil {
		return 0, err
	}
	return int(math.RoundToEven(v)), nil
}

// Select picks an item by mapping the sample at coords onto the slice indices.
// A sample at the edge of the range never indexes outside the slice.
func Select[T any](p Plane, items []T, coords ...float64) (T, error) {
	var zero T
	switch len(items) {
	case 0:
		return zero, fmt.Errorf("select: %w", ErrEmpty)
	case 1:
		return items[0], nil
	}

	v, err := Float(p, 0, float64(len(items)-1), coords...)
	if err != nil {
		return zero, err
	}
	i := int(math.RoundToEven(v))
	switch {
	case math.IsNaN(v) || i < 0:
		i = 0
	case i > len(items)-1:
		i = len(items) - 1
	}
	return items[i], nil
}

// Choice is an item with a relative selection weight.
type Choice[T any] struct {
	Item   T
	Weight float64
}

// PickWeighted selects an item with probability proportional to its weight. The
// sample is fitted to [0, total weight] and the weights are walked in order until
// the running remainder falls inside one. Zero-weight items are never picked.
func PickWeighted[T any](p Plane, choices []Choice[T], coords ...float64) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, fmt.Errorf("pick weighted: %w", ErrEmpty)
	}

	total := 0.0
	for _, c := range choices {
		if c.Weight < 0 || math.IsNaN(c.Weight) {
			return zero, invalid("pick weighted: weight %g of %v", c.Weight, c.Item)
		}
		total += c.Weight
	}
	if total == 0 {
		return zero, fmt.Errorf("pick weighted: zero total weight: %w", ErrEmpty)
	}

	r, err := Float(p, 0, total, coords...)
	if err != nil {
		return zero, err
	}
	last := zero
	for _, c := range choices {
		if c.Weight == 0 {
			continue
		}
		if r <= c.Weight {
			return c.Item, nil
		}
		r -= c.Weight
		last = c.Item
	}
	return last, nil
}

package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a construction parameter outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateRange reports a range with equal bounds where its width is divided by.
	ErrDegenerateRange = errors.New("degenerate range")
	// ErrUnknownPreset reports a preset name or value missing from the catalog.
	ErrUnknownPreset = fmt.Errorf("unknown preset: %w", ErrInvalidArgument)
	// ErrDimension reports a sample request with other than one to three coordinates.
	ErrDimension = errors.New("unsupported number of coordinates")
	// ErrEmpty reports a selection over no items or no weight.
	ErrEmpty = errors.New("nothing to select from")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func requireSpan(op string, r Range) error {
	if r.Degenerate() {
		return fmt.Errorf("%s: input range [%g,%g]: %w", op, r.Min, r.Max, ErrDegenerateRange)
	}
	return nil
}

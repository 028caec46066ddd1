package hypermath

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a component, row, or column index
	// outside the valid range of the receiver.
	ErrIndexOutOfRange = errors.New("hypermath: index out of range")
	// ErrNegativeDistance indicates a negative step passed to an exact
	// integer MoveTowards, which has no meaningful result.
	ErrNegativeDistance = errors.New("hypermath: move distance must be non-negative")
	// ErrInvalidProjection indicates projection parameters that cannot
	// describe a view volume (non-positive planes, inverted depth range,
	// field of view outside (0, pi)).
	ErrInvalidProjection = errors.New("hypermath: invalid projection parameters")
	// ErrInvalidHexColor indicates a hex color string that is not one of
	// the accepted RGB, RGBA, RRGGBB, or RRGGBBAA forms.
	ErrInvalidHexColor = errors.New("hypermath: invalid hex color")
	// ErrInvalidFormat indicates text that does not parse as the target
	// type's canonical comma-separated form.
	ErrInvalidFormat = errors.New("hypermath: invalid text format")
)

// indexError is the panic value raised by indexers when i falls outside
// [0, size). Accessors fail fast instead of returning a partially valid
// component.
func indexError(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size)
}

func negativeDistanceError[T Number](distance T) error {
	return fmt.Errorf("%w: got %v", ErrNegativeDistance, distance)
}

func projectionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProjection, fmt.Sprintf(format, args...))
}

package fabric

import "errors"

var (
	// ErrGridSize is returned when a grid has less than two samples per axis.
	ErrGridSize = errors.New("grid size must be at least 2")
	// ErrInvalidMode is returned for a density mode outside the known set.
	ErrInvalidMode = errors.New("invalid density mode")
	// ErrTolerance is returned for a negative boundary tolerance.
	ErrTolerance = errors.New("tolerance must not be negative")
	// ErrBadRecord is returned when an input record can not be parsed.
	ErrBadRecord = errors.New("malformed record")
)

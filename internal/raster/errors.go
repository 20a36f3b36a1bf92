package raster

import "errors"

var (
	// ErrInvalidDimension is returned when a width or height is not positive.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfBounds is returned when a coordinate is outside the buffer.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrDimensionMismatch is returned when two grids that must share a
	// size do not.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidArgument is returned for parameters outside their domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Package raster provides the in-memory RGB pixel buffer shared by every
// transform in this module.
//
// A Buffer is a width×height grid of 8-bit RGB triples stored row-major.
// Transforms never mutate their input: each one allocates a fresh Buffer
// for its result and returns it to the caller.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position, valid range 0 to width-1
//   - Y: vertical position, valid range 0 to height-1
//
// Accessing a coordinate outside that range is a contract violation. The
// checked accessors (Get, Set) return ErrOutOfBounds; the fast accessors
// (At, Put) panic with the same error.
//
// # Error Handling
//
// All errors returned by this module wrap one of the sentinel errors
// declared here, so callers can classify them with errors.Is:
//   - ErrInvalidDimension: a non-positive width or height was requested
//   - ErrOutOfBounds: a coordinate falls outside the buffer extent
//   - ErrDimensionMismatch: a mask does not match its buffer
//   - ErrInvalidArgument: a parameter is outside its domain
package raster

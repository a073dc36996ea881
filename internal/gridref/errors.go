package gridref

import "errors"

var (
	// ErrEmptyGrid is returned by ParseGrid/ParseVolume when the grid has
	// zero rows (or zero layers) or a zero-width first row.
	ErrEmptyGrid = errors.New("gridref: grid must have at least one free row and column")

	// ErrRaggedGrid is returned when grid rows have differing lengths.
	ErrRaggedGrid = errors.New("gridref: grid rows must all have the same length")

	// ErrOutOfBounds is returned when a requested point lies outside the
	// grid's coordinate range.
	ErrOutOfBounds = errors.New("gridref: point outside grid bounds")

	// ErrBlockedPoint is returned when a requested start/end point falls on
	// an obstacle cell rather than free space.
	ErrBlockedPoint = errors.New("gridref: point is not free space")
)

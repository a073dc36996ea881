package geom

import "errors"

// Sentinel errors for geom construction and validation.
var (
	// ErrBadDims indicates a Dims value outside [1, MaxDims].
	ErrBadDims = errors.New("geom: dims out of range")

	// ErrNotDegenerate indicates an Obstacle's box is not degenerate in
	// exactly one axis (size 0 on that axis, positive on the others).
	ErrNotDegenerate = errors.New("geom: obstacle box must be degenerate in exactly one axis")

	// ErrBadDirection indicates a direction outside [0, 2*Dims).
	ErrBadDirection = errors.New("geom: direction out of range")

	// ErrNegativeCoordinate indicates a negative coordinate was supplied.
	ErrNegativeCoordinate = errors.New("geom: negative coordinate")
)

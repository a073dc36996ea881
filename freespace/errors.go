package freespace

import "errors"

var (
	// ErrBadDims is returned by Decompose when dims is not 2 or 3.
	ErrBadDims = errors.New("freespace: dims out of range")
	// ErrDomainDimsMismatch is returned when domain.Dims != dims.
	ErrDomainDimsMismatch = errors.New("freespace: domain dims does not match dims")
	// ErrDegenerateDomain is returned when the domain box has an empty axis.
	ErrDegenerateDomain = errors.New("freespace: domain box must not be degenerate")
	// ErrInvalidObstacle wraps a geom.Obstacle validation failure, with the
	// offending index appended by Decompose via fmt.Errorf.
	ErrInvalidObstacle = errors.New("freespace: invalid obstacle")
)

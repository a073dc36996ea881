package raylink

import "errors"

var (
	// ErrUnsupportedDimension is returned when dims is outside the core's
	// supported range (spec §6: D ∈ {2, 3}).
	ErrUnsupportedDimension = errors.New("raylink: dims must be 2 or 3")
)

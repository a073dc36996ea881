package illuminate

import "errors"

var (
	// ErrBadDims is returned by New when dims is outside [1, geom.MaxDims].
	ErrBadDims = errors.New("illuminate: dims out of range")

	// ErrStartOutsideFreeSpace is returned by Run when start does not fall
	// inside any Cell of the decomposition.
	ErrStartOutsideFreeSpace = errors.New("illuminate: start point is not in free space")

	// ErrEndOutsideFreeSpace is returned by Run when end does not fall
	// inside any Cell of the decomposition.
	ErrEndOutsideFreeSpace = errors.New("illuminate: end point is not in free space")

	// ErrRoundBudgetExceeded is returned by Run when WithMaxRounds was set
	// and the sweep did not reach end within that many rounds.
	ErrRoundBudgetExceeded = errors.New("illuminate: round budget exceeded")
)

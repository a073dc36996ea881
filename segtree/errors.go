package segtree

import "errors"

var (
	// ErrBadDims is returned by NewTree when dims is outside [1, geom.MaxDims].
	ErrBadDims = errors.New("segtree: dims out of range")
	// ErrSizeMismatch is returned by NewTree when len(sizes) != dims.
	ErrSizeMismatch = errors.New("segtree: sizes length must equal dims")
	// ErrNonPositiveSize is returned by NewTree when an axis size is <= 0.
	ErrNonPositiveSize = errors.New("segtree: axis size must be positive")
	// ErrDimsMismatch is returned by Add/Check/Remove when box.Dims != the
	// tree's own dims.
	ErrDimsMismatch = errors.New("segtree: box dims does not match tree dims")
)

// Package geom provides the integer axis-aligned primitives shared by
// segtree, freespace, and illuminate: half-open Range, the cartesian
// product Box, Point, and the degenerate-box Obstacle.
//
// D (the dimension) is carried as a runtime field rather than a
// compile-time parameter: Box and Point are backed by a fixed [3]int
// array plus a live Dims count, so the same code runs unchanged for the
// 2-D and 3-D cases this package supports (MaxDims).
package geom

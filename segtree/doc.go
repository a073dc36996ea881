// Package segtree implements UnifiedTree, a multi-dimensional segment
// tree over a rectilinear integer domain [0, N_i) per axis, unifying the
// D! possible per-axis orderings into one DAG addressed by a D-tuple of
// 1-D segment-tree indices (spec §4.1). It supports three operations:
//
//   - Add: stamp a box with a value, marking every DAG node whose box is
//     part of the box's canonical per-axis decomposition.
//   - Check: test whether any stamped box intersects a query box.
//   - Remove: clear a box, invoking a callback for every node that held
//     a full-coverage payload and no longer does, so callers can react to
//     exactly the coverage that disappeared.
//
// Grounded on original_source/code/UnifiedTree.hpp for Add/Check's
// canonical-decomposition recursion; Remove has no surviving draft in
// original_source (see DESIGN.md) and is built from spec §4.1 directly.
package segtree

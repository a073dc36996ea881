// Package raylink computes the minimum-link path between two integer grid
// points in a rectilinear environment: the fewest axis-aligned straight
// segments needed to connect start to end without crossing any obstacle.
//
// Under the hood, everything is organized under subpackages:
//
//   - geom       — integer Range/Box/Point/Obstacle primitives
//   - segtree    — the unified multi-dimensional segment tree
//   - freespace  — obstacle set to free-cell decomposition
//   - illuminate — the multi-directional illumination sweep
//
// LinkDistance itself — the single externally visible operation — is
// declared at this package's root, tying decomposition and illumination
// together behind one call.
//
// internal/gridref is a fixture package used by the tests and by
// cmd/raylinkdemo, never by the core: it turns ASCII grids
// into geom.ObstacleSets and, independently of the core, answers the same
// link-distance and reachability questions via a plain 0-1 BFS over grid
// cells, so the root test suite can check LinkDistance's answers against a
// second, unrelated implementation.
package raylink

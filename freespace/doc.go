// Package freespace partitions the free space bounded by a geom.Obstacle
// set into maximal axis-aligned cells with full neighbor and
// boundary-obstacle cross-linking (spec §4.2).
//
// The 2-D case (sweep2D) builds a candidate grid by coordinate compression
// and then merges it into maximal rectangles in two passes — horizontal
// runs within a row, then vertical runs of matching row-runs across
// consecutive rows — splitting a run only where an obstacle actually
// interrupts it, never at a plain grid line, so the result is genuinely
// maximal rather than one cell per atomic grid square. The 3-D case
// (sweep3D) recurses on cross-sections along axis 2, reconciling each
// slab's cells against the previous slab's active set exactly as spec §4.2
// describes. Both cases then share one geometric adjacency pass
// (linkCells) that cross-links every cell's 2*dims faces to the neighbors
// and obstacles covering them, which — unlike a single per-face index —
// lets a face border more than one neighbor, or split between a neighbor
// and an obstacle.
package freespace

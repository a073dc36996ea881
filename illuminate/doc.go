// Package illuminate computes minimum-link distance over a freespace
// Decomposition by iterated multi-directional sweeps (spec.md §4.3): each
// round runs 2*dims event-ordered sweeps, one per cardinal direction, each
// draining a per-direction priority queue of ADD_RECT/CELL/OBSTACLE events
// (spec.md §3's EventSet) ordered by sweep position with OBSTACLE sorting
// before CELL at equal position.
//
// Illuminator keeps one segtree.Tree per direction ("plane", spec.md's
// name) recording the coordinate span of every corridor discovered in
// that direction. A CELL event only propagates once Tree.Check confirms
// its cross-section is actually lit (the §4.3 "shadow test" — a cell no
// illuminated rectangle reaches is skipped this sweep); an OBSTACLE
// event resolves via Tree.Remove exactly as spec.md describes, with the
// removal visitor reconstructing the blocked rectangle, testing it against
// the query's end point, and — within D+1 rounds of the obstacle's first
// hit — seeding ADD_RECT events for the perpendicular directions the light
// can now wrap around.
//
// Between rounds, the next round's accumulated ADD_RECT events are
// compressed per spec.md §4.4: opposite-direction pairs introducing the
// identical rectangle from the identical origin cancel, and adjacent
// same-projection events with touching or overlapping cross-axis intervals
// merge into one wider event (see event.go).
package illuminate

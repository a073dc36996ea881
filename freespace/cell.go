package freespace

import "github.com/lucentgraph/raylink/geom"

// Cell is a maximal free axis-aligned box produced by Decompose, with
// per-direction neighbor links and boundary-obstacle attribution (spec
// §3's Cell<D>). Links and Obstacles are indexed by direction exactly like
// geom.Obstacle.Direction: 2*axis+side.
type Cell struct {
	Box geom.Box

	// Links[d] holds the sorted, duplicate-free indices of every
	// neighboring Cell reachable by crossing the face in direction d. A
	// cell's face can border more than one neighbor (e.g. a tall cell
	// next to two shorter ones), so this is a list, not a single index;
	// an empty list means the face is entirely blocked or is the domain
	// boundary there.
	Links [2 * geom.MaxDims][]int

	// Obstacles[d] holds the sorted, duplicate-free indices into the
	// Decompose call's obstacle slice of every obstacle lying on this
	// cell's face in direction d whose Direction is d (an obstacle on the
	// same face with the opposite side is not listed). A face can be split
	// between several obstacles (and, on the rest of its length, one or
	// more Links neighbors); an empty list means no such obstacle touches
	// that face.
	Obstacles [2 * geom.MaxDims][]int
}

func newCell(box geom.Box) Cell {
	return Cell{Box: box}
}

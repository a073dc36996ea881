package freespace

import "github.com/lucentgraph/raylink/geom"

// Decomposition is the read-only result of Decompose: a partition of free
// space into Cells. It is safe to share across repeated queries against
// the same obstacle set (spec.md's immutability note).
type Decomposition struct {
	Dims  int
	Cells []Cell
}

// Find returns the index of the Cell containing p, via a linear scan
// (spec §4.3: "linear scan over the decomposition is acceptable").
func (d *Decomposition) Find(p geom.Point) (int, bool) {
	for i := range d.Cells {
		if d.Cells[i].Box.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

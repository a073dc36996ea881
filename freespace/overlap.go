package freespace

import (
	"sort"

	"github.com/lucentgraph/raylink/geom"
)

// OverlappingBoxes returns every pair (i, j) with as[i].Intersects(bs[j]).
// It sweeps axis 0 (sorting bs by its lower bound, the role overlap.hpp's
// ordered map plays for axis-0 lookups — Go's standard library has no
// balanced ordered-map type, so a sorted slice plus binary search stands
// in for it) to narrow candidates before falling back to a full
// intersection test, generalizing directly over any shared dimension
// instead of special-casing D-1 ∈ {1, 2} the way
// original_source/code/overlap.hpp's 2-D/ND split does.
//
// Grounded on original_source/code/overlap.hpp.
func OverlappingBoxes(as, bs []geom.Box) [][2]int {
	if len(as) == 0 || len(bs) == 0 {
		return nil
	}
	order := make([]int, len(bs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return bs[order[i]].At(0).From < bs[order[j]].At(0).From
	})
	starts := make([]int, len(order))
	for i, j := range order {
		starts[i] = bs[j].At(0).From
	}

	var pairs [][2]int
	for i, a := range as {
		aTo := a.At(0).To
		// candidates are every b whose axis-0 start is before a's axis-0 end;
		// the remaining axis-0 overlap check (and every other axis) is done
		// by the full Intersects call below.
		hi := sort.SearchInts(starts, aTo)
		for k := 0; k < hi; k++ {
			j := order[k]
			if a.Intersects(bs[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

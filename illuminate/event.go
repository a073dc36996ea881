package illuminate

import (
	"container/heap"
	"sort"

	"github.com/lucentgraph/raylink/geom"
)

// eventKind is one of spec.md §3/§4.3's three sweep-event kinds.
type eventKind int

const (
	eventAddRect eventKind = iota
	eventObstacle
	eventCell
)

// event is one entry in a direction's sweep queue. pos is the
// sweep-direction-normalised coordinate the queue orders on; the other
// fields are populated according to kind: box/start for eventAddRect
// (and as the TreeItem.Start carried through a corridor for the other two
// kinds), cell for eventCell, obstacle for eventObstacle.
type event struct {
	kind     eventKind
	pos      int
	box      geom.Box
	start    int
	cell     int
	obstacle int
}

// eventQueue is a direction's EventSet entry: a priority queue ordered by
// (pos, kind), OBSTACLE sorting before CELL at equal position per
// spec.md §4.3.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].pos != q[j].pos {
		return q[i].pos < q[j].pos
	}
	return q[i].kind < q[j].kind
}
func (q eventQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x any)        { *q = append(*q, x.(event)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	v := old[n-1]
	*q = old[:n-1]
	return v
}

// eventSet is spec.md §3's EventSet: one priority queue per direction.
type eventSet struct {
	queues [2 * geom.MaxDims]eventQueue
}

func newEventSet() *eventSet { return &eventSet{} }

func (es *eventSet) push(d int, e event) { heap.Push(&es.queues[d], e) }

func (es *eventSet) pop(d int) (event, bool) {
	if es.queues[d].Len() == 0 {
		return event{}, false
	}
	return heap.Pop(&es.queues[d]).(event), true
}

func (es *eventSet) totalLen(dims int) int {
	n := 0
	for d := 0; d < 2*dims; d++ {
		n += len(es.queues[d])
	}
	return n
}

// signedPos normalises coord for direction d so ascending order in the
// queue matches the order events are reached while sweeping (spec §4.3).
func signedPos(d, coord int) int {
	if d&1 == 1 {
		return -coord
	}
	return coord
}

// filterEvents applies spec.md §4.4's between-round compression to the
// ADD_RECT events accumulated in es, for a domain of the given
// dimensionality: cancellation of opposite-direction pairs introducing the
// identical rectangle from the identical origin, then merging of
// adjacent, same-projection events whose remaining cross-axis intervals
// touch or overlap.
func filterEvents(es *eventSet, dims int) {
	cancelOpposite(es, dims)
	for d := 0; d < 2*dims; d++ {
		rects, rest := partitionAddRects(es.queues[d])
		rects = mergeAddRects(rects)
		es.queues[d] = append(rest, rects...)
		heap.Init(&es.queues[d])
	}
}

func partitionAddRects(q eventQueue) (rects, rest []event) {
	for _, e := range q {
		if e.kind == eventAddRect {
			rects = append(rects, e)
		} else {
			rest = append(rest, e)
		}
	}
	return rects, rest
}

// cancelOpposite discards ADD_RECT pairs on opposite directions of the
// same axis that introduce the same rectangle from the same origin: they
// would only re-illuminate space already lit from the other side.
func cancelOpposite(es *eventSet, dims int) {
	for a := 0; a < dims; a++ {
		d0, d1 := 2*a, 2*a+1
		rects0, rest0 := partitionAddRects(es.queues[d0])
		rects1, rest1 := partitionAddRects(es.queues[d1])

		used1 := make([]bool, len(rects1))
		var kept0 []event
		for _, e0 := range rects0 {
			matched := -1
			for j, e1 := range rects1 {
				if used1[j] {
					continue
				}
				if e0.box.Equal(e1.box) && e0.start == e1.start {
					matched = j
					break
				}
			}
			if matched >= 0 {
				used1[matched] = true
				continue
			}
			kept0 = append(kept0, e0)
		}
		var kept1 []event
		for j, e1 := range rects1 {
			if !used1[j] {
				kept1 = append(kept1, e1)
			}
		}

		es.queues[d0] = append(rest0, kept0...)
		es.queues[d1] = append(rest1, kept1...)
		heap.Init(&es.queues[d0])
		heap.Init(&es.queues[d1])
	}
}

// mergeAddRects merges adjacent ADD_RECT events, one cross-axis at a time,
// whenever two events share the same origin and agree on every other
// cross-axis while their intervals on the axis being merged touch or
// overlap.
func mergeAddRects(events []event) []event {
	if len(events) < 2 {
		return events
	}
	crossDims := events[0].box.Dims
	for m := 0; m < crossDims; m++ {
		events = mergeAlongAxis(events, m)
	}
	return events
}

func mergeAlongAxis(events []event, m int) []event {
	if len(events) < 2 {
		return events
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.start != b.start {
			return a.start < b.start
		}
		for k := 0; k < a.box.Dims; k++ {
			if k == m {
				continue
			}
			if a.box.At(k) != b.box.At(k) {
				return a.box.At(k).From < b.box.At(k).From
			}
		}
		return a.box.At(m).From < b.box.At(m).From
	})

	merged := events[:1]
	for _, e := range events[1:] {
		last := &merged[len(merged)-1]
		if sameProjection(*last, e, m) && last.box.At(m).To >= e.box.At(m).From {
			last.box.Ranges[m] = last.box.At(m).Union(e.box.At(m))
			continue
		}
		merged = append(merged, e)
	}
	return merged
}

func sameProjection(a, b event, m int) bool {
	if a.start != b.start {
		return false
	}
	for k := 0; k < a.box.Dims; k++ {
		if k == m {
			continue
		}
		if a.box.At(k) != b.box.At(k) {
			return false
		}
	}
	return true
}

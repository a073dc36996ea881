package gridref

import (
	"math"

	"github.com/lucentgraph/raylink/geom"
)

// world is the minimal shape naiveLinkDistance and reachable need from a
// Grid or Volume: axis sizes and a free-cell predicate. Both concrete
// fixture types satisfy it without any change to their own API.
type world struct {
	dims  int
	sizes [geom.MaxDims]int
	free  func(p geom.Point) bool
}

func gridWorld(g *Grid) world {
	return world{dims: 2, sizes: [geom.MaxDims]int{g.W, g.H}, free: func(p geom.Point) bool { return g.Free(p.At(0), p.At(1)) }}
}

func volumeWorld(v *Volume) world {
	return world{dims: 3, sizes: [geom.MaxDims]int{v.W, v.H, v.D}, free: func(p geom.Point) bool { return v.Free(p.At(0), p.At(1), p.At(2)) }}
}

func (w world) total() int {
	n := 1
	for a := 0; a < w.dims; a++ {
		n *= w.sizes[a]
	}
	return n
}

func (w world) flatIndex(p geom.Point) int {
	f := 0
	for a := 0; a < w.dims; a++ {
		f = f*w.sizes[a] + p.At(a)
	}
	return f
}

func (w world) neighbor(p geom.Point, dir int) (geom.Point, bool) {
	axis := dir / 2
	delta := 1
	if dir%2 == 1 {
		delta = -1
	}
	coords := make([]int, w.dims)
	for a := 0; a < w.dims; a++ {
		coords[a] = p.At(a)
	}
	coords[axis] += delta
	np := geom.NewPoint(coords...)
	if !w.free(np) {
		return geom.Point{}, false
	}
	return np, true
}

func (w world) validate(p geom.Point) error {
	for a := 0; a < w.dims; a++ {
		if p.At(a) < 0 || p.At(a) >= w.sizes[a] {
			return ErrOutOfBounds
		}
	}
	if !w.free(p) {
		return ErrBlockedPoint
	}
	return nil
}

// state packs a (cell, incoming-direction) pair into one int: cell*2*dims +
// dir. A state, not a bare cell, is what naiveLinkDistance's 0-1 BFS walks,
// since the cost of continuing straight versus turning depends on which
// direction the ray arrived from.
func (w world) state(flat, dir int) int { return flat*2*w.dims + dir }

func indexToPoint(w world, flat int) geom.Point {
	coords := make([]int, w.dims)
	for a := w.dims - 1; a >= 0; a-- {
		coords[a] = flat % w.sizes[a]
		flat /= w.sizes[a]
	}
	return geom.NewPoint(coords...)
}

// naiveLinkDistance is the shared implementation behind the
// GridLinkDistance/VolumeLinkDistance entry points below (they just pick a
// world). It runs a 0-1 BFS over the (cell, incoming-direction) state
// space with a plain double-ended queue: the first step out of start costs
// 1 (it opens the first link), continuing straight costs 0 (push to the
// front) and turning costs 1 (push to the back), so the first time
// a state is popped its distance is final — the same deque technique the
// teacher's island-flood-fill used for a terrain-conversion cost,
// generalized here from a binary cost to a turn cost.
func naiveLinkDistance(w world, start, end geom.Point) (int, error) {
	if err := w.validate(start); err != nil {
		return 0, err
	}
	if err := w.validate(end); err != nil {
		return 0, err
	}
	if start == end {
		return 0, nil
	}

	n := w.total() * 2 * w.dims
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}

	deque := make([]int, 0, n)
	startFlat := w.flatIndex(start)
	for d := 0; d < 2*w.dims; d++ {
		if _, ok := w.neighbor(start, d); !ok {
			continue
		}
		// Leaving start in direction d opens the first link.
		s := w.state(startFlat, d)
		if dist[s] > 1 {
			dist[s] = 1
			deque = append(deque, s)
		}
	}

	for len(deque) > 0 {
		s := deque[0]
		deque = deque[1:]
		flat, dirIn := s/(2*w.dims), s%(2*w.dims)
		p := indexToPoint(w, flat)
		base := dist[s]

		for d := 0; d < 2*w.dims; d++ {
			np, ok := w.neighbor(p, d)
			if !ok {
				continue
			}
			cost := 1
			if d == dirIn {
				cost = 0
			}
			ns := w.state(w.flatIndex(np), d)
			nd := base + cost
			if nd >= dist[ns] {
				continue
			}
			dist[ns] = nd
			if cost == 0 {
				deque = append([]int{ns}, deque...)
			} else {
				deque = append(deque, ns)
			}
		}
	}

	endFlat := w.flatIndex(end)
	best := math.MaxInt
	for d := 0; d < 2*w.dims; d++ {
		if v := dist[w.state(endFlat, d)]; v < best {
			best = v
		}
	}
	if best == math.MaxInt {
		return -1, nil
	}
	return best, nil
}

// reachable reports whether end is reachable from start at all, ignoring
// turn cost, via a plain BFS over the free-cell adjacency graph. Used as a
// cheap cross-check against naiveLinkDistance's -1 result.
func reachable(w world, start, end geom.Point) (bool, error) {
	if err := w.validate(start); err != nil {
		return false, err
	}
	if err := w.validate(end); err != nil {
		return false, err
	}
	if start == end {
		return true, nil
	}

	seen := make([]bool, w.total())
	startFlat := w.flatIndex(start)
	seen[startFlat] = true
	queue := []int{startFlat}
	for len(queue) > 0 {
		flat := queue[0]
		queue = queue[1:]
		p := indexToPoint(w, flat)
		for d := 0; d < 2*w.dims; d++ {
			np, ok := w.neighbor(p, d)
			if !ok {
				continue
			}
			nf := w.flatIndex(np)
			if seen[nf] {
				continue
			}
			seen[nf] = true
			queue = append(queue, nf)
		}
	}
	return seen[w.flatIndex(end)], nil
}

// GridLinkDistance is the naive (cell, direction) link-distance reference
// specialised to a 2-D Grid.
func GridLinkDistance(g *Grid, start, end geom.Point) (int, error) {
	return naiveLinkDistance(gridWorld(g), start, end)
}

// VolumeLinkDistance is the naive (cell, direction) link-distance reference
// specialised to a 3-D Volume.
func VolumeLinkDistance(v *Volume, start, end geom.Point) (int, error) {
	return naiveLinkDistance(volumeWorld(v), start, end)
}

// GridReachable reports connectivity over g, ignoring turn cost.
func GridReachable(g *Grid, start, end geom.Point) (bool, error) {
	return reachable(gridWorld(g), start, end)
}

// VolumeReachable reports connectivity over v, ignoring turn cost.
func VolumeReachable(v *Volume, start, end geom.Point) (bool, error) {
	return reachable(volumeWorld(v), start, end)
}

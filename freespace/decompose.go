package freespace

import (
	"fmt"
	"sort"

	"github.com/lucentgraph/raylink/geom"
)

// Decomposer builds a Decomposition from an obstacle set. It holds no
// state; a Decomposer is safe to reuse across calls.
type Decomposer struct{}

// NewDecomposer returns a ready-to-use Decomposer.
func NewDecomposer() *Decomposer { return &Decomposer{} }

// Decompose partitions domain into maximal free Cells, carving out the
// faces the given obstacles block, and cross-links every cell's 2*dims
// faces to its neighbors and to the obstacles lying on them (spec §4.2).
// domain bounds the region under consideration; raylink.LinkDistance
// computes it as the bounding box of every obstacle coordinate plus the
// query's start/end points.
//
// 2-D is built by a plane sweep over one axis that merges a grid of
// candidate cells into maximal free rectangles (see sweep2D). 3-D recurses
// on cross-sections along axis 2, reconciling consecutive slabs the way
// spec §4.2 describes (see sweep3D), then both cases share one geometric
// adjacency pass (see linkCells) to cross-link faces — this lets a face
// border more than one neighbor or obstacle, which a regular grid (the
// degenerate D=1-strip-per-axis case) cannot represent.
func (dc *Decomposer) Decompose(dims int, domain geom.Box, obstacles []geom.Obstacle) (*Decomposition, error) {
	if dims < 1 || dims > geom.MaxDims {
		return nil, ErrBadDims
	}
	if domain.Dims != dims {
		return nil, ErrDomainDimsMismatch
	}
	if domain.Empty() {
		return nil, ErrDegenerateDomain
	}
	for i, o := range obstacles {
		if o.Box.Dims != dims {
			return nil, fmt.Errorf("%w: obstacle %d has dims %d, want %d", ErrInvalidObstacle, i, o.Box.Dims, dims)
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("%w: obstacle %d: %w", ErrInvalidObstacle, i, err)
		}
	}

	var boxes []geom.Box
	switch dims {
	case 2:
		boxes = sweep2D(domain, obstacles)
	case 3:
		b, err := sweep3D(dc, domain, obstacles)
		if err != nil {
			return nil, err
		}
		boxes = b
	default:
		return nil, ErrBadDims
	}

	return &Decomposition{Dims: dims, Cells: linkCells(dims, boxes, obstacles)}, nil
}

// sweep2D is the 2-D plane sweep: it first compresses every obstacle
// extent into a candidate grid, then merges grid cells into maximal
// rectangles in two passes (horizontal runs within a row, then vertical
// runs of matching row-runs), exactly mirroring how
// original_source/code/decomposition.cpp's pending-cell set only closes a
// cell off when a wall actually interrupts it rather than at every grid
// line.
func sweep2D(domain geom.Box, obstacles []geom.Obstacle) []geom.Box {
	coords := collectCoords(2, domain, obstacles)
	nx, ny := len(coords[0])-1, len(coords[1])-1

	// Pass 1: merge atomic columns into maximal horizontal runs per row.
	type span struct{ lo, hi int }
	rows := make([][]span, ny)
	for ry := 0; ry < ny; ry++ {
		yLo, yHi := coords[1][ry], coords[1][ry+1]
		cx := 0
		for cx < nx {
			hx := cx + 1
			for hx < nx && !boundaryBlocked2D(obstacles, 0, coords[0][hx], yLo, yHi) {
				hx++
			}
			rows[ry] = append(rows[ry], span{cx, hx})
			cx = hx
		}
	}

	// Pass 2: merge row-runs sharing an exact x-range across consecutive
	// rows whose shared boundary isn't crossed by any obstacle.
	type active struct {
		lo, hi, yStart int
	}
	actives := map[[2]int]active{}
	var boxes []geom.Box
	finalize := func(a active, yEndRow int) {
		boxes = append(boxes, geom.NewBox(
			geom.Range{From: coords[0][a.lo], To: coords[0][a.hi]},
			geom.Range{From: coords[1][a.yStart], To: coords[1][yEndRow]},
		))
	}

	for ry := 0; ry < ny; ry++ {
		curKeys := make(map[[2]int]bool, len(rows[ry]))
		for _, sp := range rows[ry] {
			key := [2]int{sp.lo, sp.hi}
			curKeys[key] = true
			xLo, xHi := coords[0][sp.lo], coords[0][sp.hi]
			blocked := ry > 0 && boundaryBlocked2D(obstacles, 1, coords[1][ry], xLo, xHi)
			if _, ok := actives[key]; ok && !blocked {
				continue // still growing the same rectangle
			}
			if a, ok := actives[key]; ok {
				finalize(a, ry)
			}
			actives[key] = active{lo: sp.lo, hi: sp.hi, yStart: ry}
		}
		for key, a := range actives {
			if !curKeys[key] {
				finalize(a, ry)
				delete(actives, key)
			}
		}
	}
	for _, a := range actives {
		finalize(a, ny)
	}
	return boxes
}

// boundaryBlocked2D reports whether some obstacle on axis a, at the given
// boundary coordinate, overlaps [otherFrom, otherTo) on the remaining
// axis — i.e. whether a rectangle cannot be safely merged across that
// boundary. For an atomic span (pass 1) coordinate compression makes
// "overlaps" and "fully spans" the same; for a merged row-run (pass 2) a
// wall covering only part of the run still stops the merge, and linkCells
// later links the two sides through the open part.
func boundaryBlocked2D(obstacles []geom.Obstacle, axis, boundary, otherFrom, otherTo int) bool {
	other := 1 - axis
	for _, o := range obstacles {
		if o.Axis() != axis || o.Box.At(axis).From != boundary {
			continue
		}
		r := o.Box.At(other)
		if r.From < otherTo && r.To > otherFrom {
			return true
		}
	}
	return false
}

// sweep3D recurses on cross-sections along axis 2 (spec §4.2's "higher
// dimensions"): it re-decomposes the xy cross section at each distinct z
// breakpoint and reconciles the result against the previous slab's active
// cells, extending a cell that persists unchanged, opening one that is
// new, and closing (with its final z extent) one that disappeared.
func sweep3D(dc *Decomposer, domain geom.Box, obstacles []geom.Obstacle) ([]geom.Box, error) {
	zSet := map[int]bool{domain.At(2).From: true, domain.At(2).To: true}
	for _, o := range obstacles {
		r := o.Box.At(2)
		zSet[r.From] = true
		zSet[r.To] = true
	}
	zCoords := make([]int, 0, len(zSet))
	for z := range zSet {
		zCoords = append(zCoords, z)
	}
	sort.Ints(zCoords)

	domain2 := domain.Project(2)

	type active struct{ zStart int }
	actives := map[geom.Box]active{}
	var boxes []geom.Box
	finalize := func(b2 geom.Box, a active, zEnd int) {
		boxes = append(boxes, geom.NewBox(b2.At(0), b2.At(1), geom.Range{From: zCoords[a.zStart], To: zEnd}))
	}

	for zi := 0; zi < len(zCoords)-1; zi++ {
		zLo, zHi := zCoords[zi], zCoords[zi+1]
		var cross []geom.Obstacle
		for _, o := range obstacles {
			if o.Axis() == 2 {
				continue // axis-2 walls are cross-slab only; linkCells attributes them later
			}
			r := o.Box.At(2)
			if r.From <= zLo && r.To >= zHi {
				cross = append(cross, geom.Obstacle{Box: o.Box.Project(2), Direction: o.Direction})
			}
		}
		sub, err := dc.Decompose(2, domain2, cross)
		if err != nil {
			return nil, err
		}

		curSet := make(map[geom.Box]bool, len(sub.Cells))
		for _, c := range sub.Cells {
			curSet[c.Box] = true
			if _, ok := actives[c.Box]; !ok {
				actives[c.Box] = active{zStart: zi}
			}
		}
		for b2, a := range actives {
			if !curSet[b2] {
				finalize(b2, a, zLo)
				delete(actives, b2)
			}
		}
	}
	for b2, a := range actives {
		finalize(b2, a, zCoords[len(zCoords)-1])
	}
	return boxes, nil
}

func collectCoords(dims int, domain geom.Box, obstacles []geom.Obstacle) [geom.MaxDims][]int {
	var coords [geom.MaxDims][]int
	for a := 0; a < dims; a++ {
		coords[a] = append(coords[a], domain.At(a).From, domain.At(a).To)
	}
	for _, o := range obstacles {
		for a := 0; a < dims; a++ {
			r := o.Box.At(a)
			coords[a] = append(coords[a], r.From, r.To)
		}
	}
	for a := 0; a < dims; a++ {
		coords[a] = geom.SortUniqueInts(coords[a])
	}
	return coords
}

// linkCells computes, for every cell and every direction, the sorted
// neighbor and obstacle lists spec §3 requires. For each axis and side it
// groups cells by the coordinate of the face in question (their "exit"
// boundary on one side, their "entry" boundary on the other) and uses
// OverlappingBoxes to match faces that share a coordinate and overlap in
// the remaining axes, so a single face can match several neighbors or
// obstacles rather than at most one.
func linkCells(dims int, boxes []geom.Box, obstacles []geom.Obstacle) []Cell {
	cells := make([]Cell, len(boxes))
	faces := make([]geom.Box, len(boxes))
	for i, b := range boxes {
		cells[i] = newCell(b)
	}

	for a := 0; a < dims; a++ {
		byFrom := map[int][]int{}
		byTo := map[int][]int{}
		for i, b := range boxes {
			r := b.At(a)
			byFrom[r.From] = append(byFrom[r.From], i)
			byTo[r.To] = append(byTo[r.To], i)
			faces[i] = b.Project(a)
		}
		obsByCoordSide := map[[2]int][]int{}
		for oi, o := range obstacles {
			if o.Axis() != a {
				continue
			}
			key := [2]int{o.Box.At(a).From, o.Side()}
			obsByCoordSide[key] = append(obsByCoordSide[key], oi)
		}

		for s := 0; s < 2; s++ {
			d := 2*a + s
			sourceGroups, targetGroups := byFrom, byTo
			if s == 1 {
				sourceGroups, targetGroups = byTo, byFrom
			}
			for coord, sources := range sourceGroups {
				targets := targetGroups[coord]
				sourceFaces := make([]geom.Box, len(sources))
				for k, i := range sources {
					sourceFaces[k] = faces[i]
				}
				targetFaces := make([]geom.Box, len(targets))
				for k, j := range targets {
					targetFaces[k] = faces[j]
				}
				pairs := OverlappingBoxes(sourceFaces, targetFaces)
				matches := map[int][]int{}
				for _, p := range pairs {
					matches[p[0]] = append(matches[p[0]], p[1])
				}

				obsIdx := obsByCoordSide[[2]int{coord, s}]
				obsFaces := make([]geom.Box, len(obsIdx))
				for k, oi := range obsIdx {
					obsFaces[k] = obstacles[oi].Box.Project(a)
				}

				for li, i := range sources {
					srcFace := sourceFaces[li]
					var onFace []geom.Box
					for k, of := range obsFaces {
						if of.Intersects(srcFace) {
							cells[i].Obstacles[d] = append(cells[i].Obstacles[d], obsIdx[k])
							onFace = append(onFace, of)
						}
					}
					for _, tk := range matches[li] {
						j := targets[tk]
						overlap := srcFace.Intersection(targetFaces[tk])
						var blockers []geom.Box
						for _, of := range onFace {
							if of.Intersects(overlap) {
								blockers = append(blockers, of)
							}
						}
						if fullyCovered(overlap, blockers) {
							continue
						}
						cells[i].Links[d] = append(cells[i].Links[d], j)
					}
				}
			}
		}
	}

	for i := range cells {
		for d := 0; d < 2*dims; d++ {
			cells[i].Links[d] = geom.SortUniqueInts(cells[i].Links[d])
			cells[i].Obstacles[d] = geom.SortUniqueInts(cells[i].Obstacles[d])
		}
	}
	return cells
}

// fullyCovered reports whether blockers entirely cover overlap, so that no
// part of it is actually passable. The 1-D case (the 2-D decomposition's
// own faces) merges intervals exactly; the 2-D case (3-D faces) falls back
// to requiring a single blocker to contain the whole overlap, which is
// exact whenever a face is blocked by one obstacle and merely conservative
// (favoring connectivity) when several partial obstacles would be needed
// to fully tile it.
func fullyCovered(overlap geom.Box, blockers []geom.Box) bool {
	if len(blockers) == 0 {
		return false
	}
	if overlap.Dims == 1 {
		type iv struct{ from, to int }
		ivs := make([]iv, len(blockers))
		for i, b := range blockers {
			r := b.At(0)
			ivs[i] = iv{r.From, r.To}
		}
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].from < ivs[j].from })
		cur := overlap.At(0).From
		for _, v := range ivs {
			if v.from > cur {
				return false
			}
			if v.to > cur {
				cur = v.to
			}
		}
		return cur >= overlap.At(0).To
	}
	for _, b := range blockers {
		if b.ContainsBox(overlap) {
			return true
		}
	}
	return false
}

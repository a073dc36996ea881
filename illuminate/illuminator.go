package illuminate

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/lucentgraph/raylink/freespace"
	"github.com/lucentgraph/raylink/geom"
	"github.com/lucentgraph/raylink/segtree"
)

// TreeItem is the payload Illuminator stamps into its per-direction plane:
// the coordinate, on that direction's axis, where the illuminated corridor
// began. Reconstructing the full rectangle needs only this plus the node's
// own (D-1)-dimensional box and the coordinate where it was cut off.
type TreeItem struct {
	Start int
}

func axisOf(d int) int { return d / 2 }
func sideOf(d int) int { return d & 1 }

func samePoint(dims int, a, b geom.Point) bool {
	for i := 0; i < dims; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// entryCoord returns the coordinate of box's face on the side a corridor
// travelling direction (axis, side) would enter it from.
func entryCoord(box geom.Box, axis, side int) int {
	if side == 1 {
		return box.At(axis).From
	}
	return box.At(axis).To
}

// Option configures an Illuminator.
type Option func(*Illuminator)

// WithLogger routes round-by-round progress to l instead of discarding it.
func WithLogger(l *log.Logger) Option {
	return func(ig *Illuminator) { ig.logger = l }
}

// WithOnRound installs a callback invoked once per round, after its seed
// set is known and before it is processed. Useful for progress bars and
// tests that want to assert on intermediate state.
func WithOnRound(fn func(round int)) Option {
	return func(ig *Illuminator) { ig.onRound = fn }
}

// WithMaxRounds bounds the number of rounds Run will attempt before giving
// up with ErrRoundBudgetExceeded. Zero (the default) means unbounded.
func WithMaxRounds(n int) Option {
	return func(ig *Illuminator) { ig.maxRounds = n }
}

// Illuminator computes minimum-link distance over a freespace.Decomposition
// by iterated multi-directional sweeps (spec §4.3): each round runs 2*dims
// event-ordered sweeps, one per cardinal direction, over per-direction
// EventSets of ADD_RECT/CELL/OBSTACLE events; a UnifiedTree "plane" per
// direction tracks illuminated cross-sections and gates every reachability
// decision via Check, so a cell that no illuminated rectangle reaches (a
// cell in shadow) is skipped.
type Illuminator struct {
	dims   int
	domain geom.Box
	decomp *freespace.Decomposition
	obs    []geom.Obstacle

	planes            [2 * geom.MaxDims]*segtree.Tree[TreeItem]
	obstacleReachTime []int

	logger    *log.Logger
	onRound   func(round int)
	maxRounds int
}

// New builds an Illuminator over decomp, with obs the same obstacle slice
// decomp was built from (used to resolve Cell.Obstacles indices back to
// boxes) and domain the bounding box Decompose was called with.
func New(dims int, domain geom.Box, decomp *freespace.Decomposition, obs []geom.Obstacle, opts ...Option) (*Illuminator, error) {
	if dims < 1 || dims > geom.MaxDims {
		return nil, ErrBadDims
	}
	ig := &Illuminator{
		dims:   dims,
		domain: domain,
		decomp: decomp,
		obs:    obs,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(ig)
	}

	for d := 0; d < 2*dims; d++ {
		axis := axisOf(d)
		crossSizes := make([]int, dims-1)
		j := 0
		for a := 0; a < dims; a++ {
			if a == axis {
				continue
			}
			crossSizes[j] = domain.At(a).Size()
			j++
		}
		tr, err := segtree.NewTree[TreeItem](dims-1, crossSizes)
		if err != nil {
			return nil, err
		}
		ig.planes[d] = tr
	}

	ig.obstacleReachTime = make([]int, len(obs))
	for i := range ig.obstacleReachTime {
		ig.obstacleReachTime[i] = -1
	}
	return ig, nil
}

// otherAxes returns every axis except axisOf(d), in increasing order.
func (ig *Illuminator) otherAxes(d int) []int {
	axis := axisOf(d)
	axes := make([]int, 0, ig.dims-1)
	for a := 0; a < ig.dims; a++ {
		if a != axis {
			axes = append(axes, a)
		}
	}
	return axes
}

// perpendicularDirs returns every direction whose axis differs from d's.
func (ig *Illuminator) perpendicularDirs(d int) []int {
	axis := axisOf(d)
	dirs := make([]int, 0, 2*(ig.dims-1))
	for a := 0; a < ig.dims; a++ {
		if a == axis {
			continue
		}
		dirs = append(dirs, 2*a, 2*a+1)
	}
	return dirs
}

// crossBox projects full onto direction d's (D-1)-dimensional cross
// section, translated so the plane's tree (which always starts at 0) sees
// zero-based coordinates.
func (ig *Illuminator) crossBox(d int, full geom.Box) geom.Box {
	axes := ig.otherAxes(d)
	var b geom.Box
	b.Dims = len(axes)
	for k, a := range axes {
		r := full.At(a)
		off := ig.domain.At(a).From
		b.Ranges[k] = geom.Range{From: r.From - off, To: r.To - off}
	}
	return b
}

// expandCrossBox is crossBox's inverse: given a (D-1)-dimensional cross
// section for direction d and the coordinate span [axisFrom, axisTo) on
// d's own axis, rebuilds the full D-dimensional box.
func (ig *Illuminator) expandCrossBox(d int, cross geom.Box, axisFrom, axisTo int) geom.Box {
	axes := ig.otherAxes(d)
	var b geom.Box
	b.Dims = ig.dims
	b.Ranges[axisOf(d)] = geom.Range{From: axisFrom, To: axisTo}
	for k, a := range axes {
		off := ig.domain.At(a).From
		r := cross.At(k)
		b.Ranges[a] = geom.Range{From: r.From + off, To: r.To + off}
	}
	return b
}

func (ig *Illuminator) unitBoxAround(p geom.Point) geom.Box {
	var b geom.Box
	b.Dims = ig.dims
	for a := 0; a < ig.dims; a++ {
		c := p.At(a)
		b.Ranges[a] = geom.Range{From: c, To: c + 1}
	}
	return b
}

// Run returns the minimum number of straight segments (links) needed to
// travel from start to end through the free space, or -1 if end is
// unreachable.
func (ig *Illuminator) Run(ctx context.Context, start, end geom.Point) (int, error) {
	startCell, ok := ig.decomp.Find(start)
	if !ok {
		return 0, ErrStartOutsideFreeSpace
	}
	if _, ok := ig.decomp.Find(end); !ok {
		return 0, ErrEndOutsideFreeSpace
	}
	if samePoint(ig.dims, start, end) {
		return 0, nil
	}

	cur, next := newEventSet(), newEventSet()
	unit := ig.unitBoxAround(start)
	for d := 0; d < 2*ig.dims; d++ {
		axis := axisOf(d)
		startCoord := start.At(axis)
		cur.push(d, event{
			kind:  eventAddRect,
			pos:   signedPos(d, startCoord),
			box:   ig.crossBox(d, unit),
			start: startCoord,
		})
	}
	seeds := []int{startCell}

	visitedCells := geom.NewClearableBitset(len(ig.decomp.Cells))
	visitedObstacles := geom.NewClearableBitset(len(ig.obs))
	seededThisRound := geom.NewClearableBitset(len(ig.decomp.Cells))

	for round := 1; ; round++ {
		if ig.maxRounds > 0 && round > ig.maxRounds {
			return 0, fmt.Errorf("%w: after %d rounds", ErrRoundBudgetExceeded, ig.maxRounds)
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		ig.logger.Printf("round %d: %d seed cell(s)", round, len(seeds))
		if ig.onRound != nil {
			ig.onRound(round)
		}

		seededThisRound.Reset()
		for _, c := range seeds {
			seededThisRound.Set(c)
			cb := ig.decomp.Cells[c].Box
			for d := 0; d < 2*ig.dims; d++ {
				cur.push(d, event{kind: eventCell, pos: signedPos(d, entryCoord(cb, axisOf(d), sideOf(d))), cell: c, start: start.At(axisOf(d))})
			}
		}
		seeds = seeds[:0]

		foundEnd := false
		for d := 0; d < 2*ig.dims; d++ {
			visitedCells.Reset()
			visitedObstacles.Reset()
			axis := axisOf(d)
			side := sideOf(d)

			for {
				e, ok := cur.pop(d)
				if !ok {
					break
				}
				switch e.kind {
				case eventAddRect:
					if err := ig.planes[d].Add(e.box, TreeItem{Start: e.start}); err != nil {
						panic(fmt.Errorf("illuminate: internal plane dims mismatch: %w", err))
					}

				case eventCell:
					c := e.cell
					if visitedCells.Test(c) {
						continue
					}
					visitedCells.Set(c)
					cell := ig.decomp.Cells[c]
					cross := ig.crossBox(d, cell.Box)

					// The §4.3 CELL shadow test: a cell whose cross-section
					// no illuminated rectangle in this plane reaches is in
					// shadow and is skipped.
					lit, err := ig.planes[d].Check(cross)
					if err != nil {
						panic(fmt.Errorf("illuminate: internal plane dims mismatch: %w", err))
					}
					if !lit {
						continue
					}

					if cell.Box.Contains(end) {
						foundEnd = true
					}
					if !seededThisRound.Test(c) {
						seededThisRound.Set(c)
						seeds = append(seeds, c)
					}
					if err := ig.planes[d].Add(cross, TreeItem{Start: e.start}); err != nil {
						panic(fmt.Errorf("illuminate: internal plane dims mismatch: %w", err))
					}

					for _, j := range cell.Links[d] {
						if visitedCells.Test(j) {
							continue
						}
						nb := ig.decomp.Cells[j].Box
						cur.push(d, event{kind: eventCell, pos: signedPos(d, entryCoord(nb, axis, side)), cell: j, start: e.start})
					}
					for _, oi := range cell.Obstacles[d] {
						if visitedObstacles.Test(oi) {
							continue
						}
						visitedObstacles.Set(oi)
						ob := ig.obs[oi].Box
						cur.push(d, event{kind: eventObstacle, pos: signedPos(d, entryCoord(ob, axis, side)), obstacle: oi, start: e.start})
					}

				case eventObstacle:
					oi := e.obstacle
					if ig.obstacleReachTime[oi] < 0 {
						ig.obstacleReachTime[oi] = round
					}
					obsCross := ig.crossBox(d, ig.obs[oi].Box)
					obsCoord := entryCoord(ig.obs[oi].Box, axis, side)
					if err := ig.planes[d].Remove(obsCross, func(nodeBox geom.Box, item TreeItem) {
						blo, bhi := item.Start, obsCoord
						if blo > bhi {
							blo, bhi = bhi, blo
						}
						full := ig.expandCrossBox(d, nodeBox, blo, bhi)
						if full.Contains(end) {
							foundEnd = true
						}
						if round-ig.obstacleReachTime[oi] > ig.dims {
							return
						}
						for _, pd := range ig.perpendicularDirs(d) {
							pAxis, pSide := axisOf(pd), sideOf(pd)
							newStart := entryCoord(full, pAxis, pSide)
							newBox := ig.crossBox(pd, full)
							next.push(pd, event{
								kind:  eventAddRect,
								pos:   signedPos(pd, newStart),
								box:   newBox,
								start: newStart,
							})
						}
					}); err != nil {
						panic(fmt.Errorf("illuminate: internal plane dims mismatch: %w", err))
					}
				}
			}
		}

		if foundEnd {
			return round, nil
		}
		if len(seeds) == 0 && next.totalLen(ig.dims) == 0 {
			return -1, nil
		}

		filterEvents(next, ig.dims)
		cur, next = next, newEventSet()
	}
}

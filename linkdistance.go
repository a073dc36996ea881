package raylink

import (
	"context"
	"fmt"

	"github.com/lucentgraph/raylink/freespace"
	"github.com/lucentgraph/raylink/geom"
	"github.com/lucentgraph/raylink/illuminate"
)

// LinkDistance returns the minimum number of axis-aligned straight segments
// needed to connect start to end through the free space obstacles bounds,
// or -1 if end is unreachable (spec §6).
//
// dims must be 2 or 3. obstacles must satisfy geom.Obstacle.Validate (each
// box degenerate in exactly one axis, non-negative coordinates, Direction
// matching the degenerate axis); start and end must fall inside some free
// cell of the decomposition obstacles induces. Violating any of these is a
// caller bug (spec §7) and is reported as an error rather than panicking,
// except for corrupted internal tree state, which can only arise from a bug
// in this package itself.
func LinkDistance(ctx context.Context, dims int, obstacles []geom.Obstacle, start, end geom.Point, opts ...Option) (int, error) {
	if dims < 2 || dims > 3 {
		return 0, ErrUnsupportedDimension
	}
	if start.Dims != dims || end.Dims != dims {
		return 0, fmt.Errorf("%w: start/end dims must match dims", ErrUnsupportedDimension)
	}

	domain := boundingBox(dims, obstacles, start, end)

	decomp, err := freespace.NewDecomposer().Decompose(dims, domain, obstacles)
	if err != nil {
		return 0, fmt.Errorf("raylink: decompose: %w", err)
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	ig, err := illuminate.New(dims, domain, decomp, obstacles, s.igOpts...)
	if err != nil {
		return 0, fmt.Errorf("raylink: build illuminator: %w", err)
	}

	n, err := ig.Run(ctx, start, end)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// boundingBox computes the smallest Box enclosing every obstacle coordinate
// plus start and end, widened by one unit on every side so start/end (and
// any obstacle touching the tightest bound) fall strictly inside it rather
// than exactly on its boundary. The lower bound is clamped at 0, so on an
// axis where the tightest bound is already 0 nothing is added below it.
func boundingBox(dims int, obstacles []geom.Obstacle, start, end geom.Point) geom.Box {
	var lo, hi [geom.MaxDims]int
	for a := 0; a < dims; a++ {
		lo[a] = start.At(a)
		hi[a] = start.At(a) + 1
	}
	grow := func(p geom.Point) {
		for a := 0; a < dims; a++ {
			if v := p.At(a); v < lo[a] {
				lo[a] = v
			} else if v+1 > hi[a] {
				hi[a] = v + 1
			}
		}
	}
	grow(end)
	for _, o := range obstacles {
		for a := 0; a < dims; a++ {
			r := o.Box.At(a)
			if r.From < lo[a] {
				lo[a] = r.From
			}
			if r.To > hi[a] {
				hi[a] = r.To
			}
		}
	}

	var b geom.Box
	b.Dims = dims
	for a := 0; a < dims; a++ {
		from := lo[a] - 1
		if from < 0 {
			from = 0
		}
		b.Ranges[a] = geom.Range{From: from, To: hi[a] + 1}
	}
	return b
}

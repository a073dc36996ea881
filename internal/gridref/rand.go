package gridref

import "math/rand"

// RandomGrid generates a W x H grid with each cell independently solid
// with probability density, using rng so callers get reproducible fixtures
// across a seed (spec.md §1 lists random input generation as an external
// collaborator out of the core's scope; this is that collaborator, grounded
// on the teacher's tsp/rng.go convention of an explicit *rand.Rand rather
// than the global source). Border cells are drawn like every other cell;
// the area outside the grid counts as solid (see Grid.Free), so
// ObstaclesFromGrid always walls the grid's outer edge.
func RandomGrid(rng *rand.Rand, w, h int, density float64) []string {
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		b := make([]byte, w)
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				b[x] = '#'
			} else {
				b[x] = '.'
			}
		}
		rows[y] = string(b)
	}
	return rows
}

// RandomFreePoint picks a uniformly random free cell from g using rng,
// retrying until one is found (callers should ensure density leaves at
// least one free cell, or this will not terminate on a fully-solid grid).
func RandomFreePoint(rng *rand.Rand, g *Grid) (x, y int) {
	for {
		x = rng.Intn(g.W)
		y = rng.Intn(g.H)
		if g.Free(x, y) {
			return x, y
		}
	}
}

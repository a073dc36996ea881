package gridref

import (
	"sort"

	"github.com/lucentgraph/raylink/geom"
)

// Grid is a parsed ASCII obstacle layout: W columns by H rows of unit
// cells, free[y][x] true when that cell is open.
type Grid struct {
	W, H int
	free [][]bool
}

// ParseGrid reads rows top-to-bottom, '#' marking a solid cell and every
// other rune marking free space. All rows must share one width.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	free := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedGrid
		}
		free[y] = make([]bool, w)
		for x, r := range row {
			free[y][x] = r != '#'
		}
	}
	return &Grid{W: w, H: len(rows), free: free}, nil
}

// Free reports whether (x, y) is inside the grid and not solid. Points
// outside the grid are treated as solid, which is what makes the grid's
// own border act as an obstacle without any special-casing.
func (g *Grid) Free(x, y int) bool {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return false
	}
	return g.free[y][x]
}

// wallRun is one maximal same-side run of unit wall segments along a fixed
// boundary line, before being turned into a single geom.Obstacle.
type wallRun struct {
	fixed, side, from, to int
}

// ObstaclesFromGrid converts g into the geom.ObstacleSet bounding its free
// cells: a wall lies on every boundary between a free cell and a blocked
// one (including the grid's own border, which is implicitly blocked per
// Free), run-length merged along the boundary the way
// original_source/code/obstacles.cpp's addObstaclesOnLine sweeps a line of
// characters into as few wall segments as possible.
func ObstaclesFromGrid(g *Grid) geom.ObstacleSet {
	var obs geom.ObstacleSet
	obs = append(obs, wallsOnAxis(g, 0)...)
	obs = append(obs, wallsOnAxis(g, 1)...)
	return obs
}

// wallsOnAxis finds every wall boundary perpendicular to axis a (a=0:
// vertical boundaries varying in y; a=1: horizontal boundaries varying in
// x) and merges contiguous same-side runs into single obstacles.
func wallsOnAxis(g *Grid, a int) geom.ObstacleSet {
	axisLen, otherLen := g.W, g.H
	if a == 1 {
		axisLen, otherLen = g.H, g.W
	}
	cellAt := func(axisCoord, otherCoord int) bool {
		if a == 0 {
			return g.Free(axisCoord, otherCoord)
		}
		return g.Free(otherCoord, axisCoord)
	}

	runs := map[[2]int][]int{} // (fixed boundary coord, side) -> sorted otherCoord run members
	for c := 0; c <= axisLen; c++ {
		for k := 0; k < otherLen; k++ {
			lowFree := cellAt(c-1, k)
			highFree := cellAt(c, k)
			switch {
			case lowFree && !highFree:
				key := [2]int{c, 1}
				runs[key] = append(runs[key], k)
			case highFree && !lowFree:
				key := [2]int{c, 0}
				runs[key] = append(runs[key], k)
			}
		}
	}

	keys := make([][2]int, 0, len(runs))
	for k := range runs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	var obs geom.ObstacleSet
	for _, key := range keys {
		fixed, side := key[0], key[1]
		members := runs[key]
		sort.Ints(members)
		for i := 0; i < len(members); {
			j := i + 1
			for j < len(members) && members[j] == members[j-1]+1 {
				j++
			}
			obs = append(obs, wallRun{fixed: fixed, side: side, from: members[i], to: members[j-1] + 1}.obstacle(a))
			i = j
		}
	}
	return obs
}

func (w wallRun) obstacle(a int) geom.Obstacle {
	var box geom.Box
	box.Dims = 2
	box.Ranges[a] = geom.Range{From: w.fixed, To: w.fixed}
	box.Ranges[1-a] = geom.Range{From: w.from, To: w.to}
	return geom.Obstacle{Box: box, Direction: 2*a + w.side}
}

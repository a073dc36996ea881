package gridref

import (
	"sort"

	"github.com/lucentgraph/raylink/geom"
)

// Volume is the 3-D analogue of Grid: W x H x D unit cells, stored as one
// Grid per z layer in layers[z]. Each layer is parsed the same way ParseGrid reads a
// single 2-D grid (original_source/code/obstacles.cpp's makeObstaclesForVolume
// stacks planes the same way).
type Volume struct {
	W, H, D int
	layers  []*Grid
}

// ParseVolume reads D layers of H rows of W runes each, bottom axis (z)
// ordered as given.
func ParseVolume(layers [][]string) (*Volume, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyGrid
	}
	parsed := make([]*Grid, len(layers))
	for z, rows := range layers {
		g, err := ParseGrid(rows)
		if err != nil {
			return nil, err
		}
		if z > 0 && (g.W != parsed[0].W || g.H != parsed[0].H) {
			return nil, ErrRaggedGrid
		}
		parsed[z] = g
	}
	return &Volume{W: parsed[0].W, H: parsed[0].H, D: len(parsed), layers: parsed}, nil
}

// Free reports whether (x, y, z) is inside the volume and not solid.
func (v *Volume) Free(x, y, z int) bool {
	if z < 0 || z >= v.D {
		return false
	}
	return v.layers[z].Free(x, y)
}

// ObstaclesFromVolume converts v into its bounding geom.ObstacleSet: the
// x- and y-axis walls of every layer (run-length merged within that layer
// by wallsOnAxis, then lifted to a one-unit z-range; walls are not merged
// across layers), plus z-axis walls between layers (merged along x within
// a fixed y, z).
func ObstaclesFromVolume(v *Volume) geom.ObstacleSet {
	var obs geom.ObstacleSet
	for z := 0; z < v.D; z++ {
		for _, o := range wallsOnAxis(v.layers[z], 0) {
			obs = append(obs, lift2Dto3D(o, z))
		}
		for _, o := range wallsOnAxis(v.layers[z], 1) {
			obs = append(obs, lift2Dto3D(o, z))
		}
	}
	obs = append(obs, zAxisWalls(v)...)
	return obs
}

// lift2Dto3D inserts the one-unit z-range [z, z+1) into a 2-D wall's x/y
// box, keeping its
// original axis/side in Direction since axes 0 and 1 are unaffected by
// adding a third dimension.
func lift2Dto3D(o geom.Obstacle, z int) geom.Obstacle {
	var box geom.Box
	box.Dims = 3
	box.Ranges[0] = o.Box.Ranges[0]
	box.Ranges[1] = o.Box.Ranges[1]
	box.Ranges[2] = geom.Range{From: z, To: z + 1}
	return geom.Obstacle{Box: box, Direction: o.Direction}
}

// zAxisWalls finds every horizontal (constant-z) boundary between a free
// cell and a blocked one, merged into maximal x-runs for a fixed (y, z,
// side) the way wallsOnAxis merges along one axis at a time.
func zAxisWalls(v *Volume) geom.ObstacleSet {
	type key struct{ z, side, y int }
	runs := map[key][]int{}
	for z := 0; z <= v.D; z++ {
		for y := 0; y < v.H; y++ {
			for x := 0; x < v.W; x++ {
				lowFree := v.Free(x, y, z-1)
				highFree := v.Free(x, y, z)
				switch {
				case lowFree && !highFree:
					k := key{z: z, side: 1, y: y}
					runs[k] = append(runs[k], x)
				case highFree && !lowFree:
					k := key{z: z, side: 0, y: y}
					runs[k] = append(runs[k], x)
				}
			}
		}
	}

	keys := make([]key, 0, len(runs))
	for k := range runs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].z != keys[j].z {
			return keys[i].z < keys[j].z
		}
		if keys[i].y != keys[j].y {
			return keys[i].y < keys[j].y
		}
		return keys[i].side < keys[j].side
	})

	var obs geom.ObstacleSet
	for _, k := range keys {
		xs := runs[k]
		sort.Ints(xs)
		for i := 0; i < len(xs); {
			j := i + 1
			for j < len(xs) && xs[j] == xs[j-1]+1 {
				j++
			}
			var box geom.Box
			box.Dims = 3
			box.Ranges[0] = geom.Range{From: xs[i], To: xs[j-1] + 1}
			box.Ranges[1] = geom.Range{From: k.y, To: k.y + 1}
			box.Ranges[2] = geom.Range{From: k.z, To: k.z}
			obs = append(obs, geom.Obstacle{Box: box, Direction: 2*2 + k.side})
			i = j
		}
	}
	return obs
}

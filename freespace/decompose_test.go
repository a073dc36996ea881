package freespace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucentgraph/raylink/freespace"
	"github.com/lucentgraph/raylink/geom"
)

func TestDecompose_NoObstacles(t *testing.T) {
	dc := freespace.NewDecomposer()
	domain := geom.NewBox(geom.Range{0, 10}, geom.Range{0, 10})
	d, err := dc.Decompose(2, domain, nil)
	require.NoError(t, err)
	require.Len(t, d.Cells, 1)
	assert.True(t, d.Cells[0].Box.Equal(domain))
	for _, link := range d.Cells[0].Links {
		assert.Empty(t, link)
	}

	idx, ok := d.Find(geom.NewPoint(4, 4))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestDecompose_OneWayWall(t *testing.T) {
	dc := freespace.NewDecomposer()
	domain := geom.NewBox(geom.Range{0, 10}, geom.Range{0, 10})
	// A wall at x=5 spanning y in [2,8), blocking movement from the lower-x
	// side trying to cross to the higher-x side (axis 0, side 1).
	wall := geom.Obstacle{
		Box:       geom.NewBox(geom.Range{5, 5}, geom.Range{2, 8}),
		Direction: 1,
	}
	d, err := dc.Decompose(2, domain, []geom.Obstacle{wall})
	require.NoError(t, err)
	// The wall only interrupts the y in [2,8) band, so the maximal
	// decomposition has four cells: the bands above and below the wall's
	// span stay whole, and the wall's own band splits in two.
	require.Len(t, d.Cells, 4)

	lowMid, ok := d.Find(geom.NewPoint(1, 4))
	require.True(t, ok)
	hiMid, ok := d.Find(geom.NewPoint(6, 4))
	require.True(t, ok)
	lowTop, ok := d.Find(geom.NewPoint(1, 9))
	require.True(t, ok)
	hiTop, ok := d.Find(geom.NewPoint(6, 9))
	require.True(t, ok)

	// Blocked one-way: can't go from the lower-x cell to the higher-x one...
	assert.Empty(t, d.Cells[lowMid].Links[1])
	assert.Contains(t, d.Cells[lowMid].Obstacles[1], 0)
	// ...but the reverse direction is untouched by this obstacle.
	assert.Contains(t, d.Cells[hiMid].Links[0], lowMid)
	assert.Empty(t, d.Cells[hiMid].Obstacles[0])

	// The wall only interrupts its own y-span: the band above it, y in
	// [8,10), is never split on x and is one maximal cell spanning the
	// whole domain width.
	assert.Equal(t, lowTop, hiTop)
	assert.True(t, d.Cells[lowTop].Box.Equal(geom.NewBox(geom.Range{0, 10}, geom.Range{8, 10})))
}

func TestDecompose_InvalidObstacle(t *testing.T) {
	dc := freespace.NewDecomposer()
	domain := geom.NewBox(geom.Range{0, 10}, geom.Range{0, 10})
	bad := geom.Obstacle{Box: geom.NewBox(geom.Range{1, 2}, geom.Range{3, 4}), Direction: 0}
	_, err := dc.Decompose(2, domain, []geom.Obstacle{bad})
	assert.ErrorIs(t, err, freespace.ErrInvalidObstacle)
	assert.ErrorIs(t, err, geom.ErrNotDegenerate)
}

func TestDecompose_DomainMismatch(t *testing.T) {
	dc := freespace.NewDecomposer()
	domain := geom.NewBox(geom.Range{0, 10}, geom.Range{0, 10}, geom.Range{0, 10})
	_, err := dc.Decompose(2, domain, nil)
	assert.ErrorIs(t, err, freespace.ErrDomainDimsMismatch)
}

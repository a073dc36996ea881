package gridref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucentgraph/raylink/geom"
	"github.com/lucentgraph/raylink/internal/gridref"
)

// Scenarios below reproduce spec.md §8's concrete examples, translated from
// the spec's 1-indexed cell coordinates to this package's 0-indexed ones.

func TestGridLinkDistance_SingleCell(t *testing.T) {
	g, err := gridref.ParseGrid([]string{"."})
	require.NoError(t, err)
	d, err := gridref.GridLinkDistance(g, geom.NewPoint(0, 0), geom.NewPoint(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestGridLinkDistance_TwoCellsOneLink(t *testing.T) {
	g, err := gridref.ParseGrid([]string{".."})
	require.NoError(t, err)
	d, err := gridref.GridLinkDistance(g, geom.NewPoint(0, 0), geom.NewPoint(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestGridLinkDistance_TwoRowsDiagonal(t *testing.T) {
	g, err := gridref.ParseGrid([]string{"..", ".."})
	require.NoError(t, err)
	d, err := gridref.GridLinkDistance(g, geom.NewPoint(0, 0), geom.NewPoint(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestGridLinkDistance_AroundObstacle(t *testing.T) {
	g, err := gridref.ParseGrid([]string{"...", ".#.", "..."})
	require.NoError(t, err)
	d, err := gridref.GridLinkDistance(g, geom.NewPoint(0, 0), geom.NewPoint(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestGridLinkDistance_Unreachable(t *testing.T) {
	// A fully solid middle row puts start (top row) and end (bottom row) in
	// separate free components.
	g, err := gridref.ParseGrid([]string{"#..", "###", "..."})
	require.NoError(t, err)
	d, err := gridref.GridLinkDistance(g, geom.NewPoint(1, 0), geom.NewPoint(2, 2))
	require.NoError(t, err)
	assert.Equal(t, -1, d)

	reachable, err := gridref.GridReachable(g, geom.NewPoint(1, 0), geom.NewPoint(2, 2))
	require.NoError(t, err)
	assert.False(t, reachable)
}

func TestVolumeLinkDistance_StackedSlabs(t *testing.T) {
	v, err := gridref.ParseVolume([][]string{{"..", ".."}, {"..", ".."}})
	require.NoError(t, err)
	d, err := gridref.VolumeLinkDistance(v, geom.NewPoint(0, 0, 0), geom.NewPoint(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestGridReachable_AgreesWithLinkDistance(t *testing.T) {
	g, err := gridref.ParseGrid([]string{"...", ".#.", "..."})
	require.NoError(t, err)
	start, end := geom.NewPoint(0, 0), geom.NewPoint(2, 2)
	d, err := gridref.GridLinkDistance(g, start, end)
	require.NoError(t, err)
	reachable, err := gridref.GridReachable(g, start, end)
	require.NoError(t, err)
	assert.Equal(t, d >= 0, reachable)
}

func TestGridLinkDistance_OutOfBounds(t *testing.T) {
	g, err := gridref.ParseGrid([]string{".."})
	require.NoError(t, err)
	_, err = gridref.GridLinkDistance(g, geom.NewPoint(5, 5), geom.NewPoint(0, 0))
	assert.ErrorIs(t, err, gridref.ErrOutOfBounds)
}

func TestGridLinkDistance_BlockedPoint(t *testing.T) {
	g, err := gridref.ParseGrid([]string{".#."})
	require.NoError(t, err)
	_, err = gridref.GridLinkDistance(g, geom.NewPoint(1, 0), geom.NewPoint(2, 0))
	assert.ErrorIs(t, err, gridref.ErrBlockedPoint)
}

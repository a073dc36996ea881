package raylink_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	raylink "github.com/lucentgraph/raylink"
	"github.com/lucentgraph/raylink/geom"
	"github.com/lucentgraph/raylink/internal/gridref"
)

// obstaclesFromRows is a small local helper wiring gridref's grid-to-obstacle
// converter into LinkDistance calls below; the core packages never import gridref.
func obstaclesFromRows(t *testing.T, rows []string) geom.ObstacleSet {
	t.Helper()
	g, err := gridref.ParseGrid(rows)
	require.NoError(t, err)
	return gridref.ObstaclesFromGrid(g)
}

// Scenarios reproduce spec.md §8's concrete examples 1-5 and 7, translated
// from the spec's 1-indexed cell coordinates to this package's 0-indexed
// ones (scenario 6's spiral layout is exercised only indirectly, via the
// agreement-with-naive-BFS property test below, rather than transcribed by
// hand).
func TestLinkDistance_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		start geom.Point
		end   geom.Point
		want  int
	}{
		{"single free cell", []string{"."}, geom.NewPoint(0, 0), geom.NewPoint(0, 0), 0},
		{"two cells one link", []string{".."}, geom.NewPoint(0, 0), geom.NewPoint(1, 0), 1},
		{"two rows diagonal", []string{"..", ".."}, geom.NewPoint(0, 0), geom.NewPoint(1, 1), 2},
		{"around obstacle", []string{"...", ".#.", "..."}, geom.NewPoint(0, 0), geom.NewPoint(2, 2), 2},
		{"isolated component", []string{"#..", "###", "..."}, geom.NewPoint(1, 0), geom.NewPoint(2, 2), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obs := obstaclesFromRows(t, tc.rows)
			got, err := raylink.LinkDistance(context.Background(), 2, obs, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLinkDistance_StackedSlabs3D(t *testing.T) {
	v, err := gridref.ParseVolume([][]string{{"..", ".."}, {"..", ".."}})
	require.NoError(t, err)
	obs := gridref.ObstaclesFromVolume(v)
	got, err := raylink.LinkDistance(context.Background(), 3, obs, geom.NewPoint(0, 0, 0), geom.NewPoint(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestLinkDistance_UnsupportedDimension(t *testing.T) {
	_, err := raylink.LinkDistance(context.Background(), 1, nil, geom.NewPoint(0), geom.NewPoint(0))
	assert.ErrorIs(t, err, raylink.ErrUnsupportedDimension)
	_, err = raylink.LinkDistance(context.Background(), 4, nil, geom.NewPoint(0, 0, 0, 0), geom.NewPoint(0, 0, 0, 0))
	assert.ErrorIs(t, err, raylink.ErrUnsupportedDimension)
}

// TestLinkDistance_AgreesWithNaiveBFS is spec.md §8's "Agreement with naive
// BFS" property: on random grids, LinkDistance (illuminate/freespace) must
// match gridref's independent (cell, direction) 0-1 BFS reference.
func TestLinkDistance_AgreesWithNaiveBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const trials = 40
	agreed := 0
	for i := 0; i < trials; i++ {
		rows := gridref.RandomGrid(rng, 6, 6, 0.25)
		g, err := gridref.ParseGrid(rows)
		require.NoError(t, err)

		sx, sy := gridref.RandomFreePoint(rng, g)
		ex, ey := gridref.RandomFreePoint(rng, g)
		start, end := geom.NewPoint(sx, sy), geom.NewPoint(ex, ey)

		want, err := gridref.GridLinkDistance(g, start, end)
		require.NoError(t, err)

		obs := gridref.ObstaclesFromGrid(g)
		got, err := raylink.LinkDistance(context.Background(), 2, obs, start, end)
		require.NoError(t, err)

		if assert.Equal(t, want, got, "grid %v start=%v end=%v", rows, start, end) {
			agreed++
		}
	}
	assert.Equal(t, trials, agreed)
}

// TestLinkDistance_Monotonicity is spec.md §8's monotonicity property:
// removing an obstacle can only shorten (or leave unchanged) the link
// distance between two fixed free points.
func TestLinkDistance_Monotonicity(t *testing.T) {
	full := []string{"...", ".#.", "..."}
	fewer := []string{"...", "...", "..."}
	start, end := geom.NewPoint(0, 0), geom.NewPoint(2, 2)

	obsFull := obstaclesFromRows(t, full)
	obsFewer := obstaclesFromRows(t, fewer)

	dFull, err := raylink.LinkDistance(context.Background(), 2, obsFull, start, end)
	require.NoError(t, err)
	dFewer, err := raylink.LinkDistance(context.Background(), 2, obsFewer, start, end)
	require.NoError(t, err)

	assert.LessOrEqual(t, dFewer, dFull)
}

// TestLinkDistance_TriangleLike is spec.md §8's triangle-like property via
// an explicit way-point w.
func TestLinkDistance_TriangleLike(t *testing.T) {
	rows := []string{"...", ".#.", "..."}
	obs := obstaclesFromRows(t, rows)
	start, way, end := geom.NewPoint(0, 0), geom.NewPoint(2, 0), geom.NewPoint(2, 2)

	dSE, err := raylink.LinkDistance(context.Background(), 2, obs, start, end)
	require.NoError(t, err)
	dSW, err := raylink.LinkDistance(context.Background(), 2, obs, start, way)
	require.NoError(t, err)
	dWE, err := raylink.LinkDistance(context.Background(), 2, obs, way, end)
	require.NoError(t, err)

	assert.LessOrEqual(t, dSE, dSW+dWE)
}

func TestLinkDistance_ContextCancellation(t *testing.T) {
	obs := obstaclesFromRows(t, []string{"...", "...", "..."})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := raylink.LinkDistance(ctx, 2, obs, geom.NewPoint(0, 0), geom.NewPoint(2, 2))
	assert.Error(t, err)
}

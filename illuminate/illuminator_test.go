package illuminate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucentgraph/raylink/freespace"
	"github.com/lucentgraph/raylink/geom"
	"github.com/lucentgraph/raylink/illuminate"
)

func build(t *testing.T, domain geom.Box, obs []geom.Obstacle, opts ...illuminate.Option) *illuminate.Illuminator {
	t.Helper()
	decomp, err := freespace.NewDecomposer().Decompose(domain.Dims, domain, obs)
	require.NoError(t, err)
	ig, err := illuminate.New(domain.Dims, domain, decomp, obs, opts...)
	require.NoError(t, err)
	return ig
}

func TestIlluminator_SamePointIsZero(t *testing.T) {
	domain := geom.NewBox(geom.Range{0, 4}, geom.Range{0, 4})
	ig := build(t, domain, nil)
	n, err := ig.Run(context.Background(), geom.NewPoint(1, 1), geom.NewPoint(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestIlluminator_OpenSpaceOneAxisMove(t *testing.T) {
	domain := geom.NewBox(geom.Range{0, 4}, geom.Range{0, 4})
	ig := build(t, domain, nil)
	n, err := ig.Run(context.Background(), geom.NewPoint(0, 1), geom.NewPoint(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestIlluminator_TurnRequired(t *testing.T) {
	domain := geom.NewBox(geom.Range{0, 4}, geom.Range{0, 4})
	ig := build(t, domain, nil)
	n, err := ig.Run(context.Background(), geom.NewPoint(0, 0), geom.NewPoint(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestIlluminator_Unreachable(t *testing.T) {
	domain := geom.NewBox(geom.Range{0, 4}, geom.Range{0, 4})
	// A full-width wall at y=2 with no gap splits the domain in two; both
	// directional faces are blocked so neither side can cross it.
	obs := []geom.Obstacle{
		{Box: geom.NewBox(geom.Range{0, 4}, geom.Range{2, 2}), Direction: 2},
		{Box: geom.NewBox(geom.Range{0, 4}, geom.Range{2, 2}), Direction: 3},
	}
	ig := build(t, domain, obs)
	n, err := ig.Run(context.Background(), geom.NewPoint(0, 0), geom.NewPoint(0, 3))
	require.NoError(t, err)
	assert.Equal(t, -1, n)
}

func TestIlluminator_StartOutsideFreeSpace(t *testing.T) {
	domain := geom.NewBox(geom.Range{0, 4}, geom.Range{0, 4})
	ig := build(t, domain, nil)
	_, err := ig.Run(context.Background(), geom.NewPoint(10, 10), geom.NewPoint(0, 0))
	assert.ErrorIs(t, err, illuminate.ErrStartOutsideFreeSpace)
}

func TestIlluminator_MaxRoundsExceeded(t *testing.T) {
	domain := geom.NewBox(geom.Range{0, 4}, geom.Range{0, 4})
	ig := build(t, domain, nil, illuminate.WithMaxRounds(1))
	_, err := ig.Run(context.Background(), geom.NewPoint(0, 0), geom.NewPoint(3, 3))
	assert.ErrorIs(t, err, illuminate.ErrRoundBudgetExceeded)
}

func TestIlluminator_OnRoundHookFires(t *testing.T) {
	domain := geom.NewBox(geom.Range{0, 4}, geom.Range{0, 4})
	var rounds []int
	ig := build(t, domain, nil, illuminate.WithOnRound(func(r int) { rounds = append(rounds, r) }))
	n, err := ig.Run(context.Background(), geom.NewPoint(0, 0), geom.NewPoint(3, 3))
	require.NoError(t, err)
	assert.Equal(t, n, len(rounds))
	assert.Equal(t, []int{1, 2}, rounds)
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMovesStripeGrid(t *testing.T) {
	g := stripeGrid(DefaultSize)

	assert.Empty(t, FindMoves(g))
	assert.False(t, HasMove(g))
	_, ok := BestMove(g)
	assert.False(t, ok)
}

func TestFindMovesScenario(t *testing.T) {
	g := scenarioGrid()
	before := g.Clone()

	moves := FindMoves(g)
	require.NotEmpty(t, moves)
	assert.True(t, g.Equal(before), "FindMoves must not mutate the grid")
	assert.True(t, HasMove(g))

	found := false
	for _, m := range moves {
		if m.A == P(5, 5) && m.B == P(5, 6) {
			found = true
			assert.Equal(t, 3, m.Touched)
		}
	}
	assert.True(t, found, "swap (5,5)-(5,6) not reported")
}

func TestFindMovesCreateRuns(t *testing.T) {
	gen, err := NewGenerator(GenParams{Kinds: 5, Seed: 11})
	require.NoError(t, err)
	g, err := gen.NewBoard(DefaultSize)
	require.NoError(t, err)

	for _, m := range FindMoves(g) {
		trial := g.Clone()
		trial.Swap(m.A, m.B)
		assert.NotEmpty(t, SwapRuns(trial, m.A, m.B), "move %v-%v creates no run", m.A, m.B)
		assert.True(t, IsNeighbour(m.A, m.B))
	}
}

func TestFindMovesAppliedByEngine(t *testing.T) {
	e := newTestEngine(t, scenarioGrid())

	m, ok := e.Hint()
	require.True(t, ok)

	assert.Equal(t, OutcomeSelected, e.OnCellSelected(m.A).Outcome)
	assert.Equal(t, OutcomeApplied, e.OnCellSelected(m.B).Outcome)
}

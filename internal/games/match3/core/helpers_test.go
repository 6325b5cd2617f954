package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stripeGrid builds an n×n board over {R,G,B} with kind (r + 2c) mod 3.
// Adjacent cells never match, so it has no runs and no moves.
func stripeGrid(n int) *Grid {
	kinds := Kinds(3)
	g := NewGrid(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.Set(P(r, c), kinds[(r+2*c)%3])
		}
	}
	return g
}

// scenarioGrid is a 12×12 stripe board where swapping (5,5) and (5,6)
// lines up three reds at row 5, columns 6..8.
func scenarioGrid() *Grid {
	g := stripeGrid(DefaultSize)
	g.Set(P(5, 7), KindRed)
	return g
}

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(lines...)
	require.NoError(t, err)
	return g
}

func fastTiming() Timing {
	return Timing{SwapTicks: 2, ClearTicks: 2, FallTicks: 1, SettleTicks: 1}
}

func newTestEngine(t *testing.T, g *Grid, opts ...Option) *Engine {
	t.Helper()
	cfg := DefaultEngineConfig()
	cfg.Gen.Kinds = 3
	cfg.Gen.Seed = 7
	cfg.Timing = fastTiming()
	if g != nil {
		cfg.Size = g.Size()
		opts = append(opts, WithGrid(g))
	}
	e, err := NewEngine(cfg, opts...)
	require.NoError(t, err)
	return e
}

type recordingAnimator struct {
	moves  [][2]Pos
	clears []Pos
}

func (a *recordingAnimator) MoveVisual(from, to Pos) {
	a.moves = append(a.moves, [2]Pos{from, to})
}

func (a *recordingAnimator) ClearVisual(p Pos) {
	a.clears = append(a.clears, p)
}

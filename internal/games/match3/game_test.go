package match3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// swapBoard has exactly one run-making swap of interest: (3,4) with (4,4)
// lines up three blues on the bottom row without triggering a cascade.
var swapBoard = []string{
	"RBGRB",
	"GRBGR",
	"BGRBG",
	"RBGRB",
	"GRBBR",
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 32, TickRate: 60, Seed: 42})
	return g
}

// useGrid swaps in an engine over a fixed board with zero-tick timing.
func useGrid(t *testing.T, g *Game, rows ...string) {
	t.Helper()
	grid, err := core.ParseGrid(rows...)
	require.NoError(t, err)
	e, err := core.NewEngine(core.EngineConfig{
		Size: grid.Size(),
		Gen:  core.GenParams{Kinds: 3, Seed: 1},
	}, core.WithGrid(grid))
	require.NoError(t, err)
	g.engine = e
	g.calculateLayout()
}

func press(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func runIdle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 500 && g.engine.IsLocked(); i++ {
		g.Step(platformcore.NewInputFrame())
	}
	require.False(t, g.engine.IsLocked(), "engine did not settle")
}

func selectAt(g *Game, p core.Pos) platformcore.StepResult {
	g.cursor = p
	return press(g, platformcore.ActionSelect)
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDEndless} {
		require.True(t, registry.Exists(id), id)
		game, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, game.ID())
	}
}

func TestCursorWraps(t *testing.T) {
	g := newTestGame(t, New())
	n := g.engine.Grid().Size()

	g.cursor = core.P(0, 0)
	press(g, platformcore.ActionUp)
	assert.Equal(t, core.P(n-1, 0), g.cursor)
	press(g, platformcore.ActionLeft)
	assert.Equal(t, core.P(n-1, n-1), g.cursor)
	press(g, platformcore.ActionRight)
	assert.Equal(t, core.P(n-1, 0), g.cursor)
	press(g, platformcore.ActionDown)
	assert.Equal(t, core.P(0, 0), g.cursor)
}

func TestCellAt(t *testing.T) {
	g := newTestGame(t, New())
	l := g.layout

	p, ok := g.cellAt(l.boardX+3*cellW, l.boardY+4)
	require.True(t, ok)
	assert.Equal(t, core.P(4, 3), p)

	// The gap after a glyph belongs to the same cell
	p, ok = g.cellAt(l.boardX+3*cellW+1, l.boardY+4)
	require.True(t, ok)
	assert.Equal(t, core.P(4, 3), p)

	_, ok = g.cellAt(l.frame.X, l.boardY)
	assert.False(t, ok, "frame is not a cell")
	_, ok = g.cellAt(l.boardX, l.boardY+g.engine.Grid().Size())
	assert.False(t, ok, "row below the board is not a cell")
}

func TestClickSelectsCell(t *testing.T) {
	g := newTestGame(t, New())
	useGrid(t, g, swapBoard...)

	x, y := g.cellScreenPos(core.P(2, 1))
	in := platformcore.NewInputFrame()
	in.AddClick(x, y)
	res := g.Step(in)

	assert.Equal(t, "selected", res.Outcome)
	assert.Equal(t, core.P(2, 1), g.cursor)
	sel, ok := g.engine.Selection()
	require.True(t, ok)
	assert.Equal(t, core.P(2, 1), sel)
}

func TestAppliedSwapScoresAndSpendsMove(t *testing.T) {
	g := newTestGame(t, New())
	useGrid(t, g, swapBoard...)
	startMoves := g.movesLeft

	selectAt(g, core.P(3, 4))
	res := selectAt(g, core.P(4, 4))
	assert.Equal(t, "applied", res.Outcome)
	runIdle(t, g)

	points := config.DefaultMatch3Config().Scoring.PointsPerCell
	assert.Equal(t, points*3, g.score)
	assert.Equal(t, 3, g.cleared)
	assert.Equal(t, 1, g.maxCombo)
	assert.Equal(t, startMoves-1, g.movesLeft)

	state := g.State()
	assert.Equal(t, 1, state.Moves)
	assert.Equal(t, 3, state.Cleared)
	assert.False(t, state.GameOver)
}

func TestRevertKeepsMoveBudget(t *testing.T) {
	g := newTestGame(t, New())
	useGrid(t, g, swapBoard...)
	startMoves := g.movesLeft

	selectAt(g, core.P(0, 0))
	res := selectAt(g, core.P(0, 1))
	assert.Equal(t, "reverted", res.Outcome)
	runIdle(t, g)

	assert.Equal(t, startMoves, g.movesLeft)
	assert.Zero(t, g.score)
	assert.Equal(t, strings.Join(swapBoard, "\n"), g.engine.Grid().String())
}

func TestClassicEndsWhenMovesRunOut(t *testing.T) {
	g := newTestGame(t, New())
	useGrid(t, g, swapBoard...)
	g.movesLeft = 1

	selectAt(g, core.P(3, 4))
	selectAt(g, core.P(4, 4))
	assert.False(t, g.gameOver, "game must wait for the cascade")
	runIdle(t, g)
	press(g)

	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Input is ignored once the game is over
	res := selectAt(g, core.P(0, 0))
	assert.Empty(t, res.Outcome)
}

func TestEndlessHasNoMoveLimit(t *testing.T) {
	g := newTestGame(t, NewEndless())
	useGrid(t, g, swapBoard...)
	g.movesLeft = 0

	selectAt(g, core.P(3, 4))
	selectAt(g, core.P(4, 4))
	runIdle(t, g)
	press(g)

	assert.False(t, g.gameOver)
	assert.Equal(t, 1, g.movesUsed)
}

func TestPauseFreezesEngine(t *testing.T) {
	g := newTestGame(t, New())
	useGrid(t, g, swapBoard...)

	selectAt(g, core.P(3, 4))
	selectAt(g, core.P(4, 4))
	require.True(t, g.engine.IsLocked())

	press(g, platformcore.ActionPause)
	require.True(t, g.State().Paused)
	phase := g.engine.Phase()
	for i := 0; i < 10; i++ {
		press(g)
	}
	assert.Equal(t, phase, g.engine.Phase())

	press(g, platformcore.ActionPause)
	runIdle(t, g)
}

func TestHint(t *testing.T) {
	g := newTestGame(t, New())
	useGrid(t, g, swapBoard...)

	press(g, platformcore.ActionHint)
	require.Positive(t, g.hintTicks)
	assert.True(t, core.IsNeighbour(g.hint.A, g.hint.B))

	// A swap clears the hint
	selectAt(g, core.P(3, 4))
	selectAt(g, core.P(4, 4))
	assert.Zero(t, g.hintTicks)
}

func TestHintDisabled(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Rules.Hints = false
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(config.DefaultMatch3Config()) })

	g := newTestGame(t, New())
	press(g, platformcore.ActionHint)
	assert.Zero(t, g.hintTicks)
}

func TestEndlessDifficultyAddsKinds(t *testing.T) {
	g := newTestGame(t, NewEndless())
	base := config.DefaultMatch3Config().Board.Kinds
	require.Equal(t, base, g.engine.Kinds())

	g.score = config.DefaultMatch3Config().Difficulty.Progression.MaxAt
	g.applyEvents([]core.Event{{Kind: core.EventSettled}})
	assert.Greater(t, g.engine.Kinds(), base)
	assert.LessOrEqual(t, g.engine.Kinds(), int(core.MaxKinds))

	// Classic keeps its kinds
	c := newTestGame(t, New())
	c.score = g.score
	c.applyEvents([]core.Event{{Kind: core.EventSettled}})
	assert.Equal(t, base, c.engine.Kinds())
}

func TestResetIsDeterministic(t *testing.T) {
	a := newTestGame(t, New())
	b := newTestGame(t, New())
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, a.accent, b.accent)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := platformcore.NewScreen(80, 32)
	g.Render(screen)

	f := g.layout.frame
	assert.Equal(t, '╭', screen.Get(f.X, f.Y))
	assert.Equal(t, '╯', screen.Get(f.Right()-1, f.Bottom()-1))

	p := core.P(0, 0)
	x, y := g.cellScreenPos(p)
	cell := screen.GetCell(x, y)
	k := g.engine.Grid().Get(p)
	assert.Equal(t, KindGlyph(k), cell.Rune)
	assert.Equal(t, KindColor(k), cell.Fg)

	assert.Contains(t, screen.String(), "Score:")
	assert.Contains(t, screen.String(), g.Title())
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	require.True(t, g.State().Paused)

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")
}

func TestConfigureOverridesPackageConfig(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Board.Size = 8
	cfg.Classic.Moves = 5

	g := New()
	g.Configure(cfg)
	newTestGame(t, g)

	assert.Equal(t, 8, g.engine.Grid().Size())
	assert.Equal(t, 5, g.MovesLeft())
	assert.Equal(t, 12, GetConfig().Board.Size, "package config must be untouched")
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, New())
	board := g.engine.Grid().String()

	g.Resize(20, 10)
	assert.True(t, g.State().Paused, "tiny window pauses")
	g.Resize(100, 40)
	assert.False(t, g.State().Paused)
	assert.Equal(t, board, g.engine.Grid().String())
}

// Package match3 wraps the match-3 engine as a platform game.
package match3

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Game IDs used by the registry and score storage.
const (
	IDClassic = "match3"
	IDEndless = "match3_endless"
)

// Game implements the match-3 puzzle on top of core.Engine.
type Game struct {
	mode     Mode
	cfg      config.Match3Config
	override *config.Match3Config // Per-instance config set by Configure
	logger   *log.Logger

	rng        *rand.Rand
	engine     *core.Engine
	difficulty *config.DifficultyManager
	tick       uint64

	// Screen dimensions
	screenW int
	screenH int

	cursor core.Pos
	accent platformcore.Color

	hint      core.Move
	hintTicks int

	score     int
	movesLeft int // Classic only
	movesUsed int
	cleared   int
	combo     int
	maxCombo  int

	gameOver bool
	paused   bool
	tooSmall bool
	outcome  core.Outcome

	layout layout
}

// Package-level configuration shared by all new games.
var (
	settingsMu    sync.RWMutex
	currentConfig = config.DefaultMatch3Config()
	currentLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.Match3Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	currentConfig = cfg
}

// GetConfig returns the configuration new games start with.
func GetConfig() config.Match3Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return currentConfig
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	currentLogger = l
}

func init() {
	registry.Register(registry.Mode{
		ID:          IDClassic,
		Title:       "Match-3",
		Description: "Score as much as you can with a fixed number of moves",
		Order:       0,
		New:         func() registry.Game { return New() },
	})
	registry.Register(registry.Mode{
		ID:          IDEndless,
		Title:       "Match-3 (Endless)",
		Description: "No move limit; more kinds appear as your score grows",
		Order:       1,
		New:         func() registry.Game { return NewEndless() },
	})
}

// New creates a classic game with a limited move budget.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a game without a move limit.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	settingsMu.RLock()
	g.cfg = currentConfig
	g.logger = currentLogger
	settingsMu.RUnlock()
	if g.override != nil {
		g.cfg = *g.override
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.movesUsed = 0
	g.movesLeft = g.cfg.Classic.Moves
	g.cleared = 0
	g.combo = 0
	g.maxCombo = 0
	g.gameOver = false
	g.paused = false
	g.outcome = core.OutcomeIgnored
	g.hintTicks = 0
	g.accent = platformcore.RandomAccent(g.rng)

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.mode != ModeEndless {
		g.difficulty.SetEnabled(false)
	}

	engine, err := core.NewEngine(g.engineConfig(), core.WithLogger(g.logger))
	if err != nil {
		g.logger.Warn("falling back to default board", "err", err)
		engine, _ = core.NewEngine(core.DefaultEngineConfig(), core.WithLogger(g.logger))
	}
	g.engine = engine

	n := g.engine.Grid().Size()
	g.cursor = core.P(n/2, n/2)
	g.calculateLayout()
}

// Configure pins this instance to cfg instead of the package-level config.
// It takes effect on the next Reset.
func (g *Game) Configure(cfg config.Match3Config) {
	g.override = &cfg
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.engine != nil {
		g.calculateLayout()
	}
}

// engineConfig converts the loaded configuration into engine settings.
func (g *Game) engineConfig() core.EngineConfig {
	return core.EngineConfig{
		Size: g.cfg.Board.Size,
		Gen: core.GenParams{
			Kinds:     g.cfg.Board.Kinds,
			Seed:      g.rng.Int63(),
			MaxPasses: g.cfg.Rules.MaxValidationPasses,
		},
		Timing: core.Timing{
			SwapTicks:   g.cfg.Timing.SwapTicks,
			ClearTicks:  g.cfg.Timing.ClearTicks,
			FallTicks:   g.cfg.Timing.FallTicks,
			SettleTicks: g.cfg.Timing.SettleTicks,
		},
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.outcome = core.OutcomeIgnored
	interacted := false

	if g.tooSmall || g.engine == nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	n := g.engine.Grid().Size()
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row = platformcore.Wrap(g.cursor.Row-1, n)
	case in.Has(platformcore.ActionDown):
		g.cursor.Row = platformcore.Wrap(g.cursor.Row+1, n)
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col = platformcore.Wrap(g.cursor.Col-1, n)
	case in.Has(platformcore.ActionRight):
		g.cursor.Col = platformcore.Wrap(g.cursor.Col+1, n)
	}

	if in.Has(platformcore.ActionHint) {
		g.showHint()
	}

	if in.Has(platformcore.ActionSelect) {
		g.selectCell(g.cursor)
		interacted = true
	}
	for _, click := range in.Clicks {
		p, ok := g.cellAt(click.X, click.Y)
		if !ok {
			continue
		}
		g.cursor = p
		g.selectCell(p)
		interacted = true
	}

	g.applyEvents(g.engine.Tick())

	if g.hintTicks > 0 {
		g.hintTicks--
	}

	if g.mode == ModeClassic && g.movesLeft <= 0 && !g.engine.IsLocked() {
		g.gameOver = true
		g.logger.Debug("out of moves", "score", g.score)
	}

	res := platformcore.StepResult{State: g.State()}
	if interacted {
		res.Outcome = g.outcome.String()
	}
	return res
}

// selectCell forwards a selection to the engine and charges applied swaps
// against the move budget.
func (g *Game) selectCell(p core.Pos) {
	res := g.engine.OnCellSelected(p)
	g.outcome = res.Outcome
	g.applyEvents(res.Events)

	if res.Outcome == core.OutcomeApplied {
		g.movesUsed++
		if g.mode == ModeClassic {
			g.movesLeft--
		}
	}
}

// showHint highlights the best move for a while.
func (g *Game) showHint() {
	if !g.cfg.Rules.Hints {
		return
	}
	move, ok := g.engine.Hint()
	if !ok {
		return
	}
	g.hint = move
	g.hintTicks = g.cfg.Timing.HintTicks
}

// applyEvents updates score and progression from engine events.
func (g *Game) applyEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventSwapped:
			g.hintTicks = 0
		case core.EventCleared:
			g.combo = ev.Combo
			g.maxCombo = max(g.maxCombo, ev.Combo)
			g.cleared += len(ev.Cells)
			g.score += g.cfg.Scoring.PointsPerCell * len(ev.Cells) * ev.Combo
		case core.EventSettled:
			g.combo = 0
			g.updateDifficulty()
		case core.EventShuffled:
			g.logger.Debug("board reshuffled", "tick", g.tick)
		}
	}
}

// updateDifficulty adds kinds as the endless score grows.
func (g *Game) updateDifficulty() {
	if !g.difficulty.IsEnabled() {
		return
	}
	kinds := g.difficulty.Kinds(g.cfg.Board.Kinds, core.MaxKinds, g.score)
	if kinds == g.engine.Kinds() {
		return
	}
	if err := g.engine.SetKinds(kinds); err != nil {
		g.logger.Warn("difficulty kinds rejected", "kinds", kinds, "err", err)
		return
	}
	g.logger.Info("difficulty increased", "kinds", kinds, "score", g.score)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Moves:    g.movesUsed,
		Cleared:  g.cleared,
		MaxCombo: g.maxCombo,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() core.Pos {
	return g.cursor
}

// MovesLeft returns the remaining classic move budget.
func (g *Game) MovesLeft() int {
	return g.movesLeft
}

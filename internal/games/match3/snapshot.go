package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "classic" or "endless"
	Score     int
	MovesLeft int // Classic only
	MovesUsed int
	Cleared   int
	MaxCombo  int
	Kinds     int
	Cursor    core.Pos
	Board     string // Grid.String() rendering
	Phase     string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.engine != nil && g.engine.IsLocked():
		state = StateAnimating
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		MovesLeft: g.movesLeft,
		MovesUsed: g.movesUsed,
		Cleared:   g.cleared,
		MaxCombo:  g.maxCombo,
		Cursor:    g.cursor,
		State:     state,
	}
	if g.engine != nil {
		snap.Kinds = g.engine.Kinds()
		snap.Board = g.engine.Grid().String()
		snap.Phase = g.engine.Phase().String()
	}
	return snap
}

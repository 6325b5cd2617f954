package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 30, Seed: 7}
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm
}

func TestSessionStartsGame(t *testing.T) {
	m := NewSessionModel(Options{Config: config.DefaultMatch3Config()}, testRuntime())
	assert.Equal(t, screenMenu, m.screen)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	require.NotNil(t, m.gameModel)
	assert.Equal(t, match3.IDClassic, m.gameModel.game.ID())
	assert.NotEmpty(t, m.View())
}

func TestSessionPauseAndBack(t *testing.T) {
	m := NewSessionModel(Options{Config: config.DefaultMatch3Config()}, testRuntime())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)

	// Esc while playing only pauses
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = send(t, m, TickMsg(time.Now()))
	require.Equal(t, screenGame, m.screen)
	assert.True(t, m.gameModel.State().Paused)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.gameModel)
	assert.False(t, m.quitting)
}

func TestSessionKeepsDifficulty(t *testing.T) {
	m := NewSessionModel(Options{Config: config.DefaultMatch3Config()}, testRuntime())

	// Move to the difficulty row and pick the next preset
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyEasy, difficultyChoices[m.menu.difficulty])

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	require.Equal(t, screenMenu, m.screen)
	assert.Equal(t, config.DifficultyEasy, difficultyChoices[m.menu.difficulty])
	assert.Equal(t, 40, m.menu.GameConfig().Classic.Moves)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(Options{}, testRuntime())
	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(SessionModel).quitting)
	assert.Empty(t, next.(SessionModel).View())
}

func TestSessionScoreboardLoadsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.SaveScore(storage.ScoreRecord{GameID: match3.IDClassic, Player: "ana", Score: 420, Moves: 12})
	require.NoError(t, err)

	m := NewSessionModel(Options{Store: store}, testRuntime())
	assert.Equal(t, 420, m.menu.best[match3.IDClassic])

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen)
	m.scoreboard.SelectGame(match3.IDClassic)
	require.Len(t, m.scoreboard.scores, 1)
	assert.Equal(t, "ana", m.scoreboard.scores[0].Player)
	assert.Contains(t, m.View(), "420")
}

// Package registry keeps the playable modes. Mode packages register a
// descriptor from init(), so the CLI, menus and the SSH server can list
// and create modes by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a mode and the platform. A Game holds no
// terminal state: the platform maps input to an InputFrame, calls Step at
// the tick rate and asks Render to paint a core.Screen.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// scores table ("match3", "match3_endless").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh round sized to the screen and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the input gathered since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render paints the round into a cleared screen.
	Render(dst *core.Screen)

	// State reports score and round status.
	State() core.GameState
}

// Factory creates a fresh game.
type Factory func() Game

// Mode describes a registered game mode.
type Mode struct {
	ID          string
	Title       string
	Description string
	Order       int // Listing position, lower first
	New         Factory
}

// GameInfo is the listing view of a Mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	mu    sync.RWMutex
	modes = make(map[string]Mode)
)

// Register adds a mode. It panics on an empty ID, a nil factory or a
// duplicate ID, all of which are programming errors.
func Register(m Mode) {
	if m.ID == "" || m.New == nil {
		panic("registry: mode needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", m.ID))
	}
	if m.Title == "" {
		m.Title = m.New().Title()
	}
	modes[m.ID] = m
}

// List returns the registered modes by Order, then ID.
func List() []GameInfo {
	mu.RLock()
	sorted := make([]Mode, 0, len(modes))
	for _, m := range modes {
		sorted = append(sorted, m)
	}
	mu.RUnlock()

	slices.SortFunc(sorted, func(a, b Mode) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	result := make([]GameInfo, len(sorted))
	for i, m := range sorted {
		result[i] = GameInfo{ID: m.ID, Title: m.Title, Description: m.Description}
	}
	return result
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	m, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return m.New(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}

// unregister removes a mode. Tests use it to clean up.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(modes, id)
}

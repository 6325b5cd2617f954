package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, classic match3 by default.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select token (select a neighbor to swap)
  Mouse        - Click tokens to select
  H            - Hint
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five kinds, 40 moves
  normal - Six kinds, 30 moves
  hard   - Seven kinds, 25 moves
  fixed  - No progression in endless mode

Examples:
  match3 play
  match3 play match3_endless
  match3 play --difficulty hard
  match3 play --config ./my-match3.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", envOr("USER", ""), "Name stored with your scores")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := match3.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'match3 list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		log.Warn("could not open scores database", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := tui.Options{
		Store:  store,
		Logger: log.Default(),
		Config: match3.GetConfig(),
		Player: flagPlayer,
	}
	if err := tui.Run(game, opts, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to change difficulty and
Enter to start. After a round ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  match3 menu
  match3 menu --fps 60
  match3 menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
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
		Player: envOr("USER", ""),
	}
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(opts, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh board every round unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		roundOpts := opts
		roundOpts.Config = menuResult.GameConfig
		if err := tui.Run(game, roundOpts, cfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}

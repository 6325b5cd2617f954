package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the given mode, classic match3 by default.

Examples:
  match3 scores
  match3 scores match3_endless --limit 20
  match3 scores --tui
  match3 scores match3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
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
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Moves", "Cleared", "Combo", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "-------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-8d  x%-5d  %s\n",
			i+1, e.Player, e.Score, e.Moves, e.Cleared, e.MaxCombo, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  |  Rounds: %d  |  Average: %.0f  |  Best combo: x%d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestCombo)
	}
	return nil
}

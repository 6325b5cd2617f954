// match3 is a terminal match-3 game with a local menu and an SSH server.
//
// Usage:
//
//	match3 list              - List available modes
//	match3 play [mode]       - Play a mode directly (default: match3)
//	match3 menu              - Start menu to pick modes interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// Defaults for --db, --config and --log-level can come from MATCH3_DB,
// MATCH3_CONFIG and MATCH3_LOG_LEVEL, also read from a .env file.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logFile is closed by main once the command returns.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tokens and clear lines in your terminal",
	Long: `Match-3 is a terminal puzzle game. Swap two neighboring tokens to line
up three or more of the same kind; lines clear, tokens fall and new ones
drop in from the top.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  match3 list
  match3 play
  match3 play match3_endless --difficulty hard
  match3 menu
  match3 serve --ssh :2222
  match3 scores match3`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// .env is optional
	_ = godotenv.Load()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envInt64("MATCH3_SEED", 0), "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("MATCH3_DB", "~/.match3/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOr("MATCH3_CONFIG", ""), "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("MATCH3_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envOr("MATCH3_LOG_FILE", ""), "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads the configuration and logger shared by every subcommand.
func setup(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.Name() == "serve")
	if err != nil {
		return err
	}
	match3.SetLogger(logger)

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	match3.SetConfig(cfg)
	logger.Debug("config loaded", "size", cfg.Board.Size, "kinds", cfg.Board.Kinds, "moves", cfg.Classic.Moves)
	return nil
}

// loadGameConfig reads --config and applies --difficulty on top.
func loadGameConfig() (config.Match3Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Match3Config{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.Match3Config{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so they only log when --log-file is set.
func newLogger(toStderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "match3",
	})
	log.SetDefault(logger)
	return logger, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

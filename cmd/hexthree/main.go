// hexthree is a hexagonal triple-merge puzzle for the terminal.
//
// Usage:
//
//	hexthree list              - List games and board sizes
//	hexthree play [game]       - Play a game (default: hexmerge)
//	hexthree menu              - Start menu to pick a game interactively
//	hexthree serve             - Start SSH server for remote play
//	hexthree scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.hexthree/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/hexthree/internal/games/hexmerge"
	"github.com/vovakirdan/hexthree/internal/telemetry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// logger is configured in PersistentPreRunE.
	logger = log.Default()

	cleanups []func()
)

func main() {
	err := rootCmd.Execute()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexthree",
	Short: "Hex Three - merge three in a row on a hexagon",
	Long: `Hex Three is a sliding puzzle on a hexagonal board. Every move slides
all pieces toward one of six edges; three equal pieces in a row merge
into one piece worth three times as much.

Available commands:
  list     - Show games and board sizes
  play     - Play directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hexthree play
  hexthree play hexmerge_endless --preset large
  hexthree menu
  hexthree serve --ssh :2222
  hexthree scores hexmerge`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexthree/scores.db", "Path to scores database (env HEXTHREE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env HEXTHREE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (env HEXTHREE_LOG_FILE)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env, applies environment overrides, and starts logging and
// tracing for every command.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	applyEnv(cmd, "db", "HEXTHREE_DB", &flagDBPath)
	applyEnv(cmd, "log-level", "HEXTHREE_LOG_LEVEL", &flagLogLevel)
	applyEnv(cmd, "log-file", "HEXTHREE_LOG_FILE", &flagLogFile)

	// Interactive commands own the terminal, so logs go to a file or nowhere.
	interactive := cmd.Name() == "play" || cmd.Name() == "menu"
	l, closeLog, err := newLogger(flagLogLevel, flagLogFile, interactive)
	if err != nil {
		return err
	}
	logger = l
	log.SetDefault(l)
	cleanups = append(cleanups, closeLog)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", "error", err)
		return nil
	}
	cleanups = append(cleanups, func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	})
	return nil
}

// applyEnv copies an environment variable into a flag the user did not set.
func applyEnv(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

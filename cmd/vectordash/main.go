// vectordash is a gravity-flip runner for one or two players in the terminal.
//
// Usage:
//
//	vectordash               - Start the menu
//	vectordash play          - Play a round directly
//	vectordash list          - List game modes
//	vectordash scores        - Show high scores and versus results
//	vectordash skin [name]   - Show or choose the player skin
//	vectordash serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.vectordash/scores.db)
//	--log <path>    - Set log file (default: ~/.vectordash/vectordash.log, empty disables)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/vector-dash/internal/games/dash"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vectordash",
	Short: "Vector Dash - a gravity-flip runner for your terminal",
	Long: `Vector Dash is a side-scrolling runner for one or two players.
Flip gravity to dodge obstacles, collect coins and spend them on boosts.

Available commands:
  play     - Play a round directly
  list     - Show game modes
  scores   - View high scores and versus results
  skin     - Show or choose the player skin
  serve    - Start SSH server for remote play

Run without a command to open the menu.

Examples:
  vectordash
  vectordash play --mode two --speed 7
  vectordash scores
  vectordash serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vectordash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", config.UserPath("vectordash.log"), "Log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addGameFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinCmd)
	rootCmd.AddCommand(serveCmd)
}

// openLogger creates the file logger used while the terminal is in alt-screen
// mode. The returned function closes the file.
func openLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "vectordash",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
	"github.com/vovakirdan/vector-dash/internal/games/dash"
	"github.com/vovakirdan/vector-dash/internal/platform/tui"
	"github.com/vovakirdan/vector-dash/internal/registry"
	"github.com/vovakirdan/vector-dash/internal/storage"
)

var (
	flagMode       string
	flagSpeed      int
	flagConfig     string
	flagDifficulty string
	flagRealtime   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round without the menu.

Controls (defaults, see the controls section of the config):
  Space      - P1 flip gravity
  E          - P1 boost (costs 5 coins)
  Up         - P2 flip gravity
  I          - P2 boost
  Mouse      - Hover a coin to collect it
  P          - Pause
  R          - Restart (after game over)
  B/Esc      - Leave (after game over or while paused)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Base speed 3
  normal - Base speed 5
  hard   - Base speed 7
  fixed  - No escalation, stays at the base speed

Examples:
  vectordash play
  vectordash play --mode two
  vectordash play --speed 9 --difficulty fixed
  vectordash play --config ./my-dash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "single", "Players: single or two")
	addGameFlags(playCmd)
}

// addGameFlags registers the round tuning flags shared by play and the menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSpeed, "speed", 0, "Base speed 1-10 (0 = preset or config value)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Time effects with the wall clock instead of frames")
}

// gameOptions builds dash options from the flags. Skin and store are left
// to the caller.
func gameOptions() (dash.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return dash.Options{}, err
	}
	opts := dash.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Realtime:   flagRealtime,
	}
	if flagSpeed != 0 {
		opts.BaseSpeed = config.ClampBaseSpeed(float64(flagSpeed))
	}
	return opts, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	mode, err := dash.ParseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		store = nil
	}

	opts.Store = storage.NewHighScoreKeeper(store)
	opts.Skin = core.SkinDefault
	if store != nil {
		if skin, skinErr := store.Skin(); skinErr == nil {
			opts.Skin = skin
		}
	}
	dash.SetOptions(opts)

	gameID := dash.GameID
	if mode == dash.ModeTwo {
		gameID = dash.VersusGameID
	}
	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(tui.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q cannot run in the terminal\n", gameID)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

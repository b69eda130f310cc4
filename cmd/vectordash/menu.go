package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/games/dash"
	"github.com/vovakirdan/vector-dash/internal/platform/tui"
	"github.com/vovakirdan/vector-dash/internal/storage"
)

const defaultMenuSpeed = 5

// runMenu shows the start menu and plays rounds until the user quits.
// After a round the user returns to the menu to play again.
func runMenu(_ *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dash.SetOptions(opts)

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

	speed := defaultMenuSpeed
	if opts.BaseSpeed > 0 {
		speed = int(opts.BaseSpeed)
	} else if opts.Preset != "" {
		speed = int(config.BaseSpeedForPreset(opts.Preset, defaultMenuSpeed))
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg, speed, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes and the chosen speed
		cfg = menuResult.Config
		speed = menuResult.Speed

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game := tui.NewGame(menuResult, store)
		quit, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if quit {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}

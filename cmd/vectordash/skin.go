package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vector-dash/internal/core"
	"github.com/vovakirdan/vector-dash/internal/storage"
)

var skinCmd = &cobra.Command{
	Use:   "skin [name]",
	Short: "Show or choose the player skin",
	Long: `Without an argument, prints the saved skin and the available ones.
With a name, saves it for the next round.

Examples:
  vectordash skin
  vectordash skin gold`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSkin,
}

func runSkin(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		skin, ok := core.ParseSkin(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", args[0])
			os.Exit(1)
		}
		if err := store.SetSkin(skin); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving skin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Skin set to %s.\n", skin.Name())
		return
	}

	current, err := store.Skin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading skin: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Skins:")
	for _, s := range core.Skins {
		marker := " "
		if s == current {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, s.Name())
	}
}

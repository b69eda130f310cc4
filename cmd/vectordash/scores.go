package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vector-dash/internal/games/dash"
	"github.com/vovakirdan/vector-dash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and versus results",
	Long: `Display the top single-player scores, the stored high score and
the most recent two-player matches.

Examples:
  vectordash scores
  vectordash scores --limit 20
  vectordash scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the single-player score history and high score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(dash.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		if err := store.SetHighScore(0); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing high score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if err := printSingleScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	if err := printVersusMatches(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}
}

func printSingleScores(store *storage.Store) error {
	scores, err := store.TopScores(dash.GameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Vector Dash")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'vectordash play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Coins", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Coins, dateStr)
	}

	fmt.Println()
	if hs, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", hs)
	}
	if stats, err := store.GetGameStats(dash.GameID); err == nil {
		fmt.Printf("Rounds: %d | Average: %.0f | Coins collected: %d | Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.TotalCoins, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printVersusMatches(store *storage.Store) error {
	matches, err := store.RecentVersusMatches(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Versus Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No versus matches yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-14s  %-14s  %s\n", "Date", "P1", "P2", "Winner")
	fmt.Printf("  %-16s  %-14s  %-14s  %s\n", "----", "--", "--", "------")

	for _, m := range matches {
		fmt.Printf("  %-16s  %-14s  %-14s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d (%d coins)", m.P1Score, m.P1Coins),
			fmt.Sprintf("%d (%d coins)", m.P2Score, m.P2Coins),
			m.Outcome,
		)
	}
	return nil
}

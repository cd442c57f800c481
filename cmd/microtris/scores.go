package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/microtris/internal/platform/tui"
	"github.com/vovakirdan/microtris/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show saved results",
	Long: `Display the best saved results.

Examples:
  microtris scores
  microtris scores --limit 20
  microtris scores -i        # browse in a table
  microtris scores --clear   # delete all results`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved results")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)
	if cfg.DBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: score saving is disabled (empty db_path)")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - microtris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'microtris play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-10s  %s\n", "Rank", "Score", "Pieces", "Ticks", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-8d  %-10d  %s\n",
			i+1, e.Score, e.Pieces, e.Ticks, e.Seed, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if sum, err := store.Summarize(); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", sum.HighScore, sum.Games, sum.AvgScore)
	}
}

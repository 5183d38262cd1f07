package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the best finished runs, highest score first.

On a terminal the runs are shown in a scrollable table; otherwise, or with
--plain, they are printed once.

Examples:
  snake scores
  snake scores --limit 5
  snake scores --plain > scores.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", tui.DefaultScoreLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a static table instead of the interactive view")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, flagLimit, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()
	fmt.Println(tui.FormatRuns(runs))

	if len(runs) == 0 {
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Show high score
	if highScore, err := store.HighScore(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}
}

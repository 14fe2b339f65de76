package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/game"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagScoresTable bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the persisted high score and the top 10 finished games.

Examples:
  dodge scores
  dodge scores --table   # interactive table
  dodge scores --clear   # forget the game history (keeps the high score)`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Open an interactive score table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = store.ClearScores(game.GameID)
		if err == nil {
			fmt.Println("Score history cleared.")
		}
	case flagScoresTable:
		width, height := terminalSize()
		err = tui.RunScoreboard(store, game.GameID, game.GameTitle, game.HighScoreKey, width, height)
	default:
		err = printScores(store)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) error {
	high, err := store.HighScore(game.HighScoreKey)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(game.GameID, 10)
	if err != nil {
		return err
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", game.GameTitle)
	fmt.Println()
	fmt.Printf("  High score: %d\n", high)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-9s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-9s  %s\n", "----", "-----", "-----", "----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		survival := fmt.Sprintf("%.2fs", entry.Survival.Seconds())
		fmt.Printf("  %-4d  %-10d  %-5d  %-9s  %s\n", i+1, entry.Score, entry.Level, survival, dateStr)
	}
	return nil
}

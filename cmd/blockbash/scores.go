package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-bash/internal/config"
	"github.com/vovakirdan/block-bash/internal/platform/tui"
	"github.com/vovakirdan/block-bash/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagAll         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the top 10 scores and the best score.

The score history needs the sqlite storage backend. With the file
backend only the high score is shown.

Examples:
  blockbash scores
  blockbash scores --interactive
  blockbash scores --all
  blockbash scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every recorded game instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Storage.Backend != config.BackendSQLite {
		best, err := storage.NewFileStore(config.ExpandPath(cfg.Storage.FilePath)).HighScore()
		if err != nil {
			return err
		}
		fmt.Printf("Best: %d\n", best)
		return nil
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	var scores []storage.ScoreEntry
	var err error
	if flagAll {
		scores, err = store.AllScores()
	} else {
		scores, err = store.TopScores(10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Block Bash")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockbash play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	best, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d\n", best)

	stats, err := store.Stats()
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.1f  Best level: %d\n", stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
	return nil
}

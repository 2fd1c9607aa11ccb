package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexthree/internal/games/hexmerge"
	"github.com/vovakirdan/hexthree/internal/registry"
	"github.com/vovakirdan/hexthree/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game (hexmerge by default).

Examples:
  hexthree scores
  hexthree scores hexmerge_endless --limit 20
  hexthree scores hexmerge --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "hexmerge"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'hexthree list' to see available games", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexthree play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-5s  %s\n", "Rank", "Score", "Best", "Rings", "Turns", "When")
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-5s  %s\n", "----", "-----", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %-6s  %-5d  %-5d  %s\n",
			i+1,
			humanize.Comma(int64(entry.Score)),
			hexmerge.Label(entry.MaxStage),
			entry.Layers,
			entry.Turns,
			humanize.Time(entry.CreatedAt),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s over %s games (avg %s), best piece %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			humanize.Comma(int64(stats.AvgScore)),
			hexmerge.Label(stats.BestStage),
		)
	}
	return nil
}

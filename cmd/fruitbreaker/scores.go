package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-breaker/internal/platform/tui"
	"github.com/vovakirdan/fruit-breaker/internal/registry"
	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|timed]",
	Short: "Show high scores",
	Long: `Display the top 10 sessions for a mode (classic by default), with the
fruit caught in each.

With --interactive on a terminal, opens the scoreboard browser instead.

Examples:
  fruitbreaker scores
  fruitbreaker scores timed
  fruitbreaker scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the scoreboard screen")
}

func runScores(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	defer store.Close()

	if flagInteractive && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
		return err
	}

	return printScores(cmd.OutOrStdout(), store, gameID, max(1, flagFPS))
}

// printScores writes the top sessions of a mode as a plain table.
func printScores(out io.Writer, store *storage.Store, gameID string, tickRate int) error {
	title := gameID
	if info, ok := registry.Info(gameID); ok {
		title = info.Title
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'fruitbreaker play' to set the first high score!")
		return nil
	}

	const row = "  %-4s  %-7s  %-4s  %-5s  %-6s  %-5s  %-5s  %-5s  %s\n"
	fmt.Fprintf(out, row, "Rank", "Score", "Wave", "Apple", "Orange", "Pear", "Blue", "Time", "Date")
	fmt.Fprintf(out, row, "----", "-----", "----", "-----", "------", "----", "----", "----", "----")

	for i, e := range scores {
		secs := e.Ticks / int64(tickRate)
		fmt.Fprintf(out, "  %-4d  %-7d  %-4d  %-5d  %-6d  %-5d  %-5d  %-5s  %s\n",
			i+1, e.Score, e.Wave,
			e.Fruits.Apple, e.Fruits.Orange, e.Fruits.Pear, e.Fruits.Blueberry,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	fmt.Fprintf(out, "Best: %d  Games: %d  Fruit caught: %d\n",
		stats.HighScore, stats.GamesCount, stats.Fruits.Total())
	return nil
}

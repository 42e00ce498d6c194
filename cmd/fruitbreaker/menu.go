package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-breaker/internal/config"
	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker"
	"github.com/vovakirdan/fruit-breaker/internal/platform/tui"
	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Fruit Breaker in interactive menu mode.

Pick a mode with the arrow keys and Enter. After a game ends, B returns
to the menu. The difficulty chosen in the menu is saved for next time.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  fruitbreaker menu
  fruitbreaker menu --fps 30
  fruitbreaker menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := app.setupLogging(true); err != nil {
		return err
	}
	app.setupSettings()
	if err := app.setupGame(true); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		app.logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	presets := config.Presets()
	difficulties := make([]string, len(presets))
	for i, p := range presets {
		difficulties[i] = string(p)
	}

	current := flagDifficulty
	if current == "" {
		current = app.settings.Get().Difficulty
	}

	opts := tui.Options{
		Store:        store,
		Logger:       app.logger,
		Difficulties: difficulties,
		Difficulty:   current,
		OnDifficulty: onDifficulty,
	}

	if err := tui.RunSession(runtimeConfig(), opts); err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}

// onDifficulty applies a preset picked in the menu to the next session and
// remembers it.
func onDifficulty(name string) {
	if err := fruitbreaker.SetDifficultyPreset(name); err != nil {
		app.logger.Warn("difficulty not applied", "error", err)
		return
	}
	app.settings.SetDifficulty(name)
	if err := app.settings.Save(); err != nil {
		app.logger.Warn("could not save settings", "error", err)
	}
}

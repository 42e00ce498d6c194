package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-breaker/internal/platform/tui"
	"github.com/vovakirdan/fruit-breaker/internal/registry"
	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [classic|timed]",
	Short: "Play a session",
	Long: `Start a Fruit Breaker session. The mode defaults to classic.

Controls:
  Left/Right, A/D  - Move the paddle
  Space/Up         - Launch the ball
  P/Esc            - Pause
  F2               - Toggle the bounds overlay
  Ctrl+S           - Save a screenshot
  R                - Play again (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Longer basket power-up and a faster paddle
  normal - The config as written
  hard   - Start at wave 4, slower paddle, fewer drops

Examples:
  fruitbreaker play
  fruitbreaker play timed
  fruitbreaker play --difficulty hard
  fruitbreaker play --config ./my-fruitbreaker.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		return err
	}

	if err := app.setupLogging(true); err != nil {
		return err
	}
	app.setupSettings()
	if err := app.setupGame(true); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Play on, the score just isn't kept
		app.logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	app.logger.Info("session starting", "mode", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), tui.Options{Store: store, Logger: app.logger}); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

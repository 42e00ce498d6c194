package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-breaker/internal/audio"
	"github.com/vovakirdan/fruit-breaker/internal/core"
	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker"
	"github.com/vovakirdan/fruit-breaker/internal/logging"
	"github.com/vovakirdan/fruit-breaker/internal/settings"
)

// appContext holds the process-wide services the commands share.
type appContext struct {
	logger   *log.Logger
	logFile  *os.File
	settings *settings.Manager
	player   *audio.Player
}

var app appContext

// setupLogging builds the process logger. Interactive commands log to a
// file since Bubble Tea owns the terminal; the rest log to stderr.
func (a *appContext) setupLogging(interactive bool) error {
	var w io.Writer = os.Stderr

	path := expandHome(flagLogFile)
	if path == "" && interactive {
		path = expandHome("~/.fruitbreaker/fruitbreaker.log")
	}
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			if !interactive {
				return err
			}
			// Nowhere to write without corrupting the screen
			w = io.Discard
		} else {
			a.logFile = f
			w = f
		}
	}

	logger, err := logging.New(w, flagLogLevel, "fruitbreaker")
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// setupSettings loads the saved preferences. Failure leaves in-memory
// defaults in place.
func (a *appContext) setupSettings() {
	m, err := settings.Open()
	if err != nil {
		a.logger.Warn("settings not persistent", "error", err)
	}
	a.settings = m
}

// setupGame configures the fruitbreaker package before any session is
// created.
func (a *appContext) setupGame(withSound bool) error {
	fruitbreaker.SetLogger(a.logger)
	fruitbreaker.SetConfigPath(flagConfig)

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = a.settings.Get().Difficulty
	}
	if err := fruitbreaker.SetDifficultyPreset(difficulty); err != nil {
		if flagDifficulty != "" {
			return err
		}
		a.logger.Warn("saved difficulty ignored", "error", err)
	}

	if withSound {
		a.setupSound()
	}
	return nil
}

// setupSound opens the speaker unless sound is off. A missing audio device
// only costs the cues.
func (a *appContext) setupSound() {
	prefs := a.settings.Get()
	if flagMute || !prefs.SoundEnabled {
		return
	}

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		a.logger.Warn("sound disabled", "error", err)
		return
	}
	player.SetVolume(prefs.Volume)
	a.player = player
	fruitbreaker.SetCueSink(player)
}

func (a *appContext) close() {
	if a.player != nil {
		a.player.Close()
		a.player = nil
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// errUnknownMode is shared by the commands that take a mode argument.
func errUnknownMode(arg string) error {
	return fmt.Errorf("unknown mode %q (run 'fruitbreaker modes' to see the modes)", arg)
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-breaker/internal/settings"
)

var soundCmd = &cobra.Command{
	Use:   "sound [on|off|volume <0-100>]",
	Short: "Show or change sound preferences",
	Long: `Show the sound preferences, or change them. Changes are saved in the
per-user data directory and apply to every later session.

Examples:
  fruitbreaker sound
  fruitbreaker sound off
  fruitbreaker sound volume 40`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runSound,
}

func runSound(cmd *cobra.Command, args []string) error {
	if err := app.setupLogging(false); err != nil {
		return err
	}
	app.setupSettings()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		printSound(out, app.settings.Get())
		return nil
	}

	if err := applySound(app.settings, args); err != nil {
		return err
	}
	if !app.settings.Persistent() {
		return fmt.Errorf("sound: preferences cannot be saved on this system")
	}
	if err := app.settings.Save(); err != nil {
		return err
	}
	printSound(out, app.settings.Get())
	return nil
}

// applySound changes m according to the command arguments.
func applySound(m *settings.Manager, args []string) error {
	switch args[0] {
	case "on", "off":
		if len(args) != 1 {
			return fmt.Errorf("sound %s takes no value", args[0])
		}
		m.SetSoundEnabled(args[0] == "on")
	case "volume":
		if len(args) != 2 {
			return fmt.Errorf("sound volume needs a value from 0 to 100")
		}
		pct, err := strconv.Atoi(args[1])
		if err != nil || pct < 0 || pct > 100 {
			return fmt.Errorf("sound volume: %q is not a number from 0 to 100", args[1])
		}
		m.SetVolume(float64(pct) / 100)
	default:
		return fmt.Errorf("sound: unknown setting %q (use on, off or volume)", args[0])
	}
	return nil
}

func printSound(out io.Writer, s settings.Settings) {
	state := "off"
	if s.SoundEnabled {
		state = "on"
	}
	fmt.Fprintf(out, "Sound: %s  Volume: %d%%\n", state, int(s.Volume*100+0.5))
}

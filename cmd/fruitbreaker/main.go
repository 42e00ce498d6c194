// fruitbreaker is a terminal brick breaker: break fruit bricks, catch the
// falling fruit and survive the waves.
//
// Usage:
//
//	fruitbreaker modes                - List game modes
//	fruitbreaker play [classic|timed] - Play a session
//	fruitbreaker menu                 - Pick a mode interactively
//	fruitbreaker serve                - Start SSH server for remote play
//	fruitbreaker scores [mode]        - Show high scores
//	fruitbreaker sound on|off|volume  - Change sound preferences
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.fruitbreaker/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//	--mute                - Disable sound for this run
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	err := rootCmd.Execute()
	app.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitbreaker",
	Short: "Fruit Breaker - a brick breaker in your terminal",
	Long: `Fruit Breaker is a terminal brick breaker. Bounce the ball off the
paddle, break the fruit bricks and catch the fruit they drop.

Available commands:
  modes    - Show the game modes
  play     - Play a session directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sound    - Change sound preferences

Examples:
  fruitbreaker play
  fruitbreaker play timed --difficulty hard
  fruitbreaker menu
  fruitbreaker serve --ssh :2222
  fruitbreaker scores`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.fruitbreaker/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (default: saved preference)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (TUI commands default to ~/.fruitbreaker/fruitbreaker.log)")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound for this run")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(soundCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker"
	"github.com/vovakirdan/fruit-breaker/internal/registry"
)

// modeAliases maps the short names accepted on the command line to
// registered game IDs.
var modeAliases = map[string]string{
	"":        fruitbreaker.IDClassic,
	"classic": fruitbreaker.IDClassic,
	"timed":   fruitbreaker.IDTimed,
}

// resolveMode accepts an alias or a registered ID.
func resolveMode(arg string) (string, error) {
	if id, ok := modeAliases[strings.ToLower(arg)]; ok {
		return id, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	return "", errUnknownMode(arg)
}

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List the game modes",
	Long:    `Shows every registered Fruit Breaker mode.`,
	Args:    cobra.NoArgs,
	Run:     runModes,
}

func runModes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, g := range games {
		desc := g.Description
		if desc == "" {
			desc = g.Title
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, desc)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'fruitbreaker play [classic|timed]' to play.")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

// EndResult is what the end screen shows for a finished session.
type EndResult struct {
	Title    string
	Result   storage.Result
	TickRate int
	Best     int
	NewBest  bool
	Saved    bool // Recorded in the scores database
}

// Duration returns the session length in whole seconds.
func (e EndResult) Duration() int {
	if e.TickRate <= 0 {
		return 0
	}
	return int(e.Result.Ticks / uint64(e.TickRate)) //#nosec G115 -- tick rate is positive
}

var fruitStyles = []struct {
	name  string
	style lipgloss.Style
}{
	{"Apples", lipgloss.NewStyle().Foreground(lipgloss.Color("9"))},
	{"Oranges", lipgloss.NewStyle().Foreground(lipgloss.Color("208"))},
	{"Pears", lipgloss.NewStyle().Foreground(lipgloss.Color("10"))},
	{"Blueberries", lipgloss.NewStyle().Foreground(lipgloss.Color("12"))},
}

// renderEndScreen draws the final score, the fruit tally and the choices.
func renderEndScreen(e EndResult, embedded bool, width, height int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(e.Title))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Score  %s\n", accentStyle.Render(fmt.Sprintf("%d", e.Result.Score))))
	b.WriteString(fmt.Sprintf("Wave   %d\n", e.Result.Wave))
	if secs := e.Duration(); secs > 0 {
		b.WriteString(fmt.Sprintf("Time   %d:%02d\n", secs/60, secs%60))
	}
	b.WriteString("\n")

	f := e.Result.Fruits
	counts := []int{f.Apple, f.Orange, f.Pear, f.Blueberry}
	for i, fs := range fruitStyles {
		b.WriteString(fs.style.Render(fmt.Sprintf("%-12s %3d", fs.name, counts[i])))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%-12s %3d\n", "Total", f.Total()))

	switch {
	case e.NewBest:
		b.WriteString("\n")
		b.WriteString(accentStyle.Render("New high score!"))
		b.WriteString("\n")
	case e.Best > 0:
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Best: %d", e.Best)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	choices := "R: Play again  |  Q: Quit"
	if embedded {
		choices = "R: Play again  |  B: Menu  |  Q: Quit"
	}
	b.WriteString(dimStyle.Render(choices))

	return place(width, height, panelStyle.Render(b.String()))
}

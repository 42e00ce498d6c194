package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-breaker/internal/core"
	"github.com/vovakirdan/fruit-breaker/internal/registry"
	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
	registry.Register("stub_timed", func() registry.Game { return &stubGame{} })
}

func TestScoreboardModes(t *testing.T) {
	store := openStore(t)
	results := []storage.Result{
		{GameID: "stub", Score: 70, Wave: 2, Fruits: core.FruitCounts{Apple: 3, Blueberry: 1}, Ticks: 1800},
		{GameID: "stub", Score: 120, Wave: 4, Fruits: core.FruitCounts{Pear: 2}, Ticks: 7200},
		{GameID: "stub_timed", Score: 45, Wave: 1, Ticks: 3600},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 40, 60)
	if m.Mode() != "stub" {
		t.Fatalf("Mode() = %q, expected stub", m.Mode())
	}
	if len(m.scores) != 2 || m.scores[0].Score != 120 {
		t.Fatalf("scores = %+v, expected 120 first", m.scores)
	}
	if m.stats == nil || m.stats.Fruits.Total() != 6 {
		t.Errorf("stats = %+v, expected 6 fruit", m.stats)
	}

	row := scoreRow(1, m.scores[0], 60)
	if row[1] != "120" || row[5] != "2" || row[7] != "2:00" {
		t.Errorf("row = %v", row)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Mode() != "stub_timed" || len(m.scores) != 1 {
		t.Errorf("after tab: mode %q with %d scores", m.Mode(), len(m.scores))
	}

	// Wraps around in both directions
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.Mode() != "stub_timed" {
		t.Errorf("Mode() = %q, expected stub_timed", m.Mode())
	}

	m.SelectMode("stub")
	m.SelectMode("missing")
	if m.Mode() != "stub" {
		t.Errorf("SelectMode kept %q", m.Mode())
	}
}

func TestScoreboardViewLayouts(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: "stub", Score: 30, Wave: 1, Fruits: core.FruitCounts{Orange: 2}}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	wide := NewScoreboardModel(store, 120, 40, 60).View()
	if !strings.Contains(wide, "Totals") || !strings.Contains(wide, "Oranges") {
		t.Error("wide layout should show the stats panel")
	}

	narrow := NewScoreboardModel(store, 80, 30, 60).View()
	if strings.Contains(narrow, "Totals") {
		t.Error("narrow layout should fold the stats panel")
	}
	if !strings.Contains(narrow, "1 games") || !strings.Contains(narrow, "2 fruit caught") {
		t.Error("narrow layout missing the stats line")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, 60)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty scoreboard should say so")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(keyMsg("q"))
	if sb := next.(ScoreboardModel); !sb.IsQuitting() {
		t.Error("q should quit")
	}
}

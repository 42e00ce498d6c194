package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/fruit-breaker/internal/core"
	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker"
	"github.com/vovakirdan/fruit-breaker/internal/settings"
	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		arg      string
		expected string
		wantErr  bool
	}{
		{"", fruitbreaker.IDClassic, false},
		{"classic", fruitbreaker.IDClassic, false},
		{"TIMED", fruitbreaker.IDTimed, false},
		{fruitbreaker.IDTimed, fruitbreaker.IDTimed, false},
		{"pinball", "", true},
	}

	for _, tc := range tests {
		got, err := resolveMode(tc.arg)
		if (err != nil) != tc.wantErr {
			t.Errorf("resolveMode(%q) error = %v, wantErr %v", tc.arg, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("resolveMode(%q) = %q, expected %q", tc.arg, got, tc.expected)
		}
	}
}

func TestApplySound(t *testing.T) {
	tests := []struct {
		args    []string
		enabled bool
		volume  float64
		wantErr bool
	}{
		{[]string{"off"}, false, 0.6, false},
		{[]string{"on"}, true, 0.6, false},
		{[]string{"volume", "25"}, true, 0.25, false},
		{[]string{"volume", "0"}, true, 0, false},
		{[]string{"volume", "150"}, true, 0.6, true},
		{[]string{"volume", "loud"}, true, 0.6, true},
		{[]string{"volume"}, true, 0.6, true},
		{[]string{"off", "now"}, true, 0.6, true},
		{[]string{"bass"}, true, 0.6, true},
	}

	for _, tc := range tests {
		m, err := settings.NewManager(nil)
		if err != nil {
			t.Fatalf("NewManager failed: %v", err)
		}
		err = applySound(m, tc.args)
		if (err != nil) != tc.wantErr {
			t.Errorf("applySound(%v) error = %v, wantErr %v", tc.args, err, tc.wantErr)
			continue
		}
		s := m.Get()
		if s.SoundEnabled != tc.enabled || s.Volume != tc.volume {
			t.Errorf("applySound(%v) = %+v, expected enabled=%v volume=%v",
				tc.args, s, tc.enabled, tc.volume)
		}
	}
}

func TestPrintSound(t *testing.T) {
	var buf bytes.Buffer
	printSound(&buf, settings.Settings{SoundEnabled: true, Volume: 0.6})
	if got := buf.String(); got != "Sound: on  Volume: 60%\n" {
		t.Errorf("printSound = %q", got)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, fruitbreaker.IDClassic, 60); err != nil {
		t.Fatalf("printScores failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty table output = %q", buf.String())
	}

	results := []storage.Result{
		{GameID: fruitbreaker.IDClassic, Score: 40, Wave: 2, Fruits: core.FruitCounts{Apple: 2, Pear: 1}, Ticks: 3900},
		{GameID: fruitbreaker.IDClassic, Score: 90, Wave: 3, Fruits: core.FruitCounts{Orange: 4}, Ticks: 600},
		{GameID: fruitbreaker.IDTimed, Score: 500, Wave: 9},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	buf.Reset()
	if err := printScores(&buf, store, fruitbreaker.IDClassic, 60); err != nil {
		t.Fatalf("printScores failed: %v", err)
	}
	out := buf.String()

	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "1 ") || strings.HasPrefix(strings.TrimSpace(l), "2 ") {
			rows = append(rows, l)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 score rows, got %d in:\n%s", len(rows), out)
	}
	if !strings.Contains(rows[0], "90") || !strings.Contains(rows[0], "0:10") {
		t.Errorf("first row should be the 90 point session: %q", rows[0])
	}
	if !strings.Contains(rows[1], "1:05") {
		t.Errorf("second row should last 1:05: %q", rows[1])
	}
	if strings.Contains(out, "500") {
		t.Error("timed scores leaked into the classic table")
	}
	if !strings.Contains(out, "Best: 90  Games: 2  Fruit caught: 7") {
		t.Errorf("summary line missing in:\n%s", out)
	}
}

func TestRunModes(t *testing.T) {
	var buf bytes.Buffer
	modesCmd.SetOut(&buf)
	defer modesCmd.SetOut(nil)

	runModes(modesCmd, nil)

	out := buf.String()
	for _, id := range []string{fruitbreaker.IDClassic, fruitbreaker.IDTimed} {
		if !strings.Contains(out, id) {
			t.Errorf("modes output missing %q:\n%s", id, out)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/.fruitbreaker/x.log"); got != filepath.Join(home, ".fruitbreaker/x.log") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := expandHome(""); got != "" {
		t.Errorf("empty path changed: %q", got)
	}
}

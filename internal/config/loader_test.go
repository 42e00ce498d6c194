package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != DefaultFruitBreakerConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultFruitBreakerConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "paddle:\n  speed: 9\ngameplay:\n  start_wave: 3\n")

	cfg, err := LoadFruitBreaker(path)
	if err != nil {
		t.Fatalf("LoadFruitBreaker failed: %v", err)
	}
	if cfg.Paddle.Speed != 9 {
		t.Errorf("paddle speed = %v, expected 9", cfg.Paddle.Speed)
	}
	if cfg.Gameplay.StartWave != 3 {
		t.Errorf("start wave = %d, expected 3", cfg.Gameplay.StartWave)
	}
	if cfg.Paddle.Width != 122.3 || cfg.Grid.Cols != 7 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "paddle: [not, a, map")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "pickups:\n  drop_chance: 1.5\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"malformed yaml", bad},
		{"invalid values", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadFruitBreaker(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if cfg != DefaultFruitBreakerConfig() {
				t.Error("a failed load should still return the defaults")
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, err := LoadFruitBreaker("")
	if err != nil {
		t.Fatalf("LoadFruitBreaker failed: %v", err)
	}
	if cfg.Paddle.Speed != 6 {
		t.Errorf("paddle speed = %v, expected embedded default 6", cfg.Paddle.Speed)
	}

	writeFile(t, filepath.Join(work, "configs", configFile), "paddle:\n  speed: 8\n")
	cfg, _ = LoadFruitBreaker("")
	if cfg.Paddle.Speed != 8 {
		t.Errorf("paddle speed = %v, expected local config 8", cfg.Paddle.Speed)
	}

	writeFile(t, filepath.Join(home, ".fruitbreaker", "configs", configFile), "paddle:\n  speed: 10\n")
	cfg, _ = LoadFruitBreaker("")
	if cfg.Paddle.Speed != 10 {
		t.Errorf("paddle speed = %v, expected user config 10", cfg.Paddle.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*FruitBreakerConfig)
		ok     bool
	}{
		{"defaults", func(*FruitBreakerConfig) {}, true},
		{"grid too wide", func(c *FruitBreakerConfig) { c.Grid.Cols = 12 }, false},
		{"zero lives", func(c *FruitBreakerConfig) { c.Gameplay.Lives = 0 }, false},
		{"shrinking mega", func(c *FruitBreakerConfig) { c.Mega.Multiplier = 0.5 }, false},
		{"paddle below field", func(c *FruitBreakerConfig) { c.Paddle.Y = 700 }, false},
		{"inset eats paddle", func(c *FruitBreakerConfig) { c.Paddle.CollisionInset = 70 }, false},
		{"no drops", func(c *FruitBreakerConfig) { c.Pickups.DropChance = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFruitBreakerConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		err  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if tc.err {
			if !errors.Is(err, ErrUnknownPreset) {
				t.Errorf("ParsePreset(%q) error = %v, expected ErrUnknownPreset", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q", tc.in, got, err, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultFruitBreakerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultFruitBreakerConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultFruitBreakerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Mega.DurationTicks <= normal.Mega.DurationTicks || easy.Paddle.Speed <= normal.Paddle.Speed {
		t.Errorf("easy preset should lengthen mega and speed up the paddle: %+v", easy)
	}

	hard := DefaultFruitBreakerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.StartWave <= 1 || hard.Pickups.DropChance >= normal.Pickups.DropChance {
		t.Errorf("hard preset should start later with fewer drops: %+v", hard)
	}
	for _, c := range []FruitBreakerConfig{easy, hard} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset produced an invalid config: %v", err)
		}
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "fruitbreaker.yaml"

// LoadFruitBreaker loads Fruit Breaker configuration.
// Search order: customPath -> ~/.fruitbreaker/configs/fruitbreaker.yaml ->
// ./configs/fruitbreaker.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadFruitBreaker(customPath string) (FruitBreakerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFruitBreakerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultFruitBreakerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFruitBreakerYAML)
	if err != nil {
		return DefaultFruitBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (FruitBreakerConfig, error) {
	cfg := DefaultFruitBreakerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruitbreaker", "configs", filename)
}

// Validate reports every value that would produce an unplayable field.
func (c FruitBreakerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield must have a positive size")
	check(c.Grid.Rows > 0 && c.Grid.Cols > 0, "grid needs at least one row and column")
	check(c.Grid.BrickWidth > 0 && c.Grid.BrickHeight > 0, "bricks must have a positive size")
	gridW := float64(c.Grid.Cols)*c.Grid.BrickWidth + float64(c.Grid.Cols-1)*c.Grid.SpacingX
	check(gridW <= c.Playfield.Width, "grid width %.1f exceeds playfield width %.1f", gridW, c.Playfield.Width)
	check(c.Paddle.Width > 2*c.Paddle.CollisionInset, "paddle width %.1f must exceed twice the collision inset", c.Paddle.Width)
	check(c.Paddle.Width <= c.Playfield.Width, "paddle is wider than the playfield")
	check(c.Paddle.Y > 0 && c.Paddle.Y < c.Playfield.Height, "paddle y %.1f is outside the playfield", c.Paddle.Y)
	check(c.Paddle.Speed > 0, "paddle speed must be positive")
	check(c.Ball.Size >= 2, "ball size must be at least 2")
	check(c.Pickups.Size > 0 && c.Pickups.Speed > 0, "pickups need a positive size and speed")
	check(c.Pickups.DropChance >= 0 && c.Pickups.DropChance <= 1, "drop chance %.2f outside [0, 1]", c.Pickups.DropChance)
	check(c.Mega.Multiplier >= 1, "mega multiplier must be at least 1")
	check(c.Mega.DurationTicks >= 0, "mega duration must not be negative")
	check(c.Gameplay.Lives > 0, "lives must be positive")
	check(c.Gameplay.StartWave > 0, "start wave must be positive")
	check(c.Gameplay.TimeLimitSecs > 0, "time limit must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

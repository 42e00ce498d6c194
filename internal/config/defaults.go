package config

import (
	_ "embed"
)

//go:embed defaults/fruitbreaker.yaml
var defaultFruitBreakerYAML []byte

// DefaultFruitBreakerConfig returns the default Fruit Breaker configuration.
func DefaultFruitBreakerConfig() FruitBreakerConfig {
	return FruitBreakerConfig{
		Playfield: PlayfieldConfig{
			Width:  600,
			Height: 600,
		},
		Grid: GridConfig{
			Rows:        3,
			Cols:        7,
			BrickWidth:  59.7,
			BrickHeight: 29.9,
			SpacingX:    15,
			SpacingY:    10,
			Top:         100,
		},
		Paddle: PaddleConfig{
			Width:          122.3,
			Height:         19.3,
			Y:              550,
			Speed:          6,
			CollisionInset: 8,
			CollectMargin:  12,
			CollectLift:    10,
		},
		Ball: BallConfig{
			Size: 20.1,
		},
		Pickups: PickupConfig{
			Size:       30,
			Speed:      3,
			DropChance: 0.2,
		},
		Mega: MegaConfig{
			DurationTicks: 600, // 10 seconds at 60fps
			Multiplier:    1.5,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			StartWave:     1,
			TimeLimitSecs: 60,
			BannerTicks:   90,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFruitBreakerYAML
}

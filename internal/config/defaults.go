package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Physics: PhysicsConfig{
			TickThresholdMs:  75,
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			FlapImpulse:      -2.0,
		},
		Obstacles: ObstacleConfig{
			BaseGapSize: 20,
			MinGapSize:  2,
			GapMinY:     10,
			GapMaxY:     40,
		},
		Player: PlayerConfig{
			StartX: 5,
			StartY: 25,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

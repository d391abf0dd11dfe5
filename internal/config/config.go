// Package config provides YAML-based game configuration loading and
// validation for flappy.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// GameConfig contains every rule constant of the game.
type GameConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Player    PlayerConfig   `yaml:"player"`
}

// ScreenConfig defines the playfield size in cells.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the fixed-timestep physics parameters.
type PhysicsConfig struct {
	TickThresholdMs  float64 `yaml:"tick_threshold_ms"` // Accumulated ms needed for one physics tick
	Gravity          float64 `yaml:"gravity"`           // Velocity added per tick
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Cap for downward velocity
	FlapImpulse      float64 `yaml:"flap_impulse"`      // Velocity set by a flap (negative = up)
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	BaseGapSize int `yaml:"base_gap_size"` // Gap height at score 0
	MinGapSize  int `yaml:"min_gap_size"`  // Gap never shrinks below this
	GapMinY     int `yaml:"gap_min_y"`     // Gap centre lower bound (inclusive)
	GapMaxY     int `yaml:"gap_max_y"`     // Gap centre upper bound (exclusive)
}

// PlayerConfig defines where a run starts.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// Validate reports the first rule that makes the configuration unplayable.
// The returned error wraps ErrInvalid.
func (c GameConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Physics.TickThresholdMs <= 0:
		return fmt.Errorf("%w: tick_threshold_ms must be positive, got %g", ErrInvalid, c.Physics.TickThresholdMs)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalid, c.Physics.Gravity)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal_velocity must be positive, got %g", ErrInvalid, c.Physics.TerminalVelocity)
	case c.Physics.FlapImpulse >= 0:
		return fmt.Errorf("%w: flap_impulse must be negative, got %g", ErrInvalid, c.Physics.FlapImpulse)
	case c.Obstacles.MinGapSize < 1:
		return fmt.Errorf("%w: min_gap_size must be at least 1, got %d", ErrInvalid, c.Obstacles.MinGapSize)
	case c.Obstacles.BaseGapSize < c.Obstacles.MinGapSize:
		return fmt.Errorf("%w: base_gap_size %d is below min_gap_size %d", ErrInvalid, c.Obstacles.BaseGapSize, c.Obstacles.MinGapSize)
	case c.Obstacles.GapMinY >= c.Obstacles.GapMaxY:
		return fmt.Errorf("%w: gap range [%d, %d) is empty", ErrInvalid, c.Obstacles.GapMinY, c.Obstacles.GapMaxY)
	case c.Player.StartX < 0 || c.Player.StartY < 0:
		return fmt.Errorf("%w: player start must be non-negative, got (%d, %d)", ErrInvalid, c.Player.StartX, c.Player.StartY)
	}
	return nil
}

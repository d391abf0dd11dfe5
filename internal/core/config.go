package core

// RuntimeConfig holds host settings that are not part of the game rules.
type RuntimeConfig struct {
	TickRate int   // Frames per second driven by the host (default 60)
	Seed     int64 // RNG seed for obstacle placement; 0 means pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

package core

import "time"

// RuntimeConfig contains the settings the platform layer hands to a session.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // How long one input poll may wait
	Seed         int64         // RNG seed for species, colors and food picks
	Playground   Rect          // Motion bounds in canvas pixels
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 100 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
		Playground:   DefaultPlayground(),
	}
}

package core

import "time"

// RuntimeConfig contains configuration passed to the game at start-up.
// The platform uses it to size the screen and seed the run.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickPeriod time.Duration // Time between update steps
	Seed       int64         // RNG seed; 0 means seed from the clock
}

// DefaultTickPeriod is the fixed interval between update steps.
const DefaultTickPeriod = 200 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: DefaultTickPeriod,
		Seed:       0, // 0 means use current time in platform layer
	}
}

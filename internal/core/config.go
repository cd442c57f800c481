package core

// RuntimeConfig holds the deployment parameters of a console: how fast the
// timer ticks and which seed the piece generator starts from.
type RuntimeConfig struct {
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed; 0 means derive one from the clock
}

// DefaultConfig returns the handheld defaults: 4 Hz, seed 8.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 4,
		Seed:     8,
	}
}

// Normalize fills unset fields with defaults and keeps the tick rate in a
// playable range.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	c.TickRate = Clamp(c.TickRate, MinTickRate, MaxTickRate)
	return c
}

// Tick rate bounds accepted by Normalize.
const (
	MinTickRate = 1
	MaxTickRate = 60
)

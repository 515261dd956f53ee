package core

// RuntimeConfig contains configuration passed to the scheduler at construction.
// The platform layer fills it from the terminal and the settings file.
type RuntimeConfig struct {
	ScreenW  int   // Canvas width in characters
	ScreenH  int   // Canvas height in characters
	Assumed  bool  // Size is the fallback, the terminal could not be queried
	TickRate int   // Frames per second requested by the driver
	Seed     int64 // RNG seed for deterministic scenes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Assumed:  true,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of the simulation.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is paused
}

// Event is a gameplay occurrence signaled to external collaborators
// (presentation, audio, persistence). Events are never errors.
type Event int

const (
	EventFoodEaten Event = iota
	EventPowerUpCollected
	EventLevelChanged
	EventBossLevel
	EventShieldAbsorbed
	EventDied
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFoodEaten:
		return "food_eaten"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventLevelChanged:
		return "level_changed"
	case EventBossLevel:
		return "boss_level"
	case EventShieldAbsorbed:
		return "shield_absorbed"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// StepResult is returned after each simulation frame: the updated game
// state and any events that occurred during the frame.
type StepResult struct {
	State  GameState
	Events []Event
}

package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// Phase is the run lifecycle state. A run starts idle, moves to playing on
// the first activate input, and ends dead on a lethal collision. Activating
// while dead starts a fresh run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score, derived from survival time
	Phase Phase // Run lifecycle phase
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

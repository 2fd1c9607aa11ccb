package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the victory stage has been reached this run
	MaxStage int  // Highest piece stage on the board
	Turns    int  // Turns that changed the board
	Layers   int  // Board size in rings
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventTurn    EventKind = iota // a direction was resolved and changed the board
	EventVictory                  // victory stage reached for the first time
	EventLose                     // no further move possible
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTurn:
		return "turn"
	case EventVictory:
		return "victory"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Event is reported by a game so the platform can log, trace or persist it.
type Event struct {
	Kind   EventKind
	Action Action // direction for EventTurn
	Score  int    // score gained by the turn
	Merges int
	Moves  int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

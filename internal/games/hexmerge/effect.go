package hexmerge

import (
	"time"

	"github.com/vovakirdan/hexthree/internal/hex"
)

// EffectKind tells the presentation layer what happened to a piece.
type EffectKind int

const (
	EffectMove     EffectKind = iota // piece slid to a new cell
	EffectIncrease                   // piece survived a merge and gained a stage
	EffectRemove                     // piece was merged away
	EffectSpawn                      // piece appeared on an empty cell
)

// String returns a human-readable name for the effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectMove:
		return "move"
	case EffectIncrease:
		return "increase"
	case EffectRemove:
		return "remove"
	case EffectSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Effect is one state change produced by a turn.
type Effect struct {
	Kind    EffectKind
	PieceID uint64
	From    hex.Coord // move only
	To      hex.Coord // cell the effect ends on
	// Distance is the Chebyshev distance of a move divided by the board
	// diameter. Cosmetic only.
	Distance float64
	// Stage is the stage before the effect for move and remove, and the
	// resulting stage for increase and spawn.
	Stage int
}

// Turn is the outcome of resolving one direction.
type Turn struct {
	Direction Direction
	Changed   bool
	Effects   []Effect
	Score     int
	Merges    int
	MaxStage  int  // highest stage on the board after the turn
	Victory   bool // set by the game the first time the victory stage is reached
	// Settle is how long the presentation should take to play the moves.
	// It is a hint; correctness never depends on it.
	Settle time.Duration
}

// Phase returns the effects of one kind in emission order. The presentation
// plays moves first, then stage increases, then removals.
func (t Turn) Phase(kind EffectKind) []Effect {
	var out []Effect
	for _, e := range t.Effects {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

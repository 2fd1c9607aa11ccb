package hexmerge

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateVictory     GameStateType = "victory"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string // "classic" or "endless"
	Layers   int
	Score    int
	Turns    int
	MaxStage int
	Won      bool
	Phase    string
	// Board holds the stage of every cell in K order, -1 for empty cells.
	Board []int
	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.victoryShown:
		state = StateVictory
	case g.paused:
		state = StatePaused
	}

	board := make([]int, g.board.Size())
	g.board.Each(func(k int, p *Piece) {
		board[k] = -1
		if p != nil {
			board[k] = p.stage
		}
	})

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Layers:   g.layout.Layers(),
		Score:    g.score,
		Turns:    g.turns,
		MaxStage: g.maxStage,
		Won:      g.won,
		Phase:    g.phase.String(),
		Board:    board,
		State:    state,
	}
}

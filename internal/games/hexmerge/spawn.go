package hexmerge

// RandomSource provides the randomness for spawning.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// Spawner places new pieces on empty cells.
type Spawner struct {
	rng RandomSource
	// upgradeOdds is N in the "1 in N" chance for a spawned piece to start
	// at stage 1. Zero disables upgrades.
	upgradeOdds int
	nextID      uint64
}

// NewSpawner creates a spawner. upgradeOdds of 5 gives the classic 1-in-5 chance.
func NewSpawner(rng RandomSource, upgradeOdds int) *Spawner {
	return &Spawner{
		rng:         rng,
		upgradeOdds: upgradeOdds,
		nextID:      1,
	}
}

// Spawn puts a new piece on a uniformly chosen empty cell.
// It returns ErrBoardFull when there is no empty cell.
func (s *Spawner) Spawn(board *Board) (Effect, error) {
	empty := board.Empty()
	if len(empty) == 0 {
		return Effect{}, ErrBoardFull
	}

	k := empty[s.rng.IntN(len(empty))]
	p := s.newPiece(0)
	if s.upgradeOdds > 0 && s.rng.IntN(s.upgradeOdds) == 0 {
		p.stage = 1
	}

	if err := board.Set(k, p); err != nil {
		return Effect{}, err
	}
	c, err := board.Layout().FromK(k)
	if err != nil {
		return Effect{}, err
	}
	return Effect{Kind: EffectSpawn, PieceID: p.id, To: c, Stage: p.stage}, nil
}

// Place puts a piece of the given stage at linear index k, replacing
// whatever was there. Used to set up boards.
func (s *Spawner) Place(board *Board, k, stage int) (*Piece, error) {
	p := s.newPiece(stage)
	if err := board.Set(k, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Spawner) newPiece(stage int) *Piece {
	p := &Piece{id: s.nextID, stage: stage}
	s.nextID++
	return p
}

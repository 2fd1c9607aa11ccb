package hexmerge

// Piece is a tile on the board. Its value is always 3^stage and is never stored.
// Only the resolver and the spawner change a piece.
type Piece struct {
	id    uint64
	stage int
}

// ID identifies the piece for the lifetime of one game.
func (p *Piece) ID() uint64 { return p.id }

// Stage returns the merge level of the piece.
func (p *Piece) Stage() int { return p.stage }

// Value returns the number shown on the piece.
func (p *Piece) Value() int { return StageValue(p.stage) }

func (p *Piece) increaseStage() {
	p.stage++
}

// StageValue returns 3^stage.
func StageValue(stage int) int {
	v := 1
	for range stage {
		v *= 3
	}
	return v
}

package hexmerge

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/hexthree/internal/hex"
)

var (
	// ErrInvalidDirection is returned for a direction outside the six known ones.
	ErrInvalidDirection = errors.New("hexmerge: invalid direction")

	// ErrBoardFull is returned when a piece must spawn but no cell is empty.
	// It is the lose signal, not a failure.
	ErrBoardFull = errors.New("hexmerge: board full")

	// ErrInputLocked is returned when a direction arrives while a turn is in progress.
	ErrInputLocked = errors.New("hexmerge: input locked")
)

// Board is the grid of pieces; a nil slot is an empty cell.
type Board = hex.Grid[*Piece]

// NewBoard creates an empty board for the layout.
func NewBoard(layout *hex.Layout) *Board {
	return hex.NewGrid[*Piece](layout)
}

// Resolver slides and merges pieces for one direction at a time.
// It performs no I/O and keeps no state between turns.
type Resolver struct {
	mergeMultiplier int
	speed           float64
}

// NewResolver creates a resolver. A merge scores the merged piece's value
// times mergeMultiplier. speed is in moves per second and only feeds the
// settle hint; zero or less disables it.
func NewResolver(mergeMultiplier int, speed float64) *Resolver {
	return &Resolver{
		mergeMultiplier: mergeMultiplier,
		speed:           speed,
	}
}

// Resolve slides every row of the board toward dir, merging runs of three
// equal stages. The board is mutated in place.
func (r *Resolver) Resolve(board *Board, dir Direction) (Turn, error) {
	s, ok := slides[dir]
	if !ok {
		return Turn{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	res := resolution{
		board:      board,
		layout:     board.Layout(),
		multiplier: r.mergeMultiplier,
		turn:       Turn{Direction: dir},
	}
	for row := 0; row < res.layout.Diameter(); row++ {
		res.slideRow(row, s)
	}

	res.turn.MaxStage = MaxStage(board)
	res.turn.Settle = r.settle()
	return res.turn, nil
}

func (r *Resolver) settle() time.Duration {
	if r.speed <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / r.speed)
}

// CanMove reports whether any direction would change the board.
// The board itself is left untouched.
func (r *Resolver) CanMove(board *Board) bool {
	for _, dir := range Directions {
		turn, err := r.Resolve(cloneBoard(board), dir)
		if err == nil && turn.Changed {
			return true
		}
	}
	return false
}

// MaxStage returns the highest stage on the board, or -1 when it is empty.
func MaxStage(board *Board) int {
	max := -1
	board.Each(func(_ int, p *Piece) {
		if p != nil && p.stage > max {
			max = p.stage
		}
	})
	return max
}

// cloneBoard copies the board and its pieces so a dry run cannot touch them.
func cloneBoard(board *Board) *Board {
	c := NewBoard(board.Layout())
	board.Each(func(k int, p *Piece) {
		if p != nil {
			cp := *p
			c.Set(k, &cp)
		}
	})
	return c
}

// noCol marks an unset column pointer.
const noCol = -1

// resolution carries the state of one Resolve call.
type resolution struct {
	board      *Board
	layout     *hex.Layout
	multiplier int
	turn       Turn
}

// slideRow resolves one row. The scan starts at the destination edge and
// walks against the travel direction. last is the slot of the most recently
// placed piece, other a second piece of the same stage waiting for a third.
func (r *resolution) slideRow(row int, s slide) {
	min, max := r.layout.RowBounds(row, s.RowAxis, s.ColAxis)
	start, end := min, max+1
	if s.Step < 0 {
		start, end = max, min-1
	}

	c := hex.On(s.RowAxis, row, s.ColAxis, noCol)
	last, other := c, c
	// lastStage is the stage a piece needs to join the group at last.
	// A piece merged this turn takes part in no further group.
	lastStage := noCol

	for c.B = start; c.B != end; c.B += s.Step {
		cur := r.at(c)
		if cur == nil {
			continue
		}

		switch {
		case last.B == noCol:
			last.B = start
			r.move(c, last, cur)
			lastStage = cur.stage

		case cur.stage == lastStage:
			if other.B == noCol {
				other.B = c.B
				continue
			}
			r.merge(other, last, c, cur)
			other.B = noCol
			lastStage = noCol

		default:
			if other.B != noCol {
				last.B += s.Step
				r.move(other, last, r.at(other))
				other.B = noCol
			}
			last.B += s.Step
			r.move(c, last, cur)
			lastStage = cur.stage
		}
	}

	if other.B != noCol {
		last.B += s.Step
		r.move(other, last, r.at(other))
	}
}

// merge collapses the pieces at last and other into cur, which lands on last
// one stage higher.
func (r *resolution) merge(other, last, c hex.Coord, cur *Piece) {
	second := r.at(other)
	first := r.at(last)

	r.move(other, last, second)
	r.move(c, last, cur)
	cur.increaseStage()

	at := r.canonical(last)
	r.emit(Effect{Kind: EffectIncrease, PieceID: cur.id, To: at, Stage: cur.stage})
	r.emit(Effect{Kind: EffectRemove, PieceID: second.id, To: at, Stage: second.stage})
	r.emit(Effect{Kind: EffectRemove, PieceID: first.id, To: at, Stage: first.stage})

	r.turn.Changed = true
	r.turn.Merges++
	r.turn.Score += StageValue(cur.stage) * r.multiplier
}

// move relocates p from one slot to another and reports whether it moved.
func (r *resolution) move(from, to hex.Coord, p *Piece) bool {
	if !from.SameAxes(to) {
		panic(fmt.Sprintf("hexmerge: move across axis pairs %v -> %v", from, to))
	}
	if from == to {
		return false
	}
	r.set(from, nil)
	r.set(to, p)
	r.turn.Changed = true
	r.emit(Effect{
		Kind:     EffectMove,
		PieceID:  p.id,
		From:     r.canonical(from),
		To:       r.canonical(to),
		Distance: r.layout.Distance(from, to),
		Stage:    p.stage,
	})
	return true
}

func (r *resolution) emit(e Effect) {
	r.turn.Effects = append(r.turn.Effects, e)
}

// at, set and canonical only ever see coordinates taken from row bounds, so
// an error here is a bug in the resolver.

func (r *resolution) at(c hex.Coord) *Piece {
	p, err := r.board.AtCoord(c)
	if err != nil {
		panic(err)
	}
	return p
}

func (r *resolution) set(c hex.Coord, p *Piece) {
	if err := r.board.SetCoord(c, p); err != nil {
		panic(err)
	}
}

func (r *resolution) canonical(c hex.Coord) hex.Coord {
	hi, err := r.layout.Canonical(c)
	if err != nil {
		panic(err)
	}
	return hi
}

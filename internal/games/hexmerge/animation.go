package hexmerge

import (
	"math"

	"github.com/vovakirdan/hexthree/internal/core"
	"github.com/vovakirdan/hexthree/internal/hex"
)

// animKind is what the current animation shows.
type animKind int

const (
	animNone animKind = iota
	animSlide
	animPop
)

// sprite is a piece drawn between two cells during a slide.
type sprite struct {
	stage    int
	from, to hex.Coord
}

// animation is a fixed-length tween advanced once per tick.
type animation struct {
	kind     animKind
	ticks    int
	duration int
	sprites  []sprite
	resting  []sprite // pieces merged away in place, shown until the slide ends
	pop      Effect
}

// newSlide builds the slide for a turn. Its length is the settle time in ticks.
func (g *Game) newSlide(turn Turn) animation {
	a := animation{
		kind:     animSlide,
		duration: int(math.Round(turn.Settle.Seconds() * float64(g.tickRate))),
	}
	moved := make(map[uint64]bool)
	for _, e := range turn.Phase(EffectMove) {
		a.sprites = append(a.sprites, sprite{stage: e.Stage, from: e.From, to: e.To})
		moved[e.PieceID] = true
	}
	for _, e := range turn.Phase(EffectRemove) {
		if !moved[e.PieceID] {
			a.resting = append(a.resting, sprite{stage: e.Stage, from: e.To, to: e.To})
		}
	}
	return a
}

// newPop builds the appearance of a spawned piece.
func newPop(e Effect, duration int) animation {
	return animation{kind: animPop, duration: duration, pop: e}
}

func (a *animation) advance() {
	if a.ticks < a.duration {
		a.ticks++
	}
}

func (a animation) done() bool {
	return a.ticks >= a.duration
}

// progress returns the eased completion in [0, 1].
func (a animation) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	return easeInOutSine(core.ClampF(float64(a.ticks)/float64(a.duration), 0, 1))
}

// covers reports whether the board cell c is being drawn by the animation
// instead of from the board.
func (a animation) covers(c hex.Coord) bool {
	switch a.kind {
	case animSlide:
		for _, s := range a.sprites {
			if s.to == c {
				return true
			}
		}
	case animPop:
		return a.pop.To == c
	}
	return false
}

// easeInOutSine accelerates out of the start cell and settles into the target.
func easeInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// lerp interpolates between two screen positions.
func lerp(fromX, fromY, toX, toY, t float64) (x, y float64) {
	return fromX + (toX-fromX)*t, fromY + (toY-fromY)*t
}

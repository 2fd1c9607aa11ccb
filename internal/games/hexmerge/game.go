// Package hexmerge implements the hexagonal triple-merge puzzle: pieces slide
// in six directions and three equal pieces in a row fuse into one piece of the
// next stage.
package hexmerge

import (
	"errors"
	"math/rand/v2"

	"github.com/vovakirdan/hexthree/internal/core"
	"github.com/vovakirdan/hexthree/internal/hex"
	"github.com/vovakirdan/hexthree/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Phase is the step of the turn cycle the game is in.
type Phase int

const (
	PhaseIdle      Phase = iota // waiting for a direction
	PhaseResolving              // resolver running
	PhaseAnimating              // slide animation playing
	PhaseSpawning               // new piece appearing
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResolving:
		return "resolving"
	case PhaseAnimating:
		return "animating"
	case PhaseSpawning:
		return "spawning"
	default:
		return "unknown"
	}
}

// slideActions maps platform actions to board directions.
var slideActions = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUpLeft, UpLeft},
	{core.ActionUpRight, UpRight},
	{core.ActionLeft, Left},
	{core.ActionRight, Right},
	{core.ActionDownLeft, DownLeft},
	{core.ActionDownRight, DownRight},
}

// ActionFor returns the platform action that triggers dir.
func ActionFor(dir Direction) core.Action {
	for _, sa := range slideActions {
		if sa.dir == dir {
			return sa.action
		}
	}
	return core.ActionNone
}

// Game is the hex merge puzzle. It drives the resolver and the spawner
// through the turn phases and keeps score.
type Game struct {
	mode     Mode
	settings Settings

	layout   *hex.Layout
	board    *Board
	resolver *Resolver
	spawner  *Spawner
	tick     uint64
	tickRate int

	phase    Phase
	score    int
	turns    int
	maxStage int
	lastTurn Turn
	anim     animation
	events   []core.Event

	screenW int
	screenH int

	gameOver     bool
	won          bool
	victoryShown bool // victory overlay is up and waits for confirmation
	paused       bool
	tooSmall     bool
}

// New creates a classic game with default settings.
func New() *Game {
	return &Game{
		mode:     ModeClassic,
		settings: DefaultSettings(),
	}
}

// NewEndless creates a game without a victory stage.
func NewEndless() *Game {
	return &Game{
		mode:     ModeEndless,
		settings: DefaultSettings(),
	}
}

func init() {
	registry.Register("hexmerge", func() registry.Game {
		return New()
	})
	registry.Register("hexmerge_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "hexmerge_endless"
	}
	return "hexmerge"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Hex Merge (Endless)"
	}
	return "Hex Merge"
}

// Configure replaces the rules used from the next Reset on.
func (g *Game) Configure(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	g.settings = s
	return nil
}

// Settings returns the rules the game was configured with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Reset starts a new game with one piece on the board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.layout = hex.MustNew(g.settings.Layers)
	g.board = NewBoard(g.layout)
	g.resolver = NewResolver(g.settings.MergeMultiplier, g.settings.Speed)
	g.spawner = NewSpawner(rand.New(rand.NewPCG(uint64(cfg.Seed), 0)), g.settings.UpgradeOdds)

	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.phase = PhaseIdle
	g.score = 0
	g.turns = 0
	g.lastTurn = Turn{}
	g.anim = animation{}
	g.events = nil
	g.gameOver = false
	g.won = false
	g.victoryShown = false
	g.paused = false
	g.maxStage = -1

	g.spawn()
	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.layout != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	w, h := boardExtent(g.layout)
	g.tooSmall = g.screenW < w+2 || g.screenH < h+hudHeight+footerHeight
}

// Turn resolves one direction. It fails with ErrInputLocked while a previous
// turn is still being presented, the game is over, paused, or waiting for the
// victory overlay to be dismissed.
func (g *Game) Turn(dir Direction) (Turn, error) {
	if g.board == nil || g.phase != PhaseIdle || g.gameOver || g.paused || g.victoryShown {
		return Turn{}, ErrInputLocked
	}

	g.phase = PhaseResolving
	turn, err := g.resolver.Resolve(g.board, dir)
	if err != nil || !turn.Changed {
		g.phase = PhaseIdle
		return turn, err
	}

	g.score += turn.Score
	g.turns++
	g.maxStage = turn.MaxStage
	g.events = append(g.events, core.Event{
		Kind:   core.EventTurn,
		Action: ActionFor(dir),
		Score:  turn.Score,
		Merges: turn.Merges,
		Moves:  len(turn.Phase(EffectMove)),
	})
	turn.Victory = g.checkVictory()
	g.lastTurn = turn

	g.phase = PhaseAnimating
	g.anim = g.newSlide(turn)
	if g.anim.done() {
		g.afterSlide()
	}
	return turn, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.victoryShown && in.Has(core.ActionConfirm) {
		g.victoryShown = false
	}

	switch g.phase {
	case PhaseAnimating:
		g.anim.advance()
		if g.anim.done() {
			g.afterSlide()
		}
	case PhaseSpawning:
		g.anim.advance()
		if g.anim.done() {
			g.afterSpawn()
		}
	case PhaseIdle:
		for _, sa := range slideActions {
			if in.Has(sa.action) {
				//nolint:errcheck // a locked or unchanged turn is simply ignored
				g.Turn(sa.dir)
				break
			}
		}
	}

	return g.result()
}

// Flush plays out any pending animation and spawn immediately.
func (g *Game) Flush() {
	for g.phase == PhaseAnimating || g.phase == PhaseSpawning {
		g.anim = animation{}
		if g.phase == PhaseAnimating {
			g.afterSlide()
		} else {
			g.afterSpawn()
		}
	}
}

// afterSlide spawns the next piece once the moves have been shown.
func (g *Game) afterSlide() {
	g.phase = PhaseSpawning
	e, ok := g.spawn()
	if !ok {
		g.phase = PhaseIdle
		return
	}
	g.anim = newPop(e, g.settings.SpawnTicks)
	if g.anim.done() {
		g.afterSpawn()
	}
}

func (g *Game) afterSpawn() {
	g.anim = animation{}
	g.phase = PhaseIdle
}

// spawn places one piece and detects the lose condition: no empty cell, or a
// full board on which no direction changes anything.
func (g *Game) spawn() (Effect, bool) {
	e, err := g.spawner.Spawn(g.board)
	if err != nil {
		if errors.Is(err, ErrBoardFull) {
			g.lose()
		}
		return Effect{}, false
	}
	if e.Stage > g.maxStage {
		g.maxStage = e.Stage
	}
	g.checkVictory()
	if g.board.Full() && !g.resolver.CanMove(g.board) {
		g.lose()
	}
	return e, true
}

// checkVictory raises the victory event the first time a classic game holds
// a piece of the victory stage, whether it was merged or spawned.
func (g *Game) checkVictory() bool {
	if g.mode != ModeClassic || g.won || g.settings.VictoryStage <= 0 || g.maxStage < g.settings.VictoryStage {
		return false
	}
	g.won = true
	g.victoryShown = true
	g.events = append(g.events, core.Event{Kind: core.EventVictory, Score: g.score})
	return true
}

func (g *Game) lose() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.victoryShown = false
	g.events = append(g.events, core.Event{Kind: core.EventLose, Score: g.score})
}

func (g *Game) result() core.StepResult {
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// Phase returns the current turn phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// LastTurn returns the most recent turn that changed the board.
func (g *Game) LastTurn() Turn {
	return g.lastTurn
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	layers := 0
	if g.layout != nil {
		layers = g.layout.Layers()
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall || g.victoryShown,
		Won:      g.won,
		MaxStage: g.maxStage,
		Turns:    g.turns,
		Layers:   layers,
	}
}

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/hexthree/internal/core"
	"github.com/vovakirdan/hexthree/internal/registry"
	"github.com/vovakirdan/hexthree/internal/storage"
	"github.com/vovakirdan/hexthree/internal/telemetry"
)

// resizer is implemented by games that can follow a window resize without
// restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	logger     *log.Logger
	tracer     trace.Tracer
	inputFrame core.InputFrame
	gameState  core.GameState
	run        *run
	embedded   bool // Esc returns to a menu instead of being ignored
	quitting   bool
	backToMenu bool
}

// run tracks one game from Reset until it is saved or abandoned.
type run struct {
	id    string
	ctx   context.Context
	span  trace.Span
	saved bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger falls back to the package default.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		logger:     logger,
		tracer:     telemetry.Tracer("tui"),
		inputFrame: core.NewInputFrame(),
	}
	m.run = m.newRun()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

func (m Model) newRun() *run {
	id := storage.NewRunID()
	ctx, span := m.tracer.Start(context.Background(), "run",
		trace.WithAttributes(
			attribute.String("run.id", id),
			attribute.String("game.id", m.game.ID()),
			attribute.Int64("run.seed", m.config.Seed),
		),
	)
	m.logger.Info("run started", "run", id, "game", m.game.ID(), "seed", m.config.Seed)
	return &run{id: id, ctx: ctx, span: span}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishRun("quit")
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu when the board is not in play
	if m.embedded && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.finishRun("back")
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize restart with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.finishRun("restart")
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.run = m.newRun()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.record(e)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record logs and traces one game event.
func (m *Model) record(e core.Event) {
	runID := ""
	ctx := context.Background()
	if m.run != nil {
		runID = m.run.id
		ctx = m.run.ctx
	}

	switch e.Kind {
	case core.EventTurn:
		_, span := m.tracer.Start(ctx, "turn", trace.WithAttributes(
			attribute.String("turn.direction", e.Action.String()),
			attribute.Int("turn.score", e.Score),
			attribute.Int("turn.merges", e.Merges),
			attribute.Int("turn.moves", e.Moves),
		))
		span.End()
		m.logger.Debug("turn",
			"run", runID,
			"direction", e.Action,
			"score", e.Score,
			"merges", e.Merges,
			"moves", e.Moves,
		)

	case core.EventVictory:
		m.logger.Info("victory", "run", runID, "score", e.Score, "turns", m.gameState.Turns)

	case core.EventLose:
		m.logger.Info("game over", "run", runID, "score", e.Score, "turns", m.gameState.Turns)
		m.finishRun("lose")
	}
}

// finishRun stores the run once. Only lost or won runs with a score are kept.
func (m *Model) finishRun(reason string) {
	r := m.run
	if r == nil || r.saved {
		return
	}
	r.saved = true
	defer r.span.End()

	st := m.game.State()
	r.span.SetAttributes(
		attribute.String("run.end", reason),
		attribute.Int("run.score", st.Score),
		attribute.Int("run.max_stage", st.MaxStage),
		attribute.Int("run.turns", st.Turns),
	)

	if m.store == nil || st.Score == 0 || !(st.GameOver || st.Won) {
		return
	}
	rec := storage.ScoreRecord{
		RunID:    r.id,
		GameID:   m.game.ID(),
		Score:    st.Score,
		MaxStage: st.MaxStage,
		Layers:   st.Layers,
		Turns:    st.Turns,
	}
	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Warn("could not save score", "run", r.id, "error", err)
		return
	}
	m.logger.Info("score saved", "run", r.id, "score", st.Score, "reason", reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".hexthree", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		// Ctrl+C from outside the key loop still ends the run
		m.finishRun("exit")
	}
	return err
}

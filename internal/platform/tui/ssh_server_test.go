package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexthree/internal/config"
	"github.com/vovakirdan/hexthree/internal/core"
	"github.com/vovakirdan/hexthree/internal/games/hexmerge"
)

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 1}
	return NewSessionModel(nil, cfg, config.DefaultHexMergeConfig(), log.New(io.Discard))
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestSessionMenuToGame(t *testing.T) {
	m := newTestSession()

	m = send(t, m, enter) // Hex Merge
	if m.screen != screenBoard {
		t.Fatalf("screen = %v, want board menu", m.screen)
	}
	m = send(t, m, down)  // Endless
	m = send(t, m, enter) // pick mode
	m = send(t, m, down)  // large
	m = send(t, m, enter)

	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.game.game.ID() != "hexmerge_endless" {
		t.Errorf("game = %q, want hexmerge_endless", m.game.game.ID())
	}
	if s := m.game.game.(*hexmerge.Game).Settings(); s.Layers != 5 {
		t.Errorf("Layers = %d, want 5", s.Layers)
	}
	if m.View() == "" {
		t.Error("game view is empty")
	}

	m = send(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in game did not end the session")
	}
}

func TestSessionBoardMenuBack(t *testing.T) {
	m := newTestSession()

	m = send(t, m, enter)
	next, cmd := m.Update(esc)
	m = next.(SessionModel)

	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
	if m.quitting {
		t.Error("back from the board menu ended the session")
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("back from the board menu sent tea.Quit")
		}
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	m = send(t, m, esc)
	if m.screen != screenMenu || m.quitting {
		t.Errorf("screen = %v quitting = %v, want menu", m.screen, m.quitting)
	}
}

func TestSessionGameBackToMenu(t *testing.T) {
	m := newTestSession()
	for _, msg := range []tea.Msg{enter, enter, enter} {
		m = send(t, m, msg)
	}
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	m = send(t, m, esc)

	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after Esc on a paused game", m.screen)
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexthree/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb
}

func TestScoreboardShowsStoredRuns(t *testing.T) {
	store := openScoreStore(t)
	rec := storage.ScoreRecord{GameID: "hexmerge", Score: 12345, MaxStage: 4, Layers: 4, Turns: 61}
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 40)
	if m.Mode() != "hexmerge" {
		t.Fatalf("Mode() = %q, want hexmerge", m.Mode())
	}
	view := m.View()
	for _, want := range []string{"12,345", "81", "61", "1 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestScoreboardSwitchesMode(t *testing.T) {
	store := openScoreStore(t)
	if _, err := store.SaveScore(storage.ScoreRecord{GameID: "hexmerge", Score: 900, MaxStage: 3}); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 40)
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != "hexmerge_endless" {
		t.Fatalf("Mode() after tab = %q, want hexmerge_endless", m.Mode())
	}
	if len(m.scores) != 0 {
		t.Errorf("endless mode shows %d classic runs", len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty mode does not say so")
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Mode() != "hexmerge" || len(m.scores) != 1 {
		t.Errorf("Mode() = %q with %d runs, want hexmerge with 1", m.Mode(), len(m.scores))
	}
}

func TestScoreboardNarrowDropsColumns(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 40)
	if m.narrow {
		t.Fatal("100 columns should fit the full table")
	}
	m = updateScoreboard(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if !m.narrow {
		t.Error("50 columns should drop the board and turn columns")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := updateScoreboard(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("esc: back = %v quit = %v", m.IsGoingBack(), m.IsQuitting())
	}

	m = updateScoreboard(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("q did not quit")
	}
}

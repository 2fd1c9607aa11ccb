package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexthree/internal/config"
	"github.com/vovakirdan/hexthree/internal/core"
	"github.com/vovakirdan/hexthree/internal/games/hexmerge"
)

// BoardSelection holds the user's choice from the board menu.
type BoardSelection struct {
	Endless bool
	Preset  config.BoardPreset
}

// GameID returns the registry ID for the selected mode.
func (s BoardSelection) GameID() string {
	if s.Endless {
		return "hexmerge_endless"
	}
	return "hexmerge"
}

// BoardMenuModel lets users choose the game mode and board size.
type BoardMenuModel struct {
	cursor       int
	sizeCursor   int
	inSizeSelect bool
	endless      bool
	width        int
	height       int
	base         config.HexMergeConfig
	keyMapper    *KeyMapper
	selection    BoardSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewBoardMenuModel creates a new board menu. The base configuration is
// used to show the goal of each board size.
func NewBoardMenuModel(width, height int, base config.HexMergeConfig) BoardMenuModel {
	return BoardMenuModel{
		sizeCursor: 1, // normal
		width:      width,
		height:     height,
		base:       base,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m BoardMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoardMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BoardMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inSizeSelect {
		return m.handleSizeSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m BoardMenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // Classic, Endless
			m.cursor++
		}
	case MenuActionSelect:
		m.endless = m.cursor == 1
		m.inSizeSelect = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m BoardMenuModel) handleSizeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	presets := config.Presets()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.sizeCursor > 0 {
			m.sizeCursor--
		}
	case MenuActionDown:
		if m.sizeCursor < len(presets)-1 {
			m.sizeCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = BoardSelection{
			Endless: m.endless,
			Preset:  presets[m.sizeCursor],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inSizeSelect = false
	}

	return m, nil
}

// View renders the mode/size selection.
func (m BoardMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inSizeSelect {
		return m.viewSizeSelect()
	}
	return m.viewModeSelect()
}

func (m BoardMenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("H E X   M E R G E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Classic (reach the goal)",
		"Endless",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+mode, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BoardMenuModel) viewSizeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("BOARD SIZE", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets() {
		cursor := "  "
		if i == m.sizeCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-7s %2d rings, %3d cells", cursor, p, config.LayersForPreset(p), p.Cells())
		if !m.endless {
			line += fmt.Sprintf("  (Goal: %s)", m.goal(p))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// goal returns the piece value that wins a classic game on the preset.
func (m BoardMenuModel) goal(p config.BoardPreset) string {
	cfg := m.base
	config.ApplyHexMergePreset(&cfg, p)
	if cfg.Rules.VictoryStage == 0 {
		return "none"
	}
	return hexmerge.Label(cfg.Rules.VictoryStage)
}

// Selected returns the selection, or nil if still choosing.
func (m BoardMenuModel) Selected() *BoardSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m BoardMenuModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m BoardMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BoardMenuModel) WantsBack() bool {
	return m.back
}

// RunBoardMenu runs the board selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunBoardMenu(cfg core.RuntimeConfig, base config.HexMergeConfig) (*BoardSelection, error) {
	model := NewBoardMenuModel(cfg.ScreenW, cfg.ScreenH, base)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(BoardMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}

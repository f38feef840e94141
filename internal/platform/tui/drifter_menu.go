package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/drift-arcade/internal/config"
	"github.com/vovakirdan/drift-arcade/internal/core"
)

// DrifterSelection holds the user's selection from the Drifter menu.
type DrifterSelection struct {
	Preset config.DifficultyPreset
}

// drifterPresets are the selectable presets in menu order.
var drifterPresets = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyEasy, "Easy     (90s of air, sparse field)"},
	{config.DifficultyNormal, "Normal   (60s of air)"},
	{config.DifficultyHard, "Hard     (45s of air, dense field)"},
	{config.DifficultyFixed, "Fixed    (config values as-is)"},
}

// DrifterModeModel lets users choose a difficulty preset for Drifter.
type DrifterModeModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection DrifterSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewDrifterModeModel creates a new Drifter difficulty selection model.
func NewDrifterModeModel(width, height int) DrifterModeModel {
	return DrifterModeModel{
		cursor:    1, // Normal preselected
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DrifterModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DrifterModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m DrifterModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(drifterPresets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = DrifterSelection{Preset: drifterPresets[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DrifterModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("D R I F T E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range drifterPresets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, p.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("A/D or Arrows: Turn  |  W/Space: Thrust  |  R: Restart", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m DrifterModeModel) Selected() *DrifterSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m DrifterModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DrifterModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DrifterModeModel) WantsBack() bool {
	return m.back
}

// RunDrifterModeSelector runs the Drifter difficulty selection.
func RunDrifterModeSelector(cfg core.RuntimeConfig) (*DrifterSelection, core.RuntimeConfig, error) {
	model := NewDrifterModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(DrifterModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}

// Package toggle implements a labeled on/off switch widget.
package toggle

import (
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/techsoft3d/visualize-components/internal/tui/components/core"
	"github.com/techsoft3d/visualize-components/internal/tui/styles"
)

// ChangedMsg is emitted when the switch flips.
type ChangedMsg struct {
	ID string
	On bool
}

// Model is the switch widget.
type Model struct {
	core.FocusableBase

	id    string
	label string
	on    bool

	flipKey key.Binding
}

// New creates a switch with the given identity, label and initial state.
func New(id, label string, on bool) *Model {
	return &Model{
		id:    id,
		label: label,
		on:    on,
		flipKey: key.NewBinding(
			key.WithKeys("space", " ", "enter"),
			key.WithHelp("space", "flip"),
		),
	}
}

// Init implements the component interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// On reports the current state.
func (m *Model) On() bool {
	return m.on
}

// SetOn sets the state without emitting a ChangedMsg.
func (m *Model) SetOn(on bool) {
	m.on = on
}

// Flip toggles the state and returns the change notification.
func (m *Model) Flip() tea.Cmd {
	m.on = !m.on
	on := m.on
	return func() tea.Msg {
		return ChangedMsg{ID: m.id, On: on}
	}
}

// Update flips the switch on space/enter while focused.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}
	if key.Matches(keyMsg, m.flipKey) {
		return m, m.Flip()
	}
	return m, nil
}

// View renders the switch glyph and label.
func (m *Model) View() string {
	s := styles.CurrentTheme().S()

	glyph := styles.SwitchOffIcon
	glyphStyle := s.Muted
	if m.on {
		glyph = styles.SwitchOnIcon
		glyphStyle = s.Success
	}

	labelStyle := s.Text
	if m.IsFocused() {
		labelStyle = s.Title
	}
	return glyphStyle.Render(glyph) + " " + labelStyle.Render(m.label)
}

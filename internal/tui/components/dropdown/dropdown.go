// Package dropdown implements a closed/open select widget.
package dropdown

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/techsoft3d/visualize-components/internal/tui/components/core"
	"github.com/techsoft3d/visualize-components/internal/tui/styles"
)

// SelectedMsg is emitted when the user commits a choice.
type SelectedMsg struct {
	ID    string
	Index int
	Value string
}

// Model is the dropdown widget.
type Model struct {
	core.FocusableBase

	id      string
	label   string
	options []string

	selected int
	open     bool
	cursor   int

	keyMap keyMap
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Commit key.Binding
	Cancel key.Binding
}

// New creates a dropdown with the given identity, label and options. The
// first option starts selected.
func New(id, label string, options []string) *Model {
	return &Model{
		id:      id,
		label:   label,
		options: options,
		keyMap: keyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Commit: key.NewBinding(
				key.WithKeys("enter", "space", " "),
				key.WithHelp("enter", "choose"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "cancel"),
			),
		},
	}
}

// Init implements the component interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Value returns the committed choice, or "" with no options.
func (m *Model) Value() string {
	if m.selected < 0 || m.selected >= len(m.options) {
		return ""
	}
	return m.options[m.selected]
}

// IsOpen reports whether the option list is showing.
func (m *Model) IsOpen() bool {
	return m.open
}

// Update handles open/close, option navigation and committing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() || len(m.options) == 0 {
		return m, nil
	}

	if !m.open {
		if key.Matches(keyMsg, m.keyMap.Commit) {
			m.open = true
			m.cursor = m.selected
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keyMap.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keyMap.Cancel):
		m.open = false
	case key.Matches(keyMsg, m.keyMap.Commit):
		m.open = false
		m.selected = m.cursor
		index, value := m.selected, m.Value()
		return m, func() tea.Msg {
			return SelectedMsg{ID: m.id, Index: index, Value: value}
		}
	}
	return m, nil
}

// View renders the closed row, or the option list while open.
func (m *Model) View() string {
	s := styles.CurrentTheme().S()

	labelStyle := s.Muted
	if m.IsFocused() {
		labelStyle = s.Title
	}
	header := labelStyle.Render(m.label+":") + " " +
		s.Text.Render(m.Value()) + " " + s.Subtle.Render(styles.DropdownIcon)
	if !m.open {
		return header
	}

	lines := []string{header}
	for i, option := range m.options {
		prefix := "  "
		style := s.Text
		if i == m.cursor {
			prefix = styles.SelectedMark + " "
			style = s.Selected
		} else if i == m.selected {
			style = s.Info
		}
		lines = append(lines, "  "+prefix+style.Render(option))
	}
	return strings.Join(lines, "\n")
}

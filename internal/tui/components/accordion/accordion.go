// Package accordion implements a widget of titled, individually
// collapsible sections.
package accordion

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/techsoft3d/visualize-components/internal/tui/components/core"
	"github.com/techsoft3d/visualize-components/internal/tui/styles"
)

// Section is one titled, collapsible region.
type Section struct {
	Title   string
	Content string
	Open    bool
}

// Model is the accordion widget.
type Model struct {
	core.FocusableBase
	core.SizeableBase

	sections  []Section
	cursor    int
	exclusive bool

	keyMap keyMap
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

// Option configures the accordion.
type Option func(*Model)

// WithExclusive makes opening a section close all others.
func WithExclusive() Option {
	return func(m *Model) {
		m.exclusive = true
	}
}

// New creates an accordion over sections.
func New(sections []Section, opts ...Option) *Model {
	m := &Model{
		sections: sections,
		keyMap: keyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Toggle: key.NewBinding(
				key.WithKeys("enter", "space", " "),
				key.WithHelp("enter", "open/close"),
			),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements the component interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSections replaces the sections, clamping the cursor.
func (m *Model) SetSections(sections []Section) {
	m.sections = sections
	if m.cursor >= len(sections) {
		m.cursor = len(sections) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Sections returns the current sections.
func (m *Model) Sections() []Section {
	return m.sections
}

// ToggleSection opens or closes the section at index i.
func (m *Model) ToggleSection(i int) {
	if i < 0 || i >= len(m.sections) {
		return
	}
	opening := !m.sections[i].Open
	if opening && m.exclusive {
		for j := range m.sections {
			m.sections[j].Open = false
		}
	}
	m.sections[i].Open = opening
}

// Update handles cursor movement and section toggling.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keyMap.Down):
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keyMap.Toggle):
		m.ToggleSection(m.cursor)
	}
	return m, nil
}

// View renders headers with open sections' content indented below them.
func (m *Model) View() string {
	s := styles.CurrentTheme().S()

	var parts []string
	for i, section := range m.sections {
		marker := styles.CollapsedIcon
		if section.Open {
			marker = styles.ExpandedIcon
		}

		titleStyle := s.Text
		if i == m.cursor && m.IsFocused() {
			titleStyle = s.Title
		}
		parts = append(parts, s.Subtle.Render(marker)+" "+titleStyle.Render(section.Title))

		if section.Open && section.Content != "" {
			for _, line := range strings.Split(strings.TrimRight(section.Content, "\n"), "\n") {
				parts = append(parts, "  "+line)
			}
		}
	}
	return strings.Join(parts, "\n")
}

// Package proptable implements a two-column name/value table for showing
// node attributes.
package proptable

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/techsoft3d/visualize-components/internal/tui/components/core"
	"github.com/techsoft3d/visualize-components/internal/tui/styles"
)

// Row is one name/value pair.
type Row struct {
	Name  string
	Value string
}

// Model is the property table widget. It is purely presentational: no
// focus, no interaction.
type Model struct {
	core.SizeableBase

	title string
	rows  []Row
}

// New creates a property table with a title.
func New(title string) *Model {
	return &Model{title: title}
}

// Init implements the component interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the component interface; the table is inert.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// SetTitle replaces the table title.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetRows replaces the table content.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
}

// Rows returns the current content.
func (m *Model) Rows() []Row {
	return m.rows
}

// View renders the title and the aligned name/value columns.
func (m *Model) View() string {
	s := styles.CurrentTheme().S()

	var lines []string
	if m.title != "" {
		lines = append(lines, s.Title.Render(m.title))
	}
	if len(m.rows) == 0 {
		lines = append(lines, s.Muted.Render("(no properties)"))
		return strings.Join(lines, "\n")
	}

	nameWidth := 0
	for _, row := range m.rows {
		if w := ansi.StringWidth(row.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for _, row := range m.rows {
		name := row.Name + strings.Repeat(" ", nameWidth-ansi.StringWidth(row.Name))
		line := s.Muted.Render(name) + "  " + s.Text.Render(row.Value)
		if m.Width > 0 {
			line = ansi.Truncate(line, m.Width, "…")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

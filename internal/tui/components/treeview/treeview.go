// Package treeview renders a tree.Tree as an interactive widget: cursor
// navigation over the visible rows, expand/collapse with lazy child
// loading, and a selection driven by the keyboard.
//
// Content is produced by a pluggable ContentFunc so the widget carries no
// knowledge of what the nodes are; the viewer adapters supply one for CAD
// model nodes.
package treeview

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/techsoft3d/visualize-components/internal/csync"
	"github.com/techsoft3d/visualize-components/internal/tree"
	"github.com/techsoft3d/visualize-components/internal/tui/components/core"
	"github.com/techsoft3d/visualize-components/internal/tui/styles"
)

// ContentFunc renders one node. selected reports selection membership;
// data is the optional out-of-band payload registered with SetNodeData.
type ContentFunc[K comparable] func(key K, selected bool, data any) string

// ToggleMsg is emitted when the user expands or collapses a node.
type ToggleMsg[K comparable] struct {
	Key      K
	Expanded bool
}

// SelectMsg is emitted when the selection changes.
type SelectMsg[K comparable] struct {
	Keys []K
}

// Row is one visible line of the tree.
type Row[K comparable] struct {
	Key         K
	Depth       int
	HasChildren bool
	Expanded    bool
}

// Model is the tree widget.
type Model[K comparable] struct {
	core.FocusableBase

	width  int
	height int

	tree     *tree.Tree[K]
	content  ContentFunc[K]
	nodeData *csync.Map[K, any]

	rows   []Row[K]
	cursor int
	offset int

	keyMap KeyMap
}

// New creates a tree widget over t, rendering nodes with content.
func New[K comparable](t *tree.Tree[K], content ContentFunc[K]) *Model[K] {
	m := &Model[K]{
		tree:     t,
		content:  content,
		nodeData: csync.NewMap[K, any](),
		keyMap:   DefaultKeyMap(),
	}
	m.Reload()
	return m
}

// Init implements the component interface.
func (m *Model[K]) Init() tea.Cmd {
	return nil
}

// Reload rebuilds the visible rows from the tree. Call after any
// structural change made outside the widget (refresh, removal, reset,
// ExpandPath).
func (m *Model[K]) Reload() {
	visible := m.tree.Visible()
	rows := make([]Row[K], 0, len(visible))
	for _, key := range visible {
		e, ok := m.tree.Entry(key)
		if !ok {
			continue
		}
		rows = append(rows, Row[K]{
			Key:         key,
			Depth:       m.depth(e),
			HasChildren: len(e.Children) > 0,
			Expanded:    e.Expanded,
		})
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

func (m *Model[K]) depth(e *tree.Entry[K]) int {
	depth := 0
	for e.HasParent {
		parent, ok := m.tree.Entry(e.Parent)
		if !ok {
			break
		}
		depth++
		e = parent
	}
	return depth
}

// SetTree rebinds the widget to a different tree, dropping the cursor
// position and any per-node data. The ContentFunc is kept.
func (m *Model[K]) SetTree(t *tree.Tree[K]) {
	m.tree = t
	m.cursor = 0
	m.offset = 0
	m.nodeData = csync.NewMap[K, any]()
	m.Reload()
}

// SetNodeData attaches an out-of-band payload passed to the ContentFunc
// for key, such as a badge or load state.
func (m *Model[K]) SetNodeData(key K, data any) {
	m.nodeData.Set(key, data)
}

// Rows returns the current visible rows, top to bottom.
func (m *Model[K]) Rows() []Row[K] {
	return m.rows
}

// CursorKey returns the key under the cursor.
func (m *Model[K]) CursorKey() (K, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		var zero K
		return zero, false
	}
	return m.rows[m.cursor].Key, true
}

// MoveTo places the cursor on key if it is visible.
func (m *Model[K]) MoveTo(key K) bool {
	for i, row := range m.rows {
		if row.Key == key {
			m.cursor = i
			m.scrollToCursor()
			return true
		}
	}
	return false
}

// Update handles navigation and interaction keys.
func (m *Model[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keyMap.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keyMap.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(keyMsg, m.keyMap.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(keyMsg, m.keyMap.Home):
		m.cursor = 0
		m.scrollToCursor()
	case key.Matches(keyMsg, m.keyMap.End):
		m.cursor = len(m.rows) - 1
		m.scrollToCursor()
	case key.Matches(keyMsg, m.keyMap.Toggle):
		return m, m.toggleCursor(nil)
	case key.Matches(keyMsg, m.keyMap.Expand):
		expanded := true
		return m, m.toggleCursor(&expanded)
	case key.Matches(keyMsg, m.keyMap.Collapse):
		expanded := false
		return m, m.toggleCursor(&expanded)
	case key.Matches(keyMsg, m.keyMap.Select):
		return m, m.selectCursor()
	}
	return m, nil
}

// toggleCursor flips (or forces, when want is non-nil) the expansion of
// the row under the cursor and emits a ToggleMsg. Leaves have no expand
// affordance and are ignored.
func (m *Model[K]) toggleCursor(want *bool) tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	row := m.rows[m.cursor]
	if !row.HasChildren {
		return nil
	}
	expanded := !row.Expanded
	if want != nil {
		expanded = *want
	}
	if expanded == row.Expanded {
		return nil
	}
	m.tree.SetExpanded(row.Key, expanded)
	m.Reload()
	return func() tea.Msg {
		return ToggleMsg[K]{Key: row.Key, Expanded: expanded}
	}
}

// selectCursor makes the cursor row the selection and emits a SelectMsg.
func (m *Model[K]) selectCursor() tea.Cmd {
	cursorKey, ok := m.CursorKey()
	if !ok {
		return nil
	}
	keys := []K{cursorKey}
	m.tree.SetSelection(keys)
	return func() tea.Msg {
		return SelectMsg[K]{Keys: keys}
	}
}

func (m *Model[K]) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.scrollToCursor()
}

func (m *Model[K]) pageSize() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 1
}

func (m *Model[K]) scrollToCursor() {
	if m.height <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the visible window of rows.
func (m *Model[K]) View() string {
	if len(m.rows) == 0 {
		return styles.CurrentTheme().S().Muted.Render("(empty)")
	}

	end := len(m.rows)
	if m.height > 0 && m.offset+m.height < end {
		end = m.offset + m.height
	}

	s := styles.CurrentTheme().S()
	var lines []string
	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		line := m.renderRow(row)
		if i == m.cursor && m.IsFocused() {
			line = s.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model[K]) renderRow(row Row[K]) string {
	s := styles.CurrentTheme().S()

	affordance := styles.LeafIcon
	if row.HasChildren {
		if row.Expanded {
			affordance = styles.ExpandedIcon
		} else {
			affordance = styles.CollapsedIcon
		}
	}

	selected := m.tree.IsSelected(row.Key)
	data, _ := m.nodeData.Get(row.Key)
	content := ""
	if m.content != nil {
		content = m.content(row.Key, selected, data)
	}

	line := strings.Repeat(styles.TreeSpace, row.Depth) +
		s.Subtle.Render(affordance) + " " + content
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

// SetSize implements the sizeable interface.
func (m *Model[K]) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	m.scrollToCursor()
	return nil
}

// GetSize returns the widget size.
func (m *Model[K]) GetSize() (int, int) {
	return m.width, m.height
}

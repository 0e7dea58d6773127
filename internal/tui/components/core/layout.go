package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// SimpleLayout stacks components vertically in insertion order.
type SimpleLayout struct {
	components map[string]Component
	order      []string
	width      int
	height     int
}

// NewSimpleLayout creates an empty vertical layout.
func NewSimpleLayout() *SimpleLayout {
	return &SimpleLayout{
		components: make(map[string]Component),
	}
}

// AddComponent appends a component to the stack.
func (l *SimpleLayout) AddComponent(id string, component Component) {
	l.components[id] = component
	l.order = append(l.order, id)

	if sizeable, ok := component.(Sizeable); ok && l.width > 0 {
		sizeable.SetSize(l.width, 1)
	}
}

// RemoveComponent removes a component from the stack.
func (l *SimpleLayout) RemoveComponent(id string) {
	delete(l.components, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// GetComponent returns a component by ID, or nil.
func (l *SimpleLayout) GetComponent(id string) Component {
	return l.components[id]
}

// SetSize distributes the width to all sizeable children.
func (l *SimpleLayout) SetSize(width, height int) tea.Cmd {
	l.width = width
	l.height = height

	var cmds []tea.Cmd
	for _, component := range l.components {
		if sizeable, ok := component.(Sizeable); ok {
			cmds = append(cmds, sizeable.SetSize(width, 1))
		}
	}
	return tea.Batch(cmds...)
}

// Init initializes all children.
func (l *SimpleLayout) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range l.order {
		cmds = append(cmds, l.components[id].Init())
	}
	return tea.Batch(cmds...)
}

// Update forwards msg to all children.
func (l *SimpleLayout) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for id, component := range l.components {
		updated, cmd := component.Update(msg)
		l.components[id] = updated.(Component)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return l, tea.Batch(cmds...)
}

// View renders children top to bottom in insertion order.
func (l *SimpleLayout) View() string {
	var views []string
	for _, id := range l.order {
		if component, exists := l.components[id]; exists {
			views = append(views, component.View())
		}
	}
	return strings.Join(views, "\n")
}

// SplitLayout arranges two components side by side, dividing the width by
// a ratio. The tree-plus-detail arrangement of the browser uses this.
type SplitLayout struct {
	left  Component
	right Component
	// ratio is the share of the width given to the left pane, 0 < ratio < 1.
	ratio  float64
	width  int
	height int
}

// NewSplitLayout creates a horizontal split. A ratio outside (0, 1) falls
// back to an even split.
func NewSplitLayout(left, right Component, ratio float64) *SplitLayout {
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	return &SplitLayout{left: left, right: right, ratio: ratio}
}

// LeftWidth returns the current width of the left pane.
func (l *SplitLayout) LeftWidth() int {
	w := int(float64(l.width) * l.ratio)
	if w < 1 {
		w = 1
	}
	if w >= l.width {
		w = l.width - 1
	}
	return w
}

// SetSize splits the width between the panes.
func (l *SplitLayout) SetSize(width, height int) tea.Cmd {
	l.width = width
	l.height = height

	leftWidth := l.LeftWidth()
	var cmds []tea.Cmd
	if sizeable, ok := l.left.(Sizeable); ok {
		cmds = append(cmds, sizeable.SetSize(leftWidth, height))
	}
	if sizeable, ok := l.right.(Sizeable); ok {
		cmds = append(cmds, sizeable.SetSize(width-leftWidth, height))
	}
	return tea.Batch(cmds...)
}

// Init initializes both panes.
func (l *SplitLayout) Init() tea.Cmd {
	return tea.Batch(l.left.Init(), l.right.Init())
}

// Update forwards msg to both panes.
func (l *SplitLayout) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	updated, cmd := l.left.Update(msg)
	l.left = updated.(Component)
	cmds = append(cmds, cmd)
	updated, cmd = l.right.Update(msg)
	l.right = updated.(Component)
	cmds = append(cmds, cmd)
	return l, tea.Batch(cmds...)
}

// View joins both panes horizontally, top-aligned.
func (l *SplitLayout) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, l.left.View(), l.right.View())
}

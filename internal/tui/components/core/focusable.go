package core

import tea "github.com/charmbracelet/bubbletea/v2"

// FocusableBase provides basic focus management for embedding.
type FocusableBase struct {
	focused bool
}

// IsFocused reports whether the component is focused.
func (f *FocusableBase) IsFocused() bool {
	return f.focused
}

// Focus gives the component keyboard focus.
func (f *FocusableBase) Focus() tea.Cmd {
	f.focused = true
	return nil
}

// Blur removes focus.
func (f *FocusableBase) Blur() tea.Cmd {
	f.focused = false
	return nil
}

package toggle

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func TestFlipEmitsChange(t *testing.T) {
	m := New("ids", "Show IDs", false)
	m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if cmd == nil {
		t.Fatal("expected a change command")
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok {
		t.Fatalf("expected ChangedMsg, got %T", cmd())
	}
	if msg.ID != "ids" || !msg.On {
		t.Errorf("msg = %+v, want ids on", msg)
	}
	if !m.On() {
		t.Error("switch should be on after flip")
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New("ids", "Show IDs", false)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if cmd != nil || m.On() {
		t.Error("blurred switch should not flip")
	}
}

func TestSetOnIsSilent(t *testing.T) {
	m := New("ids", "Show IDs", false)
	m.SetOn(true)
	if !m.On() {
		t.Error("SetOn(true) should stick")
	}
}

func TestViewShowsLabel(t *testing.T) {
	m := New("ids", "Show IDs", true)
	if !strings.Contains(m.View(), "Show IDs") {
		t.Errorf("view missing label: %q", m.View())
	}
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/techsoft3d/visualize-components/internal/tui/components/dropdown"
	"github.com/techsoft3d/visualize-components/internal/tui/components/toggle"
	"github.com/techsoft3d/visualize-components/internal/tui/events"
)

func newBrowser(t *testing.T) *Model {
	t.Helper()
	broker := events.NewBroker()
	t.Cleanup(broker.Clear)
	m := New(Config{
		SelectDelay: time.Millisecond,
		SearchDelay: time.Millisecond,
	}, broker)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestNewLoadsDefaultModel(t *testing.T) {
	m := newBrowser(t)

	if got := m.engine.ModelName(); got != "Gearbox" {
		t.Errorf("model = %q, want Gearbox", got)
	}
	rows := m.treeWidget.Rows()
	if len(rows) < 2 {
		t.Fatalf("expected root and children visible, got %d rows", len(rows))
	}
}

func TestViewRendersPanes(t *testing.T) {
	m := newBrowser(t)

	view := m.View()
	for _, want := range []string{"Model Browser", "Gearbox Assembly", "General"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSwitchModelRebuildsTree(t *testing.T) {
	m := newBrowser(t)

	m.Update(dropdown.SelectedMsg{ID: "model", Index: 1, Value: "Centrifugal Pump"})
	if got := m.engine.ModelName(); got != "Centrifugal Pump" {
		t.Errorf("model = %q, want Centrifugal Pump", got)
	}
	if !strings.Contains(m.View(), "Pump") {
		t.Error("view should show the new model")
	}
}

func TestIDToggleFlowsToContent(t *testing.T) {
	m := newBrowser(t)

	m.Update(toggle.ChangedMsg{ID: "ids", On: true})
	if !m.modelTree.ShowIDs {
		t.Error("ShowIDs should be on")
	}
	if !strings.Contains(m.View(), "#0") {
		t.Error("view should show the root node ID")
	}
}

func TestSearchExpandsToMatch(t *testing.T) {
	m := newBrowser(t)

	cmd := m.performSearch("pinion")
	if cmd != nil {
		cmd()
	}
	key, ok := m.treeWidget.CursorKey()
	if !ok {
		t.Fatal("no cursor after search")
	}
	if got := m.engine.Name(key); !strings.Contains(strings.ToLower(got), "pinion") {
		t.Errorf("cursor on %q, want a pinion match", got)
	}
}

func TestSearchMissReportsNotFound(t *testing.T) {
	m := newBrowser(t)
	before := m.lazyTree.Len()

	m.performSearch("no-such-part")
	if m.lazyTree.Len() != before {
		t.Error("a missed search should not load entries")
	}
}

func TestRemoveCursorRefusesRoot(t *testing.T) {
	m := newBrowser(t)
	before := m.engine.NodeCount()

	m.removeCursor()
	if m.engine.NodeCount() != before {
		t.Error("removing the root should be refused")
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := newBrowser(t)

	m.handleEvent(events.Event{Type: events.HelpToggleEvent})
	if !m.showHelp {
		t.Fatal("help should be showing")
	}
	if !strings.Contains(m.View(), "Navigation") {
		t.Error("help view missing content")
	}
	m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if m.showHelp {
		t.Error("any key should close help")
	}
}

func TestSearchModeCapturesKeys(t *testing.T) {
	m := newBrowser(t)

	m.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !m.searching {
		t.Fatal("slash should enter search mode")
	}
	m.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	m.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	if m.query != "ge" {
		t.Errorf("query = %q, want ge", m.query)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.searching || m.query != "" {
		t.Error("esc should cancel search")
	}
}

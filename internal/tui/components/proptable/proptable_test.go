package proptable

import (
	"strings"
	"testing"
)

func TestViewAlignsColumns(t *testing.T) {
	m := New("General")
	m.SetRows([]Row{
		{Name: "Name", Value: "Gearbox"},
		{Name: "Material", Value: "Steel"},
	})

	view := m.View()
	if !strings.Contains(view, "General") {
		t.Errorf("view missing title:\n%s", view)
	}
	for _, want := range []string{"Name", "Gearbox", "Material", "Steel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	m := New("Attributes")
	if !strings.Contains(m.View(), "(no properties)") {
		t.Errorf("empty view = %q", m.View())
	}
}

func TestSetRowsReplaces(t *testing.T) {
	m := New("")
	m.SetRows([]Row{{Name: "a", Value: "1"}})
	m.SetRows([]Row{{Name: "b", Value: "2"}})
	if len(m.Rows()) != 1 || m.Rows()[0].Name != "b" {
		t.Errorf("rows = %+v", m.Rows())
	}
}

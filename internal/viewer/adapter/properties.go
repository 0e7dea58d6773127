package adapter

import (
	"fmt"

	"github.com/techsoft3d/visualize-components/internal/tui/components/proptable"
	"github.com/techsoft3d/visualize-components/internal/viewer"
)

// PropertyView adapts a node's engine-side attributes to property-table
// rows.
type PropertyView struct {
	engine viewer.Engine
}

// NewPropertyView creates the property adapter for engine.
func NewPropertyView(engine viewer.Engine) *PropertyView {
	return &PropertyView{engine: engine}
}

// GeneralRows returns the rows every node has: name, kind, node ID.
func (p *PropertyView) GeneralRows(id viewer.NodeID) []proptable.Row {
	kind := "Part"
	if p.engine.Kind(id) == viewer.KindAssembly {
		kind = "Assembly"
	}
	return []proptable.Row{
		{Name: "Name", Value: p.engine.Name(id)},
		{Name: "Type", Value: kind},
		{Name: "Node", Value: fmt.Sprintf("#%d", id)},
	}
}

// AttributeRows returns the node's engine-defined attributes in display
// order; empty when the node carries none.
func (p *PropertyView) AttributeRows(id viewer.NodeID) []proptable.Row {
	props := p.engine.Properties(id)
	rows := make([]proptable.Row, 0, len(props))
	for _, prop := range props {
		rows = append(rows, proptable.Row{Name: prop.Name, Value: prop.Value})
	}
	return rows
}

// Description returns the node's markdown documentation, or empty.
func (p *PropertyView) Description(id viewer.NodeID) string {
	return p.engine.Description(id)
}

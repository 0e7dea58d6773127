// Package adapter bridges a viewer.Engine to the widget kit: the model
// structure to the lazy tree, node attributes to the property table, and
// the tree selection back to the engine.
package adapter

import (
	"fmt"
	"strings"

	"github.com/techsoft3d/visualize-components/internal/tree"
	"github.com/techsoft3d/visualize-components/internal/tui/styles"
	"github.com/techsoft3d/visualize-components/internal/viewer"
)

// ModelTree adapts an engine's model structure to tree.DataSource, and
// renders node content for the tree widget.
type ModelTree struct {
	engine viewer.Engine

	// ShowIDs appends the numeric node ID to each rendered node.
	ShowIDs bool
}

var _ tree.DataSource[viewer.NodeID] = (*ModelTree)(nil)

// NewModelTree creates the data-source adapter for engine.
func NewModelTree(engine viewer.Engine) *ModelTree {
	return &ModelTree{engine: engine}
}

// Root reports the engine's model root; ok is false with no model loaded.
func (a *ModelTree) Root() (viewer.NodeID, bool) {
	return a.engine.RootNode()
}

// Children returns the ordered children of id, querying the engine fresh
// each call.
func (a *ModelTree) Children(id viewer.NodeID) []viewer.NodeID {
	return a.engine.Children(id)
}

// FindPath walks the model depth-first and returns the root-to-node path of
// the first node whose name contains query, case-insensitively. ok is false
// when no node matches or no model is loaded.
func (a *ModelTree) FindPath(query string) ([]viewer.NodeID, bool) {
	root, ok := a.engine.RootNode()
	if !ok || query == "" {
		return nil, false
	}
	query = strings.ToLower(query)
	var walk func(id viewer.NodeID, path []viewer.NodeID) ([]viewer.NodeID, bool)
	walk = func(id viewer.NodeID, path []viewer.NodeID) ([]viewer.NodeID, bool) {
		path = append(path, id)
		if strings.Contains(strings.ToLower(a.engine.Name(id)), query) {
			return append([]viewer.NodeID(nil), path...), true
		}
		for _, child := range a.engine.Children(id) {
			if found, ok := walk(child, path); ok {
				return found, true
			}
		}
		return nil, false
	}
	return walk(root, nil)
}

// Content renders one node for the tree widget: kind icon, name, and
// optionally the node ID. data, when a string, is appended as a badge.
func (a *ModelTree) Content(id viewer.NodeID, selected bool, data any) string {
	s := styles.CurrentTheme().S()

	icon := styles.PartIcon
	if a.engine.Kind(id) == viewer.KindAssembly {
		icon = styles.AssemblyIcon
	}

	name := a.engine.Name(id)
	if a.ShowIDs {
		name = fmt.Sprintf("%s #%d", name, id)
	}

	nameStyle := s.Text
	if selected {
		nameStyle = s.Selected
	}
	line := s.Subtle.Render(icon) + " " + nameStyle.Render(name)
	if badge, ok := data.(string); ok && badge != "" {
		line += " " + s.Muted.Render(badge)
	}
	return line
}

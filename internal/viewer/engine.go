// Package viewer defines the narrow contract the widget kit has with an
// external 3D CAD viewer engine. The kit only reads model structure,
// names, and properties from the engine and pushes selection back; cameras,
// PMI, and geometry are the engine's business and never surface here.
package viewer

// NodeID identifies one node of a model's structure tree. IDs are opaque
// to the widgets; only the engine assigns meaning to them.
type NodeID int64

// NodeKind distinguishes structural from leaf nodes of a model.
type NodeKind int

const (
	KindAssembly NodeKind = iota
	KindPart
)

// Property is one name/value pair attached to a node.
type Property struct {
	Name  string
	Value string
}

// Engine is the external viewer as the widgets see it. Implementations
// must be safe for calls from the UI goroutine; calls that cross a process
// boundary should return cached structure rather than block.
type Engine interface {
	// ModelName names the currently loaded model; empty when none.
	ModelName() string

	// RootNode returns the root of the model structure, with ok=false
	// when no model is loaded.
	RootNode() (id NodeID, ok bool)

	// Children returns the ordered child nodes of id. Called fresh each
	// time; the engine owns any caching.
	Children(id NodeID) []NodeID

	// Name returns the display name of a node.
	Name(id NodeID) string

	// Kind reports whether a node is an assembly or a part.
	Kind(id NodeID) NodeKind

	// Properties returns a node's attributes in display order.
	Properties(id NodeID) []Property

	// Description returns markdown describing the node, or empty.
	Description(id NodeID) string

	// Select replaces the engine-side selection.
	Select(ids []NodeID)
}

package viewer

import (
	"fmt"
	"sync"

	"github.com/techsoft3d/visualize-components/internal/csync"
)

// node is the in-memory record backing one model node.
type node struct {
	name        string
	kind        NodeKind
	parent      NodeID
	children    []NodeID
	properties  []Property
	description string
}

// MemoryEngine is an Engine backed by an in-process node table. It serves
// the demo application and the test suites; a production host would wire a
// remote viewer client behind the same interface.
type MemoryEngine struct {
	modelName string
	nodes     *csync.Map[NodeID, *node]
	root      NodeID
	hasRoot   bool

	mu        sync.Mutex
	selection []NodeID
	nextID    NodeID
}

// NewMemoryEngine creates an engine with no model loaded.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{
		nodes: csync.NewMap[NodeID, *node](),
	}
}

// LoadModel clears the engine and installs a new root node.
func (e *MemoryEngine) LoadModel(name, rootName string) NodeID {
	e.nodes.Clear()
	e.modelName = name
	id := e.allocID()
	e.nodes.Set(id, &node{name: rootName, kind: KindAssembly})
	e.root = id
	e.hasRoot = true
	return id
}

// AddNode attaches a child node under parent and returns its ID.
func (e *MemoryEngine) AddNode(parent NodeID, name string, kind NodeKind) NodeID {
	id := e.allocID()
	e.nodes.Set(id, &node{name: name, kind: kind, parent: parent})
	if p, ok := e.nodes.Get(parent); ok {
		p.children = append(p.children, id)
	}
	return id
}

// RemoveTree detaches id from its parent and drops it and all its
// descendants from the table.
func (e *MemoryEngine) RemoveTree(id NodeID) {
	n, ok := e.nodes.Get(id)
	if !ok {
		return
	}
	if p, ok := e.nodes.Get(n.parent); ok {
		for i, child := range p.children {
			if child == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	var drop func(NodeID)
	drop = func(id NodeID) {
		n, ok := e.nodes.Get(id)
		if !ok {
			return
		}
		for _, child := range n.children {
			drop(child)
		}
		e.nodes.Delete(id)
	}
	drop(id)
}

// SetProperties replaces a node's attribute list.
func (e *MemoryEngine) SetProperties(id NodeID, props []Property) {
	if n, ok := e.nodes.Get(id); ok {
		n.properties = props
	}
}

// SetDescription attaches markdown documentation to a node.
func (e *MemoryEngine) SetDescription(id NodeID, md string) {
	if n, ok := e.nodes.Get(id); ok {
		n.description = md
	}
}

// NodeCount reports the number of nodes in the model.
func (e *MemoryEngine) NodeCount() int {
	return e.nodes.Len()
}

// Selection returns the last selection pushed via Select.
func (e *MemoryEngine) Selection() []NodeID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]NodeID(nil), e.selection...)
}

func (e *MemoryEngine) allocID() NodeID {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextID
	e.nextID++
	return id
}

// Engine interface

func (e *MemoryEngine) ModelName() string { return e.modelName }

func (e *MemoryEngine) RootNode() (NodeID, bool) {
	return e.root, e.hasRoot
}

func (e *MemoryEngine) Children(id NodeID) []NodeID {
	n, ok := e.nodes.Get(id)
	if !ok {
		return nil
	}
	return append([]NodeID(nil), n.children...)
}

func (e *MemoryEngine) Name(id NodeID) string {
	n, ok := e.nodes.Get(id)
	if !ok {
		return fmt.Sprintf("node %d", id)
	}
	return n.name
}

func (e *MemoryEngine) Kind(id NodeID) NodeKind {
	n, ok := e.nodes.Get(id)
	if !ok {
		return KindPart
	}
	return n.kind
}

func (e *MemoryEngine) Properties(id NodeID) []Property {
	n, ok := e.nodes.Get(id)
	if !ok {
		return nil
	}
	return append([]Property(nil), n.properties...)
}

func (e *MemoryEngine) Description(id NodeID) string {
	n, ok := e.nodes.Get(id)
	if !ok {
		return ""
	}
	return n.description
}

func (e *MemoryEngine) Select(ids []NodeID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection = append([]NodeID(nil), ids...)
}

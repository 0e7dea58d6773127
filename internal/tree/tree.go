// Package tree implements a sparse, demand-loaded tree over a pluggable
// data source. Only nodes the user has asked to see are materialized into
// an entry table; everything else stays in the source until it is needed.
//
// The tree is a state engine, not a widget. It knows nothing about
// rendering; view layers walk the materialized entries and draw what they
// find. A node with no entry is simply "not loaded" and is not drawn.
//
// The tree assumes a single writer. All structural operations are expected
// to run on one goroutine (typically the UI event loop); callers using the
// tree from multiple call sites must serialize mutations themselves.
package tree

import (
	"fmt"
	"strings"
)

// DataSource supplies the hierarchy on demand. Root reports the root key,
// with ok=false meaning the tree is empty. Children is called fresh each
// time children are needed; the tree never assumes the source caches.
type DataSource[K comparable] interface {
	Root() (key K, ok bool)
	Children(key K) []K
}

// Entry is the materialized record for one node.
type Entry[K comparable] struct {
	Key       K
	Parent    K // valid only when HasParent
	HasParent bool
	Children  []K
	Expanded  bool
}

// InvalidPathError reports an ExpandPath call that referenced a key not
// reachable from the currently loaded chain. This is a caller bug, not a
// routine "not loaded yet" condition, so it surfaces as an error.
type InvalidPathError[K comparable] struct {
	Path []K
	Key  K
}

func (e *InvalidPathError[K]) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = fmt.Sprint(k)
	}
	return fmt.Sprintf("unable to expand the path in the tree. Path %s. %v didn't found",
		strings.Join(parts, ","), e.Key)
}

// Tree maintains the partially materialized view. Parent/child relations
// are stored as key references into the entry table, never as pointers.
type Tree[K comparable] struct {
	source    DataSource[K]
	entries   map[K]*Entry[K]
	selection []K

	// OnChange is invoked once per public operation that mutated the
	// entry table, after all mutations of that operation are applied.
	OnChange func()
}

// New creates an empty tree over the given source. Nothing is loaded until
// RootEntry or ExpandPath is called.
func New[K comparable](source DataSource[K]) *Tree[K] {
	return &Tree[K]{
		source:  source,
		entries: make(map[K]*Entry[K]),
	}
}

// RootEntry returns the root entry, materializing it on first call. The
// source's Children is queried only when the entry is created; repeated
// calls return the stored entry without touching the source again.
// ok is false when the source reports an empty tree.
func (t *Tree[K]) RootEntry() (entry *Entry[K], ok bool) {
	e, created, ok := t.rootEntry()
	if created {
		t.notify()
	}
	return e, ok
}

// rootEntry materializes the root without notifying, so operations that
// build on it can batch their own single notification.
func (t *Tree[K]) rootEntry() (entry *Entry[K], created, ok bool) {
	key, ok := t.source.Root()
	if !ok {
		return nil, false, false
	}
	if e, loaded := t.entries[key]; loaded {
		return e, false, true
	}
	e := &Entry[K]{Key: key, Children: t.source.Children(key)}
	t.entries[key] = e
	return e, true, true
}

// loadChildren ensures an entry exists for every child of parent. Missing
// entries are created with a fresh Children query; existing entries keep
// their expansion and children state untouched, so re-entrant loads (same
// parent expanded twice, ExpandPath through an expanded ancestor) never
// clobber visible subtrees.
func (t *Tree[K]) loadChildren(parent *Entry[K]) {
	for _, key := range parent.Children {
		if _, loaded := t.entries[key]; loaded {
			continue
		}
		t.entries[key] = &Entry[K]{
			Key:       key,
			Parent:    parent.Key,
			HasParent: true,
			Children:  t.source.Children(key),
		}
	}
}

// ExpandPath expands every node along path, loading each level's children
// as needed. path must be a root-to-descendant chain: each key must already
// have an entry by the time it is visited (the previous hop's child load
// guarantees this for valid paths). A key with no entry fails the whole
// call with an InvalidPathError. On an empty tree the call is a no-op.
//
// All entry mutations of one call are applied before the single OnChange
// notification fires; a failed call does not notify.
func (t *Tree[K]) ExpandPath(path []K) error {
	if _, _, ok := t.rootEntry(); !ok {
		return nil
	}
	for _, key := range path {
		e, loaded := t.entries[key]
		if !loaded {
			return &InvalidPathError[K]{Path: path, Key: key}
		}
		t.loadChildren(e)
		e.Expanded = true
	}
	t.notify()
	return nil
}

// RefreshNode re-queries the source for key's children and materializes any
// newly introduced ones. Entries of children that already existed are left
// untouched, including children no longer reported by the source; pruning
// stale subtrees is the caller's job via RemoveNode. A key with no entry is
// a no-op: there is nothing to refresh for a node never discovered.
func (t *Tree[K]) RefreshNode(key K) {
	e, loaded := t.entries[key]
	if !loaded {
		return
	}
	e.Children = t.source.Children(key)
	t.loadChildren(e)
	t.notify()
}

// RemoveNode deletes key's entry and the entries of all its materialized
// descendants, then removes key from its parent's children. Purely a table
// operation; the source is not consulted. A key with no entry, or the root
// (which has no parent entry), is a no-op.
func (t *Tree[K]) RemoveNode(key K) {
	e, loaded := t.entries[key]
	if !loaded || !e.HasParent {
		return
	}
	t.removeSubtree(key)
	if parent, ok := t.entries[e.Parent]; ok {
		for i, child := range parent.Children {
			if child == key {
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
	}
	t.notify()
}

// removeSubtree depth-first deletes key and every loaded descendant. A
// child without an entry terminates that branch; there is nothing below it
// to recurse into.
func (t *Tree[K]) removeSubtree(key K) {
	e, loaded := t.entries[key]
	if !loaded {
		return
	}
	for _, child := range e.Children {
		t.removeSubtree(child)
	}
	delete(t.entries, key)
}

// SetExpanded records an interactive expand/collapse request for key.
// Expanding loads the node's children; collapsing keeps all descendant
// entries so re-expanding is instant and nested expansion state survives.
// A key with no entry is ignored: a toggle can race a RemoveNode through
// the event queue, and a stale toggle is routine, not a bug.
func (t *Tree[K]) SetExpanded(key K, expanded bool) {
	e, loaded := t.entries[key]
	if !loaded {
		return
	}
	e.Expanded = expanded
	if expanded {
		t.loadChildren(e)
	}
	t.notify()
}

// Reset clears the entry table and the selection back to the pre-load
// state.
func (t *Tree[K]) Reset() {
	t.entries = make(map[K]*Entry[K])
	t.selection = nil
	t.notify()
}

// Entry returns the materialized entry for key, if any.
func (t *Tree[K]) Entry(key K) (*Entry[K], bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Len reports the number of materialized entries.
func (t *Tree[K]) Len() int {
	return len(t.entries)
}

// Visible returns the keys of all currently visible nodes in render order:
// a pre-order walk from the root descending only into expanded entries.
// Children without entries are skipped, which is exactly the "requested but
// not yet loaded" rendering contract.
func (t *Tree[K]) Visible() []K {
	rootKey, ok := t.source.Root()
	if !ok {
		return nil
	}
	if _, loaded := t.entries[rootKey]; !loaded {
		return nil
	}
	var keys []K
	var walk func(key K)
	walk = func(key K) {
		e, loaded := t.entries[key]
		if !loaded {
			return
		}
		keys = append(keys, key)
		if !e.Expanded {
			return
		}
		for _, child := range e.Children {
			walk(child)
		}
	}
	walk(rootKey)
	return keys
}

// SetSelection replaces the selection. The tree does not require selected
// keys to have entries; the selection is owned by the host.
func (t *Tree[K]) SetSelection(keys []K) {
	t.selection = append([]K(nil), keys...)
}

// Selection returns the selected keys in selection order.
func (t *Tree[K]) Selection() []K {
	return append([]K(nil), t.selection...)
}

// IsSelected reports whether key is part of the selection.
func (t *Tree[K]) IsSelected(key K) bool {
	for _, k := range t.selection {
		if k == key {
			return true
		}
	}
	return false
}

func (t *Tree[K]) notify() {
	if t.OnChange != nil {
		t.OnChange()
	}
}

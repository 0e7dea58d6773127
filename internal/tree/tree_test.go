package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mapSource is a DataSource backed by a plain map, counting Children calls
// per key so tests can assert the tree is not re-querying loaded nodes.
type mapSource struct {
	root     int
	hasRoot  bool
	children map[int][]int
	calls    map[int]int
}

func newMapSource(root int, children map[int][]int) *mapSource {
	return &mapSource{
		root:     root,
		hasRoot:  true,
		children: children,
		calls:    make(map[int]int),
	}
}

func (s *mapSource) Root() (int, bool) { return s.root, s.hasRoot }

func (s *mapSource) Children(key int) []int {
	s.calls[key]++
	return s.children[key]
}

// sampleSource builds the hierarchy 0 -> [1], 1 -> [2,3], 2 -> [4].
func sampleSource() *mapSource {
	return newMapSource(0, map[int][]int{
		0: {1},
		1: {2, 3},
		2: {4},
	})
}

func snapshot(t *Tree[int]) map[int]Entry[int] {
	out := make(map[int]Entry[int])
	for _, key := range []int{0, 1, 2, 3, 4, 5, 99} {
		if e, ok := t.Entry(key); ok {
			out[key] = *e
		}
	}
	return out
}

func TestRootEntryIdempotent(t *testing.T) {
	src := sampleSource()
	tr := New[int](src)

	first, ok := tr.RootEntry()
	if !ok {
		t.Fatal("RootEntry reported empty tree")
	}
	second, ok := tr.RootEntry()
	if !ok {
		t.Fatal("second RootEntry reported empty tree")
	}

	if first != second {
		t.Error("RootEntry returned a different entry on the second call")
	}
	if got := src.calls[0]; got != 1 {
		t.Errorf("Children(root) called %d times, want 1", got)
	}
	if diff := cmp.Diff([]int{1}, first.Children); diff != "" {
		t.Errorf("root children mismatch (-want +got):\n%s", diff)
	}
	if first.HasParent {
		t.Error("root entry must not have a parent")
	}
}

func TestRootEntryEmptyTree(t *testing.T) {
	src := sampleSource()
	src.hasRoot = false
	tr := New[int](src)

	if _, ok := tr.RootEntry(); ok {
		t.Error("RootEntry reported an entry on an empty tree")
	}
	if err := tr.ExpandPath([]int{0}); err != nil {
		t.Errorf("ExpandPath on empty tree: %v, want nil", err)
	}
	if tr.Len() != 0 {
		t.Errorf("entries after empty-tree operations: %d, want 0", tr.Len())
	}
}

func TestExpandPath(t *testing.T) {
	tr := New[int](sampleSource())

	if err := tr.ExpandPath([]int{0, 1, 2}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	for _, key := range []int{0, 1, 2} {
		e, ok := tr.Entry(key)
		if !ok {
			t.Fatalf("entry %d not materialized", key)
		}
		if !e.Expanded {
			t.Errorf("entry %d not expanded", key)
		}
	}
	for _, key := range []int{3, 4} {
		e, ok := tr.Entry(key)
		if !ok {
			t.Fatalf("entry %d not materialized", key)
		}
		if e.Expanded {
			t.Errorf("entry %d expanded, want collapsed", key)
		}
	}
}

func TestExpandPathNotifiesOnce(t *testing.T) {
	tr := New[int](sampleSource())
	notified := 0
	tr.OnChange = func() { notified++ }

	if err := tr.ExpandPath([]int{0, 1, 2}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if notified != 1 {
		t.Errorf("OnChange fired %d times for one ExpandPath, want 1", notified)
	}
}

func TestExpandPathInvalid(t *testing.T) {
	tr := New[int](sampleSource())
	notified := 0
	tr.OnChange = func() { notified++ }

	err := tr.ExpandPath([]int{0, 99})
	if err == nil {
		t.Fatal("ExpandPath accepted an invalid path")
	}
	var pathErr *InvalidPathError[int]
	if !errors.As(err, &pathErr) {
		t.Fatalf("error type %T, want *InvalidPathError", err)
	}
	if pathErr.Key != 99 {
		t.Errorf("offending key %d, want 99", pathErr.Key)
	}
	if msg := err.Error(); !strings.Contains(msg, "0,99") || !strings.Contains(msg, "99") {
		t.Errorf("message %q does not identify path and key", msg)
	}
	if notified != 0 {
		t.Errorf("failed ExpandPath notified %d times, want 0", notified)
	}
}

func TestRefreshNodeUnloaded(t *testing.T) {
	tr := New[int](sampleSource())
	if err := tr.ExpandPath([]int{0}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	before := snapshot(tr)
	tr.RefreshNode(2) // never visited
	after := snapshot(tr)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("refresh of unloaded node changed entries (-before +after):\n%s", diff)
	}
	if _, ok := tr.Entry(2); ok {
		t.Error("refresh materialized an unloaded node")
	}
}

func TestRefreshNodePicksUpNewChildren(t *testing.T) {
	src := sampleSource()
	tr := New[int](src)
	if err := tr.ExpandPath([]int{0}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	// The source grows a new child under node 1.
	src.children[1] = []int{2, 3, 5}
	tr.RefreshNode(1)

	e, ok := tr.Entry(1)
	if !ok {
		t.Fatal("entry 1 missing")
	}
	if diff := cmp.Diff([]int{2, 3, 5}, e.Children); diff != "" {
		t.Errorf("children after refresh (-want +got):\n%s", diff)
	}
	if _, ok := tr.Entry(5); !ok {
		t.Error("new child 5 not materialized")
	}
}

func TestRefreshNodeKeepsExistingEntries(t *testing.T) {
	src := sampleSource()
	tr := New[int](src)
	if err := tr.ExpandPath([]int{0, 1, 2}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	// Node 2 no longer reported as a child of 1; refresh must not prune it.
	src.children[1] = []int{3}
	tr.RefreshNode(1)

	if _, ok := tr.Entry(2); !ok {
		t.Error("refresh pruned entry 2; pruning is RemoveNode's job")
	}
	e, _ := tr.Entry(2)
	if !e.Expanded {
		t.Error("refresh clobbered expansion state of an existing entry")
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	tr := New[int](sampleSource())
	if err := tr.ExpandPath([]int{0, 1, 2}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	tr.RemoveNode(2)

	for _, key := range []int{2, 4} {
		if _, ok := tr.Entry(key); ok {
			t.Errorf("entry %d survived removal", key)
		}
	}
	parent, ok := tr.Entry(1)
	if !ok {
		t.Fatal("parent entry 1 removed")
	}
	if diff := cmp.Diff([]int{3}, parent.Children); diff != "" {
		t.Errorf("parent children after removal (-want +got):\n%s", diff)
	}
}

func TestRemoveNodeUnloaded(t *testing.T) {
	tr := New[int](sampleSource())
	if err := tr.ExpandPath([]int{0}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	before := snapshot(tr)
	tr.RemoveNode(4) // never loaded
	after := snapshot(tr)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("removal of unloaded node changed entries (-before +after):\n%s", diff)
	}
}

func TestRemoveNodeRootUnsupported(t *testing.T) {
	tr := New[int](sampleSource())
	if _, ok := tr.RootEntry(); !ok {
		t.Fatal("RootEntry reported empty tree")
	}

	tr.RemoveNode(0)

	if _, ok := tr.Entry(0); !ok {
		t.Error("root entry removed; root removal is unsupported")
	}
}

func TestSetExpandedCollapseRetainsEntries(t *testing.T) {
	tr := New[int](sampleSource())
	if err := tr.ExpandPath([]int{0, 1, 2}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	tr.SetExpanded(1, false)

	e, _ := tr.Entry(1)
	if e.Expanded {
		t.Error("entry 1 still expanded after collapse")
	}
	// Collapsed descendants stay materialized, expansion state intact.
	child, ok := tr.Entry(2)
	if !ok {
		t.Fatal("collapse evicted entry 2")
	}
	if !child.Expanded {
		t.Error("collapse clobbered nested expansion state")
	}
}

func TestSetExpandedStaleKeyIgnored(t *testing.T) {
	tr := New[int](sampleSource())
	if err := tr.ExpandPath([]int{0, 1}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	tr.RemoveNode(2)

	before := snapshot(tr)
	tr.SetExpanded(2, true) // stale toggle racing the removal
	after := snapshot(tr)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("stale toggle changed entries (-before +after):\n%s", diff)
	}
}

func TestSetExpandedLoadsChildren(t *testing.T) {
	tr := New[int](sampleSource())
	if _, ok := tr.RootEntry(); !ok {
		t.Fatal("RootEntry reported empty tree")
	}

	tr.SetExpanded(0, true)

	if _, ok := tr.Entry(1); !ok {
		t.Error("expanding the root did not load its children")
	}
}

func TestReset(t *testing.T) {
	tr := New[int](sampleSource())
	if err := tr.ExpandPath([]int{0, 1, 2}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	tr.SetSelection([]int{2, 3})

	tr.Reset()

	if tr.Len() != 0 {
		t.Errorf("entries after Reset: %d, want 0", tr.Len())
	}
	if got := tr.Selection(); len(got) != 0 {
		t.Errorf("selection after Reset: %v, want empty", got)
	}
}

func TestVisible(t *testing.T) {
	tr := New[int](sampleSource())
	if err := tr.ExpandPath([]int{0, 1}); err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}

	// 0 and 1 expanded: 0, then 1, then 1's children 2 and 3. Node 4 is
	// materialized only once 2 expands.
	if diff := cmp.Diff([]int{0, 1, 2, 3}, tr.Visible()); diff != "" {
		t.Errorf("visible order (-want +got):\n%s", diff)
	}

	tr.SetExpanded(1, false)
	if diff := cmp.Diff([]int{0, 1}, tr.Visible()); diff != "" {
		t.Errorf("visible after collapse (-want +got):\n%s", diff)
	}
}

func TestSelection(t *testing.T) {
	tr := New[int](sampleSource())
	tr.SetSelection([]int{3, 1})

	if !tr.IsSelected(3) || !tr.IsSelected(1) {
		t.Error("selected keys not reported as selected")
	}
	if tr.IsSelected(0) {
		t.Error("unselected key reported as selected")
	}
	// Selection is not validated against entries; key 42 was never loaded.
	tr.SetSelection([]int{42})
	if !tr.IsSelected(42) {
		t.Error("selection must accept keys without entries")
	}
}

package csync

import (
	"sort"
	"sync"
	"testing"
)

func TestMapBasics(t *testing.T) {
	m := NewMap[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)
	if got, ok := m.Get("a"); !ok || got != 1 {
		t.Errorf("Get(a) = %d,%v", got, ok)
	}
	if m.Has("c") {
		t.Error("Has(c) should be false")
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d", m.Len())
	}

	keys := m.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys = %v", keys)
	}

	m.Delete("a")
	if m.Has("a") {
		t.Error("a should be gone")
	}

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len after Clear = %d", m.Len())
	}
}

func TestMapRangeStops(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	count := 0
	m.Range(func(k, v int) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Errorf("Range visited %d, want 3", count)
	}
}

func TestMapConcurrentAccess(t *testing.T) {
	m := NewMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Set(n*100+j, j)
				m.Get(n * 100)
				m.Len()
			}
		}(i)
	}
	wg.Wait()
	if m.Len() != 800 {
		t.Errorf("Len = %d, want 800", m.Len())
	}
}

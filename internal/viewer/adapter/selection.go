package adapter

import (
	"time"

	"github.com/techsoft3d/visualize-components/internal/debounce"
	"github.com/techsoft3d/visualize-components/internal/viewer"
)

// SelectionSync forwards tree selection changes to the engine through a
// debouncer, so cursor-driven selection churn collapses into one engine
// call once the user settles.
type SelectionSync struct {
	engine viewer.Engine
	delay  time.Duration
	deb    *debounce.Debouncer
}

// NewSelectionSync creates a selection bridge with the given settle
// delay.
func NewSelectionSync(engine viewer.Engine, delay time.Duration) *SelectionSync {
	s := &SelectionSync{
		engine: engine,
		delay:  delay,
	}
	s.deb = debounce.New(func(args ...any) (any, error) {
		keys, _ := args[0].([]viewer.NodeID)
		s.engine.Select(keys)
		return len(keys), nil
	})
	return s
}

// Update schedules a selection push, superseding any still-pending one.
// The returned call settles when the push reaches the engine, or with
// debounce.ErrCanceled when a newer selection supersedes it.
func (s *SelectionSync) Update(keys []viewer.NodeID) *debounce.Call {
	return s.deb.Debounce(s.delay, append([]viewer.NodeID(nil), keys...))
}

// Cancel drops any pending push without touching the engine.
func (s *SelectionSync) Cancel() {
	s.deb.Clear()
}

// IsPending reports whether a push is waiting on the settle delay.
func (s *SelectionSync) IsPending() bool {
	return s.deb.IsPending()
}

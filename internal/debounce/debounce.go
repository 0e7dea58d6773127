// Package debounce collapses rapid bursts of invocation requests into a
// single delayed execution, with per-request futures and deterministic
// supersession: the winner is always the most recent request.
//
// Each Debounce call returns a Call future. When a newer request arrives
// before the timer fires, the older Call settles with ErrCanceled and the
// timer restarts; callers treat that rejection as an expected, filterable
// condition, not an application error.
package debounce

import (
	"errors"
	"sync"
	"time"
)

// ErrCanceled settles a Call whose execution was superseded by a newer
// Debounce call or canceled by Clear. Filter with errors.Is.
var ErrCanceled = errors.New("debounce: call canceled")

// Func is the debounced callback. It may block; its result or error
// settles the Call that scheduled it.
type Func func(args ...any) (any, error)

// Call is the future for one Debounce request. It settles exactly once:
// with the callback's result, the callback's error, or ErrCanceled.
type Call struct {
	done   chan struct{}
	result any
	err    error
}

// Done is closed when the call has settled.
func (c *Call) Done() <-chan struct{} { return c.done }

// Result blocks until the call settles and returns its outcome.
func (c *Call) Result() (any, error) {
	<-c.done
	return c.result, c.err
}

// Err returns the settled error without blocking. It is only meaningful
// after Done is closed.
func (c *Call) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

func (c *Call) settle(result any, err error) {
	c.result = result
	c.err = err
	close(c.done)
}

// Debouncer arms at most one timer at a time. Two states: idle (no timer)
// and armed (timer running, one unsettled Call). Debounce moves armed to
// armed, canceling the old Call first; the timer firing or Clear moves
// armed back to idle.
type Debouncer struct {
	mu      sync.Mutex
	fn      Func
	timer   *time.Timer
	pending *Call
}

// New creates a Debouncer with the given callback. The callback may be
// swapped at any time with SetFunc, including while a call is pending.
func New(fn Func) *Debouncer {
	return &Debouncer{fn: fn}
}

// SetFunc replaces the callback. The next firing uses the latest assigned
// function, not the one in place when Debounce was called.
func (d *Debouncer) SetFunc(fn Func) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fn = fn
}

// Debounce schedules the callback to run with args after delay, canceling
// any still-armed request first. A zero delay still defers to the timer
// goroutine rather than executing inline, preserving the coalescing
// contract.
func (d *Debouncer) Debounce(delay time.Duration, args ...any) *Call {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelPending()

	call := &Call{done: make(chan struct{})}
	d.pending = call
	d.timer = time.AfterFunc(delay, func() {
		d.fire(call, args)
	})
	return call
}

// Clear cancels the armed request, if any, settling its Call with
// ErrCanceled. Safe and idempotent when nothing is pending. A callback
// already executing is unaffected; cancellation cannot reach past the
// timer firing.
func (d *Debouncer) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelPending()
}

// IsPending reports whether a timer is currently armed.
func (d *Debouncer) IsPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// cancelPending stops the timer and rejects the in-flight Call. Caller
// holds d.mu.
func (d *Debouncer) cancelPending() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending != nil {
		d.pending.settle(nil, ErrCanceled)
		d.pending = nil
	}
}

// fire runs on the timer goroutine. The callback reference is read here,
// at execution time, and the callback itself runs outside the lock so a
// slow callback never blocks new Debounce calls.
func (d *Debouncer) fire(call *Call, args []any) {
	d.mu.Lock()
	if d.pending != call {
		// Superseded or cleared between the timer firing and this
		// goroutine taking the lock.
		d.mu.Unlock()
		return
	}
	fn := d.fn
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if fn == nil {
		call.settle(nil, nil)
		return
	}
	call.settle(fn(args...))
}

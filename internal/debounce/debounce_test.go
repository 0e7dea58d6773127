package debounce

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestCoalescing(t *testing.T) {
	var calls atomic.Int32
	var lastArg atomic.Value
	d := New(func(args ...any) (any, error) {
		calls.Add(1)
		lastArg.Store(args[0])
		return args[0], nil
	})

	first := d.Debounce(50*time.Millisecond, "a")
	time.Sleep(20 * time.Millisecond)
	second := d.Debounce(50*time.Millisecond, "b")
	time.Sleep(20 * time.Millisecond)
	third := d.Debounce(50*time.Millisecond, "c")

	if _, err := first.Result(); !errors.Is(err, ErrCanceled) {
		t.Errorf("first call error %v, want ErrCanceled", err)
	}
	if _, err := second.Result(); !errors.Is(err, ErrCanceled) {
		t.Errorf("second call error %v, want ErrCanceled", err)
	}

	result, err := third.Result()
	if err != nil {
		t.Fatalf("third call: %v", err)
	}
	if result != "c" {
		t.Errorf("third call result %v, want c", result)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
	if got := lastArg.Load(); got != "c" {
		t.Errorf("callback saw arg %v, want c", got)
	}
}

func TestZeroDelayDefers(t *testing.T) {
	var ran atomic.Bool
	d := New(func(args ...any) (any, error) {
		ran.Store(true)
		return nil, nil
	})

	call := d.Debounce(0)
	if ran.Load() {
		t.Error("zero-delay callback ran synchronously inside Debounce")
	}
	if _, err := call.Result(); err != nil {
		t.Fatalf("zero-delay call: %v", err)
	}
	if !ran.Load() {
		t.Error("zero-delay callback never ran")
	}
}

func TestClearBeforeFire(t *testing.T) {
	var ran atomic.Bool
	d := New(func(args ...any) (any, error) {
		ran.Store(true)
		return nil, nil
	})

	call := d.Debounce(100 * time.Millisecond)
	d.Clear()

	if _, err := call.Result(); !errors.Is(err, ErrCanceled) {
		t.Errorf("cleared call error %v, want ErrCanceled", err)
	}
	time.Sleep(150 * time.Millisecond)
	if ran.Load() {
		t.Error("callback ran despite Clear")
	}
}

func TestClearIdempotent(t *testing.T) {
	d := New(nil)
	d.Clear()
	d.Clear()

	call := d.Debounce(10 * time.Millisecond)
	d.Clear()
	d.Clear()

	if _, err := call.Result(); !errors.Is(err, ErrCanceled) {
		t.Errorf("call error %v, want ErrCanceled", err)
	}
}

func TestCallbackSwap(t *testing.T) {
	var oldRan, newRan atomic.Bool
	d := New(func(args ...any) (any, error) {
		oldRan.Store(true)
		return "old", nil
	})

	call := d.Debounce(30 * time.Millisecond)
	d.SetFunc(func(args ...any) (any, error) {
		newRan.Store(true)
		return "new", nil
	})

	result, err := call.Result()
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if result != "new" {
		t.Errorf("result %v, want new", result)
	}
	if oldRan.Load() {
		t.Error("callback active at scheduling time ran; firing must use the latest")
	}
	if !newRan.Load() {
		t.Error("swapped-in callback never ran")
	}
}

func TestCallbackError(t *testing.T) {
	boom := errors.New("boom")
	d := New(func(args ...any) (any, error) {
		return nil, boom
	})

	call := d.Debounce(10 * time.Millisecond)
	if _, err := call.Result(); !errors.Is(err, boom) {
		t.Errorf("call error %v, want callback error propagated verbatim", err)
	}
}

func TestIsPending(t *testing.T) {
	d := New(func(args ...any) (any, error) { return nil, nil })

	if d.IsPending() {
		t.Error("fresh debouncer reports pending")
	}

	call := d.Debounce(30 * time.Millisecond)
	if !d.IsPending() {
		t.Error("not pending immediately after Debounce")
	}

	if _, err := call.Result(); err != nil {
		t.Fatalf("call: %v", err)
	}
	if d.IsPending() {
		t.Error("still pending after firing")
	}

	d.Debounce(time.Hour)
	d.Clear()
	if d.IsPending() {
		t.Error("still pending after Clear")
	}
}

func TestArgsReachCallback(t *testing.T) {
	d := New(func(args ...any) (any, error) {
		sum := 0
		for _, a := range args {
			sum += a.(int)
		}
		return sum, nil
	})

	result, err := d.Debounce(5*time.Millisecond, 1, 2, 3).Result()
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if result != 6 {
		t.Errorf("result %v, want 6", result)
	}
}

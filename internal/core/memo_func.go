// Package core implements the memoizing wrapper around a simulated remote call.
//
// A Memoizer owns a private Storage keyed by the operand pair of each call.
// The first call for a pair pays the full delay of the underlying function;
// every later call for the same pair is answered from the store without
// waiting and without invoking the function again.
//
// # In-flight calls
//
// By default there is no in-flight deduplication: two overlapping calls for
// the same pair, both started before either finished, both miss the store and
// both invoke the underlying function. Set Config.SingleFlight to share one
// execution between such callers.
//
// # Usage
//
// This package is not intended for direct use. Use the memobench package for
// the public API.
//
//	cached := core.NewMemoizedFunction(remote.Call, nil, nil)
//	v, err := cached(ctx, 100*time.Millisecond, 3, 4)
package core

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osmike/memobench/internal/lib/errs"
	"github.com/osmike/memobench/internal/lib/hooks"
	"github.com/osmike/memobench/internal/lib/keygen"
)

// ErrPanic is returned if a panic occurs in the memoized function.
var ErrPanic = errors.New("panic occurred in memoized function")

// RemoteFunc is a two-operand call that may suspend for delay before
// producing its result.
type RemoteFunc func(ctx context.Context, delay time.Duration, a, b int) (float64, error)

// Config configures a Memoizer.
//
//   - SingleFlight: share one execution between overlapping calls for the same operands.
type Config struct {
	SingleFlight bool
}

// Memoizer wraps a RemoteFunc with a private, unbounded result store.
//
// The store is created with the Memoizer and never leaves it. A Memoizer is
// safe for concurrent use.
type Memoizer struct {
	fn    RemoteFunc          // underlying call
	store *Storage[float64]   // results keyed by operand pair
	group *singleflight.Group // nil unless Config.SingleFlight
	hooks *hooks.Hooks        // lifecycle hooks
}

// NewMemoizer returns a Memoizer around fn.
//
//   - fn: The function to memoize.
//   - opts: Optional configuration. Pass nil for defaults.
//   - h: Optional hooks for cache events. Pass nil if not needed.
func NewMemoizer(fn RemoteFunc, opts *Config, h *hooks.Hooks) *Memoizer {
	if opts == nil {
		opts = &Config{}
	}
	if h == nil {
		h = &hooks.Hooks{}
	}

	m := &Memoizer{
		fn:    fn,
		store: NewStorage[float64](),
		hooks: h,
	}
	if opts.SingleFlight {
		m.group = &singleflight.Group{}
	}
	return m
}

// NewMemoizedFunction returns a RemoteFunc with the same signature as fn,
// backed by a new Memoizer.
func NewMemoizedFunction(fn RemoteFunc, opts *Config, h *hooks.Hooks) RemoteFunc {
	return NewMemoizer(fn, opts, h).Call
}

// Call returns the stored result for (a, b) or, on a miss, invokes the
// underlying function and stores its result.
//
// Errors are returned to the caller and never stored. A panic in the
// underlying function is recovered and returned as ErrPanic.
//
// Stats count one miss per execution of the underlying function. With
// SingleFlight, callers that share another caller's execution count as hits.
func (m *Memoizer) Call(ctx context.Context, delay time.Duration, a, b int) (float64, error) {
	key, err := keygen.BuildKey(a, b)
	if err != nil {
		return 0, err
	}
	ev := hooks.Event{Key: key, A: a, B: b}

	if m.group == nil {
		// Fast path: answer from the store without suspending.
		if val, found := m.store.Get(key); found {
			return m.served(ev, val), nil
		}
		return m.execute(ctx, delay, ev)
	}

	if val, found := m.store.Peek(key); found {
		m.store.markHit()
		return m.served(ev, val), nil
	}

	executed := false
	v, err, _ := m.group.Do(key, func() (any, error) {
		executed = true
		// A call for the same key may have completed between Peek and Do.
		if val, ok := m.store.Get(key); ok {
			return m.served(ev, val), nil
		}
		val, err := m.execute(ctx, delay, ev)
		return val, err
	})
	if err != nil {
		return 0, err
	}
	val := v.(float64)
	if !executed {
		m.store.markHit()
		m.served(ev, val)
	}
	return val, nil
}

// served fires OnGet for a result that did not require an execution.
func (m *Memoizer) served(ev hooks.Event, val float64) float64 {
	ev.Value = val
	m.hooks.Run(m.hooks.OnGet, ev)
	return val
}

// Stats returns a snapshot of the store.
func (m *Memoizer) Stats() StorageStat {
	return m.store.Stat()
}

// execute invokes the underlying function and stores a successful result.
func (m *Memoizer) execute(ctx context.Context, delay time.Duration, ev hooks.Event) (val float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.NewError(ErrPanic, map[string]any{
				"key":   ev.Key,
				"panic": r,
			})
			m.hooks.SafeLogError(err)
			val = 0
		}
	}()

	m.hooks.Run(m.hooks.OnExecute, ev)
	val, err = m.fn(ctx, delay, ev.A, ev.B)
	ev.Value = val
	m.hooks.Run(m.hooks.OnDone, ev)

	if err != nil {
		m.hooks.SafeLogError(err)
		return 0, err
	}

	m.store.Set(ev.Key, val)
	m.hooks.Run(m.hooks.OnSet, ev)
	return val, nil
}

// Package memobench compares un-memoized and memoized invocation of a
// simulated latency-bearing call.
//
// # Overview
//
// The package exposes the memoizing wrapper used by the benchmark. Wrapping a
// RemoteFunc returns a function with the same signature whose results are
// cached by operand pair: the first call for a pair pays the full delay,
// every repeat is answered from a private store without waiting.
//
// ## Features
//
//   - Memoization: results are keyed by the (a, b) operand pair.
//   - Ownership: each wrapper owns its store; nothing else can read or mutate it.
//   - No eviction: the store grows for the life of the wrapper.
//   - Optional single-flight: overlapping calls for the same pair can share one execution.
//   - Hooks: optional callbacks on hits, misses and stores for instrumentation.
//
// ## Usage Example
//
//	cached := memobench.NewMemoizedFunction(memobench.SimulatedCall, nil, nil)
//	v, err := cached(ctx, 200*time.Millisecond, 3, 4) // waits 200ms
//	v, err = cached(ctx, 200*time.Millisecond, 3, 4)  // returns immediately
//
// The benchmark itself lives in cmd/memobench.
package memobench

import (
	"github.com/osmike/memobench/internal/core"
	"github.com/osmike/memobench/internal/lib/hooks"
	"github.com/osmike/memobench/internal/remote"
)

// RemoteFunc is a two-operand call that may suspend for a delay.
type RemoteFunc = core.RemoteFunc

// Config configures a memoizing wrapper.
type Config = core.Config

// Hooks provides optional hooks for cache events (hit, miss, store, error).
type Hooks = hooks.Hooks

// Event is passed to every hook.
type Event = hooks.Event

// Memoizer is a memoizing wrapper with access to its store statistics.
type Memoizer = core.Memoizer

// Stats is a snapshot of a Memoizer's store.
type Stats = core.StorageStat

// ErrPanic is returned when the wrapped function panics.
var ErrPanic = core.ErrPanic

// SimulatedCall waits the delay and returns a * b * 1234^10.
var SimulatedCall RemoteFunc = remote.Call

// NewMemoizer wraps fn with a private result store.
//
//   - fn: The function to memoize.
//   - opts: Optional configuration. Pass nil for defaults.
//   - h: Optional hooks for cache events. Pass nil if not needed.
func NewMemoizer(fn RemoteFunc, opts *Config, h *Hooks) *Memoizer {
	return core.NewMemoizer(fn, opts, h)
}

// NewMemoizedFunction wraps fn and returns a function with the same signature.
//
// Example:
//
//	cached := memobench.NewMemoizedFunction(memobench.SimulatedCall, nil, nil)
func NewMemoizedFunction(fn RemoteFunc, opts *Config, h *Hooks) RemoteFunc {
	return core.NewMemoizedFunction(fn, opts, h)
}

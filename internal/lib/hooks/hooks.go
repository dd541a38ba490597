// Package hooks defines the lifecycle callbacks fired by a memoized call.
package hooks

import (
	"fmt"
)

// Event describes a single memoized call as seen by a hook.
type Event struct {
	Key   string  // cache key built from the operands
	A, B  int     // operands of the call
	Value float64 // result, zero until the call has produced one
}

// HookFunc is called on lifecycle events and may return an error to signal
// that something went wrong.
type HookFunc func(ev Event) error

// HookFuncError is called whenever another hook errors or panics.
// It must never panic itself.
type HookFuncError func(err error)

// Hooks holds the set of lifecycle hooks and an error-logging hook.
type Hooks struct {
	OnGet     HookFunc      // served from the cache
	OnExecute HookFunc      // cache miss, about to invoke the underlying call
	OnDone    HookFunc      // underlying call returned
	OnSet     HookFunc      // result stored in the cache
	LogError  HookFuncError // called on any hook error or panic
}

// Run executes the given hook fn with the provided event.
// If fn returns an error *or* panics, Run will recover and forward
// the error to Hooks.LogError (if non-nil), and will not panic itself.
func (h *Hooks) Run(fn HookFunc, ev Event) {
	if fn == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			h.SafeLogError(toError(r))
		}
	}()

	if err := fn(ev); err != nil {
		h.SafeLogError(err)
	}
}

// SafeLogError calls the LogError hook if set, and recovers if it panics.
func (h *Hooks) SafeLogError(err error) {
	if h.LogError == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	h.LogError(err)
}

// toError converts a recovered panic value into an error.
func toError(r any) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return fmt.Errorf("%s", v)
	default:
		return fmt.Errorf("%v", v)
	}
}

// Package remote simulates a latency-bearing remote call.
//
// Call stands in for an HTTP request: it parks the caller on a timer for the
// requested delay and then returns a value computed from its operands.
package remote

import (
	"context"
	"errors"
	"math"
	"time"
)

// Factor is the constant every product is scaled by, 1234^10.
var Factor = math.Pow(1234, 10)

// ErrNegativeDelay is returned when Call is asked to wait a negative duration.
var ErrNegativeDelay = errors.New("delay must not be negative")

// Compute returns a * b * Factor. It is evaluated in floating point, so very
// large operands lose precision instead of overflowing.
func Compute(a, b int) float64 {
	return float64(a) * float64(b) * Factor
}

// Call waits delay and returns Compute(a, b).
//
// The wait is a timer, not a busy loop. If ctx is done first the call returns
// ctx.Err() and no value.
func Call(ctx context.Context, delay time.Duration, a, b int) (float64, error) {
	if delay < 0 {
		return 0, ErrNegativeDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}
	return Compute(a, b), nil
}

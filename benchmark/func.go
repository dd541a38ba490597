package benchmark

import (
	"context"
	"time"

	"github.com/osmike/memobench/internal/remote"
)

// delay is the simulated latency used by every benchmark.
const delay = 10 * time.Millisecond

var ctx = context.Background()

// slowFunc is the simulated remote call under test.
func slowFunc(ctx context.Context, d time.Duration, a, b int) (float64, error) {
	return remote.Call(ctx, d, a, b)
}

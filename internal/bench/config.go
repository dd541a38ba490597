package bench

import (
	"errors"
	"time"

	"github.com/osmike/memobench/internal/lib/errs"
)

// ErrInvalidConfig is returned by Validate when any option is out of range.
var ErrInvalidConfig = errors.New("invalid configuration: all values must be positive")

// Config holds the benchmark options. It is fixed for the life of a Runner.
type Config struct {
	Delay                      time.Duration // artificial latency of every remote call, >= 0
	Tries                      int           // trials per pass, > 0
	Randomizer                 int           // operands are drawn from [0, Randomizer], > 0
	DisplayFirstAndLastResults int           // leading and trailing trials printed individually, >= 0
	Seed                       uint64        // operand source seed, 0 seeds from the clock
	SingleFlight               bool          // deduplicate overlapping memoized calls
}

// DefaultConfig returns the options the benchmark runs with when nothing
// is overridden.
func DefaultConfig() Config {
	return Config{
		Delay:                      0,
		Tries:                      1000,
		Randomizer:                 10,
		DisplayFirstAndLastResults: 10,
	}
}

// Validate checks every range constraint and reports all violations at once.
func (c Config) Validate() error {
	bad := map[string]any{}
	if c.Delay < 0 {
		bad["delay"] = c.Delay
	}
	if c.Tries <= 0 {
		bad["tries"] = c.Tries
	}
	if c.Randomizer <= 0 {
		bad["randomizer"] = c.Randomizer
	}
	if c.DisplayFirstAndLastResults < 0 {
		bad["displayFirstAndLastResults"] = c.DisplayFirstAndLastResults
	}
	if len(bad) > 0 {
		return errs.NewError(ErrInvalidConfig, bad)
	}
	return nil
}

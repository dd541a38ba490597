// Package bench runs the memoization benchmark.
//
// A run is two back-to-back passes over the same number of trials: NO-MEMO
// calls the remote function directly, MEMO calls it through a Memoizer
// created for that pass. Each trial draws two random operands, awaits one
// call and adds its elapsed time to the pass total. Exactly one call is in
// flight at any time.
package bench

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/osmike/memobench/internal/core"
	"github.com/osmike/memobench/internal/lib/hooks"
	"github.com/osmike/memobench/internal/remote"
)

// Pass labels.
const (
	LabelNoMemo = "NO-MEMO"
	LabelMemo   = "MEMO"
)

// RandomSource yields floats uniformly distributed in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// PassResult summarises one pass.
type PassResult struct {
	Label  string
	Trials int               // completed trials
	Logged int               // trials printed individually
	Total  time.Duration     // sum of all trial durations
	Cache  *core.StorageStat // memoized pass only
}

// AverageMillis returns the mean trial duration in milliseconds.
func (p PassResult) AverageMillis() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Total) / float64(time.Millisecond) / float64(p.Trials)
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where per-call lines and summaries are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithRandom replaces the operand source.
func WithRandom(src RandomSource) Option {
	return func(r *Runner) {
		r.rng = src
	}
}

// WithCall replaces the remote call measured by both passes.
func WithCall(fn core.RemoteFunc) Option {
	return func(r *Runner) {
		r.call = fn
	}
}

// Runner executes the benchmark described by a validated Config.
type Runner struct {
	cfg  Config
	out  io.Writer
	rng  RandomSource
	call core.RemoteFunc
}

// NewRunner validates cfg and returns a Runner. An invalid cfg yields
// ErrInvalidConfig and no Runner, so no trial can run.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	r := &Runner{
		cfg:  cfg,
		out:  os.Stdout,
		rng:  rand.New(rand.NewPCG(seed, seed>>1)),
		call: remote.Call,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes the NO-MEMO pass followed by the MEMO pass.
func (r *Runner) Run(ctx context.Context) ([]PassResult, error) {
	direct, err := r.RunPass(ctx, LabelNoMemo, r.call)
	if err != nil {
		return nil, err
	}

	memo := core.NewMemoizer(r.call, &core.Config{SingleFlight: r.cfg.SingleFlight}, memoHooks())
	memoized, err := r.RunPass(ctx, LabelMemo, memo.Call)
	if err != nil {
		return []PassResult{direct}, err
	}
	st := memo.Stats()
	memoized.Cache = &st

	log.WithFields(log.Fields{
		"entries": st.Entries,
		"hits":    st.Hits,
		"misses":  st.Misses,
	}).Info("memo cache")

	return []PassResult{direct, memoized}, nil
}

// RunPass times cfg.Tries sequential calls of fn and prints the pass output.
func (r *Runner) RunPass(ctx context.Context, label string, fn core.RemoteFunc) (PassResult, error) {
	res := PassResult{Label: label}
	log.WithFields(log.Fields{
		"pass":  label,
		"tries": humanize.Comma(int64(r.cfg.Tries)),
		"delay": r.cfg.Delay,
	}).Info("pass started")

	for i := 0; i < r.cfg.Tries; i++ {
		a, b := r.operand(), r.operand()

		start := time.Now()
		if _, err := fn(ctx, r.cfg.Delay, a, b); err != nil {
			return res, fmt.Errorf("%s pass, call %d: %w", label, i+1, err)
		}
		elapsed := time.Since(start)

		res.Total += elapsed
		res.Trials++
		if r.displayed(i) {
			writeCallLine(r.out, label, i, elapsed)
			res.Logged++
		}
	}

	writeSummary(r.out, res)
	log.WithFields(log.Fields{
		"pass":  label,
		"total": res.Total,
	}).Info("pass finished")
	return res, nil
}

// operand draws round(u * Randomizer) for u in [0, 1).
func (r *Runner) operand() int {
	return int(math.Round(r.rng.Float64() * float64(r.cfg.Randomizer)))
}

// displayed reports whether trial i is one of the leading or trailing
// DisplayFirstAndLastResults trials.
func (r *Runner) displayed(i int) bool {
	n := r.cfg.DisplayFirstAndLastResults
	return i < n || i >= r.cfg.Tries-n
}

func memoHooks() *hooks.Hooks {
	return &hooks.Hooks{
		OnGet: func(ev hooks.Event) error {
			log.WithField("key", ev.Key).Debug("cache hit")
			return nil
		},
		OnExecute: func(ev hooks.Event) error {
			log.WithField("key", ev.Key).Debug("cache miss")
			return nil
		},
		LogError: func(err error) {
			log.WithError(err).Error("memoized call failed")
		},
	}
}

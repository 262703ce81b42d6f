// SPDX-License-Identifier: MIT

// Package evolve: functional configuration for optimizers.
//
// Design goals:
//   - Deterministic behavior: the default RNG is seeded with a fixed value.
//   - No dead switches: each option changes observable behavior.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).

package evolve

import (
	"io"
	"log/slog"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed selects the fixed default RNG stream, the one seeded with
	// fallbackSeed.
	DefaultSeed int64 = 0

	// fallbackSeed replaces DefaultSeed so unseeded runs still repeat.
	fallbackSeed int64 = 1

	// DefaultWorkers evaluates training-set fitness sequentially.
	DefaultWorkers = 1
)

// ---------- Internal panic messages ----------

const (
	panicNilRand    = "evolve: WithRand: rng must be non-nil"
	panicNilLogger  = "evolve: WithLogger: logger must be non-nil"
	panicBadWorkers = "evolve: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; build it
// through Option values.
type Options struct {
	seed    int64
	rng     *rand.Rand
	logger  *slog.Logger
	workers int
}

// WithSeed seeds the optimizer's RNG. Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand hands the optimizer an existing RNG. The optimizer becomes its
// only user; do not share it with other goroutines.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.rng = rng }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithWorkers sets how many population members TrainingSet evaluates
// concurrently. n == 1 evaluates sequentially.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults and resolves the RNG and logger.
// Without WithRand the RNG is seeded from WithSeed; DefaultSeed maps to
// fallbackSeed, never to a time-based source.
func gatherOptions(opts ...Option) Options {
	o := Options{seed: DefaultSeed, workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		seed := o.seed
		if seed == DefaultSeed {
			seed = fallbackSeed
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}

// SPDX-License-Identifier: MIT

package evolve

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/neuroevo/layer"
)

// member is one population slot: a model and its last reported error.
type member struct {
	model layer.Layer
	err   float64
}

// Optimizer keeps a fixed-size population of model variants and advances it
// by elitist selection. It never evaluates fitness itself: callers report an
// error (lower is better) for every index with SetError, then call
// NextGeneration.
//
// Survivors keep their error from the previous generation. Overwriting it
// before the next NextGeneration is the caller's responsibility; stale values
// are sorted as-is.
type Optimizer struct {
	seedModel    layer.Layer
	population   []member
	learningRate float64
	generation   int
	stats        GenerationStats

	rng    *rand.Rand
	logger *slog.Logger
}

// New creates populationSize clones of model, each mutated independently
// with magnitude learningRate. All errors start at zero.
//
// Errors:
//   - ErrNilModel, ErrPopulationSize, ErrLearningRate on invalid arguments.
//   - any model.Mutate error (e.g. layer.ErrNotInitialized when model.Init
//     was never called).
func New(model layer.Layer, populationSize int, learningRate float64, opts ...Option) (*Optimizer, error) {
	o := gatherOptions(opts...)

	return newOptimizer(model, populationSize, learningRate, o)
}

// newOptimizer is New with already-resolved options.
func newOptimizer(model layer.Layer, populationSize int, learningRate float64, o Options) (*Optimizer, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if populationSize < 1 {
		return nil, fmt.Errorf("New(%d): %w", populationSize, ErrPopulationSize)
	}
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) || learningRate < 0 {
		return nil, fmt.Errorf("New(%g): %w", learningRate, ErrLearningRate)
	}

	opt := &Optimizer{
		seedModel:    model,
		population:   make([]member, populationSize),
		learningRate: learningRate,
		rng:          o.rng,
		logger:       o.logger,
	}
	for i := range opt.population {
		child, err := model.Mutate(learningRate, opt.rng)
		if err != nil {
			return nil, fmt.Errorf("New: seed clone %d: %w", i, err)
		}
		opt.population[i] = member{model: child}
	}

	return opt, nil
}

// PopulationSize returns N.
func (o *Optimizer) PopulationSize() int {
	return len(o.population)
}

// Generation returns the number of completed NextGeneration calls.
func (o *Optimizer) Generation() int {
	return o.generation
}

// LearningRate returns the base mutation scale.
func (o *Optimizer) LearningRate() float64 {
	return o.learningRate
}

// SeedModel returns the model the population was cloned from. It is not the
// RNG seed; see WithSeed.
func (o *Optimizer) SeedModel() layer.Layer {
	return o.seedModel
}

// checkIndex returns ErrIndexOutOfRange unless 0 <= i < N.
func (o *Optimizer) checkIndex(method string, i int) error {
	if i < 0 || i >= len(o.population) {
		return fmt.Errorf("Optimizer.%s(%d): %w", method, i, ErrIndexOutOfRange)
	}

	return nil
}

// Error returns the error last reported for index i.
func (o *Optimizer) Error(i int) (float64, error) {
	if err := o.checkIndex("Error", i); err != nil {
		return 0, err
	}

	return o.population[i].err, nil
}

// SetError reports the error of the model at index i for this generation.
func (o *Optimizer) SetError(i int, e float64) error {
	if err := o.checkIndex("SetError", i); err != nil {
		return err
	}
	o.population[i].err = e

	return nil
}

// Model returns the model at index i.
func (o *Optimizer) Model(i int) (layer.Layer, error) {
	if err := o.checkIndex("Model", i); err != nil {
		return nil, err
	}

	return o.population[i].model, nil
}

// SetModel replaces the model at index i, keeping its error slot.
func (o *Optimizer) SetModel(i int, m layer.Layer) error {
	if err := o.checkIndex("SetModel", i); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("Optimizer.SetModel(%d): %w", i, ErrNilModel)
	}
	o.population[i].model = m

	return nil
}

// BestModel returns the model at index 0, which after NextGeneration is the
// one with the lowest reported error.
func (o *Optimizer) BestModel() layer.Layer {
	return o.population[0].model
}

// BestError returns the error at index 0.
func (o *Optimizer) BestError() float64 {
	return o.population[0].err
}

// Stats returns the summary of the generation most recently closed by
// NextGeneration, or the zero value before the first one.
func (o *Optimizer) Stats() GenerationStats {
	return o.stats
}

// mutationMagnitude is best² · learningRate: the noise shrinks
// super-linearly as the best error approaches zero.
func (o *Optimizer) mutationMagnitude(best float64) float64 {
	return best * best * o.learningRate
}

// NextGeneration closes the current generation:
//  1. stable-sorts the population ascending by error (NaN sorts last);
//  2. computes magnitude = bestError² · learningRate;
//  3. replaces every index in [N/2, N) with an independent mutated clone
//     of the new best, error reset to zero;
//  4. keeps indices [0, N/2) untouched, stale errors included;
//  5. increments the generation counter.
//
// Errors:
//   - any Mutate error from the best model; the population is then left
//     sorted but only partially replaced and the counter is not advanced.
func (o *Optimizer) NextGeneration() error {
	slices.SortStableFunc(o.population, func(a, b member) int {
		return compareErrors(a.err, b.err)
	})
	o.stats = summarize(o.generation, o.population)

	best := o.population[0]
	mag := o.mutationMagnitude(best.err)
	n := len(o.population)
	for i := n / 2; i < n; i++ {
		child, err := best.model.Mutate(mag, o.rng)
		if err != nil {
			return fmt.Errorf("Optimizer.NextGeneration: clone %d: %w", i, err)
		}
		o.population[i] = member{model: child}
	}
	o.generation++

	o.logger.Debug("generation complete",
		slog.Int("generation", o.stats.Generation),
		slog.Float64("best_error", o.stats.Best),
		slog.Float64("mean_error", o.stats.Mean),
		slog.Float64("worst_error", o.stats.Worst),
		slog.Float64("mutation", mag),
	)

	return nil
}

// compareErrors orders errors ascending with NaN treated as the worst value.
func compareErrors(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SPDX-License-Identifier: MIT

package evolve

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/neuroevo/layer"
	"github.com/katalvlaran/neuroevo/tensor"
)

// TrainingSet drives an Optimizer against a fixed labelled dataset. A
// member's error is the total absolute difference between its outputs and
// the expected outputs, summed over every output coordinate and averaged
// over samples (not over output coordinates).
type TrainingSet struct {
	inputs  []*tensor.Tensor
	outputs []*tensor.Tensor
	opt     *Optimizer
	workers int
}

// NewTrainingSet builds the Optimizer for model and binds it to the samples.
// inputs[i] is expected to produce outputs[i]. The slices are kept by
// reference and must not be modified while training.
//
// Errors:
//   - ErrLengthMismatch if len(inputs) != len(outputs).
//   - ErrEmptyTrainingSet if there are no samples.
//   - any error from New.
func NewTrainingSet(inputs, outputs []*tensor.Tensor, model layer.Layer, populationSize int, learningRate float64, opts ...Option) (*TrainingSet, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("NewTrainingSet(%d, %d): %w", len(inputs), len(outputs), ErrLengthMismatch)
	}
	if len(inputs) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	o := gatherOptions(opts...)
	opt, err := newOptimizer(model, populationSize, learningRate, o)
	if err != nil {
		return nil, err
	}

	return &TrainingSet{inputs: inputs, outputs: outputs, opt: opt, workers: o.workers}, nil
}

// Optimizer returns the underlying Optimizer.
func (ts *TrainingSet) Optimizer() *Optimizer {
	return ts.opt
}

// Len returns the number of samples.
func (ts *TrainingSet) Len() int {
	return len(ts.inputs)
}

// NextGeneration evaluates every population member against the whole set,
// records the errors, and advances the Optimizer.
//
// With WithWorkers(n > 1) members are evaluated concurrently; all error
// writes complete before selection starts.
func (ts *TrainingSet) NextGeneration() error {
	errs, err := ts.evaluate()
	if err != nil {
		return err
	}
	for p, e := range errs {
		ts.opt.population[p].err = e
	}

	return ts.opt.NextGeneration()
}

// evaluate returns the error of every population member, in index order.
func (ts *TrainingSet) evaluate() ([]float64, error) {
	pop := ts.opt.population
	errs := make([]float64, len(pop))

	if ts.workers <= 1 {
		for p := range pop {
			e, err := MeanAbsoluteError(pop[p].model, ts.inputs, ts.outputs)
			if err != nil {
				return nil, fmt.Errorf("TrainingSet: member %d: %w", p, err)
			}
			errs[p] = e
		}
		return errs, nil
	}

	var g errgroup.Group
	g.SetLimit(ts.workers)
	for p := range pop {
		model := pop[p].model
		g.Go(func() error {
			e, err := MeanAbsoluteError(model, ts.inputs, ts.outputs)
			if err != nil {
				return fmt.Errorf("TrainingSet: member %d: %w", p, err)
			}
			errs[p] = e // each goroutine owns slot p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return errs, nil
}

// MeanAbsoluteError runs model on every input and returns
// Σ_samples Σ_coords |out − want| / len(inputs).
//
// Errors:
//   - ErrLengthMismatch / ErrEmptyTrainingSet for bad sample slices.
//   - ErrOutputShape if an output's shape differs from the expected one.
//   - any model.Run error.
func MeanAbsoluteError(model layer.Layer, inputs, outputs []*tensor.Tensor) (float64, error) {
	if len(inputs) != len(outputs) {
		return 0, ErrLengthMismatch
	}
	if len(inputs) == 0 {
		return 0, ErrEmptyTrainingSet
	}

	var total float64
	for t := range inputs {
		out, err := model.Run(inputs[t])
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", t, err)
		}
		if !out.SameShape(outputs[t]) {
			return 0, fmt.Errorf("sample %d (%v vs %v): %w", t, out, outputs[t], ErrOutputShape)
		}
		total += floats.Distance(out.ToSlice(), outputs[t].ToSlice(), 1)
	}

	return total / float64(len(inputs)), nil
}

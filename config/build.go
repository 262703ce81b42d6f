// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/neuroevo/dataset"
	"github.com/katalvlaran/neuroevo/evolve"
	"github.com/katalvlaran/neuroevo/layer"
	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
)

// BuildLayer constructs one uninitialised layer.
func BuildLayer(l LayerConfig) (layer.Layer, error) {
	switch l.Type {
	case LayerDense:
		return layer.NewDense(l.Size), nil
	case LayerBias:
		return layer.NewBias(), nil
	case LayerReLU:
		return layer.ReLU(), nil
	case LayerLeakyReLU:
		return layer.LeakyReLU(), nil
	case LayerSigmoid:
		return layer.Sigmoid(), nil
	case LayerTanh:
		return layer.Tanh(), nil
	case LayerELU:
		return layer.ELU(l.Alpha), nil
	default:
		return nil, fmt.Errorf("config: %q: %w", l.Type, ErrUnknownLayer)
	}
}

// BuildModel constructs and initialises the model, returning it with its
// output shape.
func (c *Config) BuildModel() (*layer.Model, vector.Vector, error) {
	m := layer.NewModel()
	for i, l := range c.Model.Layers {
		built, err := BuildLayer(l)
		if err != nil {
			return nil, nil, fmt.Errorf("model.layers[%d]: %w", i, err)
		}
		m.Add(built)
	}
	out, err := m.Init(vector.FromInts(c.Model.Input...))
	if err != nil {
		return nil, nil, err
	}

	return m, out, nil
}

// DataSet loads the training columns into a dataset.DataSet.
func (c *Config) DataSet() (*dataset.DataSet, error) {
	if c.Training == nil {
		return nil, fmt.Errorf("config: no training section: %w", ErrInvalidConfig)
	}
	d := dataset.New()
	for label, col := range c.Training.Columns {
		for _, v := range col {
			d.AddValue(label, v)
		}
	}

	return d, nil
}

// BuildTrainingSet returns the input and output samples of the training
// section, one rank-1 tensor per sample.
func (c *Config) BuildTrainingSet() (inputs, outputs []*tensor.Tensor, err error) {
	d, err := c.DataSet()
	if err != nil {
		return nil, nil, err
	}
	if inputs, err = d.Samples(c.Training.Inputs...); err != nil {
		return nil, nil, fmt.Errorf("training.inputs: %w", err)
	}
	if outputs, err = d.Samples(c.Training.Outputs...); err != nil {
		return nil, nil, fmt.Errorf("training.outputs: %w", err)
	}

	return inputs, outputs, nil
}

// EvolveOptions maps seed and workers onto evolve options and attaches logger.
func (c *Config) EvolveOptions(logger *slog.Logger) []evolve.Option {
	opts := []evolve.Option{evolve.WithSeed(c.Seed), evolve.WithWorkers(max(c.Workers, 1))}
	if logger != nil {
		opts = append(opts, evolve.WithLogger(logger))
	}

	return opts
}

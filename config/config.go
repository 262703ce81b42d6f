// SPDX-License-Identifier: MIT

// Package config loads neuroevo run files.
//
// A run file is YAML describing the model (input shape and layer list), the
// evolutionary parameters, and either a labelled training set or a
// target-seeking agent scenario:
//
//	model:
//	  input: [4]
//	  layers:
//	    - {type: dense, size: 10}
//	    - {type: relu}
//	    - {type: bias}
//	    - {type: dense, size: 2}
//	    - {type: sigmoid}
//	population: 100
//	learning_rate: 1.5
//	generations: 300
//	training:
//	  columns: {x0: [0, 1], y0: [1, 0]}
//	  inputs: [x0]
//	  outputs: [y0]
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Layer type names accepted in model.layers.
const (
	LayerDense     = "dense"
	LayerBias      = "bias"
	LayerReLU      = "relu"
	LayerLeakyReLU = "leaky_relu"
	LayerSigmoid   = "sigmoid"
	LayerTanh      = "tanh"
	LayerELU       = "elu"
)

// Config is one training run.
type Config struct {
	Model        ModelConfig     `yaml:"model"`
	Population   int             `yaml:"population"`
	LearningRate float64         `yaml:"learning_rate"`
	Generations  int             `yaml:"generations"`
	Seed         int64           `yaml:"seed"`
	Workers      int             `yaml:"workers"`
	Training     *TrainingConfig `yaml:"training,omitempty"`
	Agents       *AgentsConfig   `yaml:"agents,omitempty"`
}

// ModelConfig describes a sequential model.
type ModelConfig struct {
	Input  []int         `yaml:"input"`
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig is one model layer. Size applies to dense, Alpha to elu.
type LayerConfig struct {
	Type  string  `yaml:"type"`
	Size  int     `yaml:"size,omitempty"`
	Alpha float64 `yaml:"alpha,omitempty"`
}

// TrainingConfig is a labelled dataset. Each sample i is built from value i
// of every input label, and likewise for outputs.
type TrainingConfig struct {
	Columns map[string][]float64 `yaml:"columns"`
	Inputs  []string             `yaml:"inputs"`
	Outputs []string             `yaml:"outputs"`
}

// AgentsConfig describes the target-seeking agent scenario: every agent
// observes Emit each tick and is scored by the L1 distance between the
// model's response and Target.
type AgentsConfig struct {
	Count               int       `yaml:"count"`
	TicksPerRound       int       `yaml:"ticks_per_round"`
	RoundsPerGeneration int       `yaml:"rounds_per_generation"`
	Emit                []float64 `yaml:"emit"`
	Target              []float64 `yaml:"target"`
}

// Default returns the reference training run: a 4-bit pattern classifier,
// population 100, learning rate 1.5, 300 generations.
func Default() *Config {
	rows := [][]float64{
		{0, 0, 0, 0}, {1, 1, 1, 1}, {1, 1, 0, 0}, {0, 0, 1, 1},
		{0, 1, 0, 1}, {1, 0, 1, 0}, {1, 0, 0, 1}, {0, 1, 1, 0},
	}
	cols := map[string][]float64{}
	for i, r := range rows {
		for j, v := range r {
			key := fmt.Sprintf("x%d", j)
			cols[key] = append(cols[key], v)
		}
		crossed := 0.0
		if i >= 6 {
			crossed = 1
		}
		cols["y0"] = append(cols["y0"], crossed)
		cols["y1"] = append(cols["y1"], 1-crossed)
	}

	return &Config{
		Model: ModelConfig{
			Input: []int{4},
			Layers: []LayerConfig{
				{Type: LayerDense, Size: 10},
				{Type: LayerReLU},
				{Type: LayerBias},
				{Type: LayerDense, Size: 2},
				{Type: LayerSigmoid},
			},
		},
		Population:   100,
		LearningRate: 1.5,
		Generations:  300,
		Workers:      1,
		Training: &TrainingConfig{
			Columns: cols,
			Inputs:  []string{"x0", "x1", "x2", "x3"},
			Outputs: []string{"y0", "y1"},
		},
	}
}

// DefaultAgents returns the reference agent run: three agents observing
// [1, 1] and seeking [5, 3], two ticks per round, two rounds per generation.
func DefaultAgents() *Config {
	return &Config{
		Model: ModelConfig{
			Input: []int{2},
			Layers: []LayerConfig{
				{Type: LayerDense, Size: 4},
				{Type: LayerReLU},
				{Type: LayerBias},
				{Type: LayerDense, Size: 2},
			},
		},
		LearningRate: 0.1,
		Generations:  300,
		Workers:      1,
		Agents: &AgentsConfig{
			Count:               3,
			TicksPerRound:       2,
			RoundsPerGeneration: 2,
			Emit:                []float64{1, 1},
			Target:              []float64{5, 3},
		},
	}
}

// Load reads and parses the run file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return c, nil
}

// Parse decodes a YAML run file, fills unset workers with 1 and validates.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse: %v: %w", err, ErrInvalidConfig)
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate reports the first problem found.
//
// Errors:
//   - ErrUnknownLayer for a layer type with no constructor.
//   - ErrInvalidConfig for anything else.
func (c *Config) Validate() error {
	if len(c.Model.Input) == 0 {
		return invalid("model.input is empty")
	}
	for i, d := range c.Model.Input {
		if d < 1 {
			return invalid("model.input[%d] = %d, must be >= 1", i, d)
		}
	}
	for i, l := range c.Model.Layers {
		switch l.Type {
		case LayerDense:
			if l.Size < 1 {
				return invalid("model.layers[%d]: dense size %d, must be >= 1", i, l.Size)
			}
		case LayerBias, LayerReLU, LayerLeakyReLU, LayerSigmoid, LayerTanh, LayerELU:
		default:
			return fmt.Errorf("config: model.layers[%d] %q: %w", i, l.Type, ErrUnknownLayer)
		}
	}
	if c.Agents == nil && c.Population < 1 {
		return invalid("population = %d, must be >= 1", c.Population)
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate < 0 {
		return invalid("learning_rate = %g, must be finite and >= 0", c.LearningRate)
	}
	if c.Generations < 0 {
		return invalid("generations = %d, must be >= 0", c.Generations)
	}
	if c.Workers < 1 {
		return invalid("workers = %d, must be >= 1", c.Workers)
	}
	if c.Training == nil && c.Agents == nil {
		return invalid("one of training or agents is required")
	}
	if t := c.Training; t != nil {
		if len(t.Inputs) == 0 || len(t.Outputs) == 0 {
			return invalid("training.inputs and training.outputs must be non-empty")
		}
		for _, l := range append(append([]string(nil), t.Inputs...), t.Outputs...) {
			if _, ok := t.Columns[l]; !ok {
				return invalid("training: label %q has no column", l)
			}
		}
	}
	if a := c.Agents; a != nil {
		if a.Count < 1 || a.TicksPerRound < 1 || a.RoundsPerGeneration < 1 {
			return invalid("agents: count, ticks_per_round and rounds_per_generation must be >= 1")
		}
		if len(a.Emit) == 0 || len(a.Target) == 0 {
			return invalid("agents: emit and target must be non-empty")
		}
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: "+format+": %w", append(args, ErrInvalidConfig)...)
}

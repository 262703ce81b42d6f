// SPDX-License-Identifier: MIT

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/neuroevo/config"
	"github.com/katalvlaran/neuroevo/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults validate and describe the reference runs.
func TestDefaults(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 100, c.Population)
	assert.Equal(t, 1.5, c.LearningRate)
	assert.Equal(t, 300, c.Generations)

	a := config.DefaultAgents()
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.Agents.Count)
}

// TestLoad_Training matches the reference run apart from seed and workers.
func TestLoad_Training(t *testing.T) {
	c, err := config.Load(filepath.Join("testdata", "xor.yaml"))
	require.NoError(t, err)

	def := config.Default()
	assert.Equal(t, def.Model, c.Model)
	assert.Equal(t, def.Training, c.Training)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 4, c.Workers)
	assert.Nil(t, c.Agents)
	assert.Len(t, c.EvolveOptions(nil), 2)
}

// TestLoad_Agents fills omitted workers with 1.
func TestLoad_Agents(t *testing.T) {
	c, err := config.Load(filepath.Join("testdata", "agents.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAgents(), c)
}

// TestLoad_Missing wraps the filesystem error.
func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

// TestParse_Invalid rejects malformed or inconsistent run files.
func TestParse_Invalid(t *testing.T) {
	base := "model: {input: [2], layers: [{type: dense, size: 1}]}\nlearning_rate: 1\n"
	training := "training: {columns: {a: [1], b: [2]}, inputs: [a], outputs: [b]}\n"

	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown key":    {base + "population: 2\nbogus: 1\n" + training, config.ErrInvalidConfig},
		"unknown layer":  {"model: {input: [2], layers: [{type: conv}]}\npopulation: 2\n" + training, config.ErrUnknownLayer},
		"dense size":     {"model: {input: [2], layers: [{type: dense}]}\npopulation: 2\n" + training, config.ErrInvalidConfig},
		"no input":       {"model: {layers: []}\npopulation: 2\n" + training, config.ErrInvalidConfig},
		"population":     {base + training, config.ErrInvalidConfig},
		"learning rate":  {"model: {input: [2], layers: []}\nlearning_rate: -1\npopulation: 2\n" + training, config.ErrInvalidConfig},
		"no workload":    {base + "population: 2\n", config.ErrInvalidConfig},
		"missing column": {base + "population: 2\ntraining: {columns: {a: [1]}, inputs: [a], outputs: [b]}\n", config.ErrInvalidConfig},
		"agent schedule": {base + "agents: {count: 1, ticks_per_round: 0, rounds_per_generation: 1, emit: [1], target: [1]}\n", config.ErrInvalidConfig},
		"not yaml":       {"[", config.ErrInvalidConfig},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuildModel initialises the layer stack.
func TestBuildModel(t *testing.T) {
	m, out, err := config.Default().BuildModel()
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{2}, out)
	assert.Equal(t, vector.Vector{4}, m.InputShape())
	assert.Len(t, m.Layers(), 5)

	c := config.Default()
	c.Model.Layers = append(c.Model.Layers, config.LayerConfig{Type: "conv"})
	_, _, err = c.BuildModel()
	assert.ErrorIs(t, err, config.ErrUnknownLayer)
}

// TestBuildLayer_All covers every accepted layer type.
func TestBuildLayer_All(t *testing.T) {
	for _, typ := range []string{
		config.LayerDense, config.LayerBias, config.LayerReLU, config.LayerLeakyReLU,
		config.LayerSigmoid, config.LayerTanh, config.LayerELU,
	} {
		l, err := config.BuildLayer(config.LayerConfig{Type: typ, Size: 1, Alpha: 1})
		require.NoError(t, err, typ)
		assert.NotNil(t, l, typ)
	}
}

// TestBuildTrainingSet splits columns into per-sample tensors.
func TestBuildTrainingSet(t *testing.T) {
	in, out, err := config.Default().BuildTrainingSet()
	require.NoError(t, err)
	require.Len(t, in, 8)
	require.Len(t, out, 8)
	assert.Equal(t, []float64{1, 0, 0, 1}, in[6].ToSlice())
	assert.Equal(t, []float64{1, 0}, out[6].ToSlice())
	assert.Equal(t, []float64{0, 1}, out[0].ToSlice())

	_, _, err = config.DefaultAgents().BuildTrainingSet()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

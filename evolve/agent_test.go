// SPDX-License-Identifier: MIT

package evolve_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/neuroevo/evolve"
	"github.com/katalvlaran/neuroevo/layer"
	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// targetAgent always observes [1, 1] and scores the last response by its
// L1 distance to [5, 3].
type targetAgent struct {
	last []float64
}

func (a *targetAgent) Reset() { a.last = []float64{0, 0} }

func (a *targetAgent) ProduceOutputs() (*tensor.Tensor, error) {
	return tensor.MustFromSlice(1, 1), nil
}

func (a *targetAgent) ConsumeInputs(in *tensor.Tensor) error {
	a.last = in.ToSlice()

	return nil
}

func (a *targetAgent) Error() float64 {
	return math.Abs(5-a.last[0]) + math.Abs(3-a.last[1])
}

// recordingAgent logs every call and scores itself by 100·id plus the number
// of responses since its last reset.
type recordingAgent struct {
	id       int
	consumed int
	calls    []string
	shape    []float64
	fail     error
}

func (a *recordingAgent) Reset() {
	a.consumed = 0
	a.calls = append(a.calls, "reset")
}

func (a *recordingAgent) ProduceOutputs() (*tensor.Tensor, error) {
	a.calls = append(a.calls, "produce")
	if a.fail != nil {
		return nil, a.fail
	}
	if a.shape != nil {
		return tensor.MustFromSlice(a.shape...), nil
	}

	return tensor.MustFromSlice(1, 1), nil
}

func (a *recordingAgent) ConsumeInputs(*tensor.Tensor) error {
	a.consumed++
	a.calls = append(a.calls, "consume")

	return nil
}

func (a *recordingAgent) Error() float64 {
	a.calls = append(a.calls, "error")

	return float64(100*a.id + a.consumed)
}

func newAgentModel(t testing.TB) *layer.Model {
	t.Helper()
	m := layer.NewModel(
		layer.NewDense(4),
		layer.ReLU(),
		layer.NewBias(),
		layer.NewDense(2),
	)
	_, err := m.Init(vector.New(2))
	require.NoError(t, err)

	return m
}

// TestNewAgentOptimizer_Validation rejects empty rosters and schedules.
func TestNewAgentOptimizer_Validation(t *testing.T) {
	m := newAgentModel(t)

	_, err := evolve.NewAgentOptimizer(m, nil, 1, 1, 0.1)
	assert.ErrorIs(t, err, evolve.ErrNoAgents)

	_, err = evolve.NewAgentOptimizer(m, []evolve.Agent{&targetAgent{}, nil}, 1, 1, 0.1)
	assert.ErrorIs(t, err, evolve.ErrNoAgents)

	_, err = evolve.NewAgentOptimizer(m, []evolve.Agent{&targetAgent{}}, 0, 1, 0.1)
	assert.ErrorIs(t, err, evolve.ErrSchedule)

	_, err = evolve.NewAgentOptimizer(m, []evolve.Agent{&targetAgent{}}, 1, 0, 0.1)
	assert.ErrorIs(t, err, evolve.ErrSchedule)

	_, err = evolve.NewAgentOptimizer(m, []evolve.Agent{&targetAgent{}}, 1, 1, -1)
	assert.ErrorIs(t, err, evolve.ErrLearningRate)
}

// TestAgentOptimizer_Schedule walks ticks, rounds and one generation and
// checks call order, resets and member pairing.
func TestAgentOptimizer_Schedule(t *testing.T) {
	a0, a1 := &recordingAgent{id: 0}, &recordingAgent{id: 1}
	ao, err := evolve.NewAgentOptimizer(newAgentModel(t), []evolve.Agent{a0, a1}, 2, 3, 0.1)
	require.NoError(t, err)

	opt := ao.Optimizer()
	assert.Equal(t, 6, opt.PopulationSize())
	assert.Equal(t, 2, ao.TicksPerRound())
	assert.Equal(t, 3, ao.RoundsPerGeneration())
	assert.Len(t, ao.Agents(), 2)
	assert.Equal(t, []string{"reset"}, a0.calls)

	require.NoError(t, ao.Tick())
	assert.Equal(t, 1, ao.CurrentTick())
	assert.Equal(t, 0, ao.CurrentRound())
	assert.Equal(t, []string{"reset", "produce", "consume", "error"}, a0.calls)

	require.NoError(t, ao.Tick())
	assert.Equal(t, 0, ao.CurrentTick())
	assert.Equal(t, 1, ao.CurrentRound())
	assert.Equal(t, "reset", a1.calls[len(a1.calls)-1])
	assert.Zero(t, a1.consumed)

	require.NoError(t, ao.Tick())
	require.NoError(t, ao.Tick())
	assert.Equal(t, 2, ao.CurrentRound())

	// round r pairs agent i with member r·2+i; error is taken after the last tick
	for i, want := range []float64{2, 102, 2, 102} {
		e, err := opt.Error(i)
		require.NoError(t, err)
		assert.Equal(t, want, e, "member %d", i)
	}

	require.NoError(t, ao.Tick())
	require.NoError(t, ao.Tick())
	assert.Equal(t, 1, opt.Generation())
	assert.Equal(t, 0, ao.CurrentRound())
	assert.Equal(t, 0, ao.CurrentTick())
	assert.Equal(t, 2.0, opt.BestError())
}

// TestAgentOptimizer_TickErrors wraps agent and model failures.
func TestAgentOptimizer_TickErrors(t *testing.T) {
	boom := errors.New("boom")
	ao, err := evolve.NewAgentOptimizer(newAgentModel(t), []evolve.Agent{&recordingAgent{fail: boom}}, 1, 1, 0.1)
	require.NoError(t, err)
	assert.ErrorIs(t, ao.Tick(), boom)
	assert.Equal(t, 0, ao.CurrentTick())

	ao, err = evolve.NewAgentOptimizer(newAgentModel(t), []evolve.Agent{&recordingAgent{shape: []float64{1, 2, 3}}}, 1, 1, 0.1)
	require.NoError(t, err)
	assert.ErrorIs(t, ao.Tick(), layer.ErrShapeMismatch)
}

// failingMutate is a scalar layer whose clones share a budget of Mutate
// calls; once spent, Mutate fails.
type failingMutate struct {
	budget *int
}

func (f *failingMutate) Init(vector.Vector) (vector.Vector, error) { return vector.FromInts(1), nil }

func (f *failingMutate) Run(*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.MustFromSlice(0), nil
}

func (f *failingMutate) Mutate(float64, *rand.Rand) (layer.Layer, error) {
	if *f.budget == 0 {
		return nil, errMutate
	}
	*f.budget--

	return &failingMutate{budget: f.budget}, nil
}

var errMutate = errors.New("mutate budget spent")

// TestAgentOptimizer_TickFailureWritesNothing keeps earlier agents' errors
// out of the population when a later agent fails.
func TestAgentOptimizer_TickFailureWritesNothing(t *testing.T) {
	boom := errors.New("boom")
	ok, bad := &recordingAgent{id: 1}, &recordingAgent{fail: boom}
	ao, err := evolve.NewAgentOptimizer(newAgentModel(t), []evolve.Agent{ok, bad}, 2, 1, 0.1)
	require.NoError(t, err)

	assert.ErrorIs(t, ao.Tick(), boom)
	assert.Equal(t, 1, ok.consumed)
	for i := 0; i < 2; i++ {
		e, err := ao.Optimizer().Error(i)
		require.NoError(t, err)
		assert.Zero(t, e, "member %d", i)
	}
	assert.Equal(t, 0, ao.CurrentTick())
	assert.Equal(t, 0, ao.CurrentRound())
}

// TestAgentOptimizer_NextGenerationFailure leaves the schedule where it was
// when closing the generation fails.
func TestAgentOptimizer_NextGenerationFailure(t *testing.T) {
	budget := 1
	a := &recordingAgent{}
	ao, err := evolve.NewAgentOptimizer(&failingMutate{budget: &budget}, []evolve.Agent{a}, 1, 1, 0.1)
	require.NoError(t, err)

	assert.ErrorIs(t, ao.Tick(), errMutate)
	assert.Equal(t, 0, ao.CurrentTick())
	assert.Equal(t, 0, ao.CurrentRound())
	assert.Equal(t, 0, ao.Optimizer().Generation())
	assert.Equal(t, "error", a.calls[len(a.calls)-1], "agents are not reset")
	assert.Equal(t, 1.0, ao.Optimizer().BestError())
}

// distanceToTarget is the L1 distance between model([1, 1]) and [5, 3].
func distanceToTarget(t *testing.T, m layer.Layer) float64 {
	t.Helper()
	out, err := m.Run(tensor.MustFromSlice(1, 1))
	require.NoError(t, err)
	got := out.ToSlice()

	return math.Abs(5-got[0]) + math.Abs(3-got[1])
}

// TestAgentOptimizer_SingleAgent drives one agent toward [5, 3] and checks
// the best model's response directly.
func TestAgentOptimizer_SingleAgent(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running training loop")
	}
	ao, err := evolve.NewAgentOptimizer(newAgentModel(t), []evolve.Agent{&targetAgent{}}, 2, 2, 0.1, evolve.WithSeed(11))
	require.NoError(t, err)

	opt := ao.Optimizer()
	start := distanceToTarget(t, opt.BestModel())
	for k := 0; k < 300*ao.TicksPerRound()*ao.RoundsPerGeneration(); k++ {
		require.NoError(t, ao.Tick())
	}
	assert.Equal(t, 300, opt.Generation())

	end := distanceToTarget(t, opt.BestModel())
	assert.Less(t, end, start)
	assert.InDelta(t, opt.BestError(), end, 1e-12)
}

// TestAgentOptimizer_LearnsTarget drives three agents toward [5, 3].
func TestAgentOptimizer_LearnsTarget(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running training loop")
	}
	agents := []evolve.Agent{&targetAgent{}, &targetAgent{}, &targetAgent{}}
	ao, err := evolve.NewAgentOptimizer(newAgentModel(t), agents, 2, 2, 0.1, evolve.WithSeed(3))
	require.NoError(t, err)

	opt := ao.Optimizer()
	var first, prev float64
	ticks := ao.TicksPerRound() * ao.RoundsPerGeneration()
	for g := 0; g < 300; g++ {
		for k := 0; k < ticks; k++ {
			require.NoError(t, ao.Tick())
		}
		best := opt.BestError()
		if g == 0 {
			first = best
		} else {
			require.LessOrEqual(t, best, prev, "generation %d", g)
		}
		prev = best
	}
	assert.Equal(t, 300, opt.Generation())
	assert.Less(t, prev, first)
}

// SPDX-License-Identifier: MIT
// Package evolve: sentinel error set.
// Constructors validate eagerly and return these sentinels; callers match
// them with errors.Is. Wrapped errors from layer/tensor pass through %w.

package evolve

import "errors"

var (
	// ErrNilModel indicates a nil seed model.
	ErrNilModel = errors.New("evolve: nil model")

	// ErrPopulationSize indicates a population size < 1.
	ErrPopulationSize = errors.New("evolve: population size must be >= 1")

	// ErrLearningRate indicates a negative, NaN or infinite learning rate.
	ErrLearningRate = errors.New("evolve: learning rate must be finite and >= 0")

	// ErrIndexOutOfRange indicates a population index outside [0, N).
	ErrIndexOutOfRange = errors.New("evolve: population index out of range")

	// ErrLengthMismatch indicates input and output training sets of different length.
	ErrLengthMismatch = errors.New("evolve: the length of the input and output training sets did not match")

	// ErrEmptyTrainingSet indicates a training set without samples.
	ErrEmptyTrainingSet = errors.New("evolve: empty training set")

	// ErrOutputShape indicates a model output whose shape differs from the
	// expected training output.
	ErrOutputShape = errors.New("evolve: model output shape does not match expected output")

	// ErrNoAgents indicates an AgentOptimizer built without agents.
	ErrNoAgents = errors.New("evolve: no agents")

	// ErrSchedule indicates ticksPerRound < 1 or roundsPerGeneration < 1.
	ErrSchedule = errors.New("evolve: ticks per round and rounds per generation must be >= 1")
)

// SPDX-License-Identifier: MIT

// Package evolve trains layer.Layer models without gradients, by elitist
// population search.
//
// 🚀 How it works
//
//	An Optimizer holds N mutated clones of a seed model. Each generation the
//	caller reports an error per member (lower is better), then
//	NextGeneration sorts the population, keeps the better half, and refills
//	the worse half with fresh clones of the single best member mutated by
//
//	  magnitude = bestError² · learningRate
//
//	so the search narrows as the error shrinks.
//
// ✨ Drivers
//
//   - TrainingSet: supervised batches; error = mean total absolute error.
//   - AgentOptimizer: live agents on a tick / round / generation schedule;
//     error = the agent's own score after a round of interaction.
//
// ⚙️ Usage
//
//	ts, err := evolve.NewTrainingSet(inputs, outputs, model, 100, 1.5,
//	    evolve.WithSeed(42), evolve.WithWorkers(4))
//	for g := 0; g < 300; g++ {
//	    if err := ts.NextGeneration(); err != nil { ... }
//	}
//	best := ts.Optimizer().BestModel()
//
// Concurrency:
//
//	Nothing here is safe for concurrent use. TrainingSet may evaluate members
//	on several goroutines (WithWorkers), but selection and mutation always
//	run on the caller's goroutine after every evaluation has finished.
//
// Determinism:
//
//	The mutation RNG defaults to a fixed seed; WithSeed or WithRand override
//	it. The same seed, model and data give the same run.
package evolve

// Package neuroevo is your in-memory playground for building feed-forward
// layer models over rank-N arrays and training them without gradients.
//
// 🚀 What is neuroevo?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Arrays: Vector shapes and first-axis-fastest Tensor storage
//		• Layers: Dense, Bias and elementwise activations behind one contract
//		• Models: sequential composition that is itself a layer
//		• Search: elitist evolutionary optimization of whole models
//		• Drivers: labelled training sets and tick-based live agents
//
// ✨ Why choose neuroevo?
//
//   - Seeded by default – the same seed gives the same run
//   - Errors, not panics – every shape problem is a wrapped sentinel
//   - Parallel fitness – opt-in worker pool for training-set evaluation
//
// Under the hood, everything is organized under these subpackages:
//
//	vector/  shapes and small float vectors
//	tensor/  dense rank-N arrays, odometer iteration, VecMul
//	layer/   Layer contract, Dense, Bias, activations, Model
//	evolve/  Optimizer, TrainingSet, AgentOptimizer
//	dataset/ labelled columns → training tensors
//	config/  YAML run files → models and datasets
//
// Quick ASCII example:
//
//	[4] ─Dense(10)→ [10] ─ReLU→ ─Bias→ ─Dense(2)→ [2] ─Sigmoid→ [2]
//
// The neuroevo command (cmd/neuroevo) runs both drivers from a run file.
//
//	go install github.com/katalvlaran/neuroevo/cmd/neuroevo@latest
package neuroevo

// SPDX-License-Identifier: MIT

// Package layer defines the Layer contract and its variants: parameter
// leaves (Dense, Bias), stateless activations, and the sequential Model.
//
// The contract has exactly three operations:
//
//	Init(shape)        → output shape   (called once, before anything else)
//	Run(input)         → output tensor  (pure given fixed parameters)
//	Mutate(mag, rng)   → perturbed clone
//
// Model is itself a Layer holding other Layers, so models nest:
//
//	m := layer.NewModel(
//	    layer.NewDense(10),
//	    layer.ReLU(),
//	    layer.NewBias(),
//	    layer.NewDense(2),
//	    layer.Sigmoid(),
//	)
//	out, err := m.Init(vector.New(4)) // out == [2]
//
// Mutation:
//
//	Parameter leaves clone their weights as w + U(-1,1)·magnitude, one
//	independent draw per element, in tensor iteration order. The *rand.Rand
//	is passed explicitly through every Mutate call so a seeded source gives
//	reproducible populations. A *rand.Rand is not goroutine-safe; never
//	share one across concurrent Mutate calls.
package layer

// SPDX-License-Identifier: MIT

package layer

import (
	"math/rand"

	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
)

// Layer is a unit of a feed-forward computation graph.
type Layer interface {
	// Init fixes the layer's parameter shapes for the given input shape and
	// returns the output shape. It must be called once before Run or Mutate.
	Init(inputShape vector.Vector) (vector.Vector, error)

	// Run maps an input tensor to a new output tensor.
	Run(input *tensor.Tensor) (*tensor.Tensor, error)

	// Mutate returns a clone whose parameters are perturbed by up to
	// ±magnitude, drawing randomness from rng.
	Mutate(magnitude float64, rng *rand.Rand) (Layer, error)
}

// perturb returns w with U(-1,1)·magnitude added to every element.
// Draws happen in iteration order, one per element.
func perturb(w *tensor.Tensor, magnitude float64, rng *rand.Rand) *tensor.Tensor {
	return w.Apply(func(x float64) float64 {
		return x + (rng.Float64()*2-1)*magnitude
	})
}

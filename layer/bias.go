// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
)

// Bias adds a learned offset to every input element. Its weights have the
// input's shape and start at zero; the shape passes through unchanged.
type Bias struct {
	weights *tensor.Tensor // nil until Init
}

var _ Layer = (*Bias)(nil)

// NewBias returns an uninitialised Bias layer.
func NewBias() *Bias {
	return &Bias{}
}

// Init allocates zero weights shaped like the input.
func (b *Bias) Init(inputShape vector.Vector) (vector.Vector, error) {
	w, err := tensor.FromVector(inputShape)
	if err != nil {
		return nil, fmt.Errorf("Bias.Init(%v): %w", inputShape, err)
	}
	b.weights = w

	return inputShape.Copy(), nil
}

// Run returns input + weights.
func (b *Bias) Run(input *tensor.Tensor) (*tensor.Tensor, error) {
	if b.weights == nil {
		return nil, fmt.Errorf("Bias.Run: %w", ErrNotInitialized)
	}
	if input == nil {
		return nil, fmt.Errorf("Bias.Run: %w", ErrNilLayer)
	}
	if !b.weights.SameShape(input) {
		return nil, fmt.Errorf("Bias.Run(%v): %w", input, ErrShapeMismatch)
	}

	return tensor.Add(input, b.weights)
}

// Mutate returns a Bias with perturbed weights.
func (b *Bias) Mutate(magnitude float64, rng *rand.Rand) (Layer, error) {
	if b.weights == nil {
		return nil, fmt.Errorf("Bias.Mutate: %w", ErrNotInitialized)
	}

	return &Bias{weights: perturb(b.weights, magnitude, rng)}, nil
}

// Weights returns a copy of the weight tensor, or nil before Init.
func (b *Bias) Weights() *tensor.Tensor {
	if b.weights == nil {
		return nil
	}

	return b.weights.Copy()
}

// SetWeights replaces the weights with a copy of w of the initialised shape.
func (b *Bias) SetWeights(w *tensor.Tensor) error {
	if b.weights == nil {
		return fmt.Errorf("Bias.SetWeights: %w", ErrNotInitialized)
	}
	if !b.weights.SameShape(w) {
		return fmt.Errorf("Bias.SetWeights(%v): %w", w, ErrShapeMismatch)
	}
	b.weights = w.Copy()

	return nil
}

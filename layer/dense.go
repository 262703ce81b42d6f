// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
)

// Dense is a fully connected layer: out[j] = Σ_i in[i]·w[i, j].
// It accepts only 1-dimensional inputs; its weights have shape
// [inputSize, outputSize] and start at zero.
type Dense struct {
	outputSize int
	weights    *tensor.Tensor // nil until Init
}

var _ Layer = (*Dense)(nil)

// NewDense returns an uninitialised Dense layer producing outputSize values.
func NewDense(outputSize int) *Dense {
	return &Dense{outputSize: outputSize}
}

// OutputSize returns the number of outputs.
func (d *Dense) OutputSize() int {
	return d.outputSize
}

// Init allocates zero weights of shape [inputShape[0], outputSize].
//
// Errors:
//   - ErrRank if inputShape is not 1-dimensional.
//   - ErrBadOutputSize if outputSize <= 0.
//   - tensor.ErrBadShape if the input extent rounds to <= 0.
func (d *Dense) Init(inputShape vector.Vector) (vector.Vector, error) {
	if inputShape.Dimensions() != 1 {
		return nil, fmt.Errorf("Dense.Init(%v): %w", inputShape, ErrRank)
	}
	if d.outputSize <= 0 {
		return nil, fmt.Errorf("Dense.Init(%d): %w", d.outputSize, ErrBadOutputSize)
	}
	w, err := tensor.New(inputShape.Rounded()[0], d.outputSize)
	if err != nil {
		return nil, fmt.Errorf("Dense.Init(%v): %w", inputShape, err)
	}
	d.weights = w

	return vector.FromInts(d.outputSize), nil
}

// Run computes the dense matrix-vector product.
//
// Errors:
//   - ErrNotInitialized before Init.
//   - ErrShapeMismatch unless input has shape [inputSize].
func (d *Dense) Run(input *tensor.Tensor) (*tensor.Tensor, error) {
	if d.weights == nil {
		return nil, fmt.Errorf("Dense.Run: %w", ErrNotInitialized)
	}
	if input == nil {
		return nil, fmt.Errorf("Dense.Run: %w", ErrNilLayer)
	}
	if input.Rank() != 1 || input.Dims()[0] != d.weights.Dims()[0] {
		return nil, fmt.Errorf("Dense.Run(%v): %w", input, ErrShapeMismatch)
	}

	return tensor.VecMul(input, d.weights)
}

// Mutate returns a Dense with the same shape and perturbed weights.
func (d *Dense) Mutate(magnitude float64, rng *rand.Rand) (Layer, error) {
	if d.weights == nil {
		return nil, fmt.Errorf("Dense.Mutate: %w", ErrNotInitialized)
	}

	return &Dense{outputSize: d.outputSize, weights: perturb(d.weights, magnitude, rng)}, nil
}

// Weights returns a copy of the weight tensor, or nil before Init.
func (d *Dense) Weights() *tensor.Tensor {
	if d.weights == nil {
		return nil
	}

	return d.weights.Copy()
}

// SetWeights replaces the weights with a copy of w, which must match the
// shape chosen by Init.
func (d *Dense) SetWeights(w *tensor.Tensor) error {
	if d.weights == nil {
		return fmt.Errorf("Dense.SetWeights: %w", ErrNotInitialized)
	}
	if !d.weights.SameShape(w) {
		return fmt.Errorf("Dense.SetWeights(%v): %w", w, ErrShapeMismatch)
	}
	d.weights = w.Copy()

	return nil
}

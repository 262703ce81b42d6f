// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
)

// Model runs an ordered list of layers in series. It is itself a Layer.
type Model struct {
	layers      []Layer
	inputShape  vector.Vector
	initialized bool
}

var _ Layer = (*Model)(nil)

// NewModel returns a Model over the given layers, in order.
func NewModel(layers ...Layer) *Model {
	m := &Model{layers: make([]Layer, 0, len(layers))}
	m.layers = append(m.layers, layers...)

	return m
}

// Add appends layers. Call Init afterwards; layers added after Init are
// not initialised.
func (m *Model) Add(layers ...Layer) {
	m.layers = append(m.layers, layers...)
}

// Layers returns the child layers in order. The slice is a copy; the
// layers themselves are shared.
func (m *Model) Layers() []Layer {
	out := make([]Layer, len(m.layers))
	copy(out, m.layers)

	return out
}

// InputShape returns the shape recorded by Init, or nil before Init.
func (m *Model) InputShape() vector.Vector {
	if !m.initialized {
		return nil
	}

	return m.inputShape.Copy()
}

// Init records inputShape and threads it through every child in order,
// returning the last child's output shape.
//
// Errors:
//   - ErrNilLayer if a child is nil.
//   - any child Init error, wrapped with the child's index.
func (m *Model) Init(inputShape vector.Vector) (vector.Vector, error) {
	next := inputShape.Copy()
	for i, l := range m.layers {
		if l == nil {
			return nil, fmt.Errorf("Model.Init: layer %d: %w", i, ErrNilLayer)
		}
		out, err := l.Init(next)
		if err != nil {
			return nil, fmt.Errorf("Model.Init: layer %d: %w", i, err)
		}
		next = out
	}
	m.inputShape = inputShape.Copy()
	m.initialized = true

	return next, nil
}

// Run feeds input through every child in order.
//
// Errors:
//   - ErrNotInitialized before Init.
//   - ErrShapeMismatch unless input has exactly the shape given to Init
//     (same rank and equal extents).
//   - any child Run error, wrapped with the child's index.
func (m *Model) Run(input *tensor.Tensor) (*tensor.Tensor, error) {
	if !m.initialized {
		return nil, fmt.Errorf("Model.Run: %w", ErrNotInitialized)
	}
	if input == nil {
		return nil, fmt.Errorf("Model.Run: %w", ErrNilLayer)
	}
	shape := input.Shape()
	if shape.Dimensions() != m.inputShape.Dimensions() || !shape.Equal(m.inputShape) {
		return nil, fmt.Errorf("Model.Run(%v != %v): %w", shape, m.inputShape, ErrShapeMismatch)
	}
	if len(m.layers) == 0 {
		return input.Copy(), nil
	}

	next := input
	for i, l := range m.layers {
		out, err := l.Run(next)
		if err != nil {
			return nil, fmt.Errorf("Model.Run: layer %d: %w", i, err)
		}
		next = out
	}

	return next, nil
}

// Mutate clones every child with the same magnitude and rng. The clone keeps
// the recorded input shape and is ready to Run.
func (m *Model) Mutate(magnitude float64, rng *rand.Rand) (Layer, error) {
	if !m.initialized {
		return nil, fmt.Errorf("Model.Mutate: %w", ErrNotInitialized)
	}
	child := &Model{
		layers:      make([]Layer, len(m.layers)),
		inputShape:  m.inputShape.Copy(),
		initialized: true,
	}
	for i, l := range m.layers {
		c, err := l.Mutate(magnitude, rng)
		if err != nil {
			return nil, fmt.Errorf("Model.Mutate: layer %d: %w", i, err)
		}
		child.layers[i] = c
	}

	return child, nil
}

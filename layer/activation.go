// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
)

// leakySlope is the negative-side slope of LeakyReLU.
const leakySlope = 0.01

// Activation is a stateless element-wise layer. It preserves shape, has no
// parameters, and mutates into itself.
type Activation struct {
	name string
	fn   func(float64) float64
}

var _ Layer = (*Activation)(nil)

// ReLU returns max(0, x).
func ReLU() *Activation {
	return &Activation{name: "relu", fn: func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	}}
}

// LeakyReLU returns x for x > 0 and 0.01·x otherwise.
func LeakyReLU() *Activation {
	return &Activation{name: "leaky_relu", fn: func(x float64) float64 {
		if x > 0 {
			return x
		}
		return x * leakySlope
	}}
}

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid() *Activation {
	return &Activation{name: "sigmoid", fn: func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	}}
}

// Tanh returns the hyperbolic tangent.
func Tanh() *Activation {
	return &Activation{name: "tanh", fn: math.Tanh}
}

// ELU returns x for x > 0 and alpha·(e^x − 1) otherwise.
func ELU(alpha float64) *Activation {
	return &Activation{name: fmt.Sprintf("elu(%g)", alpha), fn: func(x float64) float64 {
		if x > 0 {
			return x
		}
		return alpha * math.Expm1(x)
	}}
}

// Name identifies the activation, e.g. "relu".
func (a *Activation) Name() string {
	return a.name
}

// Init returns the input shape unchanged.
func (a *Activation) Init(inputShape vector.Vector) (vector.Vector, error) {
	return inputShape.Copy(), nil
}

// Run applies the activation to every element.
func (a *Activation) Run(input *tensor.Tensor) (*tensor.Tensor, error) {
	if input == nil {
		return nil, fmt.Errorf("Activation.Run(%s): %w", a.name, ErrNilLayer)
	}

	return input.Apply(a.fn), nil
}

// Mutate returns the receiver. An Activation is immutable, so clones share it.
func (a *Activation) Mutate(float64, *rand.Rand) (Layer, error) {
	return a, nil
}

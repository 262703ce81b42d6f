// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with call
// context via %w); tests and callers match them with errors.Is.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a shape has rank 0 or a non-positive extent.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates a coordinate outside [0, extent) on some axis,
	// or a coordinate whose rank differs from the tensor's.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g. an
	// iteration bound with more axes than the tensor, or ragged rows.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrEmptyData indicates that a constructor received no values.
	ErrEmptyData = errors.New("tensor: empty data")

	// ErrNilTensor indicates that a nil *Tensor was passed where one is required.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

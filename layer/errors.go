// SPDX-License-Identifier: MIT
// Package layer: sentinel error set.

package layer

import "errors"

var (
	// ErrShapeMismatch is returned when an input tensor does not have the
	// shape a layer or model was initialised with.
	ErrShapeMismatch = errors.New("layer: size of input did not match model")

	// ErrRank indicates that Init received a shape with the wrong number of
	// dimensions (e.g. a non-1D input to a Dense layer).
	ErrRank = errors.New("layer: input shape has the wrong number of dimensions")

	// ErrNotInitialized is returned by Run or Mutate before Init succeeded.
	ErrNotInitialized = errors.New("layer: not initialized")

	// ErrNilLayer indicates a nil child layer or nil input tensor.
	ErrNilLayer = errors.New("layer: nil layer or input")

	// ErrBadOutputSize indicates a non-positive Dense output size.
	ErrBadOutputSize = errors.New("layer: output size must be > 0")
)

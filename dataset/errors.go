// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.

package dataset

import "errors"

var (
	// ErrInvalidValue indicates a stored value that is not a Go number.
	ErrInvalidValue = errors.New("dataset: invalid value type")

	// ErrNoLabels indicates a conversion called without labels.
	ErrNoLabels = errors.New("dataset: no labels given")

	// ErrEmptyLabel indicates a conversion over labels that hold no values.
	ErrEmptyLabel = errors.New("dataset: label has no values")

	// ErrRaggedLabels indicates Samples over labels of different sizes.
	ErrRaggedLabels = errors.New("dataset: labels differ in size")

	// ErrIndexOutOfRange indicates a value index outside [0, LabelSize).
	ErrIndexOutOfRange = errors.New("dataset: value index out of range")
)

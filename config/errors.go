// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

var (
	// ErrInvalidConfig indicates a run file that fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownLayer indicates a layer type with no constructor.
	ErrUnknownLayer = errors.New("config: unknown layer type")
)

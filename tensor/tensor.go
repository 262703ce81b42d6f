// SPDX-License-Identifier: MIT

// Package tensor - dense storage (first axis fastest) & safe accessors.
//
// Purpose:
//   - Provide a single flat buffer addressed by an explicit strided offset.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(rank); Copy/Apply: O(size).

package tensor

import (
	"fmt"

	"github.com/katalvlaran/neuroevo/vector"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxFrom    = "FromData"
	ctxRows    = "FromRows"
	ctxToRows  = "ToRows"
	ctxIterate = "IteratePositions"
	ctxApply   = "ApplyRange"
)

// tensorErrorf wraps a sentinel with the method tag and the coordinate involved.
func tensorErrorf(method string, coord []int, err error) error {
	return fmt.Errorf("Tensor.%s(%v): %w", method, coord, err)
}

// Tensor is a dense rank-N array of float64.
//   - dims holds the per-axis extents (all > 0).
//   - strides[0] == 1 and strides[i] == strides[i-1]*dims[i-1].
//   - data holds product(dims) elements in odometer order.
type Tensor struct {
	dims    []int
	strides []int
	data    []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Tensor)(nil)

// New allocates a zero tensor with the given extents.
//
// Errors:
//   - ErrBadShape if shape is empty or any extent is <= 0.
//
// Complexity: O(product(shape)).
func New(shape ...int) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, tensorErrorf(ctxNew, shape, ErrBadShape)
	}
	for _, d := range shape {
		if d <= 0 {
			return nil, tensorErrorf(ctxNew, shape, ErrBadShape)
		}
	}

	return newUnchecked(shape), nil
}

// FromVector allocates a zero tensor whose extents are shape rounded to
// the nearest integers.
func FromVector(shape vector.Vector) (*Tensor, error) {
	return New(shape.Rounded()...)
}

// MustNew is New that panics on an invalid shape.
func MustNew(shape ...int) *Tensor {
	t, err := New(shape...)
	if err != nil {
		panic(err)
	}

	return t
}

// newUnchecked builds the strides and the zeroed buffer for validated extents.
func newUnchecked(shape []int) *Tensor {
	dims := make([]int, len(shape))
	copy(dims, shape)

	strides := make([]int, len(dims))
	size := 1
	for i, d := range dims {
		strides[i] = size
		size *= d
	}

	return &Tensor{dims: dims, strides: strides, data: make([]float64, size)}
}

// FromSlice builds a rank-1 tensor holding a copy of values.
//
// Errors:
//   - ErrEmptyData if no values are given.
func FromSlice(values ...float64) (*Tensor, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("Tensor.FromSlice: %w", ErrEmptyData)
	}
	t := newUnchecked([]int{len(values)})
	copy(t.data, values)

	return t, nil
}

// MustFromSlice is FromSlice that panics on empty input.
func MustFromSlice(values ...float64) *Tensor {
	t, err := FromSlice(values...)
	if err != nil {
		panic(err)
	}

	return t
}

// FromRows builds a rank-2 tensor of shape [len(rows), len(rows[0])] so that
// element (i, j) equals rows[i][j].
//
// Errors:
//   - ErrEmptyData if rows or rows[0] is empty.
//   - ErrDimensionMismatch if rows are ragged.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, tensorErrorf(ctxRows, nil, ErrEmptyData)
	}
	r, c := len(rows), len(rows[0])
	t := newUnchecked([]int{r, c})
	for i, row := range rows {
		if len(row) != c {
			return nil, tensorErrorf(ctxRows, []int{i}, ErrDimensionMismatch)
		}
		for j, v := range row {
			t.data[i*t.strides[0]+j*t.strides[1]] = v
		}
	}

	return t, nil
}

// FromData builds a tensor of the given shape from data laid out in
// iteration order (axis 0 fastest).
//
// Errors:
//   - ErrBadShape for an invalid shape.
//   - ErrDimensionMismatch if len(data) != product(shape).
func FromData(shape []int, data []float64) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, tensorErrorf(ctxFrom, shape, ErrDimensionMismatch)
	}
	copy(t.data, data)

	return t, nil
}

// Dims returns a copy of the integer extents.
func (t *Tensor) Dims() []int {
	out := make([]int, len(t.dims))
	copy(out, t.dims)

	return out
}

// Shape returns the extents as a Vector.
func (t *Tensor) Shape() vector.Vector {
	return vector.FromInts(t.dims...)
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int {
	return len(t.dims)
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return len(t.data)
}

// SameShape reports whether t and o have identical rank and extents.
func (t *Tensor) SameShape(o *Tensor) bool {
	if o == nil || len(t.dims) != len(o.dims) {
		return false
	}
	for i, d := range t.dims {
		if o.dims[i] != d {
			return false
		}
	}

	return true
}

// offset returns the flat index of coord, or false when coord has the wrong
// rank or any component lies outside [0, extent).
// Complexity: O(rank).
func (t *Tensor) offset(coord []int) (int, bool) {
	if len(coord) != len(t.dims) {
		return 0, false
	}
	off := 0
	for i, c := range coord {
		if c < 0 || c >= t.dims[i] {
			return 0, false
		}
		off += c * t.strides[i]
	}

	return off, true
}

// At returns the element at coord.
//
// Errors:
//   - ErrOutOfRange (wrapped) on wrong rank or out-of-bounds coordinate.
func (t *Tensor) At(coord ...int) (float64, error) {
	off, ok := t.offset(coord)
	if !ok {
		return 0, tensorErrorf(ctxAt, coord, ErrOutOfRange)
	}

	return t.data[off], nil
}

// Set assigns v at coord.
//
// Errors:
//   - ErrOutOfRange (wrapped) on wrong rank or out-of-bounds coordinate.
func (t *Tensor) Set(v float64, coord ...int) error {
	off, ok := t.offset(coord)
	if !ok {
		return tensorErrorf(ctxSet, coord, ErrOutOfRange)
	}
	t.data[off] = v

	return nil
}

// AtVector is At with a Vector coordinate rounded to integers.
func (t *Tensor) AtVector(pos vector.Vector) (float64, error) {
	return t.At(pos.Rounded()...)
}

// SetVector is Set with a Vector coordinate rounded to integers.
func (t *Tensor) SetVector(pos vector.Vector, v float64) error {
	return t.Set(v, pos.Rounded()...)
}

// ToSlice returns a copy of the elements in iteration order.
func (t *Tensor) ToSlice() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// ToRows returns the elements of a rank-2 tensor as rows[i][j] = t(i, j).
//
// Errors:
//   - ErrDimensionMismatch if the tensor is not rank 2.
func (t *Tensor) ToRows() ([][]float64, error) {
	if len(t.dims) != 2 {
		return nil, tensorErrorf(ctxToRows, t.dims, ErrDimensionMismatch)
	}
	rows := make([][]float64, t.dims[0])
	for i := range rows {
		rows[i] = make([]float64, t.dims[1])
		for j := range rows[i] {
			rows[i][j] = t.data[i*t.strides[0]+j*t.strides[1]]
		}
	}

	return rows, nil
}

// Copy returns an independent deep copy.
func (t *Tensor) Copy() *Tensor {
	out := newUnchecked(t.dims)
	copy(out.data, t.data)

	return out
}

// Equal reports whether o has the same shape and bitwise-equal elements.
func (t *Tensor) Equal(o *Tensor) bool {
	if !t.SameShape(o) {
		return false
	}
	for i, v := range t.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders the shape as "T[2, 3]".
func (t *Tensor) String() string {
	return "T" + t.Shape().String()
}

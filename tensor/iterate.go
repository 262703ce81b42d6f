// SPDX-License-Identifier: MIT

package tensor

import "github.com/katalvlaran/neuroevo/vector"

// IteratePositions calls action for every integer coordinate in the
// half-open box [start, end), clipped to the tensor's extents, in odometer
// order (axis 0 fastest).
//
// Missing trailing components of start default to 0 and of end to the
// extent, so nil bounds mean "whole axis". An empty box visits nothing.
// The slice passed to action is reused between calls: read it, do not
// retain or modify it.
//
// Errors:
//   - ErrDimensionMismatch if start or end has more components than Rank().
//
// Complexity: O(box volume) calls, O(rank) extra space.
func (t *Tensor) IteratePositions(action func(pos []int), start, end []int) error {
	r := len(t.dims)
	if len(start) > r || len(end) > r {
		return tensorErrorf(ctxIterate, t.dims, ErrDimensionMismatch)
	}

	lo := make([]int, r)
	hi := make([]int, r)
	for d := 0; d < r; d++ {
		hi[d] = t.dims[d]
		if d < len(start) && start[d] > 0 {
			lo[d] = start[d]
		}
		if d < len(end) && end[d] < hi[d] {
			hi[d] = end[d]
		}
		if lo[d] >= hi[d] {
			return nil
		}
	}

	pos := make([]int, r)
	copy(pos, lo)
	for {
		action(pos)
		// Odometer step: bump axis 0, carry upward on overflow.
		d := 0
		for ; d < r; d++ {
			pos[d]++
			if pos[d] < hi[d] {
				break
			}
			pos[d] = lo[d]
		}
		if d == r {
			return nil
		}
	}
}

// Iterate visits every coordinate of the tensor in odometer order.
func (t *Tensor) Iterate(action func(pos []int)) {
	// Full-range bounds cannot exceed the rank.
	_ = t.IteratePositions(action, nil, nil)
}

// IterateVector is IteratePositions with Vector bounds and coordinates.
// A fresh Vector is passed on every call.
func (t *Tensor) IterateVector(action func(pos vector.Vector), start, end vector.Vector) error {
	return t.IteratePositions(func(p []int) {
		action(vector.FromInts(p...))
	}, start.Rounded(), end.Rounded())
}

// Apply returns a new tensor of the same shape with f applied to every element.
// Complexity: O(size).
func (t *Tensor) Apply(f func(float64) float64) *Tensor {
	out := newUnchecked(t.dims)
	for i, v := range t.data {
		out.data[i] = f(v)
	}

	return out
}

// ApplyRange returns a new tensor of the same shape where elements inside
// [start, end) are f(element) and all others are zero. f is called in
// odometer order.
//
// Errors:
//   - ErrDimensionMismatch (wrapped) if the bounds have more axes than the tensor.
func (t *Tensor) ApplyRange(f func(float64) float64, start, end []int) (*Tensor, error) {
	out := newUnchecked(t.dims)
	err := t.IteratePositions(func(pos []int) {
		off, _ := t.offset(pos)
		out.data[off] = f(t.data[off])
	}, start, end)
	if err != nil {
		return nil, tensorErrorf(ctxApply, start, err)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package tensor: small element-wise and contraction kernels used by layers.
//
// Kernels operate directly on the flat buffers with fixed loop orders, so
// results are deterministic and no per-element bounds checks are paid.

package tensor

import "fmt"

// Zip returns a new tensor with out[k] = f(a[k], b[k]) for every element.
//
// Errors:
//   - ErrNilTensor if either operand is nil.
//   - ErrDimensionMismatch if the shapes differ.
func Zip(a, b *Tensor, f func(x, y float64) float64) (*Tensor, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Tensor.Zip: %w", ErrNilTensor)
	}
	if !a.SameShape(b) {
		return nil, fmt.Errorf("Tensor.Zip(%v, %v): %w", a.dims, b.dims, ErrDimensionMismatch)
	}
	out := newUnchecked(a.dims)
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out, nil
}

// Add returns the element-wise sum of two same-shaped tensors.
func Add(a, b *Tensor) (*Tensor, error) {
	return Zip(a, b, func(x, y float64) float64 { return x + y })
}

// VecMul contracts a rank-1 tensor v of extent n with a rank-2 tensor m of
// shape [n, k]: out[j] = Σ_i v[i]·m[i, j], out has shape [k].
//
// Errors:
//   - ErrNilTensor if either operand is nil.
//   - ErrDimensionMismatch on wrong ranks or n mismatch.
//
// Complexity: O(n·k).
func VecMul(v, m *Tensor) (*Tensor, error) {
	if v == nil || m == nil {
		return nil, fmt.Errorf("Tensor.VecMul: %w", ErrNilTensor)
	}
	if len(v.dims) != 1 || len(m.dims) != 2 || v.dims[0] != m.dims[0] {
		return nil, fmt.Errorf("Tensor.VecMul(%v, %v): %w", v.dims, m.dims, ErrDimensionMismatch)
	}
	n, k := m.dims[0], m.dims[1]
	out := newUnchecked([]int{k})
	for j := 0; j < k; j++ {
		base := j * m.strides[1] // column j is contiguous: axis 0 is fastest
		var sum float64
		for i := 0; i < n; i++ {
			sum += v.data[i] * m.data[base+i]
		}
		out.data[j] = sum
	}

	return out, nil
}

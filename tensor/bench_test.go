// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/neuroevo/tensor"
)

// BenchmarkIterate_Rank3 measures full odometer traversal of a 32×32×32 tensor.
func BenchmarkIterate_Rank3(b *testing.B) {
	t := tensor.MustNew(32, 32, 32)
	var sink int

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Iterate(func(p []int) { sink += p[0] })
	}
	_ = sink
}

// BenchmarkVecMul_256x256 measures the dense contraction kernel.
func BenchmarkVecMul_256x256(b *testing.B) {
	v := tensor.MustNew(256).Apply(func(float64) float64 { return 1 })
	m := tensor.MustNew(256, 256).Apply(func(float64) float64 { return 0.5 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tensor.VecMul(v, m); err != nil {
			b.Fatalf("VecMul failed: %v", err)
		}
	}
}

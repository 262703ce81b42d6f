// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/neuroevo/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_CopiesInput verifies that New does not alias the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	v := vector.New(src...)
	src[0] = 100

	assert.Equal(t, 1.0, v.Length(0), "New must copy its input")
	assert.Equal(t, 3, v.Dimensions())
}

// TestFromInts converts integer lengths to float coordinates.
func TestFromInts(t *testing.T) {
	v := vector.FromInts(4, 10, 2)
	assert.Equal(t, vector.Vector{4, 10, 2}, v)
}

// TestSetLength mutates a single coordinate in place.
func TestSetLength(t *testing.T) {
	v := vector.Zero(3)
	v.SetLength(1, 7.5)
	assert.Equal(t, vector.Vector{0, 7.5, 0}, v)
}

// TestRounded checks nearest-integer projection with halves rounding to even.
func TestRounded(t *testing.T) {
	v := vector.New(1.4, 1.5, 2.49, 3)
	assert.Equal(t, []int{1, 2, 2, 3}, v.Rounded())

	halves := vector.New(2.5, -0.5, 0.5, 3.5, -1.5)
	assert.Equal(t, []int{2, 0, 0, 4, -2}, halves.Rounded())
}

// TestArea covers the empty-shape convention and the product rule.
func TestArea(t *testing.T) {
	assert.Equal(t, 0.0, vector.Zero(0).Area(), "0-dimensional vector has no area")
	assert.Equal(t, 5.0, vector.New(5).Area())
	assert.Equal(t, 24.0, vector.New(2, 3, 4).Area())
}

// TestResize verifies prefix copy and zero fill.
func TestResize(t *testing.T) {
	v := vector.New(1, 2, 3)

	grown := v.Resize(5)
	assert.Equal(t, vector.Vector{1, 2, 3, 0, 0}, grown)

	shrunk := v.Resize(2)
	assert.Equal(t, vector.Vector{1, 2}, shrunk)

	grown.SetLength(0, 42)
	assert.Equal(t, 1.0, v.Length(0), "Resize must return an independent vector")
}

// TestMagnitude checks the Euclidean norm.
func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, vector.New(3, 4).Magnitude(), 1e-12)
	assert.Equal(t, 0.0, vector.Zero(0).Magnitude())
}

// TestArithmetic_Truncates verifies the shorter-length policy for pairwise ops.
func TestArithmetic_Truncates(t *testing.T) {
	a := vector.New(1, 2, 3)
	b := vector.New(10, 20)

	assert.Equal(t, vector.Vector{11, 22}, a.Add(b))
	assert.Equal(t, vector.Vector{-9, -18}, a.Sub(b))
	assert.Equal(t, vector.Vector{2, 4, 6}, a.Mul(2))
	assert.Equal(t, vector.Vector{0.5, 1, 1.5}, a.Div(2))
}

// TestAddSub_RoundTrip checks that a + b - b == a for equal lengths.
func TestAddSub_RoundTrip(t *testing.T) {
	a := vector.New(0.1, -3.7, 1e6, 42)
	b := vector.New(7.3, 0.2, -5e5, 1e-3)

	got := a.Add(b).Sub(b)
	require.Equal(t, a.Dimensions(), got.Dimensions())
	for i := range a {
		assert.InDelta(t, a[i], got[i], 1e-9, "coordinate %d", i)
	}
}

// TestEqual covers exact and truncated equality.
func TestEqual(t *testing.T) {
	assert.True(t, vector.New(1, 2).Equal(vector.New(1, 2)))
	assert.False(t, vector.New(1, 2).Equal(vector.New(1, 2.0000001)))
	assert.True(t, vector.New(4, 5).Equal(vector.New(4, 5, 9)), "equality truncates to common length")
	assert.True(t, vector.New(1, 3).NotEqual(vector.New(1, 2)))
}

// TestOrdering_AnySemantics pins the asymmetric "any coordinate" comparisons.
func TestOrdering_AnySemantics(t *testing.T) {
	a := vector.New(5, 1)
	b := vector.New(3, 4)

	// a exceeds b in axis 0 and is below it in axis 1: both hold.
	assert.True(t, a.Greater(b))
	assert.True(t, a.Less(b))

	same := vector.New(2, 2)
	assert.False(t, same.Greater(same))
	assert.False(t, same.Less(same))

	assert.True(t, vector.New(2, 3).Greater(vector.New(2, 2)))
	assert.False(t, vector.New(2, 2).Greater(vector.New(2, 3)))
}

// TestApplyAll exercises the unary helpers.
func TestApplyAll(t *testing.T) {
	v := vector.New(-1, 4)
	assert.Equal(t, vector.Vector{1, 4}, v.Apply(math.Abs))
	assert.Equal(t, vector.Vector{-1, 4}, v, "Apply must not mutate the receiver")
	assert.True(t, vector.New(1, 2).All(func(x float64) bool { return x > 0 }))
	assert.False(t, v.All(func(x float64) bool { return x > 0 }))
	assert.True(t, vector.Zero(0).All(func(float64) bool { return false }))
}

// TestString renders the bracketed form.
func TestString(t *testing.T) {
	assert.Equal(t, "[4, 2.5]", vector.New(4, 2.5).String())
	assert.Equal(t, "[]", vector.Zero(0).String())
}

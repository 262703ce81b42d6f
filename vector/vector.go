// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered tuple of float64 coordinates. Its dimension count is
// fixed at construction.
type Vector []float64

// New returns a Vector holding a copy of lengths.
func New(lengths ...float64) Vector {
	v := make(Vector, len(lengths))
	copy(v, lengths)

	return v
}

// FromInts returns a Vector whose coordinates are the given integers.
func FromInts(lengths ...int) Vector {
	v := make(Vector, len(lengths))
	for i, l := range lengths {
		v[i] = float64(l)
	}

	return v
}

// Zero returns an all-zero Vector with the given number of dimensions.
// Negative dimensions are treated as zero.
func Zero(dimensions int) Vector {
	if dimensions < 0 {
		dimensions = 0
	}

	return make(Vector, dimensions)
}

// Dimensions reports the number of coordinates.
func (v Vector) Dimensions() int {
	return len(v)
}

// Length returns coordinate i. i must be in [0, Dimensions()).
func (v Vector) Length(i int) float64 {
	return v[i]
}

// SetLength assigns coordinate i in place. i must be in [0, Dimensions()).
func (v Vector) SetLength(i int, length float64) {
	v[i] = length
}

// Lengths returns a copy of the coordinates.
func (v Vector) Lengths() []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Rounded projects every coordinate onto the nearest integer; halves round
// to even, so 0.5 becomes 0 and 2.5 becomes 2.
func (v Vector) Rounded() []int {
	out := make([]int, len(v))
	for i, l := range v {
		out[i] = int(math.RoundToEven(l))
	}

	return out
}

// Area returns the product of all coordinates, or 0 for a 0-dimensional
// Vector (an empty shape has no volume).
func (v Vector) Area() float64 {
	if len(v) == 0 {
		return 0
	}
	area := v[0]
	for i := 1; i < len(v); i++ {
		area *= v[i]
	}

	return area
}

// Resize returns a Vector with n dimensions: the overlapping prefix is
// copied and any extra trailing dimensions are zero.
func (v Vector) Resize(n int) Vector {
	out := Zero(n)
	copy(out, v)

	return out
}

// Magnitude returns the Euclidean norm.
func (v Vector) Magnitude() float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// Apply returns a new Vector with f applied to every coordinate.
func (v Vector) Apply(f func(float64) float64) Vector {
	out := make(Vector, len(v))
	for i, l := range v {
		out[i] = f(l)
	}

	return out
}

// All reports whether every coordinate satisfies cond. True for an empty Vector.
func (v Vector) All(cond func(float64) bool) bool {
	for _, l := range v {
		if !cond(l) {
			return false
		}
	}

	return true
}

// Copy returns an independent copy of v.
func (v Vector) Copy() Vector {
	return New(v...)
}

// String renders the Vector as "[a, b, c]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, l := range v {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(strconv.FormatFloat(l, 'g', -1, 64))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// SPDX-License-Identifier: MIT

// Package vector: pairwise combinators and arithmetic.
//
// Every pairwise operation works over min(a.Dimensions(), b.Dimensions())
// coordinates; trailing coordinates of the longer operand are ignored.

package vector

// Combine returns f(a[i], b[i]) for every overlapping coordinate.
// The result has min(len(a), len(b)) dimensions.
func Combine(a, b Vector, f func(x, y float64) float64) Vector {
	n := min(len(a), len(b))
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		out[i] = f(a[i], b[i])
	}

	return out
}

// CombineAll reports whether cond holds for every overlapping coordinate pair.
// Vacuously true when either Vector is empty.
func CombineAll(a, b Vector, cond func(x, y float64) bool) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !cond(a[i], b[i]) {
			return false
		}
	}

	return true
}

// Add returns the coordinate-wise sum over the common length.
func (v Vector) Add(o Vector) Vector {
	return Combine(v, o, func(x, y float64) float64 { return x + y })
}

// Sub returns the coordinate-wise difference over the common length.
func (v Vector) Sub(o Vector) Vector {
	return Combine(v, o, func(x, y float64) float64 { return x - y })
}

// Mul scales every coordinate by s.
func (v Vector) Mul(s float64) Vector {
	return v.Apply(func(x float64) float64 { return x * s })
}

// Div divides every coordinate by s. Division by zero follows IEEE-754.
func (v Vector) Div(s float64) Vector {
	return v.Apply(func(x float64) float64 { return x / s })
}

// Equal reports whether every overlapping coordinate pair is numerically equal.
func (v Vector) Equal(o Vector) bool {
	return CombineAll(v, o, func(x, y float64) bool { return x == y })
}

// NotEqual is !Equal.
func (v Vector) NotEqual(o Vector) bool {
	return !v.Equal(o)
}

// Greater reports whether ANY overlapping coordinate of v strictly exceeds o's.
func (v Vector) Greater(o Vector) bool {
	return !CombineAll(v, o, func(x, y float64) bool { return x <= y })
}

// Less reports whether ANY overlapping coordinate of v is strictly below o's.
func (v Vector) Less(o Vector) bool {
	return !CombineAll(v, o, func(x, y float64) bool { return x >= y })
}

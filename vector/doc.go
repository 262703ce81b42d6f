// SPDX-License-Identifier: MIT

// Package vector provides Vector, a fixed-length ordered tuple of float64
// values used both as an array shape and as a coordinate.
//
// What is a Vector?
//
//	A Vector is a plain []float64 with value semantics: every combining
//	operation (Add, Sub, Mul, Div, Resize, Apply) returns a new Vector and
//	leaves its operands untouched. SetLength is the only in-place mutator.
//
// Truncation policy:
//
//	Binary operations between vectors of different dimensions operate over
//	the shorter length only. This is NOT an error:
//
//	  New(1, 2, 3).Add(New(10, 20))  // → [11, 22]
//	  New(4, 5).Equal(New(4, 5, 9))  // → true
//
// Ordering is "any" based:
//
//	a.Greater(b) is true when ANY overlapping coordinate of a is strictly
//	greater than b's, even if other coordinates are smaller. Less mirrors
//	it. Callers use these to detect shape overflow, not dominance.
//
// Shapes:
//
//	Rounded() projects a Vector onto integer extents (nearest integer),
//	which is how tensor shapes and coordinates are derived from Vectors.
//
// Complexity: every operation is O(d) in the number of dimensions.
package vector

// SPDX-License-Identifier: MIT

// Package tensor implements a dense rank-N array of float64 values.
//
// Storage:
//
//	A Tensor keeps its extents and one contiguous buffer. The first axis
//	varies fastest, so the flat offset of coordinate (c0, c1, ..., cn) is
//
//	  c0*s0 + c1*s1 + ... + cn*sn,   s0 = 1,  s(i) = s(i-1) * extent(i-1)
//
//	Rank and extents are fixed after construction.
//
// Iteration order:
//
//	IteratePositions walks a half-open box like a mixed-radix odometer:
//	axis 0 increments every step and carries into axis 1 on overflow, and so
//	on up to the last axis. This is exactly the buffer order, so ToSlice,
//	FromData and Iterate agree with each other.
//
// Safety:
//
//	At/Set never panic on user input; they return ErrOutOfRange wrapped with
//	the method name and the offending coordinate. MustNew and MustFromSlice
//	panic and exist for literals whose validity is known at compile time.
//
// Value semantics:
//
//	Apply, ApplyRange and Copy return new tensors and leave the receiver
//	unchanged. The only in-place mutators are Set and SetVector.
package tensor

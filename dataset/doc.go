// SPDX-License-Identifier: MIT

// Package dataset is a small labelled-column store used to assemble
// training tensors.
//
// Each label names a column holding an ordered list of values. Values are
// stored untyped and only checked when converted: ToTensor packs columns into
// a rank-2 [labels, values] tensor, Samples turns them into one rank-1 tensor
// per row, which is the shape evolve.NewTrainingSet consumes.
//
// Unknown labels behave like empty columns on read and are ignored on
// removal. A DataSet is not safe for concurrent use.
package dataset

// SPDX-License-Identifier: MIT

package evolve

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes the errors reported for one generation, taken
// after sorting and before the upper half was replaced.
type GenerationStats struct {
	Generation int     // zero-based index of the summarized generation
	Best       float64 // lowest error
	Worst      float64 // highest error
	Mean       float64 // arithmetic mean
	StdDev     float64 // sample standard deviation; 0 for N == 1
}

// summarize computes GenerationStats over the population's error column.
func summarize(generation int, pop []member) GenerationStats {
	errs := make([]float64, len(pop))
	for i, m := range pop {
		errs[i] = m.err
	}

	s := GenerationStats{
		Generation: generation,
		Best:       floats.Min(errs),
		Worst:      floats.Max(errs),
	}
	if len(errs) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(errs, nil)
	} else {
		s.Mean = errs[0]
	}

	return s
}

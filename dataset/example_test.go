// SPDX-License-Identifier: MIT

package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/neuroevo/dataset"
)

// ExampleDataSet_Samples turns two feature columns into per-row inputs.
func ExampleDataSet_Samples() {
	d := dataset.New()
	d.AddValues("a", 0, 1, 0, 1)
	d.AddValues("b", 0, 0, 1, 1)

	samples, err := d.Samples("a", "b")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range samples {
		fmt.Println(s.ToSlice())
	}
	// Output:
	// [0 0]
	// [1 0]
	// [0 1]
	// [1 1]
}

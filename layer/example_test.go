// SPDX-License-Identifier: MIT

package layer_test

import (
	"fmt"

	"github.com/katalvlaran/neuroevo/layer"
	"github.com/katalvlaran/neuroevo/tensor"
	"github.com/katalvlaran/neuroevo/vector"
)

// ExampleModel builds the reference classifier and runs it once. All
// weights start at zero, so every sigmoid output is 0.5.
func ExampleModel() {
	m := layer.NewModel(
		layer.NewDense(10),
		layer.ReLU(),
		layer.NewBias(),
		layer.NewDense(2),
		layer.Sigmoid(),
	)
	shape, err := m.Init(vector.New(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	out, err := m.Run(tensor.MustFromSlice(0, 1, 1, 0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(shape, out.ToSlice())

	_, err = m.Run(tensor.MustFromSlice(0, 1))
	fmt.Println(err)
	// Output:
	// [2] [0.5 0.5]
	// Model.Run([2] != [4]): layer: size of input did not match model
}

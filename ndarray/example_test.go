// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"fmt"

	"github.com/katalvlaran/csaps/ndarray"
)

// ExampleTo2D folds axis 0 of a 2×3 array into the column dimension and back.
func ExampleTo2D() {
	a, _ := ndarray.FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)

	a2, err := ndarray.To2D(a, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a2.Shape(), a2.Data())

	back, _ := ndarray.From2D(a2, a.Shape(), 0)
	fmt.Println(back.Equal(a))
	// Output:
	// [3 2] [1 4 2 5 3 6]
	// true
}

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/evcharge/matrix"
)

// ExampleNewWeightMatrix shows that a raw 0 cell becomes "no edge".
func ExampleNewWeightMatrix() {
	m, err := matrix.NewWeightMatrix([][]float64{
		{0, 12},
		{0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w01, _ := m.At(0, 1)
	w10, _ := m.At(1, 0)
	fmt.Println(matrix.IsEdge(w01), matrix.IsEdge(w10))
	// Output: true false
}

package core_test

import (
	"fmt"

	"github.com/statkit/pmle/core"
)

// ExampleNewParameterVector demonstrates construction and ordered access.
func ExampleNewParameterVector() {
	pv, err := core.NewParameterVector(
		[]string{"Intercept", "age"},
		[]float64{0.97, -0.01},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < pv.Len(); i++ {
		fmt.Printf("%s = %.2f\n", pv.Name(i), pv.Value(i))
	}
	// Output:
	// Intercept = 0.97
	// age = -0.01
}

package survey_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/pmle/survey"
)

// ExampleMeat aggregates a one-parameter score vector over two clusters:
// u_a = 1+2 = 3, u_b = 3+4 = 7, M = (2/1)·(3² + 7²) = 116.
func ExampleMeat() {
	scores := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	design := &survey.Design{PSU: []string{"a", "a", "b", "b"}}

	m, err := survey.Meat(scores, design)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.0f\n", m.At(0, 0))
	// Output:
	// 116
}

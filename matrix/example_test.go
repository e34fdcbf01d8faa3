// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/modularity/matrix"
)

// ExampleModularityMatrix builds B for a single edge a–b.
func ExampleModularityMatrix() {
	am, _ := matrix.NewAdjacencyMatrix([]string{"a", "b"}, [][2]string{{"a", "b"}})
	deg, _ := am.DegreeVector()
	b, _ := matrix.ModularityMatrix(am.Mat, deg, am.EdgeCount())
	fmt.Print(b)
	// Output:
	// [-0.5, 0.5]
	// [0.5, -0.5]
}

// ExampleLeadingEigen shows the dominant eigenpair of a 2×2 symmetric matrix.
func ExampleLeadingEigen() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{2, 1, 1, 2})
	lambda, v, _ := matrix.LeadingEigen(a, matrix.WithSolver(matrix.SolverJacobi))
	fmt.Printf("lambda=%.3f same-sign=%v\n", lambda, v[0]*v[1] > 0)
	// Output:
	// lambda=3.000 same-sign=true
}

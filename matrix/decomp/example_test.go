// SPDX-License-Identifier: MIT
package decomp_test

import (
	"fmt"

	"github.com/katalvlaran/lindec/matrix"
	"github.com/katalvlaran/lindec/matrix/decomp"
)

// ExampleEigenQR decomposes a matrix that is already diagonal, so the
// eigenvalues are read back exactly and the eigenvector basis stays the
// identity.
func ExampleEigenQR() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{0, 3},
	})

	vectors, values := decomp.EigenQR[float64](m, 1e-9, 100)

	fmt.Println("eigenvalues: ", values)
	fmt.Print("eigenvectors:\n", vectors)
	// Output:
	// eigenvalues:  [2, 3]
	// eigenvectors:
	// [1, 0]
	// [0, 1]
}

// ExampleQR verifies the defining property of the factorization: Q is
// orthogonal, R is upper-triangular and their product reconstructs the
// input.
func ExampleQR() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{12, -51, 4},
		{6, 167, -68},
		{-4, 24, -41},
	})

	q, r := decomp.QR[float64](m)

	qt, _ := matrix.Transpose[float64](q)
	qtq, _ := matrix.Mul[float64](qt, q)
	eye, _ := matrix.Identity[float64](3)
	qr, _ := matrix.Mul[float64](q, r)

	fmt.Println("Q orthogonal:", matrix.ApproxEqual[float64](qtq, eye, 1e-10))
	fmt.Println("Q·R == M:    ", matrix.ApproxEqual[float64](qr, m, 1e-10))
	// Output:
	// Q orthogonal: true
	// Q·R == M:     true
}

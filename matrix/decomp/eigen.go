// SPDX-License-Identifier: MIT
// Package decomp: eigendecomposition via QR iteration.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lindec/matrix"
	"github.com/katalvlaran/lindec/scalar"
)

// Documented defaults for callers that have no tolerance policy of their own.
const (
	// DefaultEpsilon is the off-diagonal magnitude below which the
	// iteration is considered converged.
	DefaultEpsilon = 1e-9

	// DefaultMaxIter caps the number of QR iterations.
	DefaultMaxIter = 500
)

// offDiagBelow reports whether every off-diagonal entry of a is smaller in
// magnitude than eps. Column-major scan with early exit on the first
// offending entry; the diagonal is never inspected.
// Pure predicate: a is only read. Complexity: O(r·c) worst case.
func offDiagBelow[N scalar.Float](a matrix.Matrix[N], eps N) bool {
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if i == j {
				continue
			}
			if scalar.Abs(a.UAt(i, j)) >= eps {
				return false
			}
		}
	}

	return true
}

// EigenQR computes approximate eigenvalues and eigenvectors of a square
// matrix by iterating the QR factorization: A ← R·Q drives A toward a
// diagonal (triangular) form while V ← V·Q accumulates the eigenvectors.
// It returns the accumulated eigenvector matrix (eigenvectors are its
// columns) and the diagonal of the final iterate as the eigenvalues.
// The pairing values[j] ↔ column j of vectors is exact for symmetric
// input; for non-symmetric input the iterate converges to triangular
// (Schur) form and the pairing is approximate.
//
// The iteration stops as soon as every off-diagonal entry of the current
// iterate is below eps in magnitude, or after maxIter iterations —
// whichever comes first. Exhausting maxIter is NOT an error: the current
// best estimate is returned, and callers that require strict convergence
// must re-check residual off-diagonal magnitude themselves.
//
// This is the plain (unshifted) QR iteration. Convergence is linear at a
// rate governed by the eigenvalue magnitude ratios, which is ample for
// small well-separated spectra; a trailing-element shift is deliberately
// not applied (see offDiagBelow and the convergence tests — for symmetric
// matrices such as [[2,1],[1,2]] a naive trailing shift makes the
// iteration stationary and the algorithm would never converge).
//
// Panics if m is nil or not square (squareness is the caller's contract).
// Complexity: O(maxIter·n³) worst case, O(n²) memory per iteration.
func EigenQR[N scalar.Float](m matrix.Matrix[N], eps N, maxIter int) (vectors matrix.Matrix[N], values *matrix.Vec[N]) {
	// Stage 1: Contract checks.
	if m == nil {
		panic("decomp: EigenQR: nil matrix")
	}
	rows, cols := m.Rows(), m.Cols()
	if err := matrix.ValidateSquare[N](m); err != nil {
		panic(fmt.Sprintf("decomp: EigenQR: %dx%d: %v", rows, cols, err))
	}

	// Stage 2: Prepare accumulators: V starts at identity, A at a copy of m.
	eye, err := matrix.Identity[N](rows)
	if err != nil {
		panic(fmt.Sprintf("decomp: EigenQR: %v", err))
	}
	vectors = eye
	a := m.Clone()

	// Stage 3: Iterate until the off-diagonal mass drops below eps or the
	// iteration budget runs out. Each pass replaces (not mutates) a and
	// vectors, so intermediate states never alias.
	var (
		iter int
		q, r matrix.Matrix[N]
	)
	for iter = 0; iter < maxIter; iter++ {
		if offDiagBelow(a, eps) {
			break
		}

		q, r = QR(a)
		if a, err = matrix.Mul[N](r, q); err != nil {
			panic(fmt.Sprintf("decomp: EigenQR: %v", err)) // square shapes by construction
		}
		if vectors, err = matrix.Mul[N](vectors, q); err != nil {
			panic(fmt.Sprintf("decomp: EigenQR: %v", err))
		}
	}

	// Stage 4: Read the eigenvalues off the diagonal of the final iterate.
	values, err = matrix.Diag[N](a)
	if err != nil {
		panic(fmt.Sprintf("decomp: EigenQR: %v", err))
	}

	return vectors, values
}

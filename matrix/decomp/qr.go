// SPDX-License-Identifier: MIT
// Package decomp: QR factorization via Householder reflections.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lindec/matrix"
	"github.com/katalvlaran/lindec/scalar"
)

// QR factorizes m into an orthogonal Q and an upper-triangular R such that
// Q·R reconstructs m up to floating-point rounding. m is read through
// Clone and never mutated; q and r are freshly allocated.
//
// Panics if m is nil or has more columns than rows (rows ≥ cols is the
// caller's contract; a violation is a programmer error).
//
// The procedure is closed-form and deterministic: exactly min(rows−1, cols)
// iterations, each building at most one Householder reflector. Columns
// whose sub-diagonal part is already zero are skipped — a zero-vector
// reflector would be undefined, and no reflection is needed.
// Complexity: O(rows³) time, O(rows²) memory per iteration.
func QR[N scalar.Float](m matrix.Matrix[N]) (q, r matrix.Matrix[N]) {
	// Stage 1: Contract checks.
	if m == nil {
		panic("decomp: QR: nil matrix")
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < cols {
		panic(fmt.Sprintf("decomp: QR: %dx%d matrix has more columns than rows", rows, cols))
	}

	// Stage 2: Prepare the accumulators: Q starts at identity, R at a copy of m.
	eye, err := matrix.Identity[N](rows)
	if err != nil {
		panic(fmt.Sprintf("decomp: QR: %v", err))
	}
	q = eye
	r = m.Clone()

	iterations := rows - 1
	if cols < iterations {
		iterations = cols
	}

	// Stage 3: Reduce column k below the diagonal with one reflector each.
	var (
		k     int
		alpha N
		v     *matrix.Vec[N]
		qk    *matrix.Dense[N]
		qkt   *matrix.Dense[N]
	)
	for k = 0; k < iterations; k++ {
		// 3.1: Sub-column of column k from row k to the end.
		v, err = matrix.ColSlice(r, k, k, rows)
		if err != nil {
			panic(fmt.Sprintf("decomp: QR: %v", err)) // unreachable after the shape checks above
		}

		// 3.2: Sign-adjusted norm: pick the sign that moves v[0] away from
		// zero, avoiding catastrophic cancellation in the subtraction below.
		alpha = v.Norm()
		if v.UAt(0) >= 0 {
			alpha = -alpha
		}

		// 3.3: v[0] ← v[0] − α.
		v.USet(0, v.UAt(0)-alpha)

		// 3.4: Normalize in place; a zero magnitude means the column is
		// already reduced and this iteration needs no reflection.
		if scalar.IsZero(v.Normalize()) {
			continue
		}

		// 3.5: Reflect: R ← Qk·R, Q ← Q·Qkᵗ.
		qk = Householder[N](rows, k, v)
		if r, err = matrix.Mul[N](qk, r); err != nil {
			panic(fmt.Sprintf("decomp: QR: %v", err)) // shapes are square-compatible by construction
		}
		if qkt, err = matrix.Transpose[N](qk); err != nil {
			panic(fmt.Sprintf("decomp: QR: %v", err))
		}
		if q, err = matrix.Mul[N](q, qkt); err != nil {
			panic(fmt.Sprintf("decomp: QR: %v", err))
		}
	}

	return q, r
}

// SPDX-License-Identifier: MIT
// Package matrix: algebra kernels over any Matrix/Vector implementation.
// This file declares the canonical linear-algebra kernels used across the
// package: identity construction, column and column-slice extraction,
// transpose, multiplication, matrix-vector product, element-wise
// addition/subtraction, scalar scaling, diagonal extraction and
// tolerance-based equality. All kernels perform strict fail-fast validation
// via validators.go and return sentinel errors on misuse.
//
// Determinism & Performance:
//   - Fixed loop orders everywhere; no map iteration, no randomness.
//   - Kernels take a *Dense fast-path over the flat backing slice and fall
//     back to the unchecked interface accessors otherwise (bounds were
//     established by the shape validators).
//   - Results are always freshly allocated *Dense / *Vec; operands are
//     never mutated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lindec/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opIdentity  = "Identity"
	opCol       = "Col"
	opColSlice  = "ColSlice"
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opDiag      = "Diag"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil to avoid wrapping a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func Identity[N scalar.Float](n int) (*Dense[N], error) {
	eye, err := NewDense[N](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		eye.data[i*n+i] = 1
	}

	return eye, nil
}

// Col extracts column j of m as a freshly allocated vector.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(rows) time and memory.
func Col[N scalar.Float](m Matrix[N], j int) (*Vec[N], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}

	return ColSlice(m, j, 0, m.Rows())
}

// ColSlice extracts the sub-column of column j covering the half-open row
// range [from, to) as a freshly allocated vector.
// Errors: ErrNilMatrix, ErrOutOfRange (invalid column or empty/overflowing range).
// Complexity: O(to−from) time and memory.
func ColSlice[N scalar.Float](m Matrix[N], j, from, to int) (*Vec[N], error) {
	// Stage 1: Validate.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSlice, err)
	}
	if err := ValidateColRange(m, j, from, to); err != nil {
		return nil, matrixErrorf(opColSlice, err)
	}

	// Stage 2: Copy the range; bounds were just established.
	out := &Vec[N]{data: make([]N, to-from)}
	var i int
	if dm, ok := m.(*Dense[N]); ok { // fast-path: stride walk over the flat buffer
		for i = from; i < to; i++ {
			out.data[i-from] = dm.data[i*dm.c+j]
		}

		return out, nil
	}
	for i = from; i < to; i++ { // fallback: unchecked interface reads
		out.data[i-from] = m.UAt(i, j)
	}

	return out, nil
}

// Transpose returns mᵗ as a freshly allocated Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func Transpose[N scalar.Float](m Matrix[N]) (*Dense[N], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()

	out, err := NewDense[N](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	if dm, ok := m.(*Dense[N]); ok { // fast-path over the flat buffer
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				out.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return out, nil
	}
	for i = 0; i < rows; i++ { // fallback: unchecked interface reads
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = m.UAt(i, j)
		}
	}

	return out, nil
}

// Mul computes the matrix product a·b as a freshly allocated Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Determinism: fixed i→j→k loop order in both paths.
// Complexity: O(r·c·k) time, O(r·c) memory.
func Mul[N scalar.Float](a, b Matrix[N]) (*Dense[N], error) {
	// Stage 1: Validate operands.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompat(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()

	// Stage 2: Allocate the result.
	out, err := NewDense[N](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Accumulate.
	var (
		i, j, k int
		sum     N
	)
	da, aFast := a.(*Dense[N])
	db, bFast := b.(*Dense[N])
	if aFast && bFast { // fast-path: both operands expose flat buffers
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				sum = 0
				for k = 0; k < inner; k++ {
					sum += da.data[i*inner+k] * db.data[k*cols+j]
				}
				out.data[i*cols+j] = sum
			}
		}

		return out, nil
	}
	for i = 0; i < rows; i++ { // fallback: unchecked interface reads
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a.UAt(i, k) * b.UAt(k, j)
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// MatVec computes the matrix-vector product a·x as a freshly allocated vector.
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch (a.Cols != x.Len).
// Complexity: O(r·c) time, O(r) memory.
func MatVec[N scalar.Float](a Matrix[N], x Vector[N]) (*Vec[N], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecNotNil(x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateMatVecCompat(a, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := a.Rows(), a.Cols()

	out := &Vec[N]{data: make([]N, rows)}
	var (
		i, j int
		sum  N
	)
	for i = 0; i < rows; i++ {
		sum = 0
		for j = 0; j < cols; j++ {
			sum += a.UAt(i, j) * x.UAt(j)
		}
		out.data[i] = sum
	}

	return out, nil
}

// addSub computes elementwise out = a + sign·b for sign ∈ {+1, −1}.
// Internal helper for Add/Sub to share validation, allocation and fast-path.
// Keeping sign as a scalar avoids an extra branch inside the hot loop.
func addSub[N scalar.Float](a, b Matrix[N], sign N, opTag string) (*Dense[N], error) {
	// Stage 1: Validate operands.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()

	// Stage 2: Allocate and fill.
	out, err := NewDense[N](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, aFast := a.(*Dense[N])
	db, bFast := b.(*Dense[N])
	if aFast && bFast { // fast-path: single flat walk 0..(r·c−1)
		for i := range out.data {
			out.data[i] = da.data[i] + sign*db.data[i]
		}

		return out, nil
	}
	var i, j int
	for i = 0; i < rows; i++ { // fallback: fixed i→j order
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = a.UAt(i, j) + sign*b.UAt(i, j)
		}
	}

	return out, nil
}

// Add computes the elementwise sum a + b as a freshly allocated Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Add[N scalar.Float](a, b Matrix[N]) (*Dense[N], error) {
	return addSub(a, b, 1, opAdd)
}

// Sub computes the elementwise difference a − b as a freshly allocated Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Sub[N scalar.Float](a, b Matrix[N]) (*Dense[N], error) {
	return addSub(a, b, -1, opSub)
}

// Scale computes k·a as a freshly allocated Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func Scale[N scalar.Float](a Matrix[N], k N) (*Dense[N], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := a.Rows(), a.Cols()

	out, err := NewDense[N](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if da, ok := a.(*Dense[N]); ok { // fast-path: single flat walk
		for i := range out.data {
			out.data[i] = k * da.data[i]
		}

		return out, nil
	}
	var i, j int
	for i = 0; i < rows; i++ { // fallback: fixed i→j order
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = k * a.UAt(i, j)
		}
	}

	return out, nil
}

// Diag extracts the main diagonal of m as a freshly allocated vector of
// length min(rows, cols).
// Errors: ErrNilMatrix.
// Complexity: O(min(r,c)) time and memory.
func Diag[N scalar.Float](m Matrix[N]) (*Vec[N], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	n := m.Rows()
	if c := m.Cols(); c < n {
		n = c
	}

	out := &Vec[N]{data: make([]N, n)}
	for i := 0; i < n; i++ {
		out.data[i] = m.UAt(i, i)
	}

	return out, nil
}

// ApproxEqual reports whether a and b have identical shape and every pair
// of corresponding elements differs by at most tol in magnitude.
// Nil operands and shape mismatches report false rather than erroring —
// "not comparable" is not equal.
// Complexity: O(r·c) time, O(1) memory.
func ApproxEqual[N scalar.Float](a, b Matrix[N], tol N) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	rows, cols := a.Rows(), a.Cols()

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !scalar.EqualWithin(a.UAt(i, j), b.UAt(i, j), tol) {
				return false
			}
		}
	}

	return true
}

// VecApproxEqual reports whether x and y have identical length and every
// pair of corresponding elements differs by at most tol in magnitude.
// Complexity: O(n) time, O(1) memory.
func VecApproxEqual[N scalar.Float](x, y Vector[N], tol N) bool {
	if x == nil || y == nil {
		return false
	}
	if x.Len() != y.Len() {
		return false
	}
	for i := 0; i < x.Len(); i++ {
		if !scalar.EqualWithin(x.UAt(i), y.UAt(i), tol) {
			return false
		}
	}

	return true
}

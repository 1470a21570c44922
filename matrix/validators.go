// SPDX-License-Identifier: MIT
// Package matrix: validators — the single, canonical source of truth for
// common shape/nil checks. Kernels stay minimal by delegating here; each
// validator returns a plain sentinel (wrapped only with its own tag) so
// call sites can wrap uniformly and tests can match with errors.Is.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lindec/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[N scalar.Float](m Matrix[N]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecNotNil ensures the vector reference is non-nil.
// Returns ErrNilVector if v == nil.
// Complexity: O(1).
func ValidateVecNotNil[N scalar.Float](v Vector[N]) error {
	if v == nil {
		return validatorErrorf("ValidateVecNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[N scalar.Float](a, b Matrix[N]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Returns nil or wrapped ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[N scalar.Float](m Matrix[N]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompat checks that a·b is dimensionally valid (a.Cols == b.Rows).
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompat[N scalar.Float](a, b Matrix[N]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompat", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMatVecCompat checks that a·x is dimensionally valid (a.Cols == x.Len).
// Assumes a and x are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMatVecCompat[N scalar.Float](a Matrix[N], x Vector[N]) error {
	if a.Cols() != x.Len() {
		return validatorErrorf("ValidateMatVecCompat", ErrDimensionMismatch)
	}

	return nil
}

// ValidateColRange checks that column j and the half-open row range
// [from, to) are valid for m and non-empty.
// Assumes m is not nil (caller must ensure).
// Returns nil or wrapped ErrOutOfRange.
// Complexity: O(1).
func ValidateColRange[N scalar.Float](m Matrix[N], j, from, to int) error {
	if j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateColRange: Column", ErrOutOfRange)
	}
	if from < 0 || to > m.Rows() || from >= to {
		return validatorErrorf("ValidateColRange: Rows", ErrOutOfRange)
	}

	return nil
}

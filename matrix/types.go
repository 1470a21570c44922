// SPDX-License-Identifier: MIT

// Package matrix: capability contracts.
// This file intentionally contains ONLY the generic Vector and Matrix
// interfaces — the minimal surface a storage type must expose for every
// kernel and decomposition in lindec to operate on it. Errors live in
// errors.go, validators in validators.go, dense storage in dense.go/vec.go
// and the algebra kernels in algebra.go, per the package conventions.
package matrix

import "github.com/katalvlaran/lindec/scalar"

// Vector is an ordered, fixed-length sequence of scalars.
//
// Accessors come in two tiers:
//   - At/Set are checked: they validate bounds and return ErrVecOutOfRange.
//   - UAt/USet are unchecked: the caller guarantees 0 ≤ i < Len(). They are
//     meant for hot loops where the shape invariant was already established;
//     violating the guarantee is a programmer error with undefined behavior.
//
// Complexity notes: all methods are expected O(1) except Norm/Normalize
// (O(n)) and Clone (O(n)).
type Vector[N scalar.Float] interface {
	// Len returns the number of elements.
	// Complexity: O(1).
	Len() int

	// At retrieves the element at index i.
	// Returns ErrVecOutOfRange if i < 0 or i >= Len().
	// Complexity: O(1).
	At(i int) (N, error)

	// Set assigns the value v at index i.
	// Returns ErrVecOutOfRange if the index is invalid.
	// Complexity: O(1).
	Set(i int, v N) error

	// UAt retrieves the element at index i without bounds checking.
	// Complexity: O(1).
	UAt(i int) N

	// USet assigns the value v at index i without bounds checking.
	// Complexity: O(1).
	USet(i int, v N)

	// Swap exchanges the elements at indices i and j.
	// Returns ErrVecOutOfRange if either index is invalid.
	// Complexity: O(1).
	Swap(i, j int) error

	// Norm returns the Euclidean norm √(Σ vᵢ²).
	// Complexity: O(n).
	Norm() N

	// Normalize scales the vector to unit Euclidean norm in place and
	// returns the pre-normalization magnitude. A zero vector is left
	// untouched and reported by a zero return value.
	// Complexity: O(n).
	Normalize() N

	// Clone returns a deep copy of the vector.
	// Complexity: O(n).
	Clone() Vector[N]
}

// Matrix is a two-dimensional indexed container of scalars with an
// immutable (rows, cols) shape.
//
// As with Vector, accessors are two-tier: At/Set validate and return
// ErrOutOfRange, UAt/USet trust the caller. The remaining capabilities the
// decompositions need (identity construction, column slicing, transpose,
// multiplication, addition, subtraction, diagonal extraction, approximate
// equality) are package-level kernels in algebra.go that accept any Matrix
// implementation; keeping them off the interface keeps custom storage
// types cheap to write.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r·c)).
type Matrix[N scalar.Float] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (N, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v N) error

	// UAt retrieves the element at (i, j) without bounds checking.
	// Complexity: O(1).
	UAt(i, j int) N

	// USet assigns the value v at (i, j) without bounds checking.
	// Complexity: O(1).
	USet(i, j int, v N)

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows·cols).
	Clone() Matrix[N]
}

// SPDX-License-Identifier: MIT
// Package matrix: Vec — flat-slice reference implementation of Vector.
// Vec backs column extraction, diagonal extraction and the Householder
// working vectors in decomp. All checked accessors return sentinel errors;
// unchecked accessors index the backing slice directly.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lindec/scalar"
)

// vecErrorf wraps an underlying error with Vec method context.
func vecErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vec.%s(%d): %w", method, i, err)
}

// Vec is a dense vector of scalars backed by a flat slice.
type Vec[N scalar.Float] struct {
	data []N // backing storage, length == Len()
}

// Compile-time assertion for interface conformance.
var _ Vector[float64] = (*Vec[float64])(nil)

// NewVec creates a zero-initialized vector of length n.
// Returns ErrInvalidDimensions unless n > 0.
// Complexity: O(n) time and memory.
func NewVec[N scalar.Float](n int) (*Vec[N], error) {
	// Validate length.
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vec[N]{data: make([]N, n)}, nil
}

// NewVecFromSlice creates a vector holding a copy of vals.
// The input slice is not retained. Returns ErrInvalidDimensions on empty input.
// Complexity: O(n) time and memory.
func NewVecFromSlice[N scalar.Float](vals []N) (*Vec[N], error) {
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]N, len(vals))
	copy(data, vals)

	return &Vec[N]{data: data}, nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (v *Vec[N]) Len() int {
	return len(v.data)
}

// At retrieves the element at index i.
// Returns ErrVecOutOfRange if i is outside [0, Len()).
// Complexity: O(1).
func (v *Vec[N]) At(i int) (N, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vecErrorf("At", i, ErrVecOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns the value x at index i.
// Returns ErrVecOutOfRange if i is outside [0, Len()).
// Complexity: O(1).
func (v *Vec[N]) Set(i int, x N) error {
	if i < 0 || i >= len(v.data) {
		return vecErrorf("Set", i, ErrVecOutOfRange)
	}
	v.data[i] = x

	return nil
}

// UAt retrieves the element at index i without bounds checking.
// The caller guarantees 0 ≤ i < Len().
func (v *Vec[N]) UAt(i int) N {
	return v.data[i]
}

// USet assigns x at index i without bounds checking.
// The caller guarantees 0 ≤ i < Len().
func (v *Vec[N]) USet(i int, x N) {
	v.data[i] = x
}

// Swap exchanges the elements at indices i and j.
// Returns ErrVecOutOfRange if either index is invalid.
// Complexity: O(1).
func (v *Vec[N]) Swap(i, j int) error {
	if i < 0 || i >= len(v.data) {
		return vecErrorf("Swap", i, ErrVecOutOfRange)
	}
	if j < 0 || j >= len(v.data) {
		return vecErrorf("Swap", j, ErrVecOutOfRange)
	}
	v.data[i], v.data[j] = v.data[j], v.data[i]

	return nil
}

// Norm returns the Euclidean norm √(Σ vᵢ²).
// Deterministic: fixed ascending accumulation order.
// Complexity: O(n).
func (v *Vec[N]) Norm() N {
	var sum N
	for _, x := range v.data {
		sum += x * x
	}

	return scalar.Sqrt(sum)
}

// Normalize scales the vector to unit Euclidean norm in place and returns
// the pre-normalization magnitude. A zero vector is left untouched; the
// zero return value lets callers skip degenerate reflections.
// Complexity: O(n).
func (v *Vec[N]) Normalize() N {
	mag := v.Norm()
	if scalar.IsZero(mag) {
		return mag // nothing to scale
	}
	for i := range v.data {
		v.data[i] /= mag
	}

	return mag
}

// Clone returns a deep copy of the vector.
// Complexity: O(n) time and memory.
func (v *Vec[N]) Clone() Vector[N] {
	data := make([]N, len(v.data))
	copy(data, v.data)

	return &Vec[N]{data: data}
}

// String implements fmt.Stringer for easy debugging.
func (v *Vec[N]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString("]")

	return sb.String()
}

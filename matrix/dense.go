// SPDX-License-Identifier: MIT
// Package matrix: Dense — row-major reference implementation of Matrix.
// Dense stores elements in a flat slice with the explicit index formula
// i*cols + j for performance and cache friendliness. The public checked
// surface (At/Set) returns errors instead of panicking; UAt/USet index the
// backing slice directly for hot loops that already hold the shape invariant.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lindec/scalar"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of scalars.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[N scalar.Float] struct {
	r, c int // number of rows and columns
	data []N // flat backing storage, length == r*c
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
// Complexity: O(r·c) time and memory.
func NewDense[N scalar.Float](rows, cols int) (*Dense[N], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	data := make([]N, rows*cols)

	return &Dense[N]{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense matrix holding a copy of the given
// row-wise data. The input slices are not retained.
// Returns ErrInvalidDimensions on empty input and ErrRagged when rows have
// unequal lengths.
// Complexity: O(r·c) time and memory.
func NewDenseFromRows[N scalar.Float](rows [][]N) (*Dense[N], error) {
	// Validate outer shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	m, err := NewDense[N](r, c)
	if err != nil {
		return nil, err
	}
	// Copy row by row, rejecting ragged input.
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d elements, want %d: %w", i, len(row), c, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[N]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[N]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[N]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense[N]) At(row, col int) (N, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense[N]) Set(row, col int, v N) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// UAt retrieves the element at (row, col) without bounds checking.
// The caller guarantees 0 ≤ row < Rows() and 0 ≤ col < Cols().
func (m *Dense[N]) UAt(row, col int) N {
	return m.data[row*m.c+col]
}

// USet assigns v at (row, col) without bounds checking.
// The caller guarantees 0 ≤ row < Rows() and 0 ≤ col < Cols().
func (m *Dense[N]) USet(row, col int, v N) {
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r·c) time and memory.
func (m *Dense[N]) Clone() Matrix[N] {
	data := make([]N, len(m.data))
	copy(data, m.data)

	return &Dense[N]{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for easy debugging.
// Rows are rendered one per line as "[a, b, c]".
func (m *Dense[N]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and must-style constructors.
//   - Keep all data finite and well-formed.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lindec/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions.
// Use hide{x} in tests to force the interface-fallback path in kernels
// that fast-path on *Dense; results must match the fast-path bitwise.
type hide struct {
	matrix.Matrix[float64]
}

// hideVec does the same for vectors.
type hideVec struct {
	matrix.Vector[float64]
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from row-wise data or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustVec builds a *Vec from the given values or fails the test.
func MustVec(t *testing.T, vals []float64) *matrix.Vec[float64] {
	t.Helper()
	v, err := matrix.NewVecFromSlice(vals)
	if err != nil {
		t.Fatalf("NewVecFromSlice: %v", err)
	}

	return v
}

// MustAt reads m[i][j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m[i][j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix[float64], i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

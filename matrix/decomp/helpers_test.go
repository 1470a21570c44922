// SPDX-License-Identifier: MIT
// Package decomp_test contains test helpers.
package decomp_test

import (
	"testing"

	"github.com/katalvlaran/lindec/matrix"
)

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

// MustMul multiplies or fails the test.
func MustMul(t *testing.T, a, b matrix.Matrix[float64]) *matrix.Dense[float64] {
	t.Helper()
	out, err := matrix.Mul[float64](a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return out
}

// MustTranspose transposes or fails the test.
func MustTranspose(t *testing.T, m matrix.Matrix[float64]) *matrix.Dense[float64] {
	t.Helper()
	out, err := matrix.Transpose[float64](m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}

	return out
}

// MustIdentity builds I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense[float64] {
	t.Helper()
	eye, err := matrix.Identity[float64](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return eye
}

// requireOrthogonal fails the test unless qᵗ·q ≈ I within tol.
func requireOrthogonal(t *testing.T, q matrix.Matrix[float64], tol float64) {
	t.Helper()
	qtq := MustMul(t, MustTranspose(t, q), q)
	if !matrix.ApproxEqual[float64](qtq, MustIdentity(t, q.Rows()), tol) {
		t.Fatalf("matrix is not orthogonal within %g:\nQᵗQ =\n%v", tol, qtq)
	}
}

// requireUpperTriangular fails the test unless every sub-diagonal entry of
// r is below tol in magnitude.
func requireUpperTriangular(t *testing.T, r matrix.Matrix[float64], tol float64) {
	t.Helper()
	var i, j int
	for j = 0; j < r.Cols(); j++ {
		for i = j + 1; i < r.Rows(); i++ {
			if v := MustAt(t, r, i, j); v > tol || v < -tol {
				t.Fatalf("R[%d,%d] = %g is not ~0, R is not upper-triangular", i, j, v)
			}
		}
	}
}

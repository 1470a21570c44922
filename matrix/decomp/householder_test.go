// SPDX-License-Identifier: MIT
// Package decomp_test contains unit tests for Householder reflector construction.
package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lindec/matrix"
	"github.com/katalvlaran/lindec/matrix/decomp"
)

// reflectorFor builds the normalized Householder vector that maps x onto
// (±‖x‖)·e1, exactly as one QR step would.
func reflectorFor(t *testing.T, x []float64) *matrix.Vec[float64] {
	t.Helper()
	v := MustVec(t, x)
	alpha := v.Norm()
	if v.UAt(0) >= 0 {
		alpha = -alpha
	}
	v.USet(0, v.UAt(0)-alpha)
	require.NotZero(t, v.Normalize(), "degenerate reflector in fixture")

	return v
}

func TestHouseholderZeroesTrailingComponents(t *testing.T) {
	// [3,4] must map onto [−5, 0]: α = −‖x‖ by the sign convention.
	x := MustVec(t, []float64{3, 4})
	h := decomp.Householder[float64](2, 0, reflectorFor(t, []float64{3, 4}))

	hx, err := matrix.MatVec[float64](h, x)
	require.NoError(t, err)
	require.InDelta(t, -5.0, hx.UAt(0), 1e-12)
	require.InDelta(t, 0.0, hx.UAt(1), 1e-12)
}

func TestHouseholderEmbeddedSubspace(t *testing.T) {
	// Reflector over the trailing [3,4] block of a 3-vector, start = 1:
	// index 0 must pass through untouched.
	h := decomp.Householder[float64](3, 1, reflectorFor(t, []float64{3, 4}))

	hx, err := matrix.MatVec[float64](h, MustVec(t, []float64{7, 3, 4}))
	require.NoError(t, err)
	require.InDelta(t, 7.0, hx.UAt(0), 1e-12)
	require.InDelta(t, -5.0, hx.UAt(1), 1e-12)
	require.InDelta(t, 0.0, hx.UAt(2), 1e-12)

	// outside the embedded block the matrix is exactly the identity
	require.Equal(t, 1.0, h.UAt(0, 0))
	require.Equal(t, 0.0, h.UAt(0, 1))
	require.Equal(t, 0.0, h.UAt(0, 2))
	require.Equal(t, 0.0, h.UAt(1, 0))
	require.Equal(t, 0.0, h.UAt(2, 0))
}

func TestHouseholderIsOrthogonalAndInvolutory(t *testing.T) {
	h := decomp.Householder[float64](4, 1, reflectorFor(t, []float64{1, 2, -2}))

	requireOrthogonal(t, h, 1e-12)

	// a reflection applied twice is the identity
	hh := MustMul(t, h, h)
	require.True(t, matrix.ApproxEqual[float64](hh, MustIdentity(t, 4), 1e-12))
}

func TestHouseholderContractViolations(t *testing.T) {
	v := MustVec(t, []float64{1, 0})

	require.Panics(t, func() { decomp.Householder[float64](1, 0, v) }, "dim < subdim must panic")
	require.Panics(t, func() { decomp.Householder[float64](2, 1, v) }, "start+subdim > dim must panic")
	require.Panics(t, func() { decomp.Householder[float64](2, -1, v) }, "negative start must panic")
	require.Panics(t, func() { decomp.Householder[float64](2, 0, nil) }, "nil vector must panic")
}

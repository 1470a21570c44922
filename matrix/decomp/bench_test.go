// SPDX-License-Identifier: MIT
// Package decomp_test: micro-benchmarks for the decomposition kernels.
package decomp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lindec/matrix"
	"github.com/katalvlaran/lindec/matrix/decomp"
)

// benchDense builds an n×n matrix with a fixed pseudo-random fill.
func benchDense(b *testing.B, n int) *matrix.Dense[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	m, err := matrix.NewDense[float64](n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.USet(i, j, rng.NormFloat64())
		}
	}

	return m
}

func BenchmarkQR8x8(b *testing.B) {
	m := benchDense(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decomp.QR[float64](m)
	}
}

func BenchmarkQR32x32(b *testing.B) {
	m := benchDense(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decomp.QR[float64](m)
	}
}

func BenchmarkEigenQR8x8(b *testing.B) {
	m := benchDense(b, 8)
	// symmetrize so the spectrum is real and the iteration behaves
	var i, j int
	for i = 0; i < 8; i++ {
		for j = i + 1; j < 8; j++ {
			m.USet(j, i, m.UAt(i, j))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decomp.EigenQR[float64](m, 1e-8, 100)
	}
}

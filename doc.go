// Package lindec is a small, storage-agnostic playground for dense
// linear-algebra decompositions — from the capability contracts any
// matrix/vector type must satisfy up to Householder QR and eigensolving.
//
// 🚀 What is lindec?
//
//	A modern, deterministic, generics-based library that brings together:
//		• Capability contracts: generic Matrix/Vector interfaces over any float type
//		• Dense storage: row-major reference implementations with checked & unchecked access
//		• Kernels: identity, transpose, multiply, add/sub, scale, diag, column slicing
//		• Decompositions: Householder reflectors, QR factorization, QR-iteration eigensolver
//
// ✨ Why choose lindec?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, fixed loop orders, in-code docs
//   - Pure Go – no cgo, generic over float32/float64
//   - Extensible – implement matrix.Matrix/matrix.Vector on your own storage
//     and every kernel and decomposition works on it unchanged
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/        — the numeric capability model (Float constraint, Abs, Sqrt, EqualWithin)
//	matrix/        — contracts, dense storage, validators and algebra kernels
//	matrix/decomp/ — Householder reflectors, QR factorization, eigendecomposition
//
// Quick ASCII example:
//
//	    ⎡12 -51   4⎤   ⎡q11 q12 q13⎤ ⎡r11 r12 r13⎤
//	    ⎢ 6 167 -68⎥ = ⎢q21 q22 q23⎥·⎢  0 r22 r23⎥
//	    ⎣-4  24 -41⎦   ⎣q31 q32 q33⎦ ⎣  0   0 r33⎦
//
//	every matrix with rows ≥ cols factors into an orthogonal Q and an
//	upper-triangular R via a finite sequence of Householder reflections.
//
// Dive into the package docs for full examples and the capability tables
// concrete storage types must satisfy.
//
//	go get github.com/katalvlaran/lindec
package lindec

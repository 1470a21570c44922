// Package matrix offers the capability contracts and dense reference
// storage that the lindec decompositions operate on.
//
// The matrix package provides:
//
//   - Generic Vector and Matrix interfaces (over any scalar.Float) with a
//     two-tier accessor model: checked At/Set returning sentinel errors,
//     unchecked UAt/USet for hot loops that already hold the shape invariant.
//   - Dense and Vec, flat-slice row-major reference implementations.
//   - Package-level algebra kernels (Identity, Col, ColSlice, Transpose,
//     Mul, MatVec, Add, Sub, Scale, Diag, ApproxEqual) that accept any
//     contract implementation and allocate fresh Dense/Vec results,
//     taking a fast-path over flat buffers when operands are *Dense.
//
// Shapes are immutable once constructed; operands are never mutated by
// kernels. All loop orders are fixed, so results are bit-for-bit
// reproducible across runs.
//
// See matrix/decomp for the Householder, QR and eigendecomposition
// routines built on these contracts.
package matrix

// Package decomp implements dense matrix decompositions on top of the
// matrix package's capability contracts.
//
// The decomp package provides:
//
//   - Householder — construction of the orthogonal reflector that zeroes
//     all but the leading component of a vector within a subspace.
//   - QR — Householder QR factorization of any matrix with rows ≥ cols
//     into an orthogonal Q and upper-triangular R.
//   - EigenQR — eigenvalue/eigenvector extraction for square matrices by
//     iterating the QR factorization with an off-diagonal convergence
//     predicate and an iteration budget.
//
// Error model: malformed shapes (QR with cols > rows, EigenQR on a
// non-square matrix, a reflector exceeding its ambient dimension) are
// programmer errors and panic; they are never returned as errors.
// Numerical non-convergence of EigenQR is NOT an error — the best current
// estimate is returned and residual checking is the caller's business.
//
// All routines are pure with respect to their inputs: source matrices are
// cloned before mutation, every intermediate is freshly allocated, and no
// state survives a call. Distinct calls are therefore safe to run
// concurrently as long as each owns its own operands.
package decomp

// SPDX-License-Identifier: MIT

// Package scalar defines the numeric capability model every lindec kernel
// is generic over: an ordered floating-point element with a zero value,
// absolute value, square root and tolerance-based approximate equality.
//
// The package is intentionally tiny: it exists so that vectors, matrices
// and decompositions can share one type-set constraint and one set of
// comparison helpers instead of re-deriving them per package.
//
// All helpers are pure, allocate nothing, and run in O(1).
package scalar

import "math"

// Float is the scalar type set accepted by every generic kernel in lindec.
// Any defined type whose underlying type is float32 or float64 qualifies.
type Float interface {
	~float32 | ~float64
}

// Zero returns the additive identity of N.
// Complexity: O(1).
func Zero[N Float]() N {
	return 0
}

// Abs returns the absolute value |v|.
// Complexity: O(1).
func Abs[N Float](v N) N {
	if v < 0 {
		return -v
	}

	return v
}

// Sqrt returns the non-negative square root of v.
// The computation round-trips through float64; for float32 inputs the
// result is correctly rounded back to float32.
// Complexity: O(1).
func Sqrt[N Float](v N) N {
	return N(math.Sqrt(float64(v)))
}

// EqualWithin reports whether a and b differ by at most tol in magnitude.
// A negative tolerance never matches; tol == 0 degrades to exact equality.
// Complexity: O(1).
func EqualWithin[N Float](a, b, tol N) bool {
	return Abs(a-b) <= tol
}

// IsZero reports whether v is exactly the zero value.
// Used by callers that must distinguish "no magnitude at all" (e.g. a
// zero vector that cannot be normalized) from "small but present".
// Complexity: O(1).
func IsZero[N Float](v N) bool {
	return v == 0
}

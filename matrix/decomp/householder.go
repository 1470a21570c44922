// SPDX-License-Identifier: MIT
// Package decomp: Householder reflector construction.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lindec/matrix"
	"github.com/katalvlaran/lindec/scalar"
)

// Householder builds the dim×dim orthogonal reflection matrix defined by
// the vector v embedded at offset start: the result acts as identity
// outside the index range [start, start+v.Len()) and as I − 2·v·vᵗ inside
// it. For a unit v this is the classic Householder reflection across the
// hyperplane orthogonal to v.
//
// Panics if dim < start+v.Len() or v is nil — supplying consistent
// dimensions is the caller's contract, and violating it is a programmer
// error, not a runtime data condition.
//
// Pure function of its inputs: v is only read, the result is freshly
// allocated. Complexity: O(dim²) memory for the identity seed plus
// O(v.Len()²) updates.
func Householder[N scalar.Float](dim, start int, v matrix.Vector[N]) *matrix.Dense[N] {
	// Contract checks: fail fast on inconsistent dimensions.
	if v == nil {
		panic("decomp: Householder: nil vector")
	}
	subdim := v.Len()
	stop := start + subdim
	if start < 0 || dim < stop {
		panic(fmt.Sprintf("decomp: Householder: subspace [%d,%d) exceeds ambient dimension %d", start, stop, dim))
	}

	// Seed with the identity; only the embedded block is touched below.
	h, err := matrix.Identity[N](dim)
	if err != nil {
		panic(fmt.Sprintf("decomp: Householder: %v", err))
	}

	// Subtract 2·v[i−start]·v[j−start] over the embedded block.
	// Bounds were established above, so the unchecked tier is safe here.
	var (
		i, j int
		vv   N
	)
	for j = start; j < stop; j++ {
		for i = start; i < stop; i++ {
			vv = v.UAt(i-start) * v.UAt(j-start)
			h.USet(i, j, h.UAt(i, j)-vv-vv)
		}
	}

	return h
}

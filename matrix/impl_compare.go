// SPDX-License-Identifier: MIT
// Package matrix: tolerant comparison.
//
// Equality is shape equality plus |a[i,j] − b[i,j]| ≤ eps for every cell.
// A NaN cell never compares equal, not even to itself; equal infinities do.
// Exact comparison alone is never enough: cofactor expansion and the 1/det
// scale accumulate rounding that an exact check would reject.

package matrix

import "math"

const opEqual = "Equal"

// Equal reports whether a and b have the same shape and all cells agree
// within eps (DefaultEpsilon unless overridden with WithEpsilon).
//
// Errors:
//   - ErrNilMatrix when either operand is nil. A shape mismatch is not an
//     error; it simply yields false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	o := gatherOptions(opts...)

	return equalWithin(a, b, o.eps)
}

// EqMatrix reports whether other equals m within m's tolerance.
// A nil or differently shaped operand compares unequal.
// Complexity: O(r*c).
func (m *Dense) EqMatrix(other Matrix) bool {
	if ValidateNotNil(other) != nil {
		return false
	}
	ok, err := equalWithin(m, other, m.eps)

	return err == nil && ok
}

// equalWithin assumes both operands are non-nil.
func equalWithin(a, b Matrix, eps float64) (bool, error) {
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	// Fast path: flat walk over both buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], eps) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if !closeEnough(av, bv, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is written so that NaN on either side yields false.
func closeEnough(a, b, eps float64) bool {
	return a == b || math.Abs(a-b) <= eps
}

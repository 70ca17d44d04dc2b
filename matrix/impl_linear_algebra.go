// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Functional kernels (Add, Sub, Mul, Scale, Transpose) never mutate inputs
//     and always return a fresh Dense.
//   - In-place methods on *Dense (SumMatrix, SubMatrix, MulNumber, MulMatrix)
//     reuse the same kernels and swap the result into the receiver, leaving it
//     untouched on error.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for dot products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opSumMatrix = "SumMatrix"
	opSubMatrix = "SubMatrix"
	opMulNumber = "MulNumber"
	opMulMatrix = "MulMatrix"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newResultLike allocates a rows×cols Dense inheriting the numeric policy of
// like when it is a *Dense, otherwise the package defaults.
func newResultLike(like Matrix, rows, cols int) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if d, ok := like.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
		res.eps = d.eps
	}

	return res, nil
}

// finiteResult returns res, or ErrNaNInf when res validates NaN/Inf and a cell
// overflowed (or became NaN) during the kernel.
func finiteResult(res *Dense, opTag string) (*Dense, error) {
	if !res.validateNaNInf {
		return res, nil
	}
	for idx, v := range res.data {
		if err := ValidateFinite(v); err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("cell %d: %w", idx, err))
		}
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, allocation errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := newResultLike(a, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return finiteResult(res, opTag)
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return finiteResult(res, opTag)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//   - ErrNaNInf when a sum overflows and A validates NaN/Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//   - ErrNaNInf when a difference overflows and A validates NaN/Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Returns:
//   - Matrix: new Dense C with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//   - ErrNaNInf when a product overflows and A validates NaN/Inf.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) { return mul(a, b) }

func mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newResultLike(a, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return finiteResult(res, opMul)
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return finiteResult(res, opMul)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, allocation errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Transpose(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense carrying m's policy.
// A moved-from (0×0) matrix transposes to another 0×0 matrix.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	res := &Dense{
		r:              m.c,
		c:              m.r,
		data:           make([]float64, len(m.data)),
		validateNaNInf: m.validateNaNInf,
		eps:            m.eps,
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// Scale returns alpha·m as a new Dense.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha or a product is non-finite and m
//     validates NaN/Inf (non-Dense inputs follow the package default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) { return scale(m, alpha) }

func scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newResultLike(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if res.validateNaNInf {
		if err = ValidateFinite(alpha); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			res.data[idx] = alpha * v
		}

		return finiteResult(res, opScale)
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return finiteResult(res, opScale)
}

// SumMatrix adds b into m in place (m += b).
// On error m is left unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) SumMatrix(b Matrix) error {
	res, err := addSub(m, b, +1, opSumMatrix)
	if err != nil {
		return err
	}
	m.assign(res)

	return nil
}

// SubMatrix subtracts b from m in place (m -= b).
// On error m is left unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) SubMatrix(b Matrix) error {
	res, err := addSub(m, b, -1, opSubMatrix)
	if err != nil {
		return err
	}
	m.assign(res)

	return nil
}

// MulNumber scales m in place (m *= k).
// On error m is left unchanged.
//
// Errors:
//   - ErrNaNInf when k or a product is non-finite and m validates NaN/Inf.
func (m *Dense) MulNumber(k float64) error {
	res, err := scale(m, k)
	if err != nil {
		return matrixErrorf(opMulNumber, err)
	}
	m.assign(res)

	return nil
}

// MulMatrix replaces m with m × b; the receiver becomes m.Rows() × b.Cols().
// On error m is left unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m.Cols() != b.Rows()).
func (m *Dense) MulMatrix(b Matrix) error {
	res, err := mul(m, b)
	if err != nil {
		return matrixErrorf(opMulMatrix, err)
	}
	m.assign(res)

	return nil
}

// SPDX-License-Identifier: MIT
// Package matrix: determinant, minors, cofactors and adjugate inverse.
//
// Purpose:
//   - Closed-form linear algebra on small square matrices via Laplace
//     (cofactor) expansion along the first row.
//   - Inverse via the adjugate: A⁻¹ = adj(A) / det(A), adj(A) = C(A)ᵀ.
//
// Determinism & Performance:
//   - Exact for integer-valued inputs that fit in float64 mantissa: no pivoting,
//     no division until the final 1/det scale.
//   - Time O(n!) for Determinant; intended for n ≲ 10. Use ToGonum for larger systems.
//
// Hints:
//   - Zero entries in the expansion row skip their minor entirely.
//   - A determinant of exactly zero is singular; near-zero values are inverted as-is.

package matrix

import "fmt"

const (
	opDeterminant     = "Determinant"
	opCalcComplements = "CalcComplements"
	opInverse         = "Inverse"
	opMinor           = "Minor"
)

// ZeroDeterminant marks a singular matrix in Inverse.
const ZeroDeterminant = 0.0

// minCofactorSide is the smallest square side for which cofactors are defined.
const minCofactorSide = 2

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// minorOf copies d without row skipRow and column skipCol.
// Assumes d is at least 2×2 and indices are in range.
// Complexity: O(r*c).
func minorOf(d *Dense, skipRow, skipCol int) *Dense {
	res := &Dense{
		r:              d.r - 1,
		c:              d.c - 1,
		data:           make([]float64, (d.r-1)*(d.c-1)),
		validateNaNInf: d.validateNaNInf,
		eps:            d.eps,
	}
	var i, j, dst, base int
	for i = 0; i < d.r; i++ {
		if i == skipRow {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if j == skipCol {
				continue
			}
			res.data[dst] = d.data[base+j]
			dst++
		}
	}

	return res
}

// determinant expands along the first row. Assumes d is square and n ≥ 1.
func determinant(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	det, sign := ZeroSum, 1.0
	for j := 0; j < d.c; j++ {
		if a := d.data[j]; a != 0 {
			det += sign * a * determinant(minorOf(d, 0, j))
		}
		sign = -sign
	}

	return det
}

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Minor returns m without row `row` and column `col`.
//
// Errors:
//   - ErrNilMatrix; ErrBadShape when m has a single row or column;
//     ErrOutOfRange for invalid indices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m Matrix, row, col int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.Rows() < minCofactorSide || m.Cols() < minCofactorSide {
		return nil, matrixErrorf(opMinor, ErrBadShape)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(d, row, col), nil
}

// Determinant computes det(m) by cofactor expansion along the first row.
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: 1×1 → the sole entry; 2×2 → ad − bc; else Σ_j (−1)^j·a₀ⱼ·det(M₀ⱼ).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (moved-from 0×0).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateDims(m.Rows(), m.Cols()); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d), nil
}

// Determinant is the method form of the package-level Determinant.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// CalcComplements returns the cofactor matrix C with C[i,j] = (−1)^(i+j)·det(Mᵢⱼ).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0), ErrBadShape (1×1 input has no minors).
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func CalcComplements(m Matrix) (Matrix, error) { return calcComplements(m) }

// CalcComplements is the method form of the package-level CalcComplements.
func (m *Dense) CalcComplements() (*Dense, error) { return calcComplements(m) }

func calcComplements(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}
	if err := ValidateDims(m.Rows(), m.Cols()); err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}
	if m.Rows() < minCofactorSide {
		return nil, matrixErrorf(opCalcComplements, ErrBadShape)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}

	n := d.r
	res, err := newResultLike(d, n, n)
	if err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = cofactorSign(i, j) * determinant(minorOf(d, i, j))
		}
	}

	return res, nil
}

// Inverse computes m⁻¹ = C(m)ᵀ · (1/det m).
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: compute det; exactly zero → ErrSingular.
//   - Stage 3: 1×1 → [1/a]; else transpose the cofactor matrix and scale by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0), ErrSingular,
//     ErrNaNInf (1/det overflow under policy).
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func Inverse(m Matrix) (Matrix, error) { return inverse(m) }

// InverseMatrix is the method form of the package-level Inverse.
func (m *Dense) InverseMatrix() (*Dense, error) { return inverse(m) }

func inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateDims(m.Rows(), m.Cols()); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := determinant(d)
	if det == ZeroDeterminant {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	if d.r == 1 {
		res, err := newResultLike(d, 1, 1)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if err = res.Set(0, 0, 1/det); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}

		return res, nil
	}

	comps, err := calcComplements(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj := comps.Transpose()
	res, err := scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: gonum interop.
//
// Purpose:
//   - Move data between Dense and gonum's mat.Dense without changing layout:
//     both are row-major, so a Dense buffer maps 1:1 onto mat.NewDense.
//   - Let callers hand large systems to gonum's LU-based routines while keeping
//     the cofactor kernels here for small exact work.
//
// Notes:
//   - Both directions copy; neither side aliases the other's buffer.

package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromGonum copies any gonum mat.Matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix for a nil source, including a typed nil such as (*mat.Dense)(nil).
//   - ErrInvalidDimensions for an empty source.
//   - ErrNaNInf for non-finite cells under the resolved policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilGonum(src) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	res, err := NewDenseWith(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = res.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return res, nil
}

// isNilGonum reports whether src is nil or a nil pointer behind the interface.
func isNilGonum(src mat.Matrix) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for a moved-from (0×0) Dense.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	buf := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(rows, cols, buf), nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

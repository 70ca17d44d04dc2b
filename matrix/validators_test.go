// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/s21kit/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq, rect := MustDense(t, 2, 2), MustDense(t, 2, 3)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.NoError(t, matrix.ValidateSameShape(sq, MustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateDims(0, 1), matrix.ErrInvalidDimensions)
	require.NoError(t, matrix.ValidateDims(1, 1))

	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(-3.5))
}

func TestIdentityAndZerosLike(t *testing.T) {
	id := MustIdentity(t, 3)
	require.Equal(t, 1.0, id.Elem(2, 2))
	require.Equal(t, 0.0, id.Elem(0, 2))

	z, err := matrix.ZerosLike(MustDense(t, 2, 5))
	require.NoError(t, err)
	require.Equal(t, 5, z.Cols())

	_, err = matrix.IdentityLike(MustDense(t, 2, 5))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	il, err := matrix.IdentityLike(MustDense(t, 4, 4))
	require.NoError(t, err)
	RequireMatrixEqual(t, MustIdentity(t, 4), il)

	_, err = matrix.NewZeros(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/s21kit/matrix"
	"github.com/stretchr/testify/require"
)

func TestEqMatrix(t *testing.T) {
	a, b := MustDense(t, 2, 2), MustDense(t, 2, 2)
	require.True(t, a.EqMatrix(b))

	b.Put(0, 0, 42)
	require.False(t, a.EqMatrix(b))

	// Differences under DefaultEpsilon are tolerated.
	b.Put(0, 0, 5e-7)
	require.True(t, a.EqMatrix(b))
	b.Put(0, 0, 2e-6)
	require.False(t, a.EqMatrix(b))

	require.False(t, a.EqMatrix(MustDense(t, 3, 2)))
	require.False(t, a.EqMatrix(nil))
	require.True(t, a.EqMatrix(hide{MustDense(t, 2, 2)}))
}

func TestEqualOptions(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1.01, 2}})

	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.Equal(a, hide{b}, matrix.WithEpsilon(0.1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.Equal(a, MustDense(t, 2, 1))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.Equal(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Equal(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEqMatrixUsesInstanceEpsilon checks that a Dense built with WithEpsilon
// compares with its own tolerance.
func TestEqMatrixUsesInstanceEpsilon(t *testing.T) {
	loose, err := matrix.NewDenseWith(1, 1, matrix.WithEpsilon(0.5))
	require.NoError(t, err)
	other := matrix.New()
	other.Put(0, 0, 0.4)

	require.True(t, loose.EqMatrix(other))
	require.False(t, other.EqMatrix(MustRows(t, [][]float64{{0.3}})))
}

// TestEqualRejectsNaN ensures a NaN cell never compares equal.
func TestEqualRejectsNaN(t *testing.T) {
	nan, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	nan.Put(0, 0, math.NaN())
	other := MustRows(t, [][]float64{{42}})

	ok, err := matrix.Equal(nan, other)
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, nan.EqMatrix(other))
	require.False(t, other.EqMatrix(nan))

	ok, err = matrix.Equal(nan, nan)
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, nan.EqMatrix(hide{nan}))

	// Matching infinities stay equal.
	inf, err := matrix.NewFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, inf.EqMatrix(inf.Copy()))
}

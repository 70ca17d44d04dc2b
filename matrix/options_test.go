// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/s21kit/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithNoValidateNaNInf(),
		matrix.WithEpsilon(1e-3),
		nil,
		matrix.WithValidateNaNInf(),
	)
	require.Equal(t, 1e-3, o.Epsilon())
	require.True(t, o.ValidateNaNInf())
}

func TestWithEpsilonPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

// TestPolicyPropagatesThroughKernels ensures results inherit the left operand's policy.
func TestPolicyPropagatesThroughKernels(t *testing.T) {
	a, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	tr := a.Transpose()
	require.NoError(t, tr.Set(0, 0, math.Inf(1)))

	cp := a.Copy()
	require.NoError(t, cp.MulNumber(math.Inf(-1)))
}

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/s21kit/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDefault ensures New returns a 1×1 zero matrix.
func TestNewDefault(t *testing.T) {
	m := matrix.New()
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 1, m.Cols())
	require.Equal(t, 0.0, m.Elem(0, 0))
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroFilled verifies shape and zero initialization.
func TestNewDenseZeroFilled(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	m.Do(func(i, j int, v float64) bool {
		require.Zerof(t, v, "cell (%d,%d)", i, j)
		return true
	})
}

// TestNewFromRows covers the literal constructor and its failure modes.
func TestNewFromRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, m.Elem(1, 2))

	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err = matrix.NewFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(m.Elem(0, 0), 1))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the default numeric policy on Set.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestSetGetAndElemPut validates checked and unchecked accessors agree.
func TestSetGetAndElemPut(t *testing.T) {
	m := MustDense(t, 6, 9)
	require.Equal(t, 0.0, m.Elem(0, 0))

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
	require.Equal(t, 7.89, m.Elem(1, 2))

	m.Put(5, 8, 69.420)
	val, err = m.At(5, 8)
	require.NoError(t, err)
	require.Equal(t, 69.420, val)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	m.Put(0, 0, 1.0)
	m.Put(1, 1, 2.0)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, m.Elem(0, 0))
	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)

	cp := m.Copy()
	require.True(t, cp.EqMatrix(m))
	cp.Put(1, 1, -1)
	require.Equal(t, 2.0, m.Elem(1, 1))
}

// TestMoveLeavesSourceEmpty checks ownership transfer semantics.
func TestMoveLeavesSourceEmpty(t *testing.T) {
	m := MustDense(t, 12, 12)
	m.Put(0, 0, 3)
	m.Put(11, 11, 4)

	moved := m.Move()
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, "", m.String())
	require.Equal(t, 12, moved.Rows())
	require.Equal(t, 12, moved.Cols())
	require.Equal(t, 3.0, moved.Elem(0, 0))
	require.Equal(t, 4.0, moved.Elem(11, 11))

	// A moved-from matrix cannot be resized back into shape by one axis alone.
	require.ErrorIs(t, m.SetRows(2), matrix.ErrInvalidDimensions)
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRows covers growing, shrinking and invalid row counts.
func TestSetRows(t *testing.T) {
	m := MustDense(t, 2, 2)
	m.Put(1, 1, 6.9)

	require.NoError(t, m.SetRows(5))
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 6.9, m.Elem(1, 1))
	require.Equal(t, 0.0, m.Elem(4, 1))

	m.Put(0, 0, 1.5)
	require.NoError(t, m.SetRows(1))
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 1.5, m.Elem(0, 0))

	require.ErrorIs(t, m.SetRows(0), matrix.ErrInvalidDimensions)
	require.Equal(t, 1, m.Rows())
}

// TestSetCols covers growing, shrinking and invalid column counts.
func TestSetCols(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.SetCols(4))
	RequireMatrixEqual(t, MustRows(t, [][]float64{{1, 2, 0, 0}, {3, 4, 0, 0}}), m)

	require.NoError(t, m.SetCols(1))
	RequireMatrixEqual(t, MustRows(t, [][]float64{{1}, {3}}), m)

	require.ErrorIs(t, m.SetCols(-3), matrix.ErrInvalidDimensions)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDoEarlyStop ensures Do stops when the callback returns false.
func TestDoEarlyStop(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	var visited int
	m.Do(func(_, _ int, _ float64) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)
}

// TestApplyPolicy ensures Apply rejects non-finite results under policy.
func TestApplyPolicy(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}})
	err := m.Apply(func(_, _ int, v float64) float64 { return 1 / v })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, 1.0, m.Elem(0, 0)) // written before the failing cell

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(i+j) }))
	require.Equal(t, 1.0, m.Elem(0, 0))
	require.Equal(t, 1.0, m.Elem(0, 1))
}

// TestMovedFromRejectsSquareKernels ensures a 0×0 source reports invalid size
// instead of a zero determinant or a singular inverse.
func TestMovedFromRejectsSquareKernels(t *testing.T) {
	m := MustIdentity(t, 3)
	_ = m.Move()

	_, err := m.Determinant()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = m.InverseMatrix()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.NotErrorIs(t, err, matrix.ErrSingular)

	_, err = m.CalcComplements()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Adjugate(m)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

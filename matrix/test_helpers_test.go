// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/s21kit/matrix"
	"github.com/stretchr/testify/require"
)

// testSeed keeps every randomized fixture reproducible.
const testSeed = 20240229

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (fallback) paths in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from a row literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return id
}

// RequireMatrixEqual asserts shape equality and cell-wise agreement within DefaultEpsilon.
func RequireMatrixEqual(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// RandomDominant returns an n×n integer-valued matrix with a dominant diagonal,
// which keeps it far from singular and well conditioned.
func RandomDominant(t testing.TB, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.Put(i, j, float64(rng.Intn(19)-9))
		}
		m.Put(i, i, m.Elem(i, i)+float64(10*n))
	}

	return m
}

// RandomRect returns an r×c matrix with integer entries in [-9, 9].
func RandomRect(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return float64(rng.Intn(19) - 9)
	}))

	return m
}

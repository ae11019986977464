// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures shared by codec, kernel and benchmark tests.
//   • Random matrices come from a fixed-seed math/rand source so every run
//     sees the same operands.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// defaultSeed is used when a helper is called with seed 0.
const defaultSeed int64 = 1

// mustDecode decodes src or fails the test.
func mustDecode(tb testing.TB, src string, opts ...sparse.Option) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.DecodeString(src, opts...)
	require.NoError(tb, err)

	return m
}

// mustFromEntries builds a matrix from triples or fails the test.
func mustFromEntries(tb testing.TB, rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.FromEntries(rows, cols, entries...)
	require.NoError(tb, err)

	return m
}

// at reads (r, c) or fails the test.
func at(tb testing.TB, m *sparse.Matrix, r, c int) int64 {
	tb.Helper()
	v, err := m.At(r, c)
	require.NoError(tb, err)

	return v
}

// rngFromSeed returns a deterministic source; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// randomSparse fills a rows×cols matrix, visiting cells row-major and keeping
// each with probability density. Values are in [-9, 9]; zeros are skipped by Set.
func randomSparse(tb testing.TB, rows, cols int, density float64, seed int64) *sparse.Matrix {
	tb.Helper()
	rng := rngFromSeed(seed)
	m, err := sparse.New(rows, cols)
	require.NoError(tb, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				require.NoError(tb, m.Set(i, j, int64(rng.Intn(19)-9)))
			}
		}
	}

	return m
}

// denseProduct is a reference a × b computed cell by cell through At.
func denseProduct(tb testing.TB, a, b *sparse.Matrix) [][]int64 {
	tb.Helper()
	out := make([][]int64, a.Rows())
	for i := range out {
		out[i] = make([]int64, b.Cols())
		for j := 0; j < b.Cols(); j++ {
			var s int64
			for k := 0; k < a.Cols(); k++ {
				s += at(tb, a, i, k) * at(tb, b, k, j)
			}
			out[i][j] = s
		}
	}

	return out
}

// requireMatchesDense compares every cell of m with want.
func requireMatchesDense(tb testing.TB, want [][]int64, m *sparse.Matrix) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows())
	for i := range want {
		require.Equal(tb, len(want[i]), m.Cols())
		for j := range want[i] {
			require.Equalf(tb, want[i][j], at(tb, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// requireNoStoredZeros checks the no-zero invariant through the public view.
func requireNoStoredZeros(tb testing.TB, m *sparse.Matrix) {
	tb.Helper()
	for _, e := range m.Entries() {
		require.NotZerof(tb, e.Value, "stored zero at (%d,%d)", e.Row, e.Col)
	}
}

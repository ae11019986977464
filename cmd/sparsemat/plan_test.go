package main

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shaped(t *testing.T, r, c int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c)
	require.NoError(t, err)

	return m
}

func TestPlanMultiply(t *testing.T) {
	cases := []struct {
		name       string
		a, b       [2]int
		mode       transposeMode
		wantErr    bool
		transposeB bool
		result     string
	}{
		{"auto both fit prefers plain", [2]int{2, 2}, [2]int{2, 2}, transposeAuto, false, false, nameMultiplication},
		{"auto plain only", [2]int{2, 3}, [2]int{3, 4}, transposeAuto, false, false, nameMultiplication},
		{"auto transpose only", [2]int{2, 3}, [2]int{4, 3}, transposeAuto, false, true, nameMultiplicationWithT},
		{"auto neither", [2]int{2, 3}, [2]int{2, 2}, transposeAuto, true, false, ""},
		{"never with transpose-only shape", [2]int{2, 3}, [2]int{4, 3}, transposeNever, true, false, ""},
		{"always with square", [2]int{2, 2}, [2]int{2, 2}, transposeAlways, false, true, nameMultiplicationWithT},
		{"always with plain-only shape", [2]int{2, 3}, [2]int{3, 4}, transposeAlways, true, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := shaped(t, tc.a[0], tc.a[1])
			b := shaped(t, tc.b[0], tc.b[1])
			p, err := planMultiply(a, b, tc.mode)
			if tc.wantErr {
				require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.transposeB, p.transposeB)
			assert.Equal(t, tc.result, p.name)

			res, err := p.execute(a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.a[0], res.Rows())
		})
	}
}

func TestParseTransposeMode(t *testing.T) {
	for in, want := range map[string]transposeMode{
		"": transposeAuto, "auto": transposeAuto, "never": transposeNever, "always": transposeAlways,
	} {
		got, err := parseTransposeMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseTransposeMode("maybe")
	require.Error(t, err)
}

func TestCombineName(t *testing.T) {
	assert.Equal(t, nameAddition, combineName(sparse.OpAdd))
	assert.Equal(t, nameSubtraction, combineName(sparse.OpSubtract))
}

func TestResolveOutput(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveOutput("", filepath.Join(dir, "x"), nameAddition)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x", "result_addition.txt"), got)
	assert.DirExists(t, filepath.Join(dir, "x"))

	explicit := filepath.Join(dir, "y", "z.txt")
	got, err = resolveOutput(explicit, "ignored", nameAddition)
	require.NoError(t, err)
	assert.Equal(t, explicit, got)
	assert.DirExists(t, filepath.Join(dir, "y"))
}

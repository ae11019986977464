package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Result names, used in the default output file name result_<name>.txt.
const (
	nameAddition              = "addition"
	nameSubtraction           = "subtraction"
	nameMultiplication        = "multiplication"
	nameMultiplicationWithT   = "multiplication_with_transpose"
	resultFilePattern         = "result_%s.txt"
	defaultOutputDir          = "output"
	outputDirPerm             = 0o755
	transposeModeAuto         = "auto"
	transposeModeNever        = "never"
	transposeModeAlways       = "always"
	errNoMultiplicationLayout = "cannot multiply %dx%d by %dx%d or by its transpose"
)

// transposeMode controls whether multiply uses b or bᵀ.
type transposeMode int

const (
	transposeAuto transposeMode = iota
	transposeNever
	transposeAlways
)

func parseTransposeMode(s string) (transposeMode, error) {
	switch s {
	case "", transposeModeAuto:
		return transposeAuto, nil
	case transposeModeNever:
		return transposeNever, nil
	case transposeModeAlways:
		return transposeAlways, nil
	}

	return 0, fmt.Errorf("unknown --transpose value %q (want auto, never or always)", s)
}

// multiplyPlan is the chosen multiplication layout.
type multiplyPlan struct {
	transposeB bool
	name       string
}

// planMultiply decides between a × b and a × bᵀ.
// auto prefers a × b and falls back to a × bᵀ only when a × b is undefined.
func planMultiply(a, b *sparse.Matrix, mode transposeMode) (multiplyPlan, error) {
	plain := multiplyPlan{name: nameMultiplication}
	withT := multiplyPlan{transposeB: true, name: nameMultiplicationWithT}

	switch mode {
	case transposeNever:
		if err := sparse.ValidateMulCompatible(a, b); err != nil {
			return multiplyPlan{}, err
		}
		return plain, nil
	case transposeAlways:
		if !sparse.CanMultiplyTransposed(a, b) {
			return multiplyPlan{}, fmt.Errorf("a × bᵀ: %w", sparse.ErrDimensionMismatch)
		}
		return withT, nil
	}

	switch {
	case sparse.CanMultiply(a, b):
		return plain, nil
	case sparse.CanMultiplyTransposed(a, b):
		return withT, nil
	}

	return multiplyPlan{}, fmt.Errorf(errNoMultiplicationLayout+": %w",
		a.Rows(), a.Cols(), b.Rows(), b.Cols(), sparse.ErrDimensionMismatch)
}

// execute runs the plan.
func (p multiplyPlan) execute(a, b *sparse.Matrix) (*sparse.Matrix, error) {
	if p.transposeB {
		return sparse.MulTransposed(a, b)
	}

	return sparse.Mul(a, b)
}

// combineName maps an element-wise operator to its result name.
func combineName(op sparse.Op) string {
	if op == sparse.OpSubtract {
		return nameSubtraction
	}

	return nameAddition
}

// resolveOutput returns out when set, else <dir>/result_<name>.txt,
// creating the parent directory either way.
func resolveOutput(out, dir, name string) (string, error) {
	if out == "" {
		if dir == "" {
			dir = defaultOutputDir
		}
		out = filepath.Join(dir, fmt.Sprintf(resultFilePattern, name))
	}
	if err := os.MkdirAll(filepath.Dir(out), outputDirPerm); err != nil {
		return "", err
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every exported operation returns one of these sentinels (possibly wrapped
// with call-site context). Callers match them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." so it is easy to grep in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary; errors.Is still matches.

var (
	// ErrFormat is returned when a textual matrix source violates the strict format.
	// Decode always returns a *FormatError that unwraps to ErrFormat.
	ErrFormat = errors.New("sparse: malformed matrix source")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates that a coordinate passed to At/Set is outside bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidDimensions is returned by New when rows or cols is negative.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Matrix operand was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUnknownOp is returned by Combine and ParseOp for an unsupported operator.
	ErrUnknownOp = errors.New("sparse: unknown operator")

	// ErrDuplicateEntry is reported (inside a FormatError) when a coordinate repeats
	// and DuplicateReject is in effect.
	ErrDuplicateEntry = errors.New("sparse: duplicate entry")
)

// FormatError describes which source line broke which grammar rule.
// Line is 1-based and counts blank lines too, so it matches an editor view.
// Line is 0 when the failure is not tied to a single line (too few lines).
type FormatError struct {
	Line   int    // 1-based source line, 0 if not applicable
	Text   string // trimmed offending line
	Reason string // human-readable rule that failed
	err    error  // optional extra sentinel (e.g. ErrDuplicateEntry)
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
	}

	return fmt.Sprintf("%s: line %d %q: %s", ErrFormat, e.Line, e.Text, e.Reason)
}

// Unwrap exposes ErrFormat plus any secondary sentinel to errors.Is.
func (e *FormatError) Unwrap() []error {
	if e.err != nil {
		return []error{ErrFormat, e.err}
	}

	return []error{ErrFormat}
}

// sparseErrorf tags err with the public method name that detected it.
func sparseErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// indexErrorf tags an ErrOutOfRange with the method and the coordinates.
func indexErrorf(method string, row, col int, m *Matrix) error {
	return fmt.Errorf("Matrix.%s(%d,%d) on %dx%d: %w", method, row, col, m.rows, m.cols, ErrOutOfRange)
}

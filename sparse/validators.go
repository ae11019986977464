// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - One small pure function per grammar rule of the text format
//    (header line, entry line, index field, signed value field).
//  - One canonical source for operand shape checks and the dimension
//    predicates a front end needs to choose between Mul and MulTransposed.
//
// Grammar rules return plain errors describing the failed rule; Decode turns
// them into *FormatError with line context. Shape validators return
// ErrDimensionMismatch / ErrNilMatrix wrapped with the validator tag.

package sparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Text format literals.
const (
	headerRows  = "rows"
	headerCols  = "cols"
	headerSep   = "="
	entryOpen   = "("
	entryClose  = ")"
	entrySep    = ","
	entryFields = 3
	minLines    = 2
)

// validatorErrorf wraps err with a validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Grammar rules ----------

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// parseHeader checks `name=<digits>` with a bare '=' and returns the number.
func parseHeader(line, name string) (int, error) {
	prefix := name + headerSep
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("expected %s<integer> header", prefix)
	}
	raw := line[len(prefix):]
	if !isDigits(raw) {
		return 0, fmt.Errorf("%s value %q is not a non-negative integer", name, raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s value %q is out of range", name, raw)
	}

	return n, nil
}

// parseIndex checks an unsigned row/col field.
func parseIndex(field, name string) (int, error) {
	if !isDigits(field) {
		return 0, fmt.Errorf("%s %q must be a non-negative integer", name, field)
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%s %q is out of range", name, field)
	}

	return n, nil
}

// parseValue checks an optional '-' followed by digits (no '+', no '.', no exponent).
func parseValue(field string) (int64, error) {
	if !isDigits(strings.TrimPrefix(field, "-")) {
		return 0, fmt.Errorf("value %q must be an integer", field)
	}
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is out of int64 range", field)
	}

	return v, nil
}

// parseEntry checks `(<row>, <col>, <value>)` against a rows×cols shape.
func parseEntry(line string, rows, cols int) (key, int64, error) {
	if !strings.HasPrefix(line, entryOpen) || !strings.HasSuffix(line, entryClose) || len(line) < 2 {
		return key{}, 0, errors.New("entry must be enclosed in parentheses")
	}
	parts := strings.Split(line[1:len(line)-1], entrySep)
	if len(parts) != entryFields {
		return key{}, 0, fmt.Errorf("expected %d comma-separated fields, got %d", entryFields, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	row, err := parseIndex(parts[0], "row")
	if err != nil {
		return key{}, 0, err
	}
	col, err := parseIndex(parts[1], "col")
	if err != nil {
		return key{}, 0, err
	}
	if row >= rows || col >= cols {
		return key{}, 0, fmt.Errorf("index (%d, %d) out of bounds for %dx%d", row, col, rows, cols)
	}
	v, err := parseValue(parts[2])
	if err != nil {
		return key{}, 0, err
	}

	return key{row, col}, v, nil
}

// ---------- Shape validators & predicates ----------

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires non-nil a and b with equal dimensions (Add/Sub).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible requires non-nil a and b with a.Cols() == b.Rows().
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d × %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch)
	}

	return nil
}

// SameShape reports whether a and b can be added or subtracted.
func SameShape(a, b *Matrix) bool { return ValidateSameShape(a, b) == nil }

// CanMultiply reports whether a × b is defined (a.Cols() == b.Rows()).
func CanMultiply(a, b *Matrix) bool { return ValidateMulCompatible(a, b) == nil }

// CanMultiplyTransposed reports whether a × bᵀ is defined (a.Cols() == b.Cols()).
func CanMultiplyTransposed(a, b *Matrix) bool {
	return a != nil && b != nil && a.cols == b.cols
}

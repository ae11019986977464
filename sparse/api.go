// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Thin, intention-revealing aliases for the canonical kernels in ops.go.
//   - No logic duplication: every facade forwards unchanged.

package sparse

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// ZerosLike returns an empty matrix with m's shape.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf("ZerosLike", err)
	}

	return New(m.rows, m.cols)
}

// FromEntries builds a rows×cols matrix from a list of entries.
// Later entries overwrite earlier ones; zero values store nothing.
// Returns ErrInvalidDimensions or a wrapped ErrOutOfRange on bad input.
func FromEntries(rows, cols int, entries ...Entry) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf("FromEntries", err)
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, sparseErrorf("FromEntries", err)
		}
	}

	return m, nil
}

// SPDX-License-Identifier: MIT

// Package sparse - dictionary-of-keys storage & safe accessors.
//
// Purpose:
//   - Store only non-zero integers, keyed by (row, col).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep output deterministic: every ordered view (Entries, Encode, String)
//     sorts keys row-major instead of trusting map iteration order.
//
// Invariants (hold after every exported call):
//   - no stored value is zero;
//   - every stored key satisfies 0 <= row < Rows() and 0 <= col < Cols().
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) expected; Entries/String: O(nnz log nnz); Clone: O(nnz).

package sparse

import (
	"sort"
	"strings"
)

const (
	ctxNew = "New"
	ctxAt  = "At"
	ctxSet = "Set"
)

// Matrix is a sparse integer matrix in dictionary-of-keys form.
// The zero value is a usable 0x0 matrix.
type Matrix struct {
	rows, cols int           // shape, both >= 0
	values     map[key]int64 // non-zero entries only
}

// New returns an empty rows×cols matrix.
// Zero-sized shapes are legal; negative ones yield ErrInvalidDimensions.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(ctxNew, ErrInvalidDimensions)
	}

	return newMatrix(rows, cols, 0), nil
}

// newMatrix allocates with a capacity hint; callers guarantee a valid shape.
func newMatrix(rows, cols, hint int) *Matrix {
	return &Matrix{rows: rows, cols: cols, values: make(map[key]int64, hint)}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix) NNZ() int { return len(m.values) }

// inBounds reports whether (row, col) addresses a cell of m.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the value at (row, col), or 0 when nothing is stored there.
// Returns a wrapped ErrOutOfRange for coordinates outside the shape.
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.inBounds(row, col) {
		return 0, indexErrorf(ctxAt, row, col, m)
	}

	return m.values[key{row, col}], nil
}

// Set stores v at (row, col). Setting 0 deletes the entry (no-op if absent).
// Returns a wrapped ErrOutOfRange for coordinates outside the shape.
func (m *Matrix) Set(row, col int, v int64) error {
	if !m.inBounds(row, col) {
		return indexErrorf(ctxSet, row, col, m)
	}
	m.put(key{row, col}, v)

	return nil
}

// put writes without bounds checks and keeps the no-zero invariant.
// The map is allocated lazily so the zero-value Matrix stays usable.
func (m *Matrix) put(k key, v int64) {
	if v == 0 {
		delete(m.values, k)
		return
	}
	if m.values == nil {
		m.values = make(map[key]int64)
	}
	m.values[k] = v
}

// sortedKeys returns all stored keys in row-major order.
func (m *Matrix) sortedKeys() []key {
	keys := make([]key, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	return keys
}

// Entries returns a copy of the stored entries in row-major order.
func (m *Matrix) Entries() []Entry {
	keys := m.sortedKeys()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Row: k.row, Col: k.col, Value: m.values[k]}
	}

	return out
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	out := newMatrix(m.rows, m.cols, len(m.values))
	for k, v := range m.values {
		out.values[k] = v
	}

	return out
}

// Equal reports whether m and o have the same shape and the same non-zero entries.
// Two nil matrices are equal; a nil and a non-nil one are not.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || len(m.values) != len(o.values) {
		return false
	}
	for k, v := range m.values {
		if ov, ok := o.values[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// String returns the canonical text encoding (see Encode).
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, line := range m.EncodeLines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

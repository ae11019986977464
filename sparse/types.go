// SPDX-License-Identifier: MIT

// Package sparse: small domain types shared by storage, codec and kernels.

package sparse

import (
	"fmt"
	"strings"
)

// key is the composite (row, col) map key of the dictionary-of-keys store.
// A plain comparable struct keeps the map hash-friendly.
type key struct {
	row int
	col int
}

// less orders keys row-major: first by row, then by column.
func (k key) less(o key) bool {
	if k.row != o.row {
		return k.row < o.row
	}

	return k.col < o.col
}

// Entry is one stored (row, col, non-zero value) triple.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// String renders the entry exactly as the codec writes it: "(r, c, v)".
func (e Entry) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.Row, e.Col, e.Value)
}

// Op selects an element-wise binary operator for Combine.
type Op int

const (
	// OpAdd is element-wise a + b.
	OpAdd Op = iota + 1
	// OpSubtract is element-wise a - b.
	OpSubtract
)

const (
	opNameAdd      = "add"
	opNameSubtract = "subtract"
)

// String returns the canonical lower-case operator name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return opNameAdd
	case OpSubtract:
		return opNameSubtract
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// ParseOp maps a name ("add"/"+", "subtract"/"sub"/"-") to an Op.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case opNameAdd, "+":
		return OpAdd, nil
	case opNameSubtract, "sub", "-":
		return OpSubtract, nil
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
}

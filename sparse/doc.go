// Package sparse implements integer sparse matrices in dictionary-of-keys
// form together with a strict text codec and the basic arithmetic kernels.
//
// The sparse package provides:
//
//   - Matrix, a (row, col) → non-zero int64 map with bounds-checked At/Set.
//   - Decode/Encode (plus ReadFile/WriteFile) for the rows=/cols=/(r, c, v)
//     text format, with line-accurate *FormatError reporting.
//   - Add, Sub, Mul, Transpose and the Combine/MulTransposed entry points,
//     each returning a fresh matrix and never mutating operands.
//   - SameShape, CanMultiply and CanMultiplyTransposed so a front end can pick
//     between a × b and a × bᵀ before calling in.
//
// Zero is never stored: Set(r, c, 0) deletes, and every kernel prunes sums
// that cancel out. Ordered output (Entries, Encode, String) is row-major and
// independent of map iteration order, so encodings are reproducible.
//
// All operations are synchronous and single-threaded. A *Matrix is not safe
// for concurrent mutation; concurrent reads are fine.
package sparse

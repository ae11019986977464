// Package sparsemat is a small toolkit for integer sparse matrices stored as
// plain text files.
//
// What is in here?
//
//	sparse/        — dictionary-of-keys Matrix, strict rows=/cols= codec,
//	                 Add / Sub / Mul / Transpose kernels
//	cmd/sparsemat/ — command line front end: add, subtract, multiply
//
// File format:
//
//	rows=2
//	cols=2
//	(0, 0, 5)
//	(1, 1, 3)
//
// Only non-zero values are stored or written, and entries are always written
// in row-major order, so encoding the same matrix twice yields identical bytes.
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsemat@latest
package sparsemat

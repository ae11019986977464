// SPDX-License-Identifier: MIT

// Package sparse - arithmetic kernels.
//
// Contract shared by every kernel:
//   - operands are read-only; the result is always a freshly allocated *Matrix;
//   - zero results are pruned on write, so the no-zero invariant holds;
//   - shape errors are ErrDimensionMismatch, nil operands ErrNilMatrix,
//     both wrapped with the kernel name.
//
// Integer arithmetic is int64 and wraps on overflow like any Go integer.

package sparse

const (
	ctxAdd           = "Add"
	ctxSub           = "Sub"
	ctxMul           = "Mul"
	ctxMulTransposed = "MulTransposed"
	ctxTranspose     = "Transpose"
	ctxCombine       = "Combine"
	ctxScale         = "Scale"
)

// Add returns a + b. Requires equal shapes.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(ctxAdd, err)
	}

	return elementwise(a, b, 1), nil
}

// Sub returns a − b. Requires equal shapes.
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(ctxSub, err)
	}

	return elementwise(a, b, -1), nil
}

// elementwise computes a + sign*b: copy a, then fold b in key by key.
func elementwise(a, b *Matrix, sign int64) *Matrix {
	out := a.Clone()
	for k, v := range b.values {
		out.put(k, out.values[k]+sign*v)
	}

	return out
}

// Combine dispatches to Add or Sub by operator tag.
func Combine(op Op, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSubtract:
		return Sub(a, b)
	}

	return nil, sparseErrorf(ctxCombine, ErrUnknownOp)
}

// Mul returns the product a × b with shape (a.Rows(), b.Cols()).
// Requires a.Cols() == b.Rows().
//
// For every stored (r, k) → v of a, the row k of b is probed across all of
// its columns and v*b[k,j] is accumulated into out[r,j]. The work is driven by
// nnz(a), never by the dense extents of both operands together.
// Complexity: O(nnz(a) · b.Cols()).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(ctxMul, err)
	}

	out := newMatrix(a.rows, b.cols, 0)
	for ak, av := range a.values {
		for j := 0; j < b.cols; j++ {
			bv := b.values[key{ak.col, j}]
			if bv == 0 {
				continue
			}
			ok := key{ak.row, j}
			out.put(ok, out.values[ok]+av*bv) // zero sums are removed by put
		}
	}

	return out, nil
}

// MulTransposed returns a × bᵀ. Requires a.Cols() == b.Cols().
func MulTransposed(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(ctxMulTransposed, ErrNilMatrix)
	}
	if !CanMultiplyTransposed(a, b) {
		return nil, sparseErrorf(ctxMulTransposed, ErrDimensionMismatch)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, sparseErrorf(ctxMulTransposed, err)
	}

	return Mul(a, bt)
}

// Transpose returns mᵀ with shape (m.Cols(), m.Rows()).
// Complexity: O(nnz(m)).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(ctxTranspose, err)
	}

	out := newMatrix(m.cols, m.rows, len(m.values))
	for k, v := range m.values {
		out.values[key{k.col, k.row}] = v
	}

	return out, nil
}

// Scale returns alpha·m. Scaling by 0 yields an empty matrix of the same shape.
// Complexity: O(nnz(m)).
func Scale(m *Matrix, alpha int64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(ctxScale, err)
	}

	out := newMatrix(m.rows, m.cols, len(m.values))
	for k, v := range m.values {
		out.put(k, alpha*v)
	}

	return out, nil
}

// Neg returns −m.
func Neg(m *Matrix) (*Matrix, error) { return Scale(m, -1) }

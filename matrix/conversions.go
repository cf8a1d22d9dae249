// SPDX-License-Identifier: MIT

// Package matrix: converters between views and gonum matrices.
// Both directions copy; a gonum matrix never aliases a view's buffer.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum matrix into a new root view.
//
// Errors:
//   - ErrNilMatrix when m is nil; ErrBadShape for an empty matrix;
//     ErrNaNInf when the policy is on and m holds a non-finite value.
func FromGonum(m mat.Matrix, opts ...Option) (*View, error) {
	if m == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("FromGonum(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}

	return NewFromData(rows, cols, data, opts...)
}

// Dense copies the logical window of v into a new *mat.Dense.
func (v *View) Dense() *mat.Dense {
	rows, cols := v.Shape()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		base := v.rowIdx[i] * v.stride
		for j := 0; j < cols; j++ {
			out.Set(i, j, v.data[base+v.colIdx[j]])
		}
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package linalg provides transpose and matrix multiplication over any
// matrix.Matrix. Kernels read and write exclusively through Rows/Cols/At/Set
// and always return a freshly allocated root view.
//
// Notes:
//   - Loop orders are fixed (i→j for Transpose, i→j→k for Mul).
//   - Plain IEEE accumulation; no compensated summation, no zero skipping,
//     so 0·Inf still yields NaN as it would by hand.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// zeroSum is the initial accumulator value of a dot product.
const zeroSum = 0.0

// linalgErrorf wraps err with an operation tag, preserving errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new cols×rows view with res[j,i] = m[i,j].
// The result never aliases m.
//
// Errors:
//   - matrix.ErrNilMatrix; read/write failures from the operand are wrapped.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m matrix.Matrix) (*matrix.View, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := matrix.NewZeros(cols, rows) // dims flipped
	if err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, linalgErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, linalgErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A × B into a new zero-initialized view,
// accumulating C[i,j] += A[i,k]·B[k,j].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (A.Cols != B.Rows);
//     both match matrix.ErrInvalidArgument.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b matrix.Matrix) (*matrix.View, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := matrix.NewZeros(aRows, bCols)
	if err != nil {
		return nil, linalgErrorf(opMul, err)
	}

	var (
		i, j, k     int
		av, bv, acc float64
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = zeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, linalgErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, linalgErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, linalgErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: in-place element-wise arithmetic on views.
//
// Purpose:
//   - Apply +, −, ×, ÷ cell by cell, either against a shape-identical Matrix or
//     against a broadcast scalar.
//   - Write through the view's coordinate translation, so a sub-view mutates
//     exactly the parent cells it maps to.
//
// Notes:
//   - Loops are fixed i→j (row-major over the logical window).
//   - With WithValidateNaNInf the first non-finite result aborts the operation;
//     cells written before it keep their new values.

package matrix

import "fmt"

// Operation name constants for uniform error wrapping.
const (
	opAdd      = "Add"
	opSubtract = "Subtract"
	opMultiply = "Multiply"
	opDivide   = "Divide"
)

// binaryFn combines the current cell value with the operand value.
type binaryFn func(cur, operand float64) float64

func addFn(a, b float64) float64 { return a + b }
func subFn(a, b float64) float64 { return a - b }
func mulFn(a, b float64) float64 { return a * b }
func divFn(a, b float64) float64 { return a / b }

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsCompatible reports whether other has exactly the shape of v.
func (v *View) IsCompatible(other Matrix) bool {
	if ValidateNotNil(other) != nil {
		return false
	}

	return v.Rows() == other.Rows() && v.Cols() == other.Cols()
}

// sharesBuffer reports whether w is backed by the same storage as v.
func (v *View) sharesBuffer(w *View) bool {
	return len(v.data) > 0 && len(w.data) > 0 && &v.data[0] == &w.data[0]
}

// ewMatrix applies v[i,j] = fn(v[i,j], other[i,j]) in place.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(v, other).
//   - Stage 2: an operand *View over the same buffer is snapshotted first, so
//     overlapping cells are read before any of them is written.
//   - Stage 3: fast path reads a *View operand through its index arrays;
//     otherwise fall back to other.At.
func (v *View) ewMatrix(other Matrix, fn binaryFn, tag string) error {
	if err := ValidateBinarySameShape(v, other); err != nil {
		return matrixErrorf(tag, err)
	}
	if ov, ok := other.(*View); ok && v.sharesBuffer(ov) {
		other = ov.Copy()
	}

	rows, cols := v.Shape()
	var (
		i, j, dst int
		bv        float64
		err       error
	)
	ov, fast := other.(*View)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if fast {
				bv = ov.data[ov.rowIdx[i]*ov.stride+ov.colIdx[j]]
			} else if bv, err = other.At(i, j); err != nil {
				return matrixErrorf(tag, err)
			}
			dst = v.rowIdx[i]*v.stride + v.colIdx[j]
			if err = v.store(dst, fn(v.data[dst], bv)); err != nil {
				return matrixErrorf(tag, viewErrorf(ctxSet, i, j, err))
			}
		}
	}

	return nil
}

// ewScalar applies v[i,j] = fn(v[i,j], s) in place.
func (v *View) ewScalar(s float64, fn binaryFn, tag string) error {
	rows, cols := v.Shape()
	var i, j, dst int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			dst = v.rowIdx[i]*v.stride + v.colIdx[j]
			if err := v.store(dst, fn(v.data[dst], s)); err != nil {
				return matrixErrorf(tag, viewErrorf(ctxSet, i, j, err))
			}
		}
	}

	return nil
}

// store writes val at a physical offset under the numeric policy.
func (v *View) store(off int, val float64) error {
	if v.validateNaNInf && isNonFinite(val) {
		return ErrNaNInf
	}
	v.data[off] = val

	return nil
}

// Add performs v += other element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (both ErrInvalidArgument), ErrNaNInf (policy on).
func (v *View) Add(other Matrix) error { return v.ewMatrix(other, addFn, opAdd) }

// Subtract performs v -= other element-wise.
func (v *View) Subtract(other Matrix) error { return v.ewMatrix(other, subFn, opSubtract) }

// Multiply performs v *= other element-wise (Hadamard product, in place).
func (v *View) Multiply(other Matrix) error { return v.ewMatrix(other, mulFn, opMultiply) }

// Divide performs v /= other element-wise. Division by zero follows IEEE
// rules unless the numeric policy rejects the resulting ±Inf/NaN.
func (v *View) Divide(other Matrix) error { return v.ewMatrix(other, divFn, opDivide) }

// AddScalar adds s to every cell.
func (v *View) AddScalar(s float64) error { return v.ewScalar(s, addFn, opAdd) }

// SubtractScalar subtracts s from every cell.
func (v *View) SubtractScalar(s float64) error { return v.ewScalar(s, subFn, opSubtract) }

// MultiplyScalar scales every cell by s.
func (v *View) MultiplyScalar(s float64) error { return v.ewScalar(s, mulFn, opMultiply) }

// DivideScalar divides every cell by s.
func (v *View) DivideScalar(s float64) error { return v.ewScalar(s, divFn, opDivide) }

// Package linalg holds the linear-algebra kernels built on the
// matrix.Matrix contract: Transpose and Mul.
//
// Both kernels accept any implementation (views, sub-views, user types) and
// return a new root *matrix.View that never aliases an operand.
//
// Errors:
//
//   - matrix.ErrNilMatrix: nil operand.
//   - matrix.ErrDimensionMismatch: Mul with A.Cols() != B.Rows().
package linalg

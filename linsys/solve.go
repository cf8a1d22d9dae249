// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/katalvlaran/linsolve/matrix"
)

// Classification sentinels. A failed Solve returns exactly one of these or a
// matrix.ErrInvalidArgument-category error, never a partial solution.
var (
	// ErrNoSolution reports an inconsistent system: elimination produced a row
	// with all-zero coefficients and a nonzero right-hand side.
	ErrNoSolution = errors.New("linsys: no solution")

	// ErrInfiniteSolutions reports a consistent but rank-deficient system.
	ErrInfiniteSolutions = errors.New("linsys: infinite solutions")
)

// Operation name constants for uniform error wrapping.
const (
	opSolve    = "Solve"
	opResidual = "Residual"
)

// zeroPivot is the exact value a pivot candidate must differ from.
const zeroPivot = 0.0

func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve returns x (n×1) with A·x = b, by Gaussian elimination on the
// augmented matrix [A | b] followed by back substitution.
//
// Implementation:
//   - Stage 1: validate A is n×n and b is n×1; build Ab (n×(n+1)) by adding A
//     and b into two sub-views of a zero buffer. A and b are never mutated.
//   - Stage 2: for each column i pick the first row at or below i with an
//     entry != 0, swap it up, and eliminate every row below.
//   - Stage 3: when column i has no pivot, classify the system (see classify).
//   - Stage 4: back substitution from row n-1 up to 0.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (both ErrInvalidArgument).
//   - ErrNoSolution, ErrInfiniteSolutions.
//
// Notes:
//   - The pivot test is an exact comparison with zero. Entries that should
//     cancel but carry rounding noise are accepted as pivots, which can turn
//     a singular system into a "unique" one with huge components. Known
//     limitation; a tolerance would change classification on edge inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a, b matrix.Matrix) (*matrix.View, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateColumn(b, n); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}

	ab, err := augment(a, b, n)
	if err != nil {
		return nil, linsysErrorf(opSolve, err)
	}

	for i := 0; i < n; i++ {
		pivot := findPivot(ab, i, i, n)
		if pivot < 0 {
			return nil, linsysErrorf(opSolve, classify(ab, i, n))
		}
		if pivot != i {
			swapRows(ab, i, pivot)
		}
		eliminate(ab, i, i, n)
	}

	return backSubstitute(ab, n), nil
}

// Residual returns A·x − b as a new view. For a solution from Solve every
// entry is zero up to rounding.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(a, x, b matrix.Matrix) (*matrix.View, error) {
	ax, err := linalg.Mul(a, x)
	if err != nil {
		return nil, linsysErrorf(opResidual, err)
	}
	if err = ax.Subtract(b); err != nil {
		return nil, linsysErrorf(opResidual, err)
	}

	return ax, nil
}

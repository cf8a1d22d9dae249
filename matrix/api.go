// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Equal reports whether a and b have the same shape and bitwise-equal cells
// (NaN never equals NaN).
func Equal(a, b Matrix) (bool, error) { return AllClose(a, b, 0, 0) }

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds cell by cell.
// A shape mismatch yields (false, nil); only nil operands or bad tolerances
// are errors.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if rtol < 0 || atol < 0 || isNonFinite(rtol) || isNonFinite(atol) {
		return false, fmt.Errorf("AllClose: tolerances must be finite and >= 0: %w", ErrInvalidArgument)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if av == bv {
				continue // covers ±Inf of equal sign
			}
			if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

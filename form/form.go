// SPDX-License-Identifier: MIT

package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
)

// ErrInvalidInput reports a cell that is not a finite decimal number. It is
// never produced by the solver, so callers can tell bad input from a
// degenerate system.
var ErrInvalidInput = errors.New("form: invalid numeric input")

// Messages shown to the user for each failure class.
const (
	MsgInvalidInput = "Invalid input. Please enter valid numbers."
	MsgIncompatible = "Matrix shapes are not compatible"
	MsgNoSolution   = "No solution"
	MsgInfinite     = "Infinite solutions"
)

// Outcome is what the output side displays: either a solution with its
// textual rendering, or an error with its message.
type Outcome struct {
	A, B     *matrix.View // parsed inputs; nil when parsing failed
	Solution *matrix.View // nil on failure
	Text     string       // Solution.String() or Message(Err)
	Err      error
}

// OK reports whether the outcome carries a solution.
func (o Outcome) OK() bool { return o.Err == nil }

// ParseCell converts one text cell to a finite float64. Surrounding
// whitespace is ignored.
func ParseCell(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidInput)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: not finite: %w", s, ErrInvalidInput)
	}

	return v, nil
}

// ParseSystem turns a grid of decimal strings for A and a column of decimal
// strings for b into views.
//
// Errors:
//   - ErrInvalidInput (wrapped with the cell coordinates) for any bad cell.
//   - ErrInvalidInput joined with matrix.ErrBadShape / matrix.ErrRaggedRows
//     for an empty or ragged grid.
func ParseSystem(a [][]string, b []string) (*matrix.View, *matrix.View, error) {
	rowsA := make([][]float64, len(a))
	for i, row := range a {
		rowsA[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := ParseCell(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("A[%d][%d]: %w", i, j, err)
			}
			rowsA[i][j] = v
		}
	}
	rowsB := make([][]float64, len(b))
	for i, cell := range b {
		v, err := ParseCell(cell)
		if err != nil {
			return nil, nil, fmt.Errorf("b[%d]: %w", i, err)
		}
		rowsB[i] = []float64{v}
	}

	av, err := matrix.NewFromRows(rowsA, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, nil, fmt.Errorf("A: %w: %w", ErrInvalidInput, err)
	}
	bv, err := matrix.NewFromRows(rowsB, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, nil, fmt.Errorf("b: %w: %w", ErrInvalidInput, err)
	}

	return av, bv, nil
}

// Message maps an error to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, linsys.ErrNoSolution):
		return MsgNoSolution
	case errors.Is(err, linsys.ErrInfiniteSolutions):
		return MsgInfinite
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return MsgIncompatible
	case errors.Is(err, matrix.ErrInvalidArgument):
		return MsgInvalidInput
	default:
		return err.Error()
	}
}

// SolveStrings parses the inputs and solves the system, folding every
// failure into the returned Outcome.
func SolveStrings(a [][]string, b []string) Outcome {
	av, bv, err := ParseSystem(a, b)
	if err != nil {
		return Outcome{Err: err, Text: Message(err)}
	}
	x, err := linsys.Solve(av, bv)
	if err != nil {
		return Outcome{A: av, B: bv, Err: err, Text: Message(err)}
	}

	return Outcome{A: av, B: bv, Solution: x, Text: x.String()}
}

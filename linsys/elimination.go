// SPDX-License-Identifier: MIT

package linsys

import "github.com/katalvlaran/linsolve/matrix"

// Internal helpers below operate on the augmented view built by augment.
// Every coordinate they touch is in range by construction, so At/Set errors
// are ignored.

// augment builds Ab = [A | b] of shape n×(n+1).
func augment(a, b matrix.Matrix, n int) (*matrix.View, error) {
	ab, err := matrix.NewZeros(n, n+1)
	if err != nil {
		return nil, err
	}
	left, err := ab.Select(matrix.All(), matrix.SelectSlice(matrix.SliceTo(n)))
	if err != nil {
		return nil, err
	}
	if err = left.Add(a); err != nil {
		return nil, err
	}
	right, err := ab.Select(matrix.All(), matrix.SelectIndex(n))
	if err != nil {
		return nil, err
	}
	if err = right.Add(b); err != nil {
		return nil, err
	}

	return ab, nil
}

// findPivot returns the first row in [from, n) whose entry in column col is
// nonzero, or -1.
func findPivot(ab *matrix.View, from, col, n int) int {
	var v float64
	for r := from; r < n; r++ {
		v, _ = ab.At(r, col)
		if v != zeroPivot {
			return r
		}
	}

	return -1
}

// swapRows exchanges rows i and j across every augmented column.
func swapRows(ab *matrix.View, i, j int) {
	var vi, vj float64
	for k := 0; k < ab.Cols(); k++ {
		vi, _ = ab.At(i, k)
		vj, _ = ab.At(j, k)
		_ = ab.Set(i, k, vj)
		_ = ab.Set(j, k, vi)
	}
}

// eliminate subtracts factor·row(p) from every row below p, with
// factor = Ab[j][col]/Ab[p][col], over columns col..n (RHS included).
func eliminate(ab *matrix.View, p, col, n int) {
	var (
		pivot, lead, factor, pv, cur float64
		j, k                         int
	)
	pivot, _ = ab.At(p, col)
	for j = p + 1; j < n; j++ {
		lead, _ = ab.At(j, col)
		factor = lead / pivot
		for k = col; k <= n; k++ {
			pv, _ = ab.At(p, k)
			cur, _ = ab.At(j, k)
			_ = ab.Set(j, k, cur-factor*pv)
		}
	}
}

// classify decides between ErrNoSolution and ErrInfiniteSolutions once
// column i has no pivot in rows i..n-1.
//
// Implementation:
//   - Stage 1: rows i..n-1 whose coefficients in columns i..n-1 are all
//     zero are examined. Any with a nonzero RHS makes the system
//     inconsistent; otherwise their presence makes it rank-deficient.
//   - Stage 2: when no such row exists yet (the deficiency is hidden in a
//     later column), keep reducing columns i+1..n-1 to row-echelon form.
//     Column i contributes no pivot, so at least one row is left without
//     one; those rows carry only zero coefficients and are judged by
//     their RHS exactly as in Stage 1.
//
// Notes:
//   - Stage 1 stops at the zero rows it sees. A contradiction that only
//     appears after further reduction of other rows is not looked for.
func classify(ab *matrix.View, i, n int) error {
	zeroRows := false
	var rhs float64
	for r := i; r < n; r++ {
		if !zeroCoefficients(ab, r, i, n) {
			continue
		}
		zeroRows = true
		if rhs, _ = ab.At(r, n); rhs != zeroPivot {
			return ErrNoSolution
		}
	}
	if zeroRows {
		return ErrInfiniteSolutions
	}

	next := i
	for col := i + 1; col < n && next < n; col++ {
		p := findPivot(ab, next, col, n)
		if p < 0 {
			continue
		}
		if p != next {
			swapRows(ab, next, p)
		}
		eliminate(ab, next, col, n)
		next++
	}
	for r := next; r < n; r++ {
		if rhs, _ = ab.At(r, n); rhs != zeroPivot {
			return ErrNoSolution
		}
	}

	return ErrInfiniteSolutions
}

// zeroCoefficients reports whether Ab[r][from..n-1] are all exactly zero.
func zeroCoefficients(ab *matrix.View, r, from, n int) bool {
	var v float64
	for c := from; c < n; c++ {
		if v, _ = ab.At(r, c); v != zeroPivot {
			return false
		}
	}

	return true
}

// backSubstitute solves the upper-triangular system left in Ab.
func backSubstitute(ab *matrix.View, n int) *matrix.View {
	x, _ := matrix.NewZeros(n, 1)
	var (
		sum, coef, xj, rhs, diag float64
		i, j                     int
	)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for j = i + 1; j < n; j++ {
			coef, _ = ab.At(i, j)
			xj, _ = x.At(j, 0)
			sum += coef * xj
		}
		rhs, _ = ab.At(i, n)
		diag, _ = ab.At(i, i)
		_ = x.Set(i, 0, (rhs-sum)/diag)
	}

	return x
}

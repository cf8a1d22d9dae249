// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for view tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the
// interface (At-based) path in code that special-cases *View.
type hide struct{ matrix.Matrix }

// MustView builds a root view from rows or fails the test.
func MustView(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.View {
	t.Helper()
	v, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return v
}

// MustSelect selects or fails the test.
func MustSelect(t *testing.T, v *matrix.View, r, c matrix.Selector) *matrix.View {
	t.Helper()
	s, err := v.Select(r, c)
	if err != nil {
		t.Fatalf("Select(%v,%v): %v", r, c, err)
	}

	return s
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// CompareExact asserts m equals want cell by cell (shape included).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || (len(want) > 0 && m.Cols() != len(want[0])) {
		t.Fatalf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]=%v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

// sq3 returns a fresh [[1,2,3],[4,5,6],[7,8,9]].
func sq3(t *testing.T) *matrix.View {
	t.Helper()

	return MustView(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
}

// sliceSel is shorthand for SelectSlice(SliceRange(start, end)).
func sliceSel(start, end int) matrix.Selector {
	return matrix.SelectSlice(matrix.SliceRange(start, end))
}

// SPDX-License-Identifier: MIT

// Package matrix: the public read/write contract shared by views and kernels.
// Kernels in linalg and the solver in linsys consume ONLY this interface;
// they never reach into a backing buffer.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values
// addressed by logical coordinates.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of logical rows.
	Rows() int

	// Cols returns the number of logical columns.
	Cols() int

	// At retrieves the element at logical position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns v at logical position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}

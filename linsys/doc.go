// Package linsys solves square linear systems A·x = b by Gaussian
// elimination with first-nonzero partial pivoting and back substitution.
//
// What:
//
//   - Solve(A, b): A is n×n, b is n×1, both any matrix.Matrix. The result is
//     a fresh n×1 *matrix.View.
//   - Degenerate systems are classified instead of solved:
//     ErrNoSolution (inconsistent) or ErrInfiniteSolutions (consistent,
//     rank-deficient). Shape problems surface as matrix.ErrDimensionMismatch.
//   - Residual(A, x, b): A·x − b, handy for checking a solution.
//
// Pivoting:
//
//	A pivot is the first row at or below the current stage whose entry is
//	exactly nonzero. There is no epsilon and no scaling; see Solve for the
//	consequences.
//
// Concurrency:
//
//	Solve allocates its own working buffer and only reads A and b, so
//	concurrent solves are safe as long as nothing mutates A or b meanwhile.
package linsys

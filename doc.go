// Package linsolve is a small dense-matrix toolkit: aliasable sub-matrix
// views and a Gaussian-elimination solver for square linear systems.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/   - View over a shared buffer, Slice & Selector, in-place element-wise ops
//	linalg/   - Transpose and Mul over any matrix.Matrix
//	linsys/   - Solve (elimination + back substitution) with NoSolution / InfiniteSolutions
//	form/     - parse user text into views, map errors to user messages
//	report/   - pongo2 text reports and gonum/plot charts of a solution
//	cmd/linsolve - command-line front end
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
//	b, _ := matrix.NewFromRows([][]float64{{3}, {5}})
//	x, _ := linsys.Solve(A, b)
//	fmt.Println(x) // [0.8]
//	               // [1.4]
//
//	go get github.com/katalvlaran/linsolve
package linsolve

// Package matrix implements dense float64 views that alias a shared buffer.
//
// What:
//
//   - View: a logical rows×cols window over a flat row-major buffer. Each view
//     carries its own row and column index arrays plus the physical stride of
//     the root buffer, so logical (i, j) lives at data[rowIdx[i]*stride + colIdx[j]].
//   - Select: derive a view by Selector per dimension (SelectIndex, SelectList,
//     SelectSlice, All). The result shares storage with its parent; writes
//     through it are visible in every ancestor. Selections compose and only
//     narrow access.
//   - Copy: the single way to obtain independent storage.
//   - Element-wise, in place: Add/Subtract/Multiply/Divide against a
//     shape-identical Matrix, and the *Scalar broadcast variants.
//
// Key Types:
//
//   - Matrix: Rows/Cols/At/Set contract consumed by linalg and linsys.
//   - Slice: immutable (start, end, step); ToEnd resolves at selection time.
//   - Selector: tagged variant with kinds KindIndex, KindList, KindSlice.
//   - Option: WithValidateNaNInf, WithSeed, WithNormal.
//
// Errors:
//
//   - ErrInvalidArgument category: ErrBadShape, ErrRaggedRows,
//     ErrDimensionMismatch, ErrBadSelector, ErrNilMatrix, ErrNaNInf.
//   - ErrOutOfRange (alias ErrIndexOutOfBounds): coordinates outside the
//     logical shape or wrong coordinate count.
//
// Concurrency:
//
//	Views are not safe for concurrent mutation. Views over one buffer alias
//	each other; hand a Copy to another goroutine instead.
//
// Example:
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	corner, _ := m.Select(matrix.SelectSlice(matrix.SliceTo(2)), matrix.SelectSlice(matrix.SliceTo(2)))
//	_ = corner.MultiplyScalar(2)
//	fmt.Println(m) // [2.0, 4.0, 3.0] / [8.0, 10.0, 6.0] / [7.0, 8.0, 9.0]
package matrix

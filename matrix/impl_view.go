// SPDX-License-Identifier: MIT

// Package matrix - View storage (shared row-major buffer + index indirection) & safe accessors.
//
// Purpose:
//   - Express an aliasing window with arbitrary row/column selection over one flat buffer.
//   - Translate logical (i, j) to data[rowIdx[i]*stride + colIdx[j]].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep Copy as the only way to obtain independent storage.
//
// Complexity quicksheet:
//   - NewZeros/NewFromRows/NewRandom: O(r*c); At/Set: O(1); Select: O(r'+c'); Copy: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxGet    = "Get"
	ctxPut    = "Put"
	ctxSelect = "Select"
	ctxRows   = "NewFromRows"
	ctxData   = "NewFromData"
	ctxZeros  = "NewZeros"
	ctxRandom = "NewRandom"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtRowSep   = "\n"
	_fmtSep      = ", "
	_fmtPoint    = ".0"
	_fmtExp      = "E"
	_fmtNaN      = "NaN"
	_fmtPosInf   = "Infinity"
	_fmtNegInf   = "-Infinity"
)

// Magnitudes in [plainLow, plainHigh) print in positional notation, the
// rest in scientific notation.
const (
	plainLow  = 1e-3
	plainHigh = 1e7
)

// coordArity is the number of coordinates a 2-D view accepts in Get/Put.
const coordArity = 2

// pcgStream is the second PCG word derived from a user seed.
const pcgStream = 0x9e3779b97f4a7c15

// viewErrorf wraps a sentinel with the method name and the offending coordinates.
func viewErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("View.%s(%d,%d): %w", method, row, col, err)
}

// View is a logical 2-D window over a shared flat buffer of float64.
//   - rowIdx/colIdx map logical rows/cols to physical ones (len = rows/cols).
//   - stride is the physical row pitch of the root buffer, shared by every derived view.
//   - data is the root buffer; derived views alias it and never copy.
//   - validateNaNInf is inherited from the root (see options.go).
type View struct {
	rowIdx         []int
	colIdx         []int
	stride         int
	data           []float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*View)(nil)
	_ fmt.Stringer = (*View)(nil)
)

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// newRoot wraps a tightly packed rows×cols buffer with identity indices.
func newRoot(rows, cols int, data []float64, o Options) *View {
	return &View{
		rowIdx:         identity(rows),
		colIdx:         identity(cols),
		stride:         cols,
		data:           data,
		validateNaNInf: o.validateNaNInf,
	}
}

// NewZeros creates a rows×cols root view filled with zeros.
//
// Errors:
//   - ErrBadShape when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros(rows, cols int, opts ...Option) (*View, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxZeros, rows, cols, ErrBadShape)
	}

	return newRoot(rows, cols, make([]float64, rows*cols), gatherOptions(opts...)), nil
}

// NewFromRows builds a root view from rectangular source data. Values are
// copied into a fresh buffer; src is not retained.
//
// Implementation:
//   - Stage 1: require at least one row and a first row of length ≥ 1.
//   - Stage 2: require every row to have the same length.
//   - Stage 3: flatten row-major, enforcing the numeric policy.
//
// Errors:
//   - ErrBadShape (no rows, or zero columns), ErrRaggedRows, ErrNaNInf (policy on).
func NewFromRows(src [][]float64, opts ...Option) (*View, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, fmt.Errorf("%s: need at least one row and one column: %w", ctxRows, ErrBadShape)
	}
	o := gatherOptions(opts...)
	rows, cols := len(src), len(src[0])
	data := make([]float64, 0, rows*cols)
	for i, row := range src {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), cols, ErrRaggedRows)
		}
		for j, v := range row {
			if o.validateNaNInf && isNonFinite(v) {
				return nil, fmt.Errorf("%s: value at (%d,%d): %w", ctxRows, i, j, ErrNaNInf)
			}
		}
		data = append(data, row...)
	}

	return newRoot(rows, cols, data, o), nil
}

// NewFromData builds a rows×cols root view from row-major values (copied).
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch (len(data) != rows*cols), ErrNaNInf (policy on).
func NewFromData(rows, cols int, data []float64, opts ...Option) (*View, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxData, rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): %d values: %w", ctxData, rows, cols, len(data), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s: value at (%d,%d): %w", ctxData, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return newRoot(rows, cols, buf, o), nil
}

// NewRandom creates a rows×cols root view of normally distributed samples,
// N(0,1) unless WithNormal says otherwise. WithSeed makes the fill reproducible.
//
// Errors:
//   - ErrBadShape when rows<=0 or cols<=0.
func NewRandom(rows, cols int, opts ...Option) (*View, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxRandom, rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	dist := distuv.Normal{Mu: o.mu, Sigma: o.sigma}
	if o.seeded {
		dist.Src = rand.NewPCG(o.seed, o.seed^pcgStream)
	}
	data := make([]float64, rows*cols)
	for k := range data {
		data[k] = dist.Rand()
	}

	return newRoot(rows, cols, data, o), nil
}

// Rows returns the number of logical rows.
func (v *View) Rows() int { return len(v.rowIdx) }

// Cols returns the number of logical columns.
func (v *View) Cols() int { return len(v.colIdx) }

// Shape returns (rows, cols). It always equals (len(RowIndices()), len(ColIndices())).
func (v *View) Shape() (rows, cols int) { return len(v.rowIdx), len(v.colIdx) }

// Stride returns the physical row pitch of the backing buffer.
func (v *View) Stride() int { return v.stride }

// RowIndices returns a copy of the physical row index of each logical row.
func (v *View) RowIndices() []int { return append([]int(nil), v.rowIdx...) }

// ColIndices returns a copy of the physical column index of each logical column.
func (v *View) ColIndices() []int { return append([]int(nil), v.colIdx...) }

// offset translates logical (row, col) to a buffer offset or returns ErrOutOfRange.
func (v *View) offset(row, col int) (int, error) {
	if row < 0 || row >= len(v.rowIdx) || col < 0 || col >= len(v.colIdx) {
		return 0, ErrOutOfRange
	}

	return v.rowIdx[row]*v.stride + v.colIdx[col], nil
}

// At reads the element at logical (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (v *View) At(row, col int) (float64, error) {
	off, err := v.offset(row, col)
	if err != nil {
		return 0, viewErrorf(ctxAt, row, col, err)
	}

	return v.data[off], nil
}

// Set writes val at logical (row, col); the write lands in the shared buffer
// and is visible through every view mapping the same cell.
// Errors: ErrOutOfRange, ErrNaNInf (policy on). Complexity: O(1).
func (v *View) Set(row, col int, val float64) error {
	off, err := v.offset(row, col)
	if err != nil {
		return viewErrorf(ctxSet, row, col, err)
	}
	if v.validateNaNInf && isNonFinite(val) {
		return viewErrorf(ctxSet, row, col, ErrNaNInf)
	}
	v.data[off] = val

	return nil
}

// Get is the variadic form of At. Supplying anything but two coordinates
// is reported as ErrIndexOutOfBounds.
func (v *View) Get(coords ...int) (float64, error) {
	if len(coords) != coordArity {
		return 0, fmt.Errorf("View.%s: %d coordinates for a 2-D view: %w", ctxGet, len(coords), ErrIndexOutOfBounds)
	}

	return v.At(coords[0], coords[1])
}

// Put is the variadic form of Set, with the value first.
func (v *View) Put(val float64, coords ...int) error {
	if len(coords) != coordArity {
		return fmt.Errorf("View.%s: %d coordinates for a 2-D view: %w", ctxPut, len(coords), ErrIndexOutOfBounds)
	}

	return v.Set(coords[0], coords[1], val)
}

// Select derives a view over the same buffer. Each selector is mapped
// through the current index arrays, so selections compose and only ever
// narrow access.
//
// Errors:
//   - ErrBadSelector (unknown kind, index out of the current logical range, bad step).
//   - ErrBadShape (empty selection).
//
// Complexity:
//   - Time O(r'+c'), Space O(r'+c'); no element is copied.
func (v *View) Select(rowSel, colSel Selector) (*View, error) {
	rows, err := rowSel.compose(v.rowIdx)
	if err != nil {
		return nil, fmt.Errorf("View.%s: rows %v: %w", ctxSelect, rowSel, err)
	}
	cols, err := colSel.compose(v.colIdx)
	if err != nil {
		return nil, fmt.Errorf("View.%s: cols %v: %w", ctxSelect, colSel, err)
	}

	return &View{
		rowIdx:         rows,
		colIdx:         cols,
		stride:         v.stride, // physical pitch never changes
		data:           v.data,   // share storage
		validateNaNInf: v.validateNaNInf,
	}, nil
}

// Copy materializes the logical window into a new tightly strided buffer
// with identity indices. The copy and the source never observe each other's writes.
// Complexity: O(r*c).
func (v *View) Copy() *View {
	rows, cols := v.Shape()
	buf := make([]float64, rows*cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = v.rowIdx[i] * v.stride
		for j = 0; j < cols; j++ {
			buf[i*cols+j] = v.data[base+v.colIdx[j]]
		}
	}

	return newRoot(rows, cols, buf, Options{validateNaNInf: v.validateNaNInf})
}

// ToRows returns the logical window as freshly allocated rows.
func (v *View) ToRows() [][]float64 {
	rows, cols := v.Shape()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		base := v.rowIdx[i] * v.stride
		for j := 0; j < cols; j++ {
			row[j] = v.data[base+v.colIdx[j]]
		}
		out[i] = row
	}

	return out
}

// String renders one bracketed, comma-separated row per line, with no
// newline after the last row. Cells use FormatCell:
//
//	[1.0, 2.5]
//	[3.0, 1.0E-4]
func (v *View) String() string {
	var b strings.Builder
	rows, cols := v.Shape()
	var i, j, base int
	for i = 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(_fmtRowOpen)
		base = v.rowIdx[i] * v.stride
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(FormatCell(v.data[base+v.colIdx[j]]))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// FormatCell renders a value the way the textual matrix format expects:
// the shortest decimal that round-trips, always with a fractional part
// ("2.0", "0.8"), switching to "d.dddE±n" below 1e-3 and from 1e7 up
// ("1.0E7", "1.5E-5"). Non-finite values print as NaN, Infinity, -Infinity.
func FormatCell(x float64) string {
	switch {
	case math.IsNaN(x):
		return _fmtNaN
	case math.IsInf(x, 1):
		return _fmtPosInf
	case math.IsInf(x, -1):
		return _fmtNegInf
	}

	abs := math.Abs(x)
	if abs == 0 || (abs >= plainLow && abs < plainHigh) {
		return withPoint(strconv.FormatFloat(x, 'f', -1, 64))
	}
	// 'E' yields "1.5E-05" / "1E+07"; normalize mantissa and exponent.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(x, 'E', -1, 64), _fmtExp)
	e, _ := strconv.Atoi(exp)

	return withPoint(mant) + _fmtExp + strconv.Itoa(e)
}

// withPoint appends ".0" to an integral mantissa.
func withPoint(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s + _fmtPoint
	}

	return s
}

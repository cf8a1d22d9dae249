// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// --- matrix operand -----------------------------------------------------------

func TestElementwise_MatrixOps(t *testing.T) {
	t.Parallel()

	operand := [][]float64{{2, 4}, {5, 8}}
	cases := []struct {
		name string
		op   func(v *matrix.View, o matrix.Matrix) error
		want [][]float64
	}{
		{"Add", (*matrix.View).Add, [][]float64{{12, 24}, {35, 48}}},
		{"Subtract", (*matrix.View).Subtract, [][]float64{{8, 16}, {25, 32}}},
		{"Multiply", (*matrix.View).Multiply, [][]float64{{20, 80}, {150, 320}}},
		{"Divide", (*matrix.View).Divide, [][]float64{{5, 5}, {6, 5}}},
	}
	for _, tc := range cases {
		// fast path (*View operand) and fallback path (opaque Matrix) must agree
		fast := MustView(t, [][]float64{{10, 20}, {30, 40}})
		require.NoError(t, tc.op(fast, MustView(t, operand)), tc.name)
		CompareExact(t, tc.want, fast)

		slow := MustView(t, [][]float64{{10, 20}, {30, 40}})
		require.NoError(t, tc.op(slow, hide{MustView(t, operand)}), tc.name)
		CompareExact(t, tc.want, slow)
	}
}

func TestElementwise_ScalarOps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		op   func(v *matrix.View, s float64) error
		want [][]float64
	}{
		{"AddScalar", (*matrix.View).AddScalar, [][]float64{{6, 8}, {10, 12}}},
		{"SubtractScalar", (*matrix.View).SubtractScalar, [][]float64{{-2, 0}, {2, 4}}},
		{"MultiplyScalar", (*matrix.View).MultiplyScalar, [][]float64{{8, 16}, {24, 32}}},
		{"DivideScalar", (*matrix.View).DivideScalar, [][]float64{{0.5, 1}, {1.5, 2}}},
	}
	for _, tc := range cases {
		v := MustView(t, [][]float64{{2, 4}, {6, 8}})
		require.NoError(t, tc.op(v, 4), tc.name)
		CompareExact(t, tc.want, v)
	}
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	t.Parallel()

	v := MustView(t, [][]float64{{1, 2}, {3, 4}})
	err := v.Add(MustView(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	err = v.Multiply(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.View
	require.ErrorIs(t, v.Subtract(typedNil), matrix.ErrNilMatrix)

	// nothing was written
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, v)
	require.False(t, v.IsCompatible(nil))
	require.False(t, v.IsCompatible((*matrix.View)(nil)))
	require.True(t, v.IsCompatible(hide{MustView(t, [][]float64{{0, 0}, {0, 0}})}))
}

// --- sub-view targets ---------------------------------------------------------

func TestElementwise_SubViewTargetsParentCells(t *testing.T) {
	t.Parallel()

	m := sq3(t)
	col := MustSelect(t, m, matrix.All(), matrix.SelectIndex(2))
	require.NoError(t, col.Add(MustView(t, [][]float64{{10}, {20}, {30}})))
	CompareExact(t, [][]float64{{1, 2, 13}, {4, 5, 26}, {7, 8, 39}}, m)

	// sub-view operand from another root
	other := sq3(t)
	corner := MustSelect(t, other, sliceSel(1, 3), sliceSel(1, 3))
	target := MustSelect(t, m, sliceSel(0, 2), sliceSel(0, 2))
	require.NoError(t, target.Subtract(corner))
	CompareExact(t, [][]float64{{-4, -4, 13}, {-4, -4, 26}, {7, 8, 39}}, m)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, other)
}

// TestElementwise_OverlappingOperand reads every operand cell before any write,
// even when operand and target alias the same buffer.
func TestElementwise_OverlappingOperand(t *testing.T) {
	t.Parallel()

	m := MustView(t, [][]float64{{1, 2}, {3, 4}})
	v := MustSelect(t, m, matrix.All(), matrix.All())
	w := MustSelect(t, m, matrix.SelectList(1, 0), matrix.All())

	require.NoError(t, v.Add(w))
	CompareExact(t, [][]float64{{4, 6}, {4, 6}}, m)

	// self-operand doubles
	require.NoError(t, m.Add(m))
	CompareExact(t, [][]float64{{8, 12}, {8, 12}}, m)
}

// --- numeric policy ------------------------------------------------------------

func TestElementwise_NaNInfPolicy(t *testing.T) {
	t.Parallel()

	loose := MustView(t, [][]float64{{1, 0}})
	require.NoError(t, loose.DivideScalar(0))
	require.True(t, math.IsInf(MustAt(t, loose, 0, 0), 1))
	require.True(t, math.IsNaN(MustAt(t, loose, 0, 1)))

	strict := MustView(t, [][]float64{{1, 2}}, matrix.WithValidateNaNInf())
	err := strict.DivideScalar(0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.True(t, errors.Is(err, matrix.ErrInvalidArgument))
	require.Equal(t, 1.0, MustAt(t, strict, 0, 0), "rejected cell keeps its value")

	err = strict.Add(MustView(t, [][]float64{{math.Inf(1), 0}}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

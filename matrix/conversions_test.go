// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromGonum(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	v, err := matrix.FromGonum(d)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, v)

	// copies: later writes to the gonum matrix do not show
	d.Set(0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, v, 0, 0))

	// any mat.Matrix works, including lazy transposes
	tv, err := matrix.FromGonum(d.T())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{99, 4}, {2, 5}, {3, 6}}, tv)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(mat.NewDense(1, 1, []float64{math.NaN()}), matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_OfSelection(t *testing.T) {
	t.Parallel()

	m := sq3(t)
	s := MustSelect(t, m, matrix.SelectList(2, 0), sliceSel(1, 3))
	d := s.Dense()

	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.True(t, mat.Equal(d, mat.NewDense(2, 2, []float64{8, 9, 2, 3})))

	// round trip through gonum keeps the logical window only
	back, err := matrix.FromGonum(d)
	require.NoError(t, err)
	eq, err := matrix.Equal(s, back)
	require.NoError(t, err)
	require.True(t, eq)

	d.Set(0, 0, -1)
	require.Equal(t, 8.0, MustAt(t, m, 2, 1))
}

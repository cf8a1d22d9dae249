// SPDX-License-Identifier: MIT

package form_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/linsolve/form"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	t.Parallel()

	good := map[string]float64{"1": 1, " -2.5 ": -2.5, "1e3": 1000, "+0": 0, ".5": 0.5}
	for in, want := range good {
		v, err := form.ParseCell(in)
		require.NoError(t, err, in)
		require.Equal(t, want, v, in)
	}

	for _, in := range []string{"", "abc", "1,5", "NaN", "inf", "-Inf", "1e999"} {
		_, err := form.ParseCell(in)
		require.ErrorIs(t, err, form.ErrInvalidInput, "%q", in)
	}
}

func TestParseSystem(t *testing.T) {
	t.Parallel()

	a, b, err := form.ParseSystem([][]string{{"2", "1"}, {"1", "3"}}, []string{"3", "5"})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {1, 3}}, a.ToRows())
	require.Equal(t, [][]float64{{3}, {5}}, b.ToRows())

	_, _, err = form.ParseSystem([][]string{{"2", "x"}}, []string{"3"})
	require.ErrorIs(t, err, form.ErrInvalidInput)
	require.Contains(t, err.Error(), "A[0][1]")

	_, _, err = form.ParseSystem([][]string{{"2"}}, []string{""})
	require.ErrorIs(t, err, form.ErrInvalidInput)
	require.Contains(t, err.Error(), "b[0]")

	_, _, err = form.ParseSystem([][]string{{"1", "2"}, {"3"}}, []string{"1", "2"})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	require.ErrorIs(t, err, form.ErrInvalidInput)

	_, _, err = form.ParseSystem(nil, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.ErrorIs(t, err, form.ErrInvalidInput)
}

func TestMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("A[0][0]: %w", form.ErrInvalidInput), form.MsgInvalidInput},
		{fmt.Errorf("Solve: %w", linsys.ErrNoSolution), form.MsgNoSolution},
		{linsys.ErrInfiniteSolutions, form.MsgInfinite},
		{fmt.Errorf("Solve: %w", matrix.ErrDimensionMismatch), form.MsgIncompatible},
		{fmt.Errorf("A: %w", matrix.ErrRaggedRows), form.MsgInvalidInput},
		{fmt.Errorf("A: %w", matrix.ErrBadShape), form.MsgInvalidInput},
		{errors.New("disk on fire"), "disk on fire"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, form.Message(tc.err))
	}
}

func TestSolveStrings(t *testing.T) {
	t.Parallel()

	o := form.SolveStrings([][]string{{"2", "1"}, {"1", "3"}}, []string{"3", "5"})
	require.True(t, o.OK())
	require.NoError(t, o.Err)
	require.Equal(t, "[0.8]\n[1.4]", o.Text)
	require.NotNil(t, o.A)
	require.NotNil(t, o.B)

	o = form.SolveStrings([][]string{{"1", "1"}, {"1", "1"}}, []string{"1", "2"})
	require.False(t, o.OK())
	require.ErrorIs(t, o.Err, linsys.ErrNoSolution)
	require.Equal(t, form.MsgNoSolution, o.Text)
	require.Nil(t, o.Solution)

	o = form.SolveStrings([][]string{{"1", "1"}, {"2", "2"}}, []string{"1", "2"})
	require.Equal(t, form.MsgInfinite, o.Text)

	// bad input is reported as such, never as a solver outcome
	o = form.SolveStrings([][]string{{"1", "one"}, {"2", "2"}}, []string{"1", "2"})
	require.ErrorIs(t, o.Err, form.ErrInvalidInput)
	require.NotErrorIs(t, o.Err, linsys.ErrNoSolution)
	require.Equal(t, form.MsgInvalidInput, o.Text)
	require.Nil(t, o.A)

	o = form.SolveStrings([][]string{{"1", "2", "3"}, {"4", "5", "6"}}, []string{"1", "2"})
	require.ErrorIs(t, o.Err, matrix.ErrDimensionMismatch)
	require.Equal(t, form.MsgIncompatible, o.Text)

	// malformed grids are input errors, not shape mismatches
	o = form.SolveStrings([][]string{{"1", "2"}, {"3"}}, []string{"1", "2"})
	require.ErrorIs(t, o.Err, matrix.ErrRaggedRows)
	require.Equal(t, form.MsgInvalidInput, o.Text)

	o = form.SolveStrings(nil, nil)
	require.ErrorIs(t, o.Err, matrix.ErrBadShape)
	require.Equal(t, form.MsgInvalidInput, o.Text)
}

func TestReadSystem(t *testing.T) {
	t.Parallel()

	src := `# 2x + y = 3
2 1 | 3

1,3,5   # trailing comment
`
	a, b, err := form.ReadSystem(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"2", "1"}, {"1", "3"}}, a)
	require.Equal(t, []string{"3", "5"}, b)

	// cells stay unparsed
	a, b, err = form.ReadSystem(strings.NewReader("x 1\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"x"}}, a)
	require.Equal(t, []string{"1"}, b)
}

func TestReadSystem_Errors(t *testing.T) {
	t.Parallel()

	for name, src := range map[string]string{
		"empty":         "",
		"only comments": "# nothing\n\n",
		"single cell":   "1 2\n3\n",
		"ragged":        "1 2 3\n4 5\n",
	} {
		_, _, err := form.ReadSystem(strings.NewReader(src))
		require.ErrorIs(t, err, form.ErrInvalidInput, name)
	}

	_, _, err := form.ReadSystem(iotest.ErrReader(errors.New("boom")))
	require.ErrorContains(t, err, "boom")
	require.NotErrorIs(t, err, form.ErrInvalidInput)
}

func ExampleSolveStrings() {
	o := form.SolveStrings([][]string{{"2", "1"}, {"1", "3"}}, []string{"3", "5"})
	fmt.Println(o.Text)

	o = form.SolveStrings([][]string{{"1", "1"}, {"1", "1"}}, []string{"1", "2"})
	fmt.Println(o.Text)
	// Output:
	// [0.8]
	// [1.4]
	// No solution
}

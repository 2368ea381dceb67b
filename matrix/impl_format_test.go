// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

func TestPrintFormats(t *testing.T) {
	var buf bytes.Buffer
	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}, matrix.WithOutput(&buf))

	t.Run("matrix", func(t *testing.T) {
		buf.Reset()
		m.Print()
		require.Equal(t, "[ 1 2 3 ]\n[ 4 5 6 ]\n", buf.String())
		require.Equal(t, buf.String(), m.String())
	})

	t.Run("row", func(t *testing.T) {
		buf.Reset()
		m.PrintRow(1)
		require.Equal(t, "4 5 6\n", buf.String())
	})

	t.Run("column", func(t *testing.T) {
		buf.Reset()
		m.PrintColumn(1)
		require.Equal(t, "2 5\n", buf.String())
	})

	t.Run("out_of_range_is_silent", func(t *testing.T) {
		buf.Reset()
		m.PrintRow(2)
		m.PrintRow(-1)
		m.PrintColumn(3)
		require.Empty(t, buf.String())
	})
}

func TestFprintFloat(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1.5, -2}, {0, 3.25}})

	var buf bytes.Buffer
	require.NoError(t, m.Fprint(&buf))
	require.Equal(t, "[ 1.5 -2 ]\n[ 0 3.25 ]\n", buf.String())

	buf.Reset()
	require.NoError(t, m.FprintColumn(&buf, 0))
	require.Equal(t, "1.5 0\n", buf.String())

	buf.Reset()
	require.NoError(t, m.FprintRow(&buf, 5))
	require.Empty(t, buf.String())
}

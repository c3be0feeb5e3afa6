package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitfn/errs"
)

func TestAddColumn(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.AddColumn("x", []float64{1, 2, 3}))
	require.NoError(t, tbl.AddColumn("y", []float64{4, 5, 6}))
	require.Equal(t, 3, tbl.NumRows())
	require.Equal(t, 2, tbl.NumCols())
	require.Equal(t, []string{"x", "y"}, tbl.Names())

	t.Run("rejects length mismatch", func(t *testing.T) {
		require.Error(t, tbl.AddColumn("z", []float64{1}))
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		require.Error(t, tbl.AddColumn("x", []float64{7, 8, 9}))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		require.Error(t, tbl.AddColumn("", []float64{7, 8, 9}))
	})
}

func TestColumn(t *testing.T) {
	tbl, err := FromColumns(
		Column{Name: "x", Values: []float64{1, 2}},
		Column{Name: "y", Values: []float64{3, 4}},
	)
	require.NoError(t, err)

	col, err := tbl.Column("y")
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, col)

	_, err = tbl.Column("nope")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)
}

func TestAddColumnCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	tbl := New()
	require.NoError(t, tbl.AddColumn("x", src))

	src[0] = 99
	col, err := tbl.Column("x")
	require.NoError(t, err)
	require.Equal(t, 1.0, col[0])
}

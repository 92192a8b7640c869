package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
)

func mustGrid(t *testing.T, rows, cols int, block string) *Grid {
	t.Helper()
	g, err := New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, g.Fill([]rune(block)))
	return g
}

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative rows", -1, 3},
		{"negative cols", 2, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.cols)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, cipherrors.ErrInvalidDimension))
		})
	}
}

func TestFill_MalformedBlock(t *testing.T) {
	g, err := New(2, 3)
	require.NoError(t, err)

	err = g.Fill([]rune("HELLO"))
	assert.ErrorIs(t, err, cipherrors.ErrMalformedBlock)

	err = g.FillColumnMajor([]rune("HELLOAB"))
	assert.ErrorIs(t, err, cipherrors.ErrMalformedBlock)
}

func TestFill_RowMajor(t *testing.T) {
	g := mustGrid(t, 2, 3, "HELLOA")

	assert.Equal(t, 'H', g.At(0, 0))
	assert.Equal(t, 'L', g.At(0, 2))
	assert.Equal(t, 'L', g.At(1, 0))
	assert.Equal(t, 'A', g.At(1, 2))
	assert.Equal(t, "HEL\nLOA", g.String())
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
}

func TestReadColumnMajor(t *testing.T) {
	tests := []struct {
		rows, cols int
		block      string
		expected   string
	}{
		{2, 3, "HELLOA", "HLEOLA"},
		{3, 3, "ABCDEFGHI", "ADGBEHCFI"},
		{1, 4, "ABCD", "ABCD"},
		{4, 1, "ABCD", "ABCD"},
	}

	for _, tt := range tests {
		t.Run(tt.block, func(t *testing.T) {
			g := mustGrid(t, tt.rows, tt.cols, tt.block)
			assert.Equal(t, tt.expected, string(g.ReadColumnMajor()))
			assert.Equal(t, tt.block, string(g.ReadRowMajor()))
		})
	}
}

func TestFillColumnMajor_InvertsReadColumnMajor(t *testing.T) {
	dims := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 3}, {3, 2}, {4, 4}, {3, 7}}
	for _, d := range dims {
		rows, cols := d[0], d[1]
		block := make([]rune, rows*cols)
		for i := range block {
			block[i] = rune('a' + i%26)
		}

		g, err := New(rows, cols)
		require.NoError(t, err)
		require.NoError(t, g.Fill(block))
		scrambled := g.ReadColumnMajor()

		require.NoError(t, g.FillColumnMajor(scrambled))
		assert.Equal(t, string(block), string(g.ReadRowMajor()), "rows=%d cols=%d", rows, cols)
	}
}

func TestReadRowMajor_ReturnsCopy(t *testing.T) {
	g := mustGrid(t, 1, 3, "abc")
	out := g.ReadRowMajor()
	out[0] = 'z'
	assert.Equal(t, 'a', g.At(0, 0))
}

func TestRotateRows(t *testing.T) {
	g := mustGrid(t, 3, 2, "abcdef")

	g.RotateRowsUp()
	assert.Equal(t, "cd\nef\nab", g.String())

	g.RotateRowsDown()
	assert.Equal(t, "ab\ncd\nef", g.String())

	g.RotateRowsDown()
	assert.Equal(t, "ef\nab\ncd", g.String())
}

func TestRotateCols(t *testing.T) {
	g := mustGrid(t, 2, 3, "abcdef")

	g.RotateColsLeft()
	assert.Equal(t, "bca\nefd", g.String())

	g.RotateColsRight()
	assert.Equal(t, "abc\ndef", g.String())

	g.RotateColsRight()
	assert.Equal(t, "cab\nfde", g.String())
}

func TestRotate_SingleRowOrColumnIsIdentity(t *testing.T) {
	g := mustGrid(t, 1, 3, "xyz")
	g.RotateRowsUp()
	g.RotateRowsDown()
	assert.Equal(t, "xyz", g.String())

	g = mustGrid(t, 3, 1, "xyz")
	g.RotateColsLeft()
	g.RotateColsRight()
	assert.Equal(t, "x\ny\nz", g.String())
}

// Package grid holds one block of characters in a fixed rows x cols table.
//
// Cells live in a single flat slice indexed by row*cols + col. A Grid is
// scratch space: every fill overwrites all cells, and it is not safe for
// concurrent use.
package grid

import (
	"fmt"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
)

// Grid is a rows x cols table of runes.
type Grid struct {
	rows  int
	cols  int
	cells []rune
}

// New creates an empty grid. Both dimensions must be positive.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", cipherrors.ErrInvalidDimension, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]rune, rows*cols),
	}, nil
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

// Size returns rows*cols, the block length this grid accepts.
func (g *Grid) Size() int { return len(g.cells) }

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) rune {
	return g.cells[row*g.cols+col]
}

func (g *Grid) checkBlock(block []rune) error {
	if len(block) != len(g.cells) {
		return fmt.Errorf("%w: got %d characters, want %d", cipherrors.ErrMalformedBlock, len(block), len(g.cells))
	}
	return nil
}

// Fill writes block into the grid row-major: row 0 left to right, then row 1.
func (g *Grid) Fill(block []rune) error {
	if err := g.checkBlock(block); err != nil {
		return err
	}
	copy(g.cells, block)
	return nil
}

// FillColumnMajor writes block column-major, so block[p] lands at
// (p%rows, p/rows). It undoes ReadColumnMajor.
func (g *Grid) FillColumnMajor(block []rune) error {
	if err := g.checkBlock(block); err != nil {
		return err
	}
	for p, r := range block {
		g.cells[(p%g.rows)*g.cols+p/g.rows] = r
	}
	return nil
}

// ReadRowMajor returns a copy of the cells in row order.
func (g *Grid) ReadRowMajor() []rune {
	out := make([]rune, len(g.cells))
	copy(out, g.cells)
	return out
}

// ReadColumnMajor returns the cells reading column 0 top to bottom, then
// column 1, and so on.
func (g *Grid) ReadColumnMajor() []rune {
	out := make([]rune, len(g.cells))
	i := 0
	for col := 0; col < g.cols; col++ {
		for row := 0; row < g.rows; row++ {
			out[i] = g.cells[row*g.cols+col]
			i++
		}
	}
	return out
}

// RotateRowsUp moves row i to row i-1; row 0 wraps to the last row.
func (g *Grid) RotateRowsUp() {
	first := make([]rune, g.cols)
	copy(first, g.cells[:g.cols])
	copy(g.cells, g.cells[g.cols:])
	copy(g.cells[len(g.cells)-g.cols:], first)
}

// RotateRowsDown is the inverse of RotateRowsUp.
func (g *Grid) RotateRowsDown() {
	last := make([]rune, g.cols)
	copy(last, g.cells[len(g.cells)-g.cols:])
	copy(g.cells[g.cols:], g.cells[:len(g.cells)-g.cols])
	copy(g.cells[:g.cols], last)
}

// RotateColsLeft moves column j to column j-1; column 0 wraps to the last
// column.
func (g *Grid) RotateColsLeft() {
	for row := 0; row < g.rows; row++ {
		line := g.cells[row*g.cols : (row+1)*g.cols]
		first := line[0]
		copy(line, line[1:])
		line[g.cols-1] = first
	}
}

// RotateColsRight is the inverse of RotateColsLeft.
func (g *Grid) RotateColsRight() {
	for row := 0; row < g.rows; row++ {
		line := g.cells[row*g.cols : (row+1)*g.cols]
		last := line[g.cols-1]
		copy(line[1:], line[:g.cols-1])
		line[0] = last
	}
}

// String renders the grid one row per line, for logs and test failures.
func (g *Grid) String() string {
	out := make([]rune, 0, len(g.cells)+g.rows)
	for row := 0; row < g.rows; row++ {
		out = append(out, g.cells[row*g.cols:(row+1)*g.cols]...)
		if row < g.rows-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Package rotate implements cyclic row and column rotations of a block.
package rotate

import (
	"fmt"

	"github.com/provide-io/gridcipher/pkg/gridcipher/grid"
	"github.com/provide-io/gridcipher/pkg/gridcipher/operations"
)

func init() {
	operations.Register(NewRowsOperation())
	operations.Register(NewColsOperation())
}

// RowsOperation rotates rows up by one
type RowsOperation struct {
	operations.BaseOperation
}

// NewRowsOperation creates a new row rotation operation
func NewRowsOperation() *RowsOperation {
	return &RowsOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_ROTATE_ROWS,
			OpName: "ROWS",
		},
	}
}

// Apply moves every row up by one, wrapping row 0 to the bottom
func (o *RowsOperation) Apply(g *grid.Grid, block []rune) ([]rune, error) {
	return rotate(g, block, (*grid.Grid).RotateRowsUp)
}

// Reverse moves every row down by one
func (o *RowsOperation) Reverse(g *grid.Grid, block []rune) ([]rune, error) {
	return rotate(g, block, (*grid.Grid).RotateRowsDown)
}

// ColsOperation rotates columns left by one
type ColsOperation struct {
	operations.BaseOperation
}

// NewColsOperation creates a new column rotation operation
func NewColsOperation() *ColsOperation {
	return &ColsOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_ROTATE_COLS,
			OpName: "COLS",
		},
	}
}

// Apply moves every column left by one, wrapping column 0 to the right edge
func (o *ColsOperation) Apply(g *grid.Grid, block []rune) ([]rune, error) {
	return rotate(g, block, (*grid.Grid).RotateColsLeft)
}

// Reverse moves every column right by one
func (o *ColsOperation) Reverse(g *grid.Grid, block []rune) ([]rune, error) {
	return rotate(g, block, (*grid.Grid).RotateColsRight)
}

func rotate(g *grid.Grid, block []rune, turn func(*grid.Grid)) ([]rune, error) {
	if err := g.Fill(block); err != nil {
		return nil, fmt.Errorf("filling grid: %w", err)
	}
	turn(g)
	return g.ReadRowMajor(), nil
}

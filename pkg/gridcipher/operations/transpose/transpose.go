// Package transpose implements the block transposition step: a block is laid
// into the grid row-major and read back column-major.
package transpose

import (
	"fmt"

	"github.com/provide-io/gridcipher/pkg/gridcipher/grid"
	"github.com/provide-io/gridcipher/pkg/gridcipher/operations"
)

func init() {
	operations.Register(NewTransposeOperation())
}

// TransposeOperation implements the row-major to column-major permutation
type TransposeOperation struct {
	operations.BaseOperation
}

// NewTransposeOperation creates a new transposition operation
func NewTransposeOperation() *TransposeOperation {
	return &TransposeOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_TRANSPOSE,
			OpName: "TRANSPOSE",
		},
	}
}

// Apply fills the grid row-major and reads it column-major
func (o *TransposeOperation) Apply(g *grid.Grid, block []rune) ([]rune, error) {
	if err := g.Fill(block); err != nil {
		return nil, fmt.Errorf("filling grid: %w", err)
	}
	return g.ReadColumnMajor(), nil
}

// Reverse is the exact inverse of Apply: block[p] is written to cell
// (p%rows)*cols + p/rows and the grid is read row-major.
func (o *TransposeOperation) Reverse(g *grid.Grid, block []rune) ([]rune, error) {
	if err := g.FillColumnMajor(block); err != nil {
		return nil, fmt.Errorf("filling grid: %w", err)
	}
	return g.ReadRowMajor(), nil
}

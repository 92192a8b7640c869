// Package shift implements the character shift step.
//
// Code points are shifted without wraparound. Shifting past U+10FFFF or into
// the surrogate range produces a rune that Go renders as U+FFFD once the
// result becomes a string.
package shift

import (
	"fmt"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
	"github.com/provide-io/gridcipher/pkg/gridcipher/grid"
	"github.com/provide-io/gridcipher/pkg/gridcipher/operations"
)

func init() {
	operations.Register(NewShiftOperation())
}

// Delta is how far Apply moves each code point.
const Delta = 1

// ShiftOperation adds Delta to every code point in a block
type ShiftOperation struct {
	operations.BaseOperation
}

// NewShiftOperation creates a new shift operation
func NewShiftOperation() *ShiftOperation {
	return &ShiftOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_SHIFT,
			OpName: "SHIFT",
		},
	}
}

// Apply shifts every code point up by Delta
func (o *ShiftOperation) Apply(g *grid.Grid, block []rune) ([]rune, error) {
	return shiftBy(g, block, Delta)
}

// Reverse shifts every code point down by Delta
func (o *ShiftOperation) Reverse(g *grid.Grid, block []rune) ([]rune, error) {
	return shiftBy(g, block, -Delta)
}

func shiftBy(g *grid.Grid, block []rune, delta rune) ([]rune, error) {
	if len(block) != g.Size() {
		return nil, fmt.Errorf("%w: got %d characters, want %d", cipherrors.ErrMalformedBlock, len(block), g.Size())
	}
	out := make([]rune, len(block))
	for i, r := range block {
		out[i] = r + delta
	}
	return out, nil
}

package operations

import (
	"fmt"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
	"github.com/provide-io/gridcipher/pkg/gridcipher/grid"
)

// Operation constants
const (
	// No operation - terminates a packed chain
	OP_NONE = 0x00

	// Transposition operations (0x01-0x0F)
	OP_TRANSPOSE = 0x01 // row-major fill, column-major read

	// Rotation operations (0x10-0x1F)
	OP_ROTATE_ROWS = 0x10 // cyclic row rotation, up by one
	OP_ROTATE_COLS = 0x11 // cyclic column rotation, left by one

	// Substitution operations (0x20-0x2F)
	OP_SHIFT = 0x20 // code point +1
)

// Operation represents a single reversible transformation of one block.
//
// A block is always exactly g.Size() runes in row-major order. The grid is
// scratch space owned by the caller for the duration of one message; an
// operation may overwrite it freely but must not retain it.
type Operation interface {
	// ID returns the operation identifier (e.g., OP_TRANSPOSE)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Apply applies the operation to one block
	Apply(g *grid.Grid, block []rune) ([]rune, error)

	// Reverse undoes Apply on one block
	Reverse(g *grid.Grid, block []rune) ([]rune, error)

	// CanReverse returns true if the operation is reversible
	CanReverse() bool
}

// BaseOperation provides common functionality for operations
type BaseOperation struct {
	OpID   uint8
	OpName string
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

func (o *BaseOperation) CanReverse() bool {
	return true
}

// Registry maps operation IDs to implementations
var Registry = make(map[uint8]Operation)

// Register registers an operation implementation
func Register(op Operation) {
	Registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	op, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", cipherrors.ErrUnknownOperation, id)
	}
	return op, nil
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OP_NONE:
		return "NONE"
	case OP_TRANSPOSE:
		return "TRANSPOSE"
	case OP_ROTATE_ROWS:
		return "ROWS"
	case OP_ROTATE_COLS:
		return "COLS"
	case OP_SHIFT:
		return "SHIFT"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}

package operations

import (
	"fmt"
	"sort"
	"strings"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
	"github.com/provide-io/gridcipher/pkg/gridcipher/grid"
)

// MaxChainLength is the number of operations a packed chain can hold.
const MaxChainLength = 8

// PackOperations packs a list of operations into a 64-bit integer.
// Each operation takes 8 bits, allowing up to 8 operations in the chain.
// Operations are packed in execution order (first operation in LSB).
func PackOperations(operations []uint8) (uint64, error) {
	if len(operations) > MaxChainLength {
		return 0, fmt.Errorf("%w: maximum %d operations allowed, got %d",
			cipherrors.ErrChainTooLong, MaxChainLength, len(operations))
	}

	var packed uint64
	for i, op := range operations {
		packed |= uint64(op) << (i * 8)
	}

	return packed, nil
}

// UnpackOperations unpacks a 64-bit integer into a list of operations.
func UnpackOperations(packed uint64) []uint8 {
	operations := []uint8{}

	for i := 0; i < MaxChainLength; i++ {
		op := uint8((packed >> (i * 8)) & 0xFF)
		if op == OP_NONE {
			break
		}
		operations = append(operations, op)
	}

	return operations
}

// OperationsToString converts packed operations to human-readable string.
func OperationsToString(packed uint64) string {
	if packed == 0 {
		return "none"
	}

	operations := UnpackOperations(packed)

	if name, ok := commonChains[operationsToChain(operations)]; ok {
		return name
	}

	return ChainSteps(operations)
}

// ChainSteps renders ops as the pipe list StringToOperations accepts, without
// collapsing known chains to their names.
func ChainSteps(ops []uint8) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = strings.ToLower(GetName(op))
	}
	return strings.Join(names, "|")
}

// StringToOperations parses operation string to packed operations.
func StringToOperations(opString string) (uint64, error) {
	opString = strings.ToLower(strings.TrimSpace(opString))
	if opString == "" || opString == "none" {
		return 0, nil
	}

	if ops, ok := namedChains[opString]; ok {
		return PackOperations(ops)
	}

	if strings.Contains(opString, "|") {
		var operations []uint8
		for _, part := range strings.Split(opString, "|") {
			part = strings.TrimSpace(strings.ToUpper(part))
			if part == "" {
				continue
			}

			op, ok := namedOperations[part]
			if !ok {
				return 0, fmt.Errorf("%w: %s", cipherrors.ErrUnknownOperation, part)
			}
			operations = append(operations, op)
		}
		return PackOperations(operations)
	}

	return 0, fmt.Errorf("%w: unknown chain %q", cipherrors.ErrUnknownOperation, opString)
}

// ParseChain parses an operation string straight into an execution-ordered
// list of operation IDs.
func ParseChain(opString string) ([]uint8, error) {
	packed, err := StringToOperations(opString)
	if err != nil {
		return nil, err
	}
	return UnpackOperations(packed), nil
}

// NamedChains returns the names accepted by StringToOperations, sorted, with
// the operations each one expands to.
func NamedChains() []NamedChain {
	chains := make([]NamedChain, 0, len(namedChains))
	for name, ops := range namedChains {
		chains = append(chains, NamedChain{Name: name, Operations: ops})
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i].Name < chains[j].Name })
	return chains
}

// NamedChain pairs a chain name with its operations.
type NamedChain struct {
	Name       string
	Operations []uint8
}

// operationsToChain converts operations slice to string for map lookup
func operationsToChain(ops []uint8) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = fmt.Sprintf("%02x", op)
	}
	return strings.Join(parts, "-")
}

// Common operation chains
var commonChains = map[string]string{
	"01":          "plain",
	"20-10-11-01": "super",
}

// Named chains for parsing
var namedChains = map[string][]uint8{
	// Block transposition only
	"plain":     {OP_TRANSPOSE},
	"transpose": {OP_TRANSPOSE},

	// Shift, rotate rows, rotate columns, then transpose
	"super": {OP_SHIFT, OP_ROTATE_ROWS, OP_ROTATE_COLS, OP_TRANSPOSE},

	// Single steps
	"shift": {OP_SHIFT},
	"rows":  {OP_ROTATE_ROWS},
	"cols":  {OP_ROTATE_COLS},
}

// Named operations for parsing
var namedOperations = map[string]uint8{
	"TRANSPOSE": OP_TRANSPOSE,
	"ROWS":      OP_ROTATE_ROWS,
	"COLS":      OP_ROTATE_COLS,
	"SHIFT":     OP_SHIFT,
}

// ApplyChain applies a chain of operations to one block
func ApplyChain(g *grid.Grid, block []rune, operations []uint8) ([]rune, error) {
	current := block

	for _, opID := range operations {
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Apply(g, current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// ReverseChain reverses a chain of operations on one block
func ReverseChain(g *grid.Grid, block []rune, operations []uint8) ([]rune, error) {
	current := block

	// Apply operations in reverse order
	for i := len(operations) - 1; i >= 0; i-- {
		opID := operations[i]
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		if !op.CanReverse() {
			return nil, fmt.Errorf("%w: %s", cipherrors.ErrNotReversible, op.Name())
		}

		result, err := op.Reverse(g, current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

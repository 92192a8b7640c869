package rotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
	"github.com/provide-io/gridcipher/pkg/gridcipher/grid"
	"github.com/provide-io/gridcipher/pkg/gridcipher/operations"
)

func TestRows(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	op := NewRowsOperation()

	out, err := op.Apply(g, []rune("abcdef"))
	require.NoError(t, err)
	assert.Equal(t, "cdefab", string(out))

	back, err := op.Reverse(g, out)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(back))
}

func TestCols(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	op := NewColsOperation()

	out, err := op.Apply(g, []rune("abcdef"))
	require.NoError(t, err)
	assert.Equal(t, "bcaefd", string(out))

	back, err := op.Reverse(g, out)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(back))
}

func TestRotate_MalformedBlock(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = NewRowsOperation().Apply(g, []rune("abc"))
	assert.ErrorIs(t, err, cipherrors.ErrMalformedBlock)

	_, err = NewColsOperation().Reverse(g, []rune("abcde"))
	assert.ErrorIs(t, err, cipherrors.ErrMalformedBlock)
}

func TestRotate_Registered(t *testing.T) {
	for _, id := range []uint8{operations.OP_ROTATE_ROWS, operations.OP_ROTATE_COLS} {
		op, err := operations.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, op.ID())
	}
}

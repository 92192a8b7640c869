package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
	"github.com/provide-io/gridcipher/pkg/gridcipher/operations"
	"github.com/provide-io/gridcipher/pkg/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvRows, "")
	t.Setenv(EnvCols, "")
	t.Setenv(EnvChain, "")
	t.Setenv(logging.EnvLogLevel, "")

	cfg := Load()
	assert.Equal(t, 0, cfg.Rows)
	assert.Equal(t, 0, cfg.Cols)
	assert.Equal(t, DefaultChain, cfg.Chain)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvRows, "4")
	t.Setenv(EnvCols, "7")
	t.Setenv(EnvChain, "super")
	t.Setenv(logging.EnvLogLevel, "debug")

	cfg := Load()
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 7, cfg.Cols)
	assert.Equal(t, "super", cfg.Chain)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "rows=4 cols=7 chain=super log_level=debug", cfg.String())
}

func TestLoad_UnparsableDimension(t *testing.T) {
	t.Setenv(EnvRows, "four")
	t.Setenv(EnvCols, "3")

	cfg := Load()
	assert.Equal(t, 0, cfg.Rows)
	assert.Equal(t, 3, cfg.Cols)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		chain   []uint8
	}{
		{
			name:  "plain",
			cfg:   Config{Rows: 2, Cols: 3, Chain: "plain"},
			chain: []uint8{operations.OP_TRANSPOSE},
		},
		{
			name:  "pipe chain",
			cfg:   Config{Rows: 1, Cols: 1, Chain: "rows|transpose"},
			chain: []uint8{operations.OP_ROTATE_ROWS, operations.OP_TRANSPOSE},
		},
		{
			name:    "zero rows",
			cfg:     Config{Rows: 0, Cols: 3, Chain: "plain"},
			wantErr: cipherrors.ErrInvalidDimension,
		},
		{
			name:    "negative cols",
			cfg:     Config{Rows: 3, Cols: -1, Chain: "plain"},
			wantErr: cipherrors.ErrInvalidDimension,
		},
		{
			name:    "unknown chain",
			cfg:     Config{Rows: 3, Cols: 3, Chain: "rot13"},
			wantErr: cipherrors.ErrUnknownOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.chain, chain)
		})
	}
}

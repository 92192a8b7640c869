// Package config resolves the cipher key and chain from the environment
package config

import (
	"fmt"
	"os"
	"strconv"

	cipherrors "github.com/provide-io/gridcipher/pkg/gridcipher/errors"
	"github.com/provide-io/gridcipher/pkg/gridcipher/operations"
	"github.com/provide-io/gridcipher/pkg/logging"
)

const (
	EnvRows  = "GRIDCIPHER_ROWS"
	EnvCols  = "GRIDCIPHER_COLS"
	EnvChain = "GRIDCIPHER_CHAIN"

	DefaultChain = "plain"
)

// Config holds everything the CLI needs to build and drive a cipher
type Config struct {
	Rows     int
	Cols     int
	Chain    string
	LogLevel string
}

// Load reads configuration from environment variables. Unset or unparsable
// dimensions come back as 0 and fail Validate until a flag supplies them.
func Load() *Config {
	return &Config{
		Rows:     getEnvInt(EnvRows, 0),
		Cols:     getEnvInt(EnvCols, 0),
		Chain:    getEnv(EnvChain, DefaultChain),
		LogLevel: logging.GetLogLevel(),
	}
}

// Validate checks the key and resolves the chain into operation IDs
func (c *Config) Validate() ([]uint8, error) {
	if c.Rows <= 0 {
		return nil, fmt.Errorf("%w: rows must be a positive integer, got %d", cipherrors.ErrInvalidDimension, c.Rows)
	}
	if c.Cols <= 0 {
		return nil, fmt.Errorf("%w: cols must be a positive integer, got %d", cipherrors.ErrInvalidDimension, c.Cols)
	}

	chain, err := operations.ParseChain(c.Chain)
	if err != nil {
		return nil, fmt.Errorf("chain %q: %w", c.Chain, err)
	}
	return chain, nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("rows=%d cols=%d chain=%s log_level=%s", c.Rows, c.Cols, c.Chain, c.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StoreDriverDynamoDB, cfg.Store.Driver)
	assert.Equal(t, 5, cfg.Store.TransactionMaxAttempts)
	assert.Equal(t, uint64(3), cfg.Sequence.MaxRetries)
	assert.Equal(t, 50*time.Millisecond, cfg.Sequence.InitialInterval)
	assert.Equal(t, "tecnicontrol-contadores", cfg.Tables.Contadores)
	assert.False(t, cfg.Tables.Create)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("SEQUENCE_MAX_RETRIES", "7")
	t.Setenv("SEQUENCE_RETRY_MAX", "2s")
	t.Setenv("DYNAMODB_CREATE_TABLES", "true")
	t.Setenv("DYNAMODB_TABLE_ORDENES", "ordenes-dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, uint64(7), cfg.Sequence.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Sequence.MaxInterval)
	assert.True(t, cfg.Tables.Create)
	assert.Equal(t, "ordenes-dev", cfg.Tables.Ordenes)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret":  {"JWT_SECRET": ""},
		"unknown driver":  {"JWT_SECRET": "x", "STORE_DRIVER": "mongo"},
		"bad int":         {"JWT_SECRET": "x", "STORE_TX_MAX_ATTEMPTS": "many"},
		"zero attempts":   {"JWT_SECRET": "x", "STORE_TX_MAX_ATTEMPTS": "0"},
		"bad duration":    {"JWT_SECRET": "x", "SEQUENCE_RETRY_INITIAL": "soon"},
		"bad create flag": {"JWT_SECRET": "x", "DYNAMODB_CREATE_TABLES": "maybe"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"VAULT_PATH":         "/home/alice/.vault",
		"VAULT_BACKEND":      "sqlite",
		"VAULT_SALT_MODE":    "legacy",
		"VAULT_LOCK_TIMEOUT": "10s",

		"KDF_TIME":       "3",
		"KDF_MEMORY_KIB": "65536",
		"KDF_THREADS":    "4",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/tmp/pwdvault.log",

		"GENERATOR_LENGTH": "24",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/home/alice/.vault", cfg.Vault.Path)
	assert.Equal(t, BackendSQLite, cfg.Vault.Backend)
	assert.Equal(t, SaltModeLegacy, cfg.Vault.SaltMode)
	assert.Equal(t, 10*time.Second, cfg.Vault.LockTimeout)

	assert.Equal(t, uint32(3), cfg.KDF.Time)
	assert.Equal(t, uint32(65536), cfg.KDF.MemoryKiB)
	assert.Equal(t, uint8(4), cfg.KDF.Threads)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/pwdvault.log", cfg.Log.File)

	assert.Equal(t, 24, cfg.Generator.Length)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"VAULT_PATH": "/srv/vault",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/srv/vault", cfg.Vault.Path)
	assert.Empty(t, cfg.Vault.Backend)
	assert.Zero(t, cfg.Vault.LockTimeout)
	assert.Equal(t, KDF{}, cfg.KDF)
	assert.Equal(t, Log{}, cfg.Log)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad duration", map[string]string{"VAULT_LOCK_TIMEOUT": "soon"}},
		{"bad uint", map[string]string{"KDF_TIME": "-1"}},
		{"uint8 overflow", map[string]string{"KDF_THREADS": "300"}},
		{"bad int", map[string]string{"GENERATOR_LENGTH": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.vars)

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"VAULT_PATH",
		"VAULT_BACKEND",
		"VAULT_SALT_MODE",
		"VAULT_LOCK_TIMEOUT",

		"KDF_TIME",
		"KDF_MEMORY_KIB",
		"KDF_THREADS",

		"LOG_LEVEL",
		"LOG_FILE",

		"GENERATOR_LENGTH",
	}
	for _, k := range keys {
		// t.Setenv registers the restore; Unsetenv makes the variable absent.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

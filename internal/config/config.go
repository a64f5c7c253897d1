// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/session"
)

// StructuredConfig is the top-level configuration container for the
// pwdvault application. It aggregates all sub-configurations and is
// populated by merging built-in defaults, an optional JSON file,
// environment variables, and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the location and storage settings of the encrypted vault.
	Vault Vault `envPrefix:"VAULT_"`

	// KDF holds the Argon2id cost parameters used to derive the vault key.
	// They must match the parameters the vault was created with.
	KDF KDF `envPrefix:"KDF_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Generator holds password generator settings.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds settings for the encrypted vault and its sidecar files.
type Vault struct {
	// Path is the vault file (file backend) or database file (sqlite backend).
	// Env: VAULT_PATH
	Path string `env:"PATH"`

	// Backend selects the blob store: "file" or "sqlite".
	// Env: VAULT_BACKEND
	Backend string `env:"BACKEND"`

	// SaltMode selects the key derivation salt: "file" keeps a random
	// per-vault salt in "<path>.salt", "legacy" uses the fixed salt of
	// vaults created by older builds.
	// Env: VAULT_SALT_MODE
	SaltMode string `env:"SALT_MODE"`

	// LockTimeout bounds how long a command waits for another process
	// holding the vault lock (e.g. "5s").
	// Env: VAULT_LOCK_TIMEOUT
	LockTimeout time.Duration `env:"LOCK_TIMEOUT"`
}

// KDF holds Argon2id parameters.
type KDF struct {
	// Env: KDF_TIME
	Time uint32 `env:"TIME"`
	// Env: KDF_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`
	// Env: KDF_THREADS
	Threads uint8 `env:"THREADS"`
}

// Log holds logging settings.
type Log struct {
	// Level is one of debug, info, warn, error, disabled.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the JSON log file. Empty means "<vault dir>/pwdvault.log".
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Generator holds password generator settings.
type Generator struct {
	// Length is the default length of generated passwords.
	// Env: GENERATOR_LENGTH
	Length int `env:"LENGTH"`
}

// Supported values of Vault.Backend and Vault.SaltMode.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	SaltModeFile   = session.SaltModeFile
	SaltModeLegacy = session.SaltModeLegacy
)

// SaltPath returns the sidecar file holding the per-vault salt.
func (v Vault) SaltPath() string {
	return v.Path + ".salt"
}

// LockPath returns the sidecar file used for advisory locking.
func (v Vault) LockPath() string {
	return v.Path + ".lock"
}

// LogPath returns the configured log file or the default one next to the
// vault.
func (cfg *StructuredConfig) LogPath() string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(filepath.Dir(cfg.Vault.Path), "pwdvault.log")
}

// GetStructuredConfig loads, merges, and validates the application
// configuration in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

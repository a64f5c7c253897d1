// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable before
// any key derivation or file access happens.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Vault.Path) == "" {
		return fmt.Errorf("%w: empty vault path", ErrInvalidVaultConfigs)
	}
	switch cfg.Vault.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidVaultConfigs, cfg.Vault.Backend)
	}
	switch cfg.Vault.SaltMode {
	case SaltModeFile, SaltModeLegacy:
	default:
		return fmt.Errorf("%w: unknown salt mode %q", ErrInvalidVaultConfigs, cfg.Vault.SaltMode)
	}
	if cfg.Vault.LockTimeout <= 0 {
		return fmt.Errorf("%w: lock timeout must be positive", ErrInvalidVaultConfigs)
	}

	if cfg.KDF.Time == 0 || cfg.KDF.Threads == 0 || cfg.KDF.MemoryKiB < 8*uint32(cfg.KDF.Threads) {
		return ErrInvalidKDFConfigs
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Generator.Length < 1 {
		return ErrInvalidGeneratorConfigs
	}

	return nil
}

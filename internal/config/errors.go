package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid vault settings
	// (for example, empty path or unknown backend).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidKDFConfigs indicates unusable Argon2id parameters.
	ErrInvalidKDFConfigs = errors.New("invalid kdf configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidGeneratorConfigs indicates a non-positive generator length.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
)

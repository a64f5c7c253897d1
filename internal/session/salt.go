// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Salt modes.
const (
	// SaltModeFile keeps a random per-vault salt in a sidecar file.
	SaltModeFile = "file"
	// SaltModeLegacy uses the fixed salt of vaults written by older builds.
	SaltModeLegacy = "legacy"
)

// ResolveSalt returns the salt to derive the session key with.
//
// In file mode a missing salt file is created, unless a blob already exists:
// that vault was sealed with some other salt and a new one would only make
// it unreadable.
func ResolveSalt(ctx context.Context, mode, saltPath string, blobs store.BlobStore) ([]byte, error) {
	switch mode {
	case SaltModeLegacy:
		return crypto.LegacySalt(), nil
	case SaltModeFile:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSaltMode, mode)
	}

	salt, err := store.ReadSalt(saltPath)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if _, readErr := blobs.Read(ctx); readErr == nil {
		return nil, fmt.Errorf("%w: %s", ErrSaltMissing, blobs.Location())
	} else if !errors.Is(readErr, store.ErrBlobNotFound) {
		return nil, fmt.Errorf("check existing vault: %w", readErr)
	}

	salt, _, err = store.LoadOrCreateSalt(saltPath)
	return salt, err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// ReadSalt reads a per-vault salt file. A missing file is reported with an
// error wrapping [fs.ErrNotExist].
func ReadSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read salt file: %w", err)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidSalt, path)
	}
	return salt, nil
}

// LoadOrCreateSalt returns the salt stored at path, generating and
// persisting a fresh random one when the file does not exist yet. created
// reports whether a new salt was written. When several processes race to
// create the file, exactly one salt is published and every caller returns
// that one.
//
// The salt is not secret. It lives outside the encrypted blob so the blob
// layout stays nonce || ciphertext || tag.
func LoadOrCreateSalt(path string) (salt []byte, created bool, err error) {
	salt, err = ReadSalt(path)
	if err == nil {
		return salt, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	salt, err = crypto.GenerateSalt()
	if err != nil {
		return nil, false, err
	}
	err = writeFileExclusive(path, salt, 0o600)
	if errors.Is(err, fs.ErrExist) {
		salt, err = ReadSalt(path)
		return salt, false, err
	}
	if err != nil {
		return nil, false, fmt.Errorf("write salt file: %w", err)
	}
	return salt, true, nil
}

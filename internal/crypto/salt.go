// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// legacySalt is the fixed salt older vault files were derived with.
var legacySalt = []byte("example salt")

// LegacySalt returns a copy of the fixed salt used by vaults created before
// per-vault salts existed. Every such vault shares it, so a precomputed
// dictionary against one applies to all of them.
func LegacySalt() []byte {
	out := make([]byte, len(legacySalt))
	copy(out, legacySalt)
	return out
}

// GenerateSalt reads SaltSize random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// Sizes of the AES-256-GCM construction.
const (
	KeySize   = 32 // AES-256
	NonceSize = 12 // GCM standard nonce
	TagSize   = 16 // GCM authentication tag
	SaltSize  = 16
)

// KDFParams are the Argon2id cost parameters.
type KDFParams struct {
	// Time is the number of passes over memory.
	Time uint32
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
}

// DefaultKDFParams returns the Argon2id parameters vault files have always
// been written with: t=2, m=19 MiB, p=1. Changing them changes the derived
// key, so existing vaults would no longer open.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:      2,
		MemoryKiB: 19 * 1024,
		Threads:   1,
	}
}

// TestKDFParams returns deliberately weak parameters for unit tests.
func TestKDFParams() KDFParams {
	return KDFParams{
		Time:      1,
		MemoryKiB: 64,
		Threads:   1,
	}
}

func (p KDFParams) validate() error {
	if p.Time == 0 {
		return fmt.Errorf("%w: time cost must be positive", ErrKeyDerivation)
	}
	if p.Threads == 0 {
		return fmt.Errorf("%w: parallelism must be positive", ErrKeyDerivation)
	}
	if p.MemoryKiB < 8*uint32(p.Threads) {
		return fmt.Errorf("%w: memory cost %d KiB too small for %d threads", ErrKeyDerivation, p.MemoryKiB, p.Threads)
	}
	return nil
}

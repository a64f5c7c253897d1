// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultSecretLength is used when the caller does not ask for a length.
const DefaultSecretLength = 16

// SecretAlphabet is the character set GenerateSecret draws from.
const SecretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{}|;:,.<>?"

var alphabetSize = big.NewInt(int64(len(SecretAlphabet)))

// GenerateSecret returns length characters drawn uniformly from
// SecretAlphabet using the operating system CSPRNG.
func GenerateSecret(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate secret: %w", err)
		}
		out[i] = SecretAlphabet[n.Int64()]
	}
	return string(out), nil
}

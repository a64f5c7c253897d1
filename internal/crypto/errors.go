// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Setup errors. Both are fatal for a session.
var (
	// ErrKeyDerivation is returned when Argon2id parameters are unusable
	// (empty salt, zero cost, too short key length).
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrCipherInit is returned when the derived key cannot initialise
	// AES-256-GCM.
	ErrCipherInit = errors.New("cipher initialisation failed")
)

// Per-operation errors.
var (
	// ErrEncryption is returned when sealing fails: nonce generation error,
	// oversized payload, or a destroyed manager.
	ErrEncryption = errors.New("encryption failed")

	// ErrMalformedInput is returned when a blob is too short to contain a
	// nonce.
	ErrMalformedInput = errors.New("malformed ciphertext")

	// ErrAuthenticationFailure is returned when the GCM tag does not verify.
	// It covers both a wrong master password and a corrupted blob, and the
	// two cases are intentionally indistinguishable.
	ErrAuthenticationFailure = errors.New("authentication failed")

	// ErrEncoding is returned when decrypted bytes are not valid UTF-8.
	ErrEncoding = errors.New("decrypted payload is not valid text")
)

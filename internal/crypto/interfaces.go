// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher is the authenticated-encryption capability the vault store depends
// on. It knows nothing about files, records, or users; it only seals and
// opens opaque payloads with a key fixed at construction time.
//
// Blob layout produced by Encrypt and expected by Decrypt:
//
//	nonce (12 bytes) || ciphertext || GCM tag (16 bytes)
type Cipher interface {
	// Encrypt seals plaintext under a fresh random nonce. Two calls with the
	// same plaintext never return the same blob.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. A wrong key and a tampered
	// blob both yield ErrAuthenticationFailure; blobs shorter than the nonce
	// yield ErrMalformedInput.
	Decrypt(blob []byte) ([]byte, error)

	// DecryptToText is Decrypt followed by a UTF-8 check. Invalid text
	// yields ErrEncoding.
	DecryptToText(blob []byte) (string, error)
}

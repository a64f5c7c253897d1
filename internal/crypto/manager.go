// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// maxPlaintextSize is the GCM limit for a single message: 2^32-2 blocks.
const maxPlaintextSize uint64 = ((1 << 32) - 2) * aes.BlockSize

// Manager is the session's key holder. It derives a 256-bit key from the
// master password with Argon2id once, builds one AES-256-GCM instance from
// it, and reuses that instance for every Encrypt/Decrypt call.
//
// A Manager is meant to be created once per session and handed to the vault
// store explicitly. It is not safe for concurrent use with Destroy.
type Manager struct {
	key    []byte
	aead   cipher.AEAD
	random io.Reader
	params KDFParams
}

// Option customises a Manager at construction time.
type Option func(*Manager)

// WithKDFParams overrides the Argon2id cost parameters.
func WithKDFParams(p KDFParams) Option {
	return func(m *Manager) {
		m.params = p
	}
}

// WithRandom replaces the nonce source. Intended for tests; production code
// must keep the default crypto/rand reader.
func WithRandom(r io.Reader) Option {
	return func(m *Manager) {
		m.random = r
	}
}

// New derives the session key from passphrase and salt and initialises the
// AEAD. It fails with ErrKeyDerivation when the salt or KDF parameters are
// unusable and with ErrCipherInit when AES-GCM rejects the key.
//
// The caller keeps ownership of passphrase; New does not retain it.
func New(passphrase, salt []byte, opts ...Option) (*Manager, error) {
	m := &Manager{
		random: rand.Reader,
		params: DefaultKDFParams(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrKeyDerivation)
	}
	if err := m.params.validate(); err != nil {
		return nil, err
	}

	m.key = argon2.IDKey(passphrase, salt, m.params.Time, m.params.MemoryKiB, m.params.Threads, KeySize)

	block, err := aes.NewCipher(m.key)
	if err != nil {
		m.Destroy()
		return nil, fmt.Errorf("%w: create cipher: %v", ErrCipherInit, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		m.Destroy()
		return nil, fmt.Errorf("%w: create gcm: %v", ErrCipherInit, err)
	}
	m.aead = aead

	return m, nil
}

// Encrypt implements [Cipher]. Every call draws a new 96-bit nonce; the
// result is nonce || ciphertext || tag with no associated data.
func (m *Manager) Encrypt(plaintext []byte) ([]byte, error) {
	if m.aead == nil {
		return nil, fmt.Errorf("%w: manager destroyed", ErrEncryption)
	}
	if uint64(len(plaintext)) > maxPlaintextSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds gcm limit", ErrEncryption, len(plaintext))
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(m.random, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %v", ErrEncryption, err)
	}

	// Seal appends to nonce, so the blob is built in one allocation.
	return m.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [Cipher].
func (m *Manager) Decrypt(blob []byte) ([]byte, error) {
	if len(blob) < NonceSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedInput, len(blob), NonceSize)
	}
	if m.aead == nil {
		return nil, ErrAuthenticationFailure
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := m.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// the underlying error carries no extra information; never add any
		return nil, ErrAuthenticationFailure
	}

	return plaintext, nil
}

// DecryptToText implements [Cipher].
func (m *Manager) DecryptToText(blob []byte) (string, error) {
	plaintext, err := m.Decrypt(blob)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrEncoding
	}
	return string(plaintext), nil
}

// Destroy zeroes the derived key and drops the AEAD. Subsequent Encrypt
// calls fail with ErrEncryption and Decrypt calls with
// ErrAuthenticationFailure. Destroy is idempotent.
func (m *Manager) Destroy() {
	for i := range m.key {
		m.key[i] = 0
	}
	m.key = nil
	m.aead = nil
}

// Destroyed reports whether Destroy has been called.
func (m *Manager) Destroyed() bool {
	return m.aead == nil
}

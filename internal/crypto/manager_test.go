// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"testing/iotest"
)

func newTestManager(t *testing.T, passphrase string, salt []byte) *Manager {
	t.Helper()
	m, err := New([]byte(passphrase), salt, WithKDFParams(TestKDFParams()))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return m
}

func TestNew_RejectsEmptySalt(t *testing.T) {
	_, err := New([]byte("pw"), nil, WithKDFParams(TestKDFParams()))
	if !errors.Is(err, ErrKeyDerivation) {
		t.Fatalf("err = %v, want ErrKeyDerivation", err)
	}
}

func TestNew_RejectsDegenerateParams(t *testing.T) {
	cases := map[string]KDFParams{
		"zero time":    {Time: 0, MemoryKiB: 64, Threads: 1},
		"zero threads": {Time: 1, MemoryKiB: 64, Threads: 0},
		"tiny memory":  {Time: 1, MemoryKiB: 4, Threads: 1},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New([]byte("pw"), LegacySalt(), WithKDFParams(p))
			if !errors.Is(err, ErrKeyDerivation) {
				t.Fatalf("err = %v, want ErrKeyDerivation", err)
			}
		})
	}
}

func TestDefaultKDFParams_MatchExistingVaults(t *testing.T) {
	p := DefaultKDFParams()
	if p.Time != 2 || p.MemoryKiB != 19456 || p.Threads != 1 {
		t.Fatalf("default params changed: %+v", p)
	}
}

// legacyVaultBlob was written by the previous release: Argon2id with its
// default parameters, the fixed salt, AES-256-GCM, nonce prefix.
const (
	legacyVaultPassphrase = "correct horse battery staple"
	legacyVaultBlob       = "0102030405060708090a0b0c49db08600828b3d43b8bf8461d5d9cc5648e9a47" +
		"c708e4d67ec7e670cd37fd4207887dee7a9c1ed62fc09b310bc7c80eae531b44" +
		"bdcb7aaa7ce5deecdce85170830ebc233941948bdea01dc6e479a0fe2480a4e5" +
		"8b6f494eaa66dafa9ff578c44ad1568288172b957c15befb029ebdaa073d9a07" +
		"4591ebbf38c14fcf7840712a8c1dcfa21ff9c9cc201e84eeeec1c5aa42ca62f4"
	legacyVaultPlaintext = `{"entries":[{"service":"github","username":"alice","password":"p@ss1234"},` +
		`{"service":"mail","username":"bob","password":"s3cr3t!"}]}`
)

func TestDefaults_OpenLegacyVault(t *testing.T) {
	blob, err := hex.DecodeString(legacyVaultBlob)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	m, err := New([]byte(legacyVaultPassphrase), LegacySalt())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer m.Destroy()

	got, err := m.DecryptToText(blob)
	if err != nil {
		t.Fatalf("DecryptToText error: %v", err)
	}
	if got != legacyVaultPlaintext {
		t.Fatalf("plaintext = %q, want %q", got, legacyVaultPlaintext)
	}

	wrong, err := New([]byte("correct horse battery stapler"), LegacySalt())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer wrong.Destroy()
	if _, err = wrong.Decrypt(blob); !errors.Is(err, ErrAuthenticationFailure) {
		t.Fatalf("err = %v, want ErrAuthenticationFailure", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	m := newTestManager(t, "correct horse battery staple", LegacySalt())

	messages := [][]byte{
		{},
		[]byte("a"),
		[]byte(`{"entries":[]}`),
		bytes.Repeat([]byte{0x00, 0xFF}, 4096),
	}
	for _, msg := range messages {
		blob, err := m.Encrypt(msg)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if len(blob) != NonceSize+len(msg)+TagSize {
			t.Fatalf("blob length = %d, want %d", len(blob), NonceSize+len(msg)+TagSize)
		}

		plain, err := m.Decrypt(blob)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if !bytes.Equal(plain, msg) {
			t.Fatalf("round trip mismatch for %d-byte message", len(msg))
		}
	}
}

func TestDecrypt_SamePassphraseNewManager(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)
	m1 := newTestManager(t, "same password", salt)
	m2 := newTestManager(t, "same password", salt)

	blob, err := m1.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	plain, err := m2.Decrypt(blob)
	if err != nil {
		t.Fatalf("Decrypt with second manager: %v", err)
	}
	if string(plain) != "secret" {
		t.Fatalf("plain = %q", plain)
	}
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	salt := LegacySalt()
	m1 := newTestManager(t, "p1", salt)
	m2 := newTestManager(t, "p2", salt)

	blob, err := m1.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if _, err := m2.Decrypt(blob); !errors.Is(err, ErrAuthenticationFailure) {
		t.Fatalf("err = %v, want ErrAuthenticationFailure", err)
	}
}

func TestDecrypt_DifferentSalt(t *testing.T) {
	m1 := newTestManager(t, "pw", LegacySalt())
	m2 := newTestManager(t, "pw", bytes.Repeat([]byte{0x01}, SaltSize))

	blob, err := m1.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if _, err := m2.Decrypt(blob); !errors.Is(err, ErrAuthenticationFailure) {
		t.Fatalf("err = %v, want ErrAuthenticationFailure", err)
	}
}

func TestDecrypt_EveryBitFlipDetected(t *testing.T) {
	m := newTestManager(t, "pw", LegacySalt())

	blob, err := m.Encrypt([]byte(`{"entries":[{"service":"github"}]}`))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	for i := 0; i < len(blob)*8; i++ {
		tampered := append([]byte(nil), blob...)
		tampered[i/8] ^= 1 << (i % 8)

		_, err := m.Decrypt(tampered)
		if err == nil {
			t.Fatalf("bit %d flip decrypted successfully", i)
		}
		if !errors.Is(err, ErrAuthenticationFailure) && !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("bit %d flip: unexpected error %v", i, err)
		}
	}
}

func TestDecrypt_Truncated(t *testing.T) {
	m := newTestManager(t, "pw", LegacySalt())

	blob, err := m.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	for n := 0; n < len(blob); n++ {
		_, err := m.Decrypt(blob[:n])
		switch {
		case n < NonceSize:
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("len %d: err = %v, want ErrMalformedInput", n, err)
			}
		default:
			if !errors.Is(err, ErrAuthenticationFailure) {
				t.Fatalf("len %d: err = %v, want ErrAuthenticationFailure", n, err)
			}
		}
	}
}

func TestEncrypt_NonceUniqueness(t *testing.T) {
	m := newTestManager(t, "pw", LegacySalt())

	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		blob, err := m.Encrypt([]byte("same plaintext"))
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		nonce := string(blob[:NonceSize])
		if _, dup := seen[nonce]; dup {
			t.Fatalf("nonce repeated after %d encryptions", i)
		}
		seen[nonce] = struct{}{}
	}
}

func TestEncrypt_RandomSourceFailure(t *testing.T) {
	m, err := New([]byte("pw"), LegacySalt(),
		WithKDFParams(TestKDFParams()),
		WithRandom(iotest.ErrReader(errors.New("entropy exhausted"))),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if _, err := m.Encrypt([]byte("x")); !errors.Is(err, ErrEncryption) {
		t.Fatalf("err = %v, want ErrEncryption", err)
	}
}

func TestDecryptToText(t *testing.T) {
	m := newTestManager(t, "pw", LegacySalt())

	blob, err := m.Encrypt([]byte("héllo"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	text, err := m.DecryptToText(blob)
	if err != nil {
		t.Fatalf("DecryptToText error: %v", err)
	}
	if text != "héllo" {
		t.Fatalf("text = %q", text)
	}

	blob, err = m.Encrypt([]byte{0xFF, 0xFE, 0xFD})
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if _, err := m.DecryptToText(blob); !errors.Is(err, ErrEncoding) {
		t.Fatalf("err = %v, want ErrEncoding", err)
	}
}

func TestDestroy(t *testing.T) {
	m := newTestManager(t, "pw", LegacySalt())
	blob, err := m.Encrypt([]byte("x"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	m.Destroy()
	m.Destroy()

	if !m.Destroyed() {
		t.Fatalf("expected manager to report destroyed")
	}
	if _, err := m.Encrypt([]byte("x")); !errors.Is(err, ErrEncryption) {
		t.Fatalf("Encrypt after Destroy: err = %v", err)
	}
	if _, err := m.Decrypt(blob); !errors.Is(err, ErrAuthenticationFailure) {
		t.Fatalf("Decrypt after Destroy: err = %v", err)
	}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestLegacySalt_ReturnsCopy(t *testing.T) {
	s := LegacySalt()
	s[0] ^= 0xFF
	if bytes.Equal(s, LegacySalt()) {
		t.Fatalf("LegacySalt must return an independent copy")
	}
	if string(LegacySalt()) != "example salt" {
		t.Fatalf("legacy salt changed")
	}
}

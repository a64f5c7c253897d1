// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the key material for one interactive use of a vault.
//
// A Session moves Locked → Unlocked → Closed. It is created Locked with a
// freshly derived key; the first successful Unlock proves the key against
// the stored blob (or finds no blob yet) and moves it to Unlocked; Close
// destroys the key. The manager is built once here and handed to the vault
// store, never shared elsewhere.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateLocked State = iota
	StateUnlocked
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options tune Open. The zero value uses default KDF parameters, no lock
// and a discarding logger.
type Options struct {
	KDF    *crypto.KDFParams
	Locker store.Locker
	Logger *logger.Logger
}

// Session ties one crypto.Manager to one vault.Store.
type Session struct {
	mu       sync.Mutex
	state    State
	verified bool

	manager *crypto.Manager
	store   *vault.Store
	logger  *logger.Logger
}

// Open derives the session key from passphrase and salt. Key derivation and
// cipher setup errors are fatal and returned as is.
func Open(passphrase, salt []byte, blobs store.BlobStore, opts Options) (*Session, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var cryptoOpts []crypto.Option
	if opts.KDF != nil {
		cryptoOpts = append(cryptoOpts, crypto.WithKDFParams(*opts.KDF))
	}

	manager, err := crypto.New(passphrase, salt, cryptoOpts...)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	storeOpts := []vault.Option{vault.WithLogger(log)}
	if opts.Locker != nil {
		storeOpts = append(storeOpts, vault.WithLocker(opts.Locker))
	}

	return &Session{
		state:   StateLocked,
		manager: manager,
		store:   vault.NewStore(manager, blobs, storeOpts...),
		logger:  log,
	}, nil
}

// Unlock performs the first load. On success the session is Unlocked and the
// loaded record set is returned. A failed Unlock leaves the session Locked so
// the caller may Close it.
func (s *Session) Unlock(ctx context.Context) (models.Vault, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return models.Vault{}, ErrSessionClosed
	}

	v, verified, err := s.store.LoadVerified(ctx)
	if err != nil {
		return models.Vault{}, err
	}

	s.state = StateUnlocked
	s.verified = verified
	s.logger.Debug().Bool("verified", verified).Msg("session unlocked")
	return v, nil
}

// Verified reports whether Unlock authenticated an existing blob. A vault
// that did not exist yet gives no proof that the passphrase is right.
func (s *Session) Verified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verified
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Store returns the vault store once the session is Unlocked.
func (s *Session) Store() (*vault.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateClosed:
		return nil, ErrSessionClosed
	case StateLocked:
		return nil, ErrSessionLocked
	}
	return s.store, nil
}

// Close destroys the key. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.manager.Destroy()
	s.state = StateClosed
	s.logger.Debug().Msg("session closed")
	return nil
}

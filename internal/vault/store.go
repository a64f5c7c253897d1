// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Store maps the in-memory record set to one encrypted blob. It keeps no
// records between calls: every operation is a full load or save.
type Store struct {
	cipher crypto.Cipher
	blobs  store.BlobStore
	locker store.Locker
	logger *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLocker serializes Update (and the CRUD helpers built on it) across
// processes with l.
func WithLocker(l store.Locker) Option {
	return func(s *Store) {
		s.locker = l
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns a Store sealing records with cipher and persisting them
// through blobs.
func NewStore(cipher crypto.Cipher, blobs store.BlobStore, opts ...Option) *Store {
	s := &Store{
		cipher: cipher,
		blobs:  blobs,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and decrypts the record set. A vault that was never saved
// loads as an empty set.
func (s *Store) Load(ctx context.Context) (models.Vault, error) {
	v, _, err := s.load(ctx)
	return v, err
}

// load also reports whether a ciphertext was actually authenticated.
func (s *Store) load(ctx context.Context) (models.Vault, bool, error) {
	blob, err := s.blobs.Read(ctx)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			s.logger.Debug().Str("location", s.blobs.Location()).Msg("no vault yet, starting empty")
			return models.NewVault(), false, nil
		}
		return models.Vault{}, false, newIOError("load", s.blobs.Location(), err)
	}

	text, err := s.cipher.DecryptToText(blob)
	if err != nil {
		s.logger.Warn().Str("location", s.blobs.Location()).Msg("vault could not be decrypted")
		return models.Vault{}, false, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	v, err := decodeRecordSet([]byte(text))
	if err != nil {
		s.logger.Warn().Err(err).Str("location", s.blobs.Location()).Msg("vault content does not match the record schema")
		return models.Vault{}, true, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	s.logger.Debug().Int("entries", v.Len()).Msg("vault loaded")
	return v, true, nil
}

// LoadVerified is Load plus a flag telling whether an existing blob was
// authenticated. It is false only for a vault that has never been saved.
func (s *Store) LoadVerified(ctx context.Context) (models.Vault, bool, error) {
	return s.load(ctx)
}

// Save replaces the stored blob with the encryption of v.
func (s *Store) Save(ctx context.Context, v models.Vault) error {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record set: %w", err)
	}

	blob, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("encrypt record set: %w", err)
	}

	if err = s.blobs.Write(ctx, blob); err != nil {
		return newIOError("save", s.blobs.Location(), err)
	}

	s.logger.Debug().Int("entries", v.Len()).Int("bytes", len(blob)).Msg("vault saved")
	return nil
}

// Update runs load, fn, save as one cycle, under the advisory lock when
// one is configured. If fn fails nothing is written.
func (s *Store) Update(ctx context.Context, fn func(v *models.Vault) error) (err error) {
	if s.locker != nil {
		if err = s.locker.Lock(ctx); err != nil {
			return fmt.Errorf("lock vault: %w", err)
		}
		defer func() {
			if unlockErr := s.locker.Unlock(); unlockErr != nil && err == nil {
				err = fmt.Errorf("unlock vault: %w", unlockErr)
			}
		}()
	}

	v, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err = fn(&v); err != nil {
		return err
	}
	return s.Save(ctx, v)
}

// Add appends c and saves. Duplicate services are allowed.
func (s *Store) Add(ctx context.Context, c models.Credential) error {
	err := s.Update(ctx, func(v *models.Vault) error {
		v.Add(c)
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("service", c.Service).Msg("credential added")
	return nil
}

// Get returns the first credential stored for service.
func (s *Store) Get(ctx context.Context, service string) (models.Credential, bool, error) {
	v, err := s.Load(ctx)
	if err != nil {
		return models.Credential{}, false, err
	}
	c, ok := v.Find(service)
	return c, ok, nil
}

// List returns every credential in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Credential, error) {
	v, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return v.Entries, nil
}

// Delete removes every credential for service and saves, even when none
// matched. It returns the number removed.
func (s *Store) Delete(ctx context.Context, service string) (int, error) {
	removed := 0
	err := s.Update(ctx, func(v *models.Vault) error {
		removed = v.Remove(service)
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("service", service).Int("removed", removed).Msg("credentials deleted")
	return removed, nil
}

// GenerateSecret is the package-level GenerateSecret, exposed on Store for
// callers that only hold a *Store.
func (s *Store) GenerateSecret(length int) (string, error) {
	return GenerateSecret(length)
}

// Location describes where the blob is stored.
func (s *Store) Location() string {
	return s.blobs.Location()
}

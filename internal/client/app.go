// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// App runs vault operations for one process.
type App struct {
	cfg       *config.StructuredConfig
	log       *logger.Logger
	prompter  Prompter
	validator validators.Validator

	blobs   store.BlobStore
	session *session.Session
	closers []io.Closer

	openSession func(passphrase, salt []byte, blobs store.BlobStore, opts session.Options) (*session.Session, error)
}

// NewApp returns an App. Nothing is opened until the first operation.
func NewApp(cfg *config.StructuredConfig, prompter Prompter, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		cfg:       cfg,
		log:       log.WithComponent("client"),
		prompter:  prompter,
		validator: validators.NewCredentialValidator(),

		openSession: session.Open,
	}
}

// openBlobStore builds the configured backend once.
func (a *App) openBlobStore(ctx context.Context) (store.BlobStore, error) {
	if a.blobs != nil {
		return a.blobs, nil
	}

	switch a.cfg.Vault.Backend {
	case config.BackendSQLite:
		s, err := store.NewSQLiteBlobStore(ctx, a.cfg.Vault.Path, a.log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		a.closers = append(a.closers, s)
		a.blobs = s
	default:
		a.blobs = store.NewFileBlobStore(a.cfg.Vault.Path)
	}
	return a.blobs, nil
}

// unlock prompts for the master password and returns an unlocked store.
func (a *App) unlock(ctx context.Context) (*vault.Store, error) {
	if a.session != nil {
		return a.session.Store()
	}

	blobs, err := a.openBlobStore(ctx)
	if err != nil {
		return nil, err
	}

	salt, err := session.ResolveSalt(ctx, a.cfg.Vault.SaltMode, a.cfg.Vault.SaltPath(), blobs)
	if err != nil {
		return nil, err
	}

	passphrase, err := a.prompter.Secret("Enter the master password:")
	if err != nil {
		return nil, fmt.Errorf("read master password: %w", err)
	}

	kdf := crypto.KDFParams{
		Time:      a.cfg.KDF.Time,
		MemoryKiB: a.cfg.KDF.MemoryKiB,
		Threads:   a.cfg.KDF.Threads,
	}
	secret := []byte(passphrase)
	sess, err := a.openSession(secret, salt, blobs, session.Options{
		KDF:    &kdf,
		Locker: store.NewFileLock(a.cfg.Vault.LockPath()),
		Logger: a.log,
	})
	// the key is derived, the passphrase bytes are not needed anymore
	clear(secret)
	if err != nil {
		return nil, err
	}

	if _, err = sess.Unlock(ctx); err != nil {
		_ = sess.Close()
		return nil, err
	}
	a.session = sess

	a.log.Info().
		Str("location", blobs.Location()).
		Str("salt_mode", a.cfg.Vault.SaltMode).
		Bool("verified", sess.Verified()).
		Msg("vault unlocked")

	return sess.Store()
}

func (a *App) lockContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.cfg.Vault.LockTimeout)
}

// Add prompts for the password of service/username and stores the entry.
func (a *App) Add(ctx context.Context, service, username string) error {
	c := models.Credential{Service: service, Username: username}
	if err := a.validator.Validate(ctx, c, validators.FieldService, validators.FieldUsername); err != nil {
		return err
	}

	s, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	c.Password, err = a.prompter.Secret("Enter the password you want to add:")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if err = a.validator.Validate(ctx, c, validators.FieldPassword); err != nil {
		return err
	}

	ctx, cancel := a.lockContext(ctx)
	defer cancel()
	return s.Add(ctx, c)
}

// Get returns the first credential for service.
func (a *App) Get(ctx context.Context, service string) (models.Credential, bool, error) {
	s, err := a.unlock(ctx)
	if err != nil {
		return models.Credential{}, false, err
	}
	return s.Get(ctx, service)
}

// List returns every credential.
func (a *App) List(ctx context.Context) ([]models.Credential, error) {
	s, err := a.unlock(ctx)
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

// Delete removes every credential for service.
func (a *App) Delete(ctx context.Context, service string) (int, error) {
	s, err := a.unlock(ctx)
	if err != nil {
		return 0, err
	}

	ctx, cancel := a.lockContext(ctx)
	defer cancel()
	return s.Delete(ctx, service)
}

// Generate returns a random password. It needs no master password.
func (a *App) Generate(length int) (string, error) {
	return vault.GenerateSecret(length)
}

// GeneratorLength is the configured default password length.
func (a *App) GeneratorLength() int {
	return a.cfg.Generator.Length
}

// Close destroys the session key and releases the backend.
func (a *App) Close() error {
	var errs []error
	if a.session != nil {
		errs = append(errs, a.session.Close())
	}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.session, a.blobs, a.closers = nil, nil, nil
	return errors.Join(errs...)
}

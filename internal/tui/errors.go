// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

var (
	// ErrUserQuit is returned when the user cancels a prompt.
	ErrUserQuit = errors.New("cancelled by user")

	// ErrNoInput is returned when a non-interactive prompt reads nothing.
	ErrNoInput = errors.New("no input provided")
)

// Humanize turns an error from the vault stack into a one-line message for
// the user. Wrong password and a damaged file are deliberately reported
// the same way.
func Humanize(err error) string {
	if err == nil {
		return ""
	}

	var ioErr *vault.IOError
	switch {
	case errors.Is(err, vault.ErrUnauthorized):
		return "wrong master password or corrupted vault"
	case errors.Is(err, vault.ErrCorrupt):
		return "vault content is corrupted"
	case errors.As(err, &ioErr):
		return "cannot access vault at " + ioErr.Path + ": " + ioErr.Kind.String()
	case errors.Is(err, store.ErrLockTimeout):
		return "vault is in use by another process"
	case errors.Is(err, session.ErrSaltMissing):
		return "vault has no salt file; retry with --salt-mode legacy"
	case errors.Is(err, vault.ErrInvalidLength):
		return "password length must be at least 1"
	case errors.Is(err, ErrUserQuit):
		return "cancelled"
	case errors.Is(err, ErrNoInput):
		return "no master password provided"
	}

	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestRenderCredential(t *testing.T) {
	out := RenderCredential(models.Credential{Service: "github", Username: "alice", Password: "p@ss1234"})
	assert.Contains(t, out, "github")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "p@ss1234")
}

func TestRenderList(t *testing.T) {
	assert.Contains(t, RenderList(nil), "0 services")

	out := RenderList([]models.Credential{
		{Service: "a", Username: "u1", Password: "p1"},
		{Service: "b", Username: "u2", Password: "p2"},
	})
	assert.Contains(t, out, "2 service(s)")
	assert.Contains(t, out, "u1")
	assert.Contains(t, out, "p2")
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("1.0.0", "", " "))
	assert.Contains(t, out, "Build version: 1.0.0")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestRenderSecretAndNotFound(t *testing.T) {
	assert.Contains(t, RenderSecret("Xy9!"), "Xy9!")
	assert.Contains(t, RenderNotFound("mail"), `"mail"`)
	assert.Contains(t, RenderSuccess("done"), "done")
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unauthorized", fmt.Errorf("%w: %w", vault.ErrUnauthorized, crypto.ErrAuthenticationFailure), "wrong master password or corrupted vault"},
		{"corrupt", vault.ErrCorrupt, "vault content is corrupted"},
		{"io", &vault.IOError{Op: "save", Path: "/v", Kind: vault.IOKindPermission, Err: errors.New("x")}, "cannot access vault at /v: permission denied"},
		{"lock", fmt.Errorf("lock vault: %w", store.ErrLockTimeout), "vault is in use by another process"},
		{"salt", session.ErrSaltMissing, "vault has no salt file; retry with --salt-mode legacy"},
		{"length", vault.ErrInvalidLength, "password length must be at least 1"},
		{"quit", ErrUserQuit, "cancelled"},
		{"no input", ErrNoInput, "no master password provided"},
		{"other", errors.New("something else"), "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Humanize(tt.err))
		})
	}

	assert.Contains(t, RenderError(vault.ErrCorrupt), "vault content is corrupted")
}

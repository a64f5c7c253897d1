// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrSessionClosed is returned by every operation after Close.
	ErrSessionClosed = errors.New("session is closed")

	// ErrSessionLocked is returned by Store before a successful Unlock.
	ErrSessionLocked = errors.New("session is locked")

	// ErrUnknownSaltMode is returned by ResolveSalt for an unsupported mode.
	ErrUnknownSaltMode = errors.New("unknown salt mode")

	// ErrSaltMissing is returned by ResolveSalt when a vault exists but its
	// salt file does not, which usually means it was created in legacy mode.
	ErrSaltMissing = errors.New("vault exists without a salt file; use salt mode \"legacy\" for vaults created with the fixed salt")
)

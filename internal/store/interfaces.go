// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStore persists the single encrypted vault blob. Implementations treat
// the bytes as opaque: they never parse, compress, or re-encode them.
type BlobStore interface {
	// Read returns the whole stored blob, or an error wrapping
	// ErrBlobNotFound when nothing has been written yet.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored blob in full.
	Write(ctx context.Context, blob []byte) error

	// Location describes where the blob lives (a path or DSN) for logs and
	// error messages.
	Location() string
}

// Locker is an advisory, cross-process lock around a vault's
// load-mutate-save cycle.
type Locker interface {
	// Lock blocks until the lock is held or ctx is done.
	Lock(ctx context.Context) error

	// Unlock releases a held lock.
	Unlock() error
}

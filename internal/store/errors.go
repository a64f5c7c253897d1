// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by blob stores and lockers. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBlobNotFound is returned by [BlobStore.Read] when no vault has been
	// written yet. It is the only condition the vault treats as a first run.
	ErrBlobNotFound = errors.New("vault blob not found")

	// ErrLockTimeout is returned when the advisory lock could not be taken
	// before the context was done.
	ErrLockTimeout = errors.New("timed out waiting for vault lock")

	// ErrNotLocked is returned by Unlock when the lock is not held.
	ErrNotLocked = errors.New("vault lock is not held")

	// ErrInvalidSalt is returned when a salt file exists but is empty.
	ErrInvalidSalt = errors.New("invalid salt file")
)

// Low-level SQL errors returned (wrapped) by [SQLiteBlobStore].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT/UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

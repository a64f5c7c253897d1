// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrUnauthorized is returned by Load when the blob cannot be decrypted.
	// It wraps the underlying crypto error, which is ErrAuthenticationFailure
	// for both a wrong master password and a damaged file.
	ErrUnauthorized = errors.New("vault: unauthorized")

	// ErrCorrupt is returned by Load when decrypted text does not parse into
	// the record schema.
	ErrCorrupt = errors.New("vault: corrupt record set")

	// ErrIO matches any *IOError via errors.Is.
	ErrIO = errors.New("vault: i/o error")

	// ErrInvalidLength is returned by GenerateSecret for a non-positive length.
	ErrInvalidLength = errors.New("vault: secret length must be positive")
)

// IOKind classifies an IOError for diagnostics. Control flow never depends
// on it.
type IOKind int

const (
	IOKindOther IOKind = iota
	IOKindNotFound
	IOKindPermission
)

func (k IOKind) String() string {
	switch k {
	case IOKindNotFound:
		return "not found"
	case IOKindPermission:
		return "permission denied"
	default:
		return "other"
	}
}

// IOError reports a storage failure during Load or Save.
type IOError struct {
	Op   string
	Path string
	Kind IOKind
	Err  error
}

func newIOError(op, path string, err error) *IOError {
	kind := IOKindOther
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = IOKindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = IOKindPermission
	}
	return &IOError{Op: op, Path: path, Kind: kind, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("vault %s %s (%s): %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) true for every *IOError.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileBlobStore keeps the vault blob in a single file. Writes go through a
// temporary file in the same directory and a rename, so a crash mid-save
// leaves either the old or the new blob on disk, never a torn one.
type FileBlobStore struct {
	path string
}

// NewFileBlobStore returns a [FileBlobStore] for path. The file and its
// directory are created lazily on the first Write.
func NewFileBlobStore(path string) *FileBlobStore {
	return &FileBlobStore{path: path}
}

// Read implements [BlobStore].
func (s *FileBlobStore) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, s.path)
		}
		return nil, fmt.Errorf("read vault file: %w", err)
	}
	return data, nil
}

// Write implements [BlobStore].
func (s *FileBlobStore) Write(_ context.Context, blob []byte) error {
	if err := writeFileAtomic(s.path, blob, 0o600); err != nil {
		return fmt.Errorf("write vault file: %w", err)
	}
	return nil
}

// Location implements [BlobStore].
func (s *FileBlobStore) Location() string {
	return s.path
}

// writeFileAtomic writes data to a uniquely named sibling of path, syncs it,
// and renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath, err := writeTempSibling(path, data, perm)
	if err != nil {
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// writeFileExclusive publishes data at path only if path does not exist yet.
// Readers never see a partial file. An existing path yields an error
// wrapping [fs.ErrExist].
func writeFileExclusive(path string, data []byte, perm os.FileMode) error {
	tmpPath, err := writeTempSibling(path, data, perm)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	return os.Link(tmpPath, path)
}

// writeTempSibling writes data to a fresh uniquely named file next to path
// and syncs it. The caller owns the returned file.
func writeTempSibling(path string, data []byte, perm os.FileMode) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return "", err
	}

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err = tmp.Write(data); err != nil {
		cleanup()
		return "", err
	}
	if err = tmp.Sync(); err != nil {
		cleanup()
		return "", err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// tryLock creates the lock file exclusively and writes the owner PID into it.
// A crashed owner leaves the file behind; it has to be removed by hand.
func (l *FileLock) tryLock() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return false, err
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}

	if _, err = f.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		_ = f.Close()
		_ = os.Remove(l.path)
		return false, err
	}
	l.file = f
	return true, nil
}

func (l *FileLock) unlock() error {
	f := l.file
	l.file = nil
	if f != nil {
		_ = f.Close()
	}
	return os.Remove(l.path)
}

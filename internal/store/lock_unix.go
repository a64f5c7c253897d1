// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package store

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// tryLock takes a non-blocking exclusive flock. The lock file is left on
// disk after Unlock: removing it would let two processes lock different
// inodes under the same name.
func (l *FileLock) tryLock() (bool, error) {
	if l.file == nil {
		if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
			return false, err
		}
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
		if err != nil {
			return false, err
		}
		l.file = f
	}

	err := unix.Flock(int(l.file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err == nil {
		return true, nil
	}
	// drop the descriptor between attempts so a timed-out Lock leaks nothing
	_ = l.file.Close()
	l.file = nil
	if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
		return false, nil
	}
	return false, err
}

func (l *FileLock) unlock() error {
	f := l.file
	l.file = nil
	if f == nil {
		return nil
	}

	err := unix.Flock(int(f.Fd()), unix.LOCK_UN)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

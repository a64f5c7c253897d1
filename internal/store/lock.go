// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

const defaultLockPollInterval = 50 * time.Millisecond

// FileLock is a [Locker] backed by a sidecar lock file. On unix it takes an
// exclusive flock(2) on the file; elsewhere it relies on exclusive creation.
//
// Vault files have no built-in concurrency control, so two sessions racing
// load-mutate-save lose the earlier write. FileLock closes that gap for
// cooperating processes only: it is advisory and does not stop a process
// that ignores it.
type FileLock struct {
	path string
	poll time.Duration

	mu   sync.Mutex
	file *os.File
	held bool
}

// NewFileLock returns a [FileLock] on path (typically "<vault>.lock").
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path, poll: defaultLockPollInterval}
}

// Lock implements [Locker]. It polls until the lock is acquired or ctx is
// done; in the latter case the error wraps both ErrLockTimeout and ctx.Err().
func (l *FileLock) Lock(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held {
		return fmt.Errorf("lock %s already held by this process", l.path)
	}

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for {
		ok, err := l.tryLock()
		if err != nil {
			return fmt.Errorf("acquire lock %s: %w", l.path, err)
		}
		if ok {
			l.held = true
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s: %w", ErrLockTimeout, l.path, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Unlock implements [Locker].
func (l *FileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.held {
		return ErrNotLocked
	}
	l.held = false

	if err := l.unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.path
}

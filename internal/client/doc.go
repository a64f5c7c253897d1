// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pwdvault command runtime.
//
// It turns a merged configuration into a blob backend, a salt, an advisory
// lock and an unlocked session, and runs one vault operation per process.
package client

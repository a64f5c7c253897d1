// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults reproduce the behavior of earlier pwdvault builds: the vault file
// lives in the working directory and Argon2id runs with t=2, m=19 MiB, p=1.
const (
	DefaultVaultPath       = ".pwdmgr_store.encrypted"
	DefaultLockTimeout     = 5 * time.Second
	DefaultKDFTime         = 2
	DefaultKDFMemoryKiB    = 19 * 1024
	DefaultKDFThreads      = 1
	DefaultLogLevel        = "info"
	DefaultGeneratorLength = 16
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			Path:        DefaultVaultPath,
			Backend:     BackendFile,
			SaltMode:    SaltModeFile,
			LockTimeout: DefaultLockTimeout,
		},
		KDF: KDF{
			Time:      DefaultKDFTime,
			MemoryKiB: DefaultKDFMemoryKiB,
			Threads:   DefaultKDFThreads,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
		Generator: Generator{
			Length: DefaultGeneratorLength,
		},
	}
}

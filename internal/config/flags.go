package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the global command-line flags. The zero value
// of a field means "not set" and leaves lower-priority sources in place.
type Flags struct {
	ConfigPath  string
	VaultPath   string
	Backend     string
	SaltMode    string
	LockTimeout time.Duration
	LogLevel    string
	LogFile     string
}

// BindFlags registers the global flags on fs and returns the struct they
// populate once fs is parsed.
//
// Flags:
//
//	-c/--config     json file path with configs
//	--vault         vault file path
//	--backend       blob store backend (file|sqlite)
//	--salt-mode     key derivation salt mode (file|legacy)
//	--lock-timeout  how long to wait for the vault lock (e.g. "5s")
//	--log-level     log level (debug|info|warn|error|disabled)
//	--log-file      log file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.VaultPath, "vault", "", "Vault file path")
	fs.StringVar(&f.Backend, "backend", "", "Blob store backend: file or sqlite")
	fs.StringVar(&f.SaltMode, "salt-mode", "", "Salt mode: file or legacy")
	fs.DurationVar(&f.LockTimeout, "lock-timeout", 0, "Vault lock wait timeout (e.g. 5s)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error, disabled")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")

	return f
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			Path:        f.VaultPath,
			Backend:     f.Backend,
			SaltMode:    f.SaltMode,
			LockTimeout: f.LockTimeout,
		},
		Log: Log{
			Level: f.LogLevel,
			File:  f.LogFile,
		},
		JSONFilePath: f.ConfigPath,
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file:
//
//	{
//	  "vault": {"path": "...", "backend": "file", "salt_mode": "file", "lock_timeout": "5s"},
//	  "kdf": {"time": 2, "memory_kib": 19456, "threads": 1},
//	  "log": {"level": "info", "file": "..."},
//	  "generator": {"length": 16}
//	}
type StructuredJSONConfig struct {
	Vault struct {
		Path        string   `json:"path"`
		Backend     string   `json:"backend"`
		SaltMode    string   `json:"salt_mode"`
		LockTimeout Duration `json:"lock_timeout"`
	} `json:"vault,omitempty"`

	KDF struct {
		Time      uint32 `json:"time"`
		MemoryKiB uint32 `json:"memory_kib"`
		Threads   uint8  `json:"threads"`
	} `json:"kdf,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Generator struct {
		Length int `json:"length"`
	} `json:"generator,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Vault: Vault{
			Path:        jsonCfg.Vault.Path,
			Backend:     jsonCfg.Vault.Backend,
			SaltMode:    jsonCfg.Vault.SaltMode,
			LockTimeout: time.Duration(jsonCfg.Vault.LockTimeout),
		},
		KDF: KDF{
			Time:      jsonCfg.KDF.Time,
			MemoryKiB: jsonCfg.KDF.MemoryKiB,
			Threads:   jsonCfg.KDF.Threads,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Generator: Generator{
			Length: jsonCfg.Generator.Length,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

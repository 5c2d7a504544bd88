package config

import "strings"

// validate checks that the final merged [Config] satisfies the invariants the
// client relies on at startup. Defaults have already been applied, so a
// failure here means a source supplied an explicitly unusable value.
func (cfg *Config) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Address == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.EncryptionKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

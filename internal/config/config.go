package config

import (
	"time"
)

// Config is the top-level configuration container for the snapcram client.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the local storage
	// encryption passphrase and the application version.
	App App `envPrefix:"APP_"`

	// Server holds the backend address and outbound request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the local cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// EncryptionKey is the passphrase the at-rest cipher derives the local
	// storage key from. Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SupportEmail is shown on the settings screen as the contact address.
	// Env: APP_SUPPORT_EMAIL
	SupportEmail string `env:"SUPPORT_EMAIL"`
}

// Server holds settings for the outbound connection to the snapcram backend.
type Server struct {
	// Address is the backend address in "host:port" format.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the client-side deadline applied to every backend
	// call (e.g. "20s"). Expiry is reported as a network failure, never as
	// an authentication failure. Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local encrypted deck cache.
type Storage struct {
	// DSN is the SQLite file path for the local cache, created on first run.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Workers holds background worker settings.
type Workers struct {
	// RefreshInterval defines how often the deck index is refreshed from the
	// backend while the client is running. Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults applied by the builder for fields no source provided.
const (
	DefaultServerAddress   = "localhost:8080"
	DefaultRequestTimeout  = 20 * time.Second
	DefaultStorageDSN      = "snapcram.db"
	DefaultRefreshInterval = 5 * time.Minute
	DefaultEncryptionKey   = "hunter2"
)

// Get loads, merges, and validates the client configuration from all
// available sources in the following priority order (earlier wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func Get() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

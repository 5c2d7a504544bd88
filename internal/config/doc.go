// Package config loads and validates the snapcram client configuration.
//
// Values are merged from three sources in priority order (earlier sources win
// for non-zero fields): environment variables, command-line flags, and an
// optional JSON file whose path is itself resolved from the first two
// sources. The merged result is validated before use.
package config

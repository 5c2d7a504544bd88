package store

import "errors"

var (
	// ErrStorage wraps unexpected database failures.
	ErrStorage = errors.New("local storage error")
	// ErrCorruptValue indicates a stored blob could not be decrypted or
	// decoded, typically after the encryption passphrase was changed.
	ErrCorruptValue = errors.New("corrupt stored value")
)

// Package crypto implements the at-rest encryption used by the local deck
// cache. Values are serialised to JSON and sealed with AES-256-GCM under a
// key derived from the configured passphrase with Argon2id.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher seals and opens JSON-serialisable values for local storage.
// Implementations must be safe for concurrent use once the key is derived.
type Cipher interface {
	// GenerateSalt returns a fresh random salt for key derivation. The salt
	// is not secret and is stored in plaintext alongside the database.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives the 256-bit storage key from the configured
	// passphrase and salt. The key exists only in client memory.
	DeriveKey(passphrase string, salt []byte) []byte

	// Seal marshals value to JSON and encrypts it with key using
	// AES-256-GCM. The returned blob is nonce ‖ ciphertext.
	Seal(value any, key []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal and unmarshals the plaintext
	// JSON into target, which must be a non-nil pointer. Returns an error if
	// the key is wrong or the blob is corrupted.
	Open(blob []byte, key []byte, target any) error
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hwalton/snapcram/internal/crypto"
	"github.com/hwalton/snapcram/internal/logger"
)

// saltMetaKey is the meta-table row holding the key-derivation salt.
const saltMetaKey = "kdf_salt"

type encryptedKV struct {
	db     *DB
	cipher crypto.Cipher
	key    []byte
	logger *logger.Logger
}

// NewEncryptedKV constructs the SQLite-backed [KVStore]. On first run it
// generates a key-derivation salt and stores it in the plaintext meta table;
// on later runs the same salt is read back so the derived key is stable for
// the lifetime of the database file.
func NewEncryptedKV(ctx context.Context, db *DB, cipher crypto.Cipher, passphrase string, log *logger.Logger) (KVStore, error) {
	salt, err := loadOrCreateSalt(ctx, db, cipher)
	if err != nil {
		return nil, fmt.Errorf("init storage salt: %w", err)
	}

	return &encryptedKV{
		db:     db,
		cipher: cipher,
		key:    cipher.DeriveKey(passphrase, salt),
		logger: log,
	}, nil
}

func loadOrCreateSalt(ctx context.Context, db *DB, cipher crypto.Cipher) ([]byte, error) {
	var salt []byte
	err := db.QueryRowContext(ctx, getMetaValue, saltMetaKey).Scan(&salt)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	salt, err = cipher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	if _, err = db.ExecContext(ctx, insertMetaValue, saltMetaKey, salt); err != nil {
		return nil, fmt.Errorf("persist salt: %w", err)
	}

	return salt, nil
}

// Get implements [KVStore]. Missing keys yield (false, nil); a blob that can
// no longer be decrypted yields [ErrCorruptValue].
func (s *encryptedKV) Get(ctx context.Context, key string, target any) (bool, error) {
	log := logger.FromContext(ctx)

	var blob []byte
	err := s.db.QueryRowContext(ctx, getValue, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("key", key).Msg("failed to read value")
		return false, fmt.Errorf("%w: read %q: %v", ErrStorage, key, err)
	}

	if err = s.cipher.Open(blob, s.key, target); err != nil {
		log.Err(err).Str("key", key).Msg("failed to decrypt value")
		return false, fmt.Errorf("%w: %q: %v", ErrCorruptValue, key, err)
	}

	return true, nil
}

// Set implements [KVStore].
func (s *encryptedKV) Set(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	blob, err := s.cipher.Seal(value, s.key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("failed to encrypt value")
		return fmt.Errorf("encrypt %q: %w", key, err)
	}

	if _, err = s.db.ExecContext(ctx, upsertValue, key, blob); err != nil {
		log.Err(err).Str("key", key).Msg("failed to write value")
		return fmt.Errorf("%w: write %q: %v", ErrStorage, key, err)
	}

	return nil
}

// Delete implements [KVStore].
func (s *encryptedKV) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, deleteValue, key); err != nil {
		log.Err(err).Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("%w: delete %q: %v", ErrStorage, key, err)
	}

	return nil
}

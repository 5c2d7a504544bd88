package store

import (
	"context"
	"fmt"

	"github.com/hwalton/snapcram/internal/config"
	"github.com/hwalton/snapcram/internal/crypto"
	"github.com/hwalton/snapcram/internal/logger"
)

// Storages bundles every local repository the client works with.
type Storages struct {
	Session SessionRepository
	Decks   DeckRepository
}

// NewStorages opens the local database, runs migrations and wires the
// encrypted key-value layer underneath each repository.
func NewStorages(ctx context.Context, cfg config.Storage, encryptionKey string, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect local storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local storage: %w", err)
	}

	kv, err := NewEncryptedKV(ctx, db, crypto.NewCipher(), encryptionKey, log)
	if err != nil {
		return nil, fmt.Errorf("init encrypted storage: %w", err)
	}

	return &Storages{
		Session: NewSessionRepository(kv, log),
		Decks:   NewDeckRepository(kv, log),
	}, nil
}

// Package store implements the encrypted local cache for decks, the session
// token, and user preferences.
//
// All values live in a single SQLite-backed key-value table; each value is
// JSON-serialised and sealed at rest by [crypto.Cipher]. Writes are
// last-writer-wins and there is no multi-key atomicity; acceptable for a
// single-device cache with one writer per screen.
package store

import (
	"context"

	"github.com/hwalton/snapcram/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVStore is the opaque persistent mapping from string keys to
// JSON-serialisable values, encrypted at rest.
type KVStore interface {
	// Get reads key and decrypts the stored value into target (a non-nil
	// pointer). A missing key yields (false, nil), never an error.
	Get(ctx context.Context, key string, target any) (bool, error)

	// Set serialises, encrypts, and upserts value under key.
	Set(ctx context.Context, key string, value any) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

// SessionRepository holds the bearer token and user preferences.
type SessionRepository interface {
	// Token returns the persisted session token, or "" when absent.
	Token(ctx context.Context) (string, error)

	// SetToken persists the session token.
	SetToken(ctx context.Context, token string) error

	// ClearToken removes the session token, logging the user out locally.
	ClearToken(ctx context.Context) error

	// Theme returns the persisted colour scheme, defaulting to light.
	Theme(ctx context.Context) (models.Theme, error)

	// SetTheme persists the colour scheme.
	SetTheme(ctx context.Context, theme models.Theme) error
}

// DeckRepository holds the deck index and one record per deck. Every ID in
// the index is expected to have a corresponding record; ReplaceAll and
// Remove are the only operations that touch both, in an order that keeps a
// crash from orphaning the index.
type DeckRepository interface {
	// Index returns the persisted deck index, or an empty slice when absent.
	Index(ctx context.Context) ([]int64, error)

	// Deck returns the record for id. A missing record yields ok=false.
	Deck(ctx context.Context, id int64) (deck models.Deck, ok bool, err error)

	// SaveDeck upserts a single deck record. The index is not modified.
	SaveDeck(ctx context.Context, deck models.Deck) error

	// AddToIndex appends id to the index if not already present.
	AddToIndex(ctx context.Context, id int64) error

	// ReplaceAll upserts a record for every deck, then replaces the index
	// with exactly those deck IDs in one write.
	ReplaceAll(ctx context.Context, decks []models.Deck) error

	// Remove drops id from the index, then deletes its record.
	Remove(ctx context.Context, id int64) error

	// Clear deletes every indexed record and then the index itself.
	Clear(ctx context.Context) error
}

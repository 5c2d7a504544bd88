// Package service holds the client's business logic: session validation,
// the deck cache and its backend synchronisation, and the two in-memory
// state machines driving the review and edit screens.
package service

import (
	"context"

	"github.com/hwalton/snapcram/models"
)

// SessionState is the tri-state outcome of validating the stored session.
type SessionState int

const (
	// SessionValid means the stored token exists and the backend accepts it.
	SessionValid SessionState = iota

	// SessionUnauthenticated means there is no usable session: no token,
	// an expired token, or the backend rejected it.
	SessionUnauthenticated

	// SessionOffline means the backend could not be reached, so the token's
	// validity is unknown. An outage must never log the user out.
	SessionOffline
)

// SessionService owns the session token lifecycle.
type SessionService interface {
	// Validate checks the stored token locally and against the backend and
	// classifies the session. The returned error is a storage failure only;
	// network and auth failures are folded into the state.
	Validate(ctx context.Context) (SessionState, error)

	// CreateUser registers a new account and persists the issued token.
	CreateUser(ctx context.Context, creds models.Credentials) error

	// Authenticate logs in and persists the issued token.
	Authenticate(ctx context.Context, creds models.Credentials) error

	// Logout drops the session token, locally and from the adapter.
	Logout(ctx context.Context) error

	// DeleteAccount removes the account on the backend and, only on
	// success, wipes all local state.
	DeleteAccount(ctx context.Context) error

	// Theme returns the persisted colour scheme.
	Theme(ctx context.Context) (models.Theme, error)

	// SetTheme persists the colour scheme.
	SetTheme(ctx context.Context, theme models.Theme) error
}

// DeckService owns the deck cache and its synchronisation with the backend.
type DeckService interface {
	// Refresh fetches the authoritative deck list and mirrors it into the
	// local cache. When the backend cannot supply a fresh list for any
	// non-auth reason, the last persisted decks are returned with
	// stale=true instead of an error.
	Refresh(ctx context.Context) (decks []models.Deck, stale bool, err error)

	// Decks lists the cached decks in index order without touching the
	// network.
	Decks(ctx context.Context) ([]models.Deck, error)

	// Deck returns one deck, fetching from the backend if it is indexed
	// but not yet cached.
	Deck(ctx context.Context, id int64) (models.Deck, error)

	// UploadImages validates the form and sends its images to the backend,
	// returning the server-side file identifiers. First stage of creation.
	UploadImages(ctx context.Context, form CreateDeckForm) ([]string, error)

	// CreateFromFiles asks the backend to generate a deck from previously
	// uploaded files and caches the result. Second stage of creation.
	CreateFromFiles(ctx context.Context, form CreateDeckForm, fileIDs []string) (models.Deck, error)

	// Create runs both creation stages back to back.
	Create(ctx context.Context, form CreateDeckForm) (models.Deck, error)

	// Delete removes a deck on the backend first and drops local state
	// only after the backend confirms.
	Delete(ctx context.Context, id int64) error

	// RecordAnswer persists a confidence outcome onto one card of a cached
	// deck.
	RecordAnswer(ctx context.Context, deckID int64, cardIndex int, confidence models.Confidence) error

	// SaveEdits pushes a full flagged card array. On success the local
	// record is overwritten with the backend's canonical cards; on failure
	// the flagged edits are kept locally and the error returned.
	SaveEdits(ctx context.Context, deckID int64, cards []models.EditedFlashcard) error
}

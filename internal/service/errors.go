package service

import "errors"

var (
	// ErrUnauthenticated means the operation needs a valid session and
	// there is none. Callers route to the auth screen.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrDeckNotFound means the requested deck is neither cached nor known
	// to the backend.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrDuplicateDeckName means a cached deck already carries the
	// requested name. The check is local-only; two devices can still race.
	ErrDuplicateDeckName = errors.New("deck name already in use")

	// ErrInvalidCard means a card index fell outside the deck's card array.
	ErrInvalidCard = errors.New("card index out of range")
)

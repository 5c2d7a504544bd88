// Package api talks to the Snapcram backend over HTTP/REST. The backend is
// opaque to the client: it owns user accounts, deck generation, and the
// canonical deck list; this package only moves JSON in and out of it.
package api

import (
	"context"

	"github.com/hwalton/snapcram/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_mock.go -package=mock

// ServerAdapter is the client's view of the backend. Implementations carry
// the session token internally; SetToken must be called after authentication
// and may be called concurrently with requests.
type ServerAdapter interface {
	// SetToken stores the bearer token sent with authenticated requests.
	SetToken(token string)

	// Token returns the token currently held by the adapter.
	Token() string

	// CreateUser registers a new account and returns the issued session
	// token. The token is also stored on the adapter.
	CreateUser(ctx context.Context, creds models.Credentials) (string, error)

	// Authenticate exchanges credentials for a session token. The token is
	// also stored on the adapter.
	Authenticate(ctx context.Context, creds models.Credentials) (string, error)

	// UserInfo fetches the authoritative deck list for the current user.
	UserInfo(ctx context.Context) (models.UserInfoResponse, error)

	// CheckExpired asks the backend whether the held token is still valid.
	CheckExpired(ctx context.Context) (bool, error)

	// UploadFiles sends the given images as one multipart request and
	// returns the server-side file identifiers.
	UploadFiles(ctx context.Context, files []models.FileUpload) ([]string, error)

	// CreateDeck asks the backend to generate a deck from previously
	// uploaded files and returns the canonical deck record.
	CreateDeck(ctx context.Context, req models.CreateDeckRequest) (models.Deck, error)

	// UpdateDeck pushes a full flagged card array and returns the deck as
	// the server reconciled it.
	UpdateDeck(ctx context.Context, req models.UpdateDeckRequest) (models.Deck, error)

	// DeleteDeck removes a deck on the backend.
	DeleteDeck(ctx context.Context, id int64) error

	// DeleteUser removes the current account and all its server-side data.
	DeleteUser(ctx context.Context) error
}

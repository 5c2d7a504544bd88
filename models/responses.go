package models

// AuthResponse is the body of a successful POST /createUser or
// POST /authenticate call.
type AuthResponse struct {
	Token string `json:"token"`
}

// UserInfoResponse is the body of GET /userInfo. TokenExpired may be set on
// an HTTP 200 response; the client must treat that the same as an
// authentication failure.
type UserInfoResponse struct {
	Decks        []Deck `json:"decks"`
	TokenExpired bool   `json:"tokenExpired,omitempty"`
}

// CheckExpiredResponse is the body of GET /checkExpired.
type CheckExpiredResponse struct {
	Expired bool `json:"expired"`
}

// UploadFilesResponse is the body of POST /uploadFiles; Files holds the
// server-side identifiers for the uploaded images.
type UploadFilesResponse struct {
	Files []string `json:"files"`
}

// ErrorResponse is the body the server attaches to HTTP 406 responses.
// Details is a user-correctable message suitable for inline display.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

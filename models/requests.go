package models

// Credentials carries the email/password pair sent to POST /authenticate.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateDeckRequest is the payload for POST /createDeck. FileIDs are the
// identifiers returned by a preceding POST /uploadFiles call.
type CreateDeckRequest struct {
	Name       string   `json:"name"`
	NumCards   int      `json:"numCards"`
	UserPrompt string   `json:"userPrompt,omitempty"`
	FileIDs    []string `json:"fileIds"`
}

// UpdateDeckRequest is the payload for PATCH /deck. Cards is the full card
// array including edit/create/delete flags; the server reconciles it and
// answers with the canonical card list.
type UpdateDeckRequest struct {
	ID    int64             `json:"id"`
	Cards []EditedFlashcard `json:"cards"`
}

// DeleteDeckRequest is the payload for DELETE /deck.
type DeleteDeckRequest struct {
	ID int64 `json:"id"`
}

// FileUpload describes one image handed to POST /uploadFiles as a multipart
// part under the field name "files".
type FileUpload struct {
	Name     string
	MimeType string
	Path     string
}

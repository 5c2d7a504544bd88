package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/hwalton/snapcram/internal/config"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from cfg.Address
// and applies cfg.RequestTimeout as the per-request deadline.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.Server, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use as the raw Authorization header value of all subsequent
// authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateUser implements [ServerAdapter]. It POSTs the credentials to
// POST /createUser; on success the issued token is stored via SetToken and
// returned.
func (h *httpServerAdapter) CreateUser(ctx context.Context, creds models.Credentials) (string, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&auth).
		Post("/createUser")
	if err != nil {
		return "", networkError("create user request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(auth.Token)
	return auth.Token, nil
}

// Authenticate implements [ServerAdapter]. It POSTs the credentials to
// POST /authenticate; on success the issued token is stored via SetToken and
// returned.
func (h *httpServerAdapter) Authenticate(ctx context.Context, creds models.Credentials) (string, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&auth).
		Post("/authenticate")
	if err != nil {
		return "", networkError("authenticate request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(auth.Token)
	return auth.Token, nil
}

// UserInfo implements [ServerAdapter]. It GETs the user's authoritative deck
// list from GET /userInfo. The response may carry tokenExpired=true on an
// HTTP 200; callers must treat that as an authentication failure.
func (h *httpServerAdapter) UserInfo(ctx context.Context) (models.UserInfoResponse, error) {
	var info models.UserInfoResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&info).
		Get("/userInfo")
	if err != nil {
		return models.UserInfoResponse{}, networkError("user info request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfoResponse{}, err
	}

	return info, nil
}

// CheckExpired implements [ServerAdapter]. It GETs GET /checkExpired and
// reports whether the backend considers the held token expired.
func (h *httpServerAdapter) CheckExpired(ctx context.Context) (bool, error) {
	var check models.CheckExpiredResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&check).
		Get("/checkExpired")
	if err != nil {
		return false, networkError("check expired request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return check.Expired, nil
}

// UploadFiles implements [ServerAdapter]. It streams every image as a
// multipart part under the field name "files" to POST /uploadFiles and
// returns the server-side file identifiers in upload order.
func (h *httpServerAdapter) UploadFiles(ctx context.Context, files []models.FileUpload) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to upload", ErrValidation)
	}

	var uploaded models.UploadFilesResponse

	req := h.authedRequest(ctx).SetResult(&uploaded)
	for _, f := range files {
		req.SetFile("files", f.Path)
	}

	resp, err := req.Post("/uploadFiles")
	if err != nil {
		return nil, networkError("upload files request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return uploaded.Files, nil
}

// CreateDeck implements [ServerAdapter]. It POSTs the generation request to
// POST /createDeck and returns the canonical deck record the backend built.
func (h *httpServerAdapter) CreateDeck(ctx context.Context, req models.CreateDeckRequest) (models.Deck, error) {
	var deck models.Deck

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&deck).
		Post("/createDeck")
	if err != nil {
		return models.Deck{}, networkError("create deck request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return deck, nil
}

// UpdateDeck implements [ServerAdapter]. It PATCHes the full flagged card
// array to PATCH /deck and returns the deck as the server reconciled it.
func (h *httpServerAdapter) UpdateDeck(ctx context.Context, req models.UpdateDeckRequest) (models.Deck, error) {
	var deck models.Deck

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&deck).
		Patch("/deck")
	if err != nil {
		return models.Deck{}, networkError("update deck request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return deck, nil
}

// DeleteDeck implements [ServerAdapter]. It sends DELETE /deck for id. The
// caller must not drop local state unless this returns nil.
func (h *httpServerAdapter) DeleteDeck(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteDeckRequest{ID: id}).
		Delete("/deck")
	if err != nil {
		return networkError("delete deck request", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser implements [ServerAdapter]. It sends DELETE /deleteUser for the
// current account.
func (h *httpServerAdapter) DeleteUser(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/deleteUser")
	if err != nil {
		return networkError("delete user request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
}

// authedRequest attaches the session token as the raw Authorization header
// value. The backend expects the bare token, not an RFC 6750 "Bearer "
// prefix.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", token)
	}
	return req
}

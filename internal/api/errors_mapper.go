package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hwalton/snapcram/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusNotAcceptable:
		return fmt.Errorf("%w: %s", ErrValidation, validationDetails(resp.Body()))
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), body)
	}
}

// validationDetails extracts the server's `details` string from a 406 body.
// A body that is not the expected JSON shape is passed through verbatim so
// the user still sees something actionable.
func validationDetails(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Details != "" {
		return er.Details
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return "request was not accepted"
}

// networkError wraps a transport-level failure (no HTTP response at all) so
// callers can route it with errors.Is(err, ErrNetwork).
func networkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrNetwork, err)
}

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/hwalton/snapcram/internal/api"
	"github.com/hwalton/snapcram/internal/service"
)

// humanizeError turns the service and adapter sentinels into messages fit
// for the error overlay.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, api.ErrNetwork):
		return "The server cannot be reached. Check your connection and try again."
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, api.ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, service.ErrDuplicateDeckName):
		return "A deck with that name already exists."
	case errors.Is(err, service.ErrDeckNotFound):
		return "That deck no longer exists."
	case errors.Is(err, api.ErrValidation):
		return err.Error()
	case errors.Is(err, api.ErrServer):
		return "The server had a problem handling the request. Try again later."
	default:
		return err.Error()
	}
}

func trimmed(in textinput.Model) string {
	return strings.TrimSpace(in.Value())
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hwalton/snapcram/internal/api"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/store"
	"github.com/hwalton/snapcram/models"
)

type sessionService struct {
	localStore *store.Storages
	adapter    api.ServerAdapter
	logger     *logger.Logger
}

// NewSessionService constructs the [SessionService] over the local store and
// the backend adapter.
func NewSessionService(localStore *store.Storages, serverAdapter api.ServerAdapter, log *logger.Logger) SessionService {
	return &sessionService{localStore: localStore, adapter: serverAdapter, logger: log}
}

// Validate implements [SessionService]. The cheap checks run first: a
// missing token and a locally-expired exp claim are both decided without a
// round-trip. Only then is the backend asked, and only a definitive answer
// can invalidate the session; an unreachable backend yields SessionOffline.
func (s *sessionService) Validate(ctx context.Context) (SessionState, error) {
	token, err := s.localStore.Session.Token(ctx)
	if err != nil {
		return SessionUnauthenticated, fmt.Errorf("load session token: %w", err)
	}
	if token == "" {
		return SessionUnauthenticated, nil
	}

	s.adapter.SetToken(token)

	if expiredLocally(token) {
		s.logger.Debug().Msg("session token expired locally")
		return SessionUnauthenticated, nil
	}

	expired, err := s.adapter.CheckExpired(ctx)
	switch {
	case err == nil && expired:
		return SessionUnauthenticated, nil
	case err == nil:
		return SessionValid, nil
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, api.ErrValidation):
		return SessionUnauthenticated, nil
	default:
		// Network or server failure: validity is unknown, keep the session.
		s.logger.Warn().Err(err).Msg("could not verify session with backend")
		return SessionOffline, nil
	}
}

// expiredLocally reports whether token carries a JWT exp claim that is
// already in the past. Tokens that do not parse as JWTs, or carry no exp,
// are left for the backend to judge.
func expiredLocally(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// CreateUser implements [SessionService].
func (s *sessionService) CreateUser(ctx context.Context, creds models.Credentials) error {
	token, err := s.adapter.CreateUser(ctx, creds)
	if err != nil {
		return err
	}

	if err = s.localStore.Session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	return nil
}

// Authenticate implements [SessionService].
func (s *sessionService) Authenticate(ctx context.Context, creds models.Credentials) error {
	token, err := s.adapter.Authenticate(ctx, creds)
	if err != nil {
		return err
	}

	if err = s.localStore.Session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	return nil
}

// Logout implements [SessionService]. Cached decks are kept; the next login
// replaces them wholesale on refresh.
func (s *sessionService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.localStore.Session.ClearToken(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// DeleteAccount implements [SessionService]. Local state is wiped only after
// the backend confirms the deletion, mirroring the non-optimistic rule used
// for deck deletion.
func (s *sessionService) DeleteAccount(ctx context.Context) error {
	if err := s.adapter.DeleteUser(ctx); err != nil {
		return err
	}

	if err := s.localStore.Decks.Clear(ctx); err != nil {
		return fmt.Errorf("clear deck cache: %w", err)
	}
	return s.Logout(ctx)
}

// Theme implements [SessionService].
func (s *sessionService) Theme(ctx context.Context) (models.Theme, error) {
	return s.localStore.Session.Theme(ctx)
}

// SetTheme implements [SessionService].
func (s *sessionService) SetTheme(ctx context.Context, theme models.Theme) error {
	return s.localStore.Session.SetTheme(ctx, theme)
}

package store

import (
	"context"
	"fmt"

	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/models"
)

// Persisted key names. These are part of the on-disk format.
const (
	keyToken = "jwt"
	keyTheme = "theme"
)

type sessionRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewSessionRepository constructs the [SessionRepository] backed by kv.
func NewSessionRepository(kv KVStore, log *logger.Logger) SessionRepository {
	return &sessionRepository{kv: kv, logger: log}
}

func (r *sessionRepository) Token(ctx context.Context) (string, error) {
	var token string
	ok, err := r.kv.Get(ctx, keyToken, &token)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (r *sessionRepository) SetToken(ctx context.Context, token string) error {
	if err := r.kv.Set(ctx, keyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func (r *sessionRepository) ClearToken(ctx context.Context) error {
	if err := r.kv.Delete(ctx, keyToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (r *sessionRepository) Theme(ctx context.Context) (models.Theme, error) {
	var theme models.Theme
	ok, err := r.kv.Get(ctx, keyTheme, &theme)
	if err != nil {
		return models.ThemeLight, fmt.Errorf("read theme: %w", err)
	}
	if !ok || (theme != models.ThemeLight && theme != models.ThemeDark) {
		return models.ThemeLight, nil
	}
	return theme, nil
}

func (r *sessionRepository) SetTheme(ctx context.Context, theme models.Theme) error {
	if err := r.kv.Set(ctx, keyTheme, theme); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

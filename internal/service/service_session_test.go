package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hwalton/snapcram/internal/api"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/mock"
	"github.com/hwalton/snapcram/internal/store"
	"github.com/hwalton/snapcram/models"
)

func newTestSessionSvc(ctrl *gomock.Controller) (SessionService, *mock.MockSessionRepository, *mock.MockDeckRepository, *mock.MockServerAdapter) {
	sessionRepo := mock.NewMockSessionRepository(ctrl)
	deckRepo := mock.NewMockDeckRepository(ctrl)
	adapter := mock.NewMockServerAdapter(ctrl)

	storages := &store.Storages{Session: sessionRepo, Decks: deckRepo}
	svc := NewSessionService(storages, adapter, logger.Nop())

	return svc, sessionRepo, deckRepo, adapter
}

// signedToken builds a syntactically valid JWT for the local expiry check.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": "1", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestValidate_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, _ := newTestSessionSvc(ctrl)
	ctx := context.Background()

	sessionRepo.EXPECT().Token(ctx).Return("", nil)

	state, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, SessionUnauthenticated, state, "no token means no network call is made")
}

func TestValidate_LocallyExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	stale := signedToken(t, time.Now().Add(-time.Hour))
	sessionRepo.EXPECT().Token(ctx).Return(stale, nil)
	adapter.EXPECT().SetToken(stale)

	state, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, SessionUnauthenticated, state, "expired exp claim skips the round-trip")
}

func TestValidate_BackendAcceptsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	sessionRepo.EXPECT().Token(ctx).Return(token, nil)
	adapter.EXPECT().SetToken(token)
	adapter.EXPECT().CheckExpired(ctx).Return(false, nil)

	state, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, SessionValid, state)
}

func TestValidate_BackendReportsExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	sessionRepo.EXPECT().Token(ctx).Return(token, nil)
	adapter.EXPECT().SetToken(token)
	adapter.EXPECT().CheckExpired(ctx).Return(true, nil)

	state, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, SessionUnauthenticated, state)
}

func TestValidate_OpaqueTokenGoesToBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	sessionRepo.EXPECT().Token(ctx).Return("not-a-jwt", nil)
	adapter.EXPECT().SetToken("not-a-jwt")
	adapter.EXPECT().CheckExpired(ctx).Return(false, nil)

	state, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, SessionValid, state, "a token that is not a JWT is judged by the backend alone")
}

func TestValidate_BackendUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	sessionRepo.EXPECT().Token(ctx).Return(token, nil)
	adapter.EXPECT().SetToken(token)
	adapter.EXPECT().CheckExpired(ctx).Return(false, api.ErrNetwork)

	state, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, SessionOffline, state, "an outage must not log the user out")
}

func TestValidate_BackendRejectsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	sessionRepo.EXPECT().Token(ctx).Return(token, nil)
	adapter.EXPECT().SetToken(token)
	adapter.EXPECT().CheckExpired(ctx).Return(false, api.ErrUnauthorized)

	state, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, SessionUnauthenticated, state)
}

// ── Authenticate / CreateUser ────────────────────────────────────────────────

func TestAuthenticate_PersistsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "alice@example.com", Password: "secret"}
	gomock.InOrder(
		adapter.EXPECT().Authenticate(ctx, creds).Return("new-token", nil),
		sessionRepo.EXPECT().SetToken(ctx, "new-token").Return(nil),
	)

	require.NoError(t, svc.Authenticate(ctx, creds))
}

func TestAuthenticate_BackendRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "alice@example.com", Password: "wrong"}
	adapter.EXPECT().Authenticate(ctx, creds).Return("", api.ErrValidation)

	err := svc.Authenticate(ctx, creds)
	assert.ErrorIs(t, err, api.ErrValidation)
}

func TestCreateUser_PersistsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "bob@example.com", Password: "secret"}
	gomock.InOrder(
		adapter.EXPECT().CreateUser(ctx, creds).Return("fresh-token", nil),
		sessionRepo.EXPECT().SetToken(ctx, "fresh-token").Return(nil),
	)

	require.NoError(t, svc.CreateUser(ctx, creds))
}

// ── Logout / DeleteAccount ───────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	adapter.EXPECT().SetToken("")
	sessionRepo.EXPECT().ClearToken(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}

func TestDeleteAccount_WipesLocalStateOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, sessionRepo, deckRepo, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		adapter.EXPECT().DeleteUser(ctx).Return(nil),
		deckRepo.EXPECT().Clear(ctx).Return(nil),
		adapter.EXPECT().SetToken(""),
		sessionRepo.EXPECT().ClearToken(ctx).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(ctx))
}

func TestDeleteAccount_KeepsLocalStateOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, adapter := newTestSessionSvc(ctrl)
	ctx := context.Background()

	adapter.EXPECT().DeleteUser(ctx).Return(errors.New("backend down"))

	err := svc.DeleteAccount(ctx)
	assert.Error(t, err, "no local wipe when the backend call fails")
}

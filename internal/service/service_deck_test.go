package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hwalton/snapcram/internal/api"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/mock"
	"github.com/hwalton/snapcram/internal/store"
	"github.com/hwalton/snapcram/models"
)

func newTestDeckSvc(ctrl *gomock.Controller) (DeckService, *mock.MockDeckRepository, *mock.MockServerAdapter) {
	deckRepo := mock.NewMockDeckRepository(ctrl)
	sessionRepo := mock.NewMockSessionRepository(ctrl)
	adapter := mock.NewMockServerAdapter(ctrl)

	storages := &store.Storages{Session: sessionRepo, Decks: deckRepo}
	svc := NewDeckService(storages, adapter, logger.Nop())

	return svc, deckRepo, adapter
}

func deckFixture(id int64, name string) models.Deck {
	return models.Deck{
		ID:   id,
		Name: name,
		Cards: []models.EditedFlashcard{
			{Flashcard: models.Flashcard{Front: "q", Back: "a"}},
		},
	}
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	fresh := []models.Deck{deckFixture(1, "Spanish"), deckFixture(2, "History")}

	adapter.EXPECT().Token().Return("session-token")
	adapter.EXPECT().UserInfo(ctx).Return(models.UserInfoResponse{Decks: fresh}, nil)
	deckRepo.EXPECT().ReplaceAll(ctx, fresh).Return(nil)

	decks, stale, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, fresh, decks)
}

func TestRefresh_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, adapter := newTestDeckSvc(ctrl)

	adapter.EXPECT().Token().Return("")

	_, _, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRefresh_TokenExpiredInsideOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	adapter.EXPECT().Token().Return("stale-token")
	adapter.EXPECT().UserInfo(ctx).Return(models.UserInfoResponse{TokenExpired: true}, nil)

	_, _, err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated,
		"tokenExpired inside an HTTP 200 routes to auth, not to the cache fallback")
}

func TestRefresh_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	adapter.EXPECT().Token().Return("stale-token")
	adapter.EXPECT().UserInfo(ctx).Return(models.UserInfoResponse{}, api.ErrUnauthorized)

	_, _, err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRefresh_NetworkFailureFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	cached := deckFixture(1, "Spanish")

	adapter.EXPECT().Token().Return("session-token")
	// One retry, then the persisted index takes over.
	adapter.EXPECT().UserInfo(ctx).Return(models.UserInfoResponse{}, api.ErrNetwork).Times(2)
	deckRepo.EXPECT().Index(ctx).Return([]int64{1}, nil)
	deckRepo.EXPECT().Deck(ctx, int64(1)).Return(cached, true, nil)

	decks, stale, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Equal(t, []models.Deck{cached}, decks)
}

func TestRefresh_RetrySucceedsOnSecondAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	fresh := []models.Deck{deckFixture(3, "Biology")}

	adapter.EXPECT().Token().Return("session-token")
	gomock.InOrder(
		adapter.EXPECT().UserInfo(ctx).Return(models.UserInfoResponse{}, api.ErrNetwork),
		adapter.EXPECT().UserInfo(ctx).Return(models.UserInfoResponse{Decks: fresh}, nil),
	)
	deckRepo.EXPECT().ReplaceAll(ctx, fresh).Return(nil)

	decks, stale, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, fresh, decks)
}

// ── Decks / Deck ─────────────────────────────────────────────────────────────

func TestDecks_SkipsOrphanedIndexEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, _ := newTestDeckSvc(ctrl)
	ctx := context.Background()

	kept := deckFixture(2, "History")

	deckRepo.EXPECT().Index(ctx).Return([]int64{1, 2}, nil)
	deckRepo.EXPECT().Deck(ctx, int64(1)).Return(models.Deck{}, false, nil)
	deckRepo.EXPECT().Deck(ctx, int64(2)).Return(kept, true, nil)

	decks, err := svc.Decks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Deck{kept}, decks)
}

func TestDeck_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, _ := newTestDeckSvc(ctrl)
	ctx := context.Background()

	want := deckFixture(5, "Chemistry")
	deckRepo.EXPECT().Deck(ctx, int64(5)).Return(want, true, nil)

	got, err := svc.Deck(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeck_CacheMissTriggersRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	want := deckFixture(5, "Chemistry")

	gomock.InOrder(
		deckRepo.EXPECT().Deck(ctx, int64(5)).Return(models.Deck{}, false, nil),
		adapter.EXPECT().Token().Return("session-token"),
		adapter.EXPECT().UserInfo(ctx).Return(models.UserInfoResponse{Decks: []models.Deck{want}}, nil),
		deckRepo.EXPECT().ReplaceAll(ctx, []models.Deck{want}).Return(nil),
		deckRepo.EXPECT().Deck(ctx, int64(5)).Return(want, true, nil),
	)

	got, err := svc.Deck(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Create ───────────────────────────────────────────────────────────────────

func writeImage(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("image"), 0o600))
	return path
}

func TestCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	image := writeImage(t, "notes.jpg")
	created := deckFixture(9, "Physics")

	deckRepo.EXPECT().Index(ctx).Return([]int64{}, nil)
	gomock.InOrder(
		adapter.EXPECT().UploadFiles(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, files []models.FileUpload) ([]string, error) {
				require.Len(t, files, 1)
				assert.Equal(t, "notes.jpg", files[0].Name)
				assert.Equal(t, image, files[0].Path)
				return []string{"f-1"}, nil
			}),
		adapter.EXPECT().CreateDeck(ctx, models.CreateDeckRequest{
			Name: "Physics", NumCards: 10, FileIDs: []string{"f-1"},
		}).Return(created, nil),
		deckRepo.EXPECT().SaveDeck(ctx, created).Return(nil),
		deckRepo.EXPECT().AddToIndex(ctx, int64(9)).Return(nil),
	)

	got, err := svc.Create(ctx, CreateDeckForm{Name: "Physics", NumCards: 10, ImagePaths: []string{image}})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUploadImages_ReturnsFileIDsWithoutCreating(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	image := writeImage(t, "notes.png")
	deckRepo.EXPECT().Index(ctx).Return([]int64{}, nil)
	adapter.EXPECT().UploadFiles(ctx, gomock.Any()).Return([]string{"f-1", "f-2"}, nil)

	fileIDs, err := svc.UploadImages(ctx, CreateDeckForm{Name: "Physics", NumCards: 10, ImagePaths: []string{image}})
	require.NoError(t, err)
	assert.Equal(t, []string{"f-1", "f-2"}, fileIDs)
}

func TestCreateFromFiles_CachesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	created := deckFixture(4, "Biology")
	gomock.InOrder(
		adapter.EXPECT().CreateDeck(ctx, models.CreateDeckRequest{
			Name: "Biology", NumCards: 5, FileIDs: []string{"f-9"},
		}).Return(created, nil),
		deckRepo.EXPECT().SaveDeck(ctx, created).Return(nil),
		deckRepo.EXPECT().AddToIndex(ctx, int64(4)).Return(nil),
	)

	got, err := svc.CreateFromFiles(ctx, CreateDeckForm{Name: "Biology", NumCards: 5}, []string{"f-9"})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_ValidationFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestDeckSvc(ctrl)
	ctx := context.Background()

	cases := []struct {
		name string
		form CreateDeckForm
	}{
		{"missing name", CreateDeckForm{NumCards: 5, ImagePaths: []string{"a.jpg"}}},
		{"zero cards", CreateDeckForm{Name: "X", NumCards: 0, ImagePaths: []string{"a.jpg"}}},
		{"too many cards", CreateDeckForm{Name: "X", NumCards: 21, ImagePaths: []string{"a.jpg"}}},
		{"no images", CreateDeckForm{Name: "X", NumCards: 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.form)
			assert.ErrorIs(t, err, api.ErrValidation)
		})
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, _ := newTestDeckSvc(ctrl)
	ctx := context.Background()

	existing := deckFixture(1, "Spanish")
	deckRepo.EXPECT().Index(ctx).Return([]int64{1}, nil)
	deckRepo.EXPECT().Deck(ctx, int64(1)).Return(existing, true, nil)

	_, err := svc.Create(ctx, CreateDeckForm{Name: "spanish", NumCards: 5, ImagePaths: []string{"a.jpg"}})
	assert.ErrorIs(t, err, ErrDuplicateDeckName)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_BackendFirstThenLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		adapter.EXPECT().DeleteDeck(ctx, int64(4)).Return(nil),
		deckRepo.EXPECT().Remove(ctx, int64(4)).Return(nil),
	)

	require.NoError(t, svc.Delete(ctx, 4))
}

func TestDelete_LocalStateUntouchedOnBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	adapter.EXPECT().DeleteDeck(ctx, int64(4)).Return(api.ErrNetwork)

	err := svc.Delete(ctx, 4)
	assert.ErrorIs(t, err, api.ErrNetwork, "never delete optimistically")
}

// ── RecordAnswer ─────────────────────────────────────────────────────────────

func TestRecordAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, _ := newTestDeckSvc(ctrl)
	ctx := context.Background()

	deck := deckFixture(1, "Spanish")
	deckRepo.EXPECT().Deck(ctx, int64(1)).Return(deck, true, nil)
	deckRepo.EXPECT().SaveDeck(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, saved models.Deck) error {
			require.NotNil(t, saved.Cards[0].Confidence)
			assert.Equal(t, models.ConfidenceMedium, *saved.Cards[0].Confidence)
			return nil
		})

	require.NoError(t, svc.RecordAnswer(ctx, 1, 0, models.ConfidenceMedium))
}

func TestRecordAnswer_IndexOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, _ := newTestDeckSvc(ctrl)
	ctx := context.Background()

	deckRepo.EXPECT().Deck(ctx, int64(1)).Return(deckFixture(1, "Spanish"), true, nil)

	err := svc.RecordAnswer(ctx, 1, 7, models.ConfidenceHigh)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

// ── SaveEdits ────────────────────────────────────────────────────────────────

func TestSaveEdits_OverwritesWithCanonicalCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	local := deckFixture(3, "History")
	flagged := []models.EditedFlashcard{
		{Flashcard: models.Flashcard{Front: "q", Back: "a2"}, Edited: true},
		{Flashcard: models.Flashcard{Front: "dead", Back: "card"}, Deleted: true},
	}
	canonical := models.Deck{ID: 3, Name: "History", Cards: []models.EditedFlashcard{
		{Flashcard: models.Flashcard{Front: "q", Back: "a2"}},
	}}

	gomock.InOrder(
		deckRepo.EXPECT().Deck(ctx, int64(3)).Return(local, true, nil),
		adapter.EXPECT().UpdateDeck(ctx, models.UpdateDeckRequest{ID: 3, Cards: flagged}).Return(canonical, nil),
		deckRepo.EXPECT().SaveDeck(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, saved models.Deck) error {
				assert.Equal(t, canonical.Cards, saved.Cards, "server's reconciled list wins")
				assert.Equal(t, "History", saved.Name)
				return nil
			}),
	)

	require.NoError(t, svc.SaveEdits(ctx, 3, flagged))
}

func TestSaveEdits_KeepsFlaggedEditsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deckRepo, adapter := newTestDeckSvc(ctrl)
	ctx := context.Background()

	local := deckFixture(3, "History")
	flagged := []models.EditedFlashcard{
		{Flashcard: models.Flashcard{Front: "q", Back: "a2"}, Edited: true},
	}
	pushErr := errors.New("backend down")

	gomock.InOrder(
		deckRepo.EXPECT().Deck(ctx, int64(3)).Return(local, true, nil),
		adapter.EXPECT().UpdateDeck(ctx, gomock.Any()).Return(models.Deck{}, pushErr),
		deckRepo.EXPECT().SaveDeck(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, saved models.Deck) error {
				assert.Equal(t, flagged, saved.Cards, "edits survive locally for a manual retry")
				return nil
			}),
	)

	err := svc.SaveEdits(ctx, 3, flagged)
	assert.ErrorIs(t, err, pushErr)
}

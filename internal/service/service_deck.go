package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-retry"

	"github.com/hwalton/snapcram/internal/api"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/store"
	"github.com/hwalton/snapcram/models"
)

// refreshRetryDelay sits between the two attempts Refresh makes before it
// falls back to the persisted cache.
const refreshRetryDelay = 500 * time.Millisecond

// CreateDeckForm is the validated input of the deck creation flow. NumCards
// is capped at 20 by the backend's generation pipeline.
type CreateDeckForm struct {
	Name       string   `validate:"required,max=80"`
	NumCards   int      `validate:"required,min=1,max=20"`
	Prompt     string   `validate:"omitempty,max=500"`
	ImagePaths []string `validate:"required,min=1,dive,required"`
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

type deckService struct {
	localStore *store.Storages
	adapter    api.ServerAdapter
	logger     *logger.Logger
}

// NewDeckService constructs the [DeckService] over the local cache and the
// backend adapter.
func NewDeckService(localStore *store.Storages, serverAdapter api.ServerAdapter, log *logger.Logger) DeckService {
	return &deckService{localStore: localStore, adapter: serverAdapter, logger: log}
}

// Refresh implements [DeckService]. The network call is retried once on a
// transport or server failure; after that the persisted index is served
// instead, flagged stale. Auth failures are never retried and never fall
// back: a tokenExpired=true inside an HTTP 200 counts as an auth failure,
// not a network one.
func (s *deckService) Refresh(ctx context.Context) ([]models.Deck, bool, error) {
	if s.adapter.Token() == "" {
		return nil, false, ErrUnauthenticated
	}

	var info models.UserInfoResponse
	err := retry.Do(ctx, retry.WithMaxRetries(1, retry.NewConstant(refreshRetryDelay)), func(ctx context.Context) error {
		var callErr error
		info, callErr = s.adapter.UserInfo(ctx)
		if errors.Is(callErr, api.ErrNetwork) || errors.Is(callErr, api.ErrServer) {
			return retry.RetryableError(callErr)
		}
		return callErr
	})

	switch {
	case err == nil && info.TokenExpired:
		return nil, false, fmt.Errorf("%w: session expired", ErrUnauthenticated)
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, api.ErrValidation):
		return nil, false, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	case err != nil:
		s.logger.Warn().Err(err).Msg("deck refresh failed, serving cached decks")
		decks, cacheErr := s.Decks(ctx)
		if cacheErr != nil {
			return nil, false, cacheErr
		}
		return decks, true, nil
	}

	if err = s.localStore.Decks.ReplaceAll(ctx, info.Decks); err != nil {
		return nil, false, fmt.Errorf("persist refreshed decks: %w", err)
	}

	return info.Decks, false, nil
}

// Decks implements [DeckService]. An indexed id with no record is skipped
// rather than failing the whole listing.
func (s *deckService) Decks(ctx context.Context) ([]models.Deck, error) {
	ids, err := s.localStore.Decks.Index(ctx)
	if err != nil {
		return nil, err
	}

	decks := make([]models.Deck, 0, len(ids))
	for _, id := range ids {
		deck, ok, err := s.localStore.Decks.Deck(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Warn().Int64("deck_id", id).Msg("indexed deck has no cached record")
			continue
		}
		decks = append(decks, deck)
	}

	return decks, nil
}

// Deck implements [DeckService]. A cache miss triggers one refresh before
// giving up.
func (s *deckService) Deck(ctx context.Context, id int64) (models.Deck, error) {
	deck, ok, err := s.localStore.Decks.Deck(ctx, id)
	if err != nil {
		return models.Deck{}, err
	}
	if ok {
		return deck, nil
	}

	if _, _, err = s.Refresh(ctx); err != nil {
		return models.Deck{}, err
	}

	deck, ok, err = s.localStore.Decks.Deck(ctx, id)
	if err != nil {
		return models.Deck{}, err
	}
	if !ok {
		return models.Deck{}, fmt.Errorf("%w: id %d", ErrDeckNotFound, id)
	}
	return deck, nil
}

// UploadImages implements [DeckService]. The whole form is validated up
// front so a bad name or card count fails before any bytes move. The
// duplicate-name check runs against the local cache only; two devices
// creating the same name concurrently is a known, accepted race.
func (s *deckService) UploadImages(ctx context.Context, form CreateDeckForm) ([]string, error) {
	if err := formValidator.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %s", api.ErrValidation, describeFormError(err))
	}

	cached, err := s.Decks(ctx)
	if err != nil {
		return nil, err
	}
	for _, deck := range cached {
		if strings.EqualFold(deck.Name, form.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDeckName, form.Name)
		}
	}

	return s.adapter.UploadFiles(ctx, fileUploads(form.ImagePaths))
}

// CreateFromFiles implements [DeckService].
func (s *deckService) CreateFromFiles(ctx context.Context, form CreateDeckForm, fileIDs []string) (models.Deck, error) {
	deck, err := s.adapter.CreateDeck(ctx, models.CreateDeckRequest{
		Name:       form.Name,
		NumCards:   form.NumCards,
		UserPrompt: form.Prompt,
		FileIDs:    fileIDs,
	})
	if err != nil {
		return models.Deck{}, err
	}

	// Record before index, so the index never points at a missing record.
	if err = s.localStore.Decks.SaveDeck(ctx, deck); err != nil {
		return models.Deck{}, fmt.Errorf("cache created deck: %w", err)
	}
	if err = s.localStore.Decks.AddToIndex(ctx, deck.ID); err != nil {
		return models.Deck{}, fmt.Errorf("index created deck: %w", err)
	}

	return deck, nil
}

// Create implements [DeckService].
func (s *deckService) Create(ctx context.Context, form CreateDeckForm) (models.Deck, error) {
	fileIDs, err := s.UploadImages(ctx, form)
	if err != nil {
		return models.Deck{}, err
	}
	return s.CreateFromFiles(ctx, form, fileIDs)
}

func fileUploads(paths []string) []models.FileUpload {
	uploads := make([]models.FileUpload, 0, len(paths))
	for _, path := range paths {
		uploads = append(uploads, models.FileUpload{
			Name:     filepath.Base(path),
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
			Path:     path,
		})
	}
	return uploads
}

func describeFormError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Name":
		return "deck name is required and limited to 80 characters"
	case "NumCards":
		return "number of cards must be between 1 and 20"
	case "Prompt":
		return "prompt is limited to 500 characters"
	case "ImagePaths":
		return "at least one image is required"
	default:
		return fe.Error()
	}
}

// Delete implements [DeckService]. Strictly non-optimistic: local state is
// untouched unless the backend confirms the deletion.
func (s *deckService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteDeck(ctx, id); err != nil {
		return err
	}

	if err := s.localStore.Decks.Remove(ctx, id); err != nil {
		return fmt.Errorf("drop deleted deck: %w", err)
	}
	return nil
}

// RecordAnswer implements [DeckService].
func (s *deckService) RecordAnswer(ctx context.Context, deckID int64, cardIndex int, confidence models.Confidence) error {
	deck, ok, err := s.localStore.Decks.Deck(ctx, deckID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrDeckNotFound, deckID)
	}
	if cardIndex < 0 || cardIndex >= len(deck.Cards) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidCard, cardIndex, len(deck.Cards))
	}

	deck.Cards[cardIndex].Confidence = &confidence
	return s.localStore.Decks.SaveDeck(ctx, deck)
}

// SaveEdits implements [DeckService]. On success only the card array is
// replaced with the backend's canonical list; on failure the flagged edits
// are persisted locally so they survive a restart, and the error surfaces
// for a manual retry.
func (s *deckService) SaveEdits(ctx context.Context, deckID int64, cards []models.EditedFlashcard) error {
	deck, ok, err := s.localStore.Decks.Deck(ctx, deckID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrDeckNotFound, deckID)
	}

	canonical, pushErr := s.adapter.UpdateDeck(ctx, models.UpdateDeckRequest{ID: deckID, Cards: cards})
	if pushErr != nil {
		deck.Cards = cards
		if err = s.localStore.Decks.SaveDeck(ctx, deck); err != nil {
			s.logger.Err(err).Int64("deck_id", deckID).Msg("could not keep local edits after failed save")
		}
		return pushErr
	}

	deck.Cards = canonical.Cards
	if err = s.localStore.Decks.SaveDeck(ctx, deck); err != nil {
		return fmt.Errorf("cache saved deck: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/models"
)

// keyIndex is the persisted key holding the ordered deck-ID index.
const keyIndex = "decks"

// deckKey returns the persisted key for a single deck record. Records are
// keyed by the server-issued numeric ID, never by the display name.
func deckKey(id int64) string {
	return "deck:" + strconv.FormatInt(id, 10)
}

type deckRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewDeckRepository constructs the [DeckRepository] backed by kv.
func NewDeckRepository(kv KVStore, log *logger.Logger) DeckRepository {
	return &deckRepository{kv: kv, logger: log}
}

func (r *deckRepository) Index(ctx context.Context) ([]int64, error) {
	var ids []int64
	ok, err := r.kv.Get(ctx, keyIndex, &ids)
	if err != nil {
		return nil, fmt.Errorf("read deck index: %w", err)
	}
	if !ok {
		return []int64{}, nil
	}
	return ids, nil
}

func (r *deckRepository) Deck(ctx context.Context, id int64) (models.Deck, bool, error) {
	var deck models.Deck
	ok, err := r.kv.Get(ctx, deckKey(id), &deck)
	if err != nil {
		return models.Deck{}, false, fmt.Errorf("read deck %d: %w", id, err)
	}
	return deck, ok, nil
}

func (r *deckRepository) SaveDeck(ctx context.Context, deck models.Deck) error {
	if err := r.kv.Set(ctx, deckKey(deck.ID), deck); err != nil {
		return fmt.Errorf("save deck %d: %w", deck.ID, err)
	}
	return nil
}

func (r *deckRepository) AddToIndex(ctx context.Context, id int64) error {
	ids, err := r.Index(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}

	if err := r.kv.Set(ctx, keyIndex, append(ids, id)); err != nil {
		return fmt.Errorf("update deck index: %w", err)
	}
	return nil
}

// ReplaceAll upserts every record first and replaces the index last, so a
// failure part-way through leaves the old index pointing at records that
// still exist.
func (r *deckRepository) ReplaceAll(ctx context.Context, decks []models.Deck) error {
	ids := make([]int64, 0, len(decks))
	for _, deck := range decks {
		if err := r.SaveDeck(ctx, deck); err != nil {
			return err
		}
		ids = append(ids, deck.ID)
	}

	if err := r.kv.Set(ctx, keyIndex, ids); err != nil {
		return fmt.Errorf("replace deck index: %w", err)
	}
	return nil
}

// Remove drops id from the index before deleting the record: the reverse
// order could leave an index entry with no record behind it.
func (r *deckRepository) Remove(ctx context.Context, id int64) error {
	ids, err := r.Index(ctx)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(ids, func(v int64) bool { return v == id })
	if err := r.kv.Set(ctx, keyIndex, kept); err != nil {
		return fmt.Errorf("update deck index: %w", err)
	}

	if err := r.kv.Delete(ctx, deckKey(id)); err != nil {
		return fmt.Errorf("delete deck %d: %w", id, err)
	}
	return nil
}

func (r *deckRepository) Clear(ctx context.Context) error {
	ids, err := r.Index(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := r.kv.Delete(ctx, deckKey(id)); err != nil {
			return err
		}
	}

	if err := r.kv.Delete(ctx, keyIndex); err != nil {
		return fmt.Errorf("clear deck index: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/models"
)

// memKV is an unencrypted in-memory KVStore for repository tests. It routes
// values through JSON the same way the encrypted store does.
type memKV struct {
	values map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{values: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string, target any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, target)
}

func (m *memKV) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// ── Session repository ───────────────────────────────────────────────────────

func TestSessionRepository_TokenRoundTrip(t *testing.T) {
	repo := NewSessionRepository(newMemKV(), logger.Nop())
	ctx := context.Background()

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store should hold no token")

	require.NoError(t, repo.SetToken(ctx, "eyJhbGciOiJIUzI1NiJ9.e30.sig"))

	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.e30.sig", token)

	require.NoError(t, repo.ClearToken(ctx))

	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSessionRepository_ThemeDefaultsToLight(t *testing.T) {
	kv := newMemKV()
	repo := NewSessionRepository(kv, logger.Nop())
	ctx := context.Background()

	theme, err := repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)

	require.NoError(t, repo.SetTheme(ctx, models.ThemeDark))
	theme, err = repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)

	require.NoError(t, kv.Set(ctx, keyTheme, "sepia"))
	theme, err = repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme, "unknown stored value falls back to light")
}

// ── Deck repository ──────────────────────────────────────────────────────────

func testDeck(id int64, name string) models.Deck {
	return models.Deck{
		ID:   id,
		Name: name,
		Cards: []models.EditedFlashcard{
			{Flashcard: models.Flashcard{Front: "front", Back: "back"}},
		},
	}
}

func TestDeckRepository_IndexEmptyOnFreshStore(t *testing.T) {
	repo := NewDeckRepository(newMemKV(), logger.Nop())

	ids, err := repo.Index(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)
}

func TestDeckRepository_SaveAndIndex(t *testing.T) {
	repo := NewDeckRepository(newMemKV(), logger.Nop())
	ctx := context.Background()

	deck := testDeck(42, "Biology")
	require.NoError(t, repo.SaveDeck(ctx, deck))
	require.NoError(t, repo.AddToIndex(ctx, 42))

	ids, err := repo.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, ids)

	got, ok, err := repo.Deck(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, deck, got)
}

func TestDeckRepository_AddToIndexIsIdempotent(t *testing.T) {
	repo := NewDeckRepository(newMemKV(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.AddToIndex(ctx, 1))
	require.NoError(t, repo.AddToIndex(ctx, 1))
	require.NoError(t, repo.AddToIndex(ctx, 2))

	ids, err := repo.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestDeckRepository_DeckMissing(t *testing.T) {
	repo := NewDeckRepository(newMemKV(), logger.Nop())

	_, ok, err := repo.Deck(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeckRepository_ReplaceAll(t *testing.T) {
	repo := NewDeckRepository(newMemKV(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SaveDeck(ctx, testDeck(1, "Old")))
	require.NoError(t, repo.AddToIndex(ctx, 1))

	fresh := []models.Deck{testDeck(2, "Spanish"), testDeck(3, "History")}
	require.NoError(t, repo.ReplaceAll(ctx, fresh))

	ids, err := repo.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids, "index holds exactly the replaced decks")

	for _, want := range fresh {
		got, ok, err := repo.Deck(ctx, want.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestDeckRepository_Remove(t *testing.T) {
	repo := NewDeckRepository(newMemKV(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.Deck{testDeck(1, "A"), testDeck(2, "B")}))
	require.NoError(t, repo.Remove(ctx, 1))

	ids, err := repo.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	_, ok, err := repo.Deck(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok, "removed deck record should be gone")
}

func TestDeckRepository_Clear(t *testing.T) {
	kv := newMemKV()
	repo := NewDeckRepository(kv, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.Deck{testDeck(1, "A"), testDeck(2, "B")}))
	require.NoError(t, repo.Clear(ctx))

	ids, err := repo.Index(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Empty(t, kv.values, "no orphaned records after clear")
}

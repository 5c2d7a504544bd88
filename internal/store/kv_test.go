package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwalton/snapcram/internal/crypto"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/models"
)

const testPassphrase = "hunter2"

func newTestKV(t *testing.T) (KVStore, sqlmock.Sqlmock, []byte) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	cipher := crypto.NewCipher()
	salt, err := cipher.GenerateSalt()
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value").
		WithArgs(saltMetaKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(salt))

	db := &DB{DB: conn, logger: logger.Nop()}
	kv, err := NewEncryptedKV(context.Background(), db, cipher, testPassphrase, logger.Nop())
	require.NoError(t, err)

	return kv, mock, cipher.DeriveKey(testPassphrase, salt)
}

// ── Salt bootstrap ───────────────────────────────────────────────────────────

func TestNewEncryptedKV_SaltReadError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(saltMetaKey).
		WillReturnError(errors.New("sql: no rows in result set"))

	db := &DB{DB: conn, logger: logger.Nop()}
	_, err = NewEncryptedKV(context.Background(), db, crypto.NewCipher(), testPassphrase, logger.Nop())
	assert.Error(t, err)
}

func TestNewEncryptedKV_PersistsFreshSalt(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(saltMetaKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectExec("INSERT INTO meta").
		WithArgs(saltMetaKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	db := &DB{DB: conn, logger: logger.Nop()}
	kv, err := NewEncryptedKV(context.Background(), db, crypto.NewCipher(), testPassphrase, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, kv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestEncryptedKV_Get(t *testing.T) {
	kv, mock, key := newTestKV(t)

	want := models.Deck{ID: 7, Name: "Spanish"}
	blob, err := crypto.NewCipher().Seal(want, key)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value").
		WithArgs("deck:7").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(blob))

	var got models.Deck
	ok, err := kv.Get(context.Background(), "deck:7", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestEncryptedKV_GetMissingKey(t *testing.T) {
	kv, mock, _ := newTestKV(t)

	mock.ExpectQuery("SELECT value").
		WithArgs("absent").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	var got string
	ok, err := kv.Get(context.Background(), "absent", &got)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEncryptedKV_GetCorruptBlob(t *testing.T) {
	kv, mock, _ := newTestKV(t)

	mock.ExpectQuery("SELECT value").
		WithArgs("jwt").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("not a sealed blob")))

	var got string
	_, err := kv.Get(context.Background(), "jwt", &got)
	assert.ErrorIs(t, err, ErrCorruptValue)
}

func TestEncryptedKV_GetQueryError(t *testing.T) {
	kv, mock, _ := newTestKV(t)

	mock.ExpectQuery("SELECT value").
		WithArgs("jwt").
		WillReturnError(errors.New("disk I/O error"))

	var got string
	_, err := kv.Get(context.Background(), "jwt", &got)
	assert.ErrorIs(t, err, ErrStorage)
}

// ── Set / Delete ─────────────────────────────────────────────────────────────

func TestEncryptedKV_Set(t *testing.T) {
	kv, mock, _ := newTestKV(t)

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("jwt", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Set(context.Background(), "jwt", "token-value")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncryptedKV_SetWriteError(t *testing.T) {
	kv, mock, _ := newTestKV(t)

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("jwt", sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))

	err := kv.Set(context.Background(), "jwt", "token-value")
	assert.ErrorIs(t, err, ErrStorage)
}

func TestEncryptedKV_Delete(t *testing.T) {
	kv, mock, _ := newTestKV(t)

	mock.ExpectExec("DELETE FROM kv").
		WithArgs("jwt").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := kv.Delete(context.Background(), "jwt")
	assert.NoError(t, err)
}

func TestEncryptedKV_DeleteMissingKeyIsNoOp(t *testing.T) {
	kv, mock, _ := newTestKV(t)

	mock.ExpectExec("DELETE FROM kv").
		WithArgs("absent").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := kv.Delete(context.Background(), "absent")
	assert.NoError(t, err)
}

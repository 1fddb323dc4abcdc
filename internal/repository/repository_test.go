package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/storage"
)

func newMockRepo(t *testing.T) (*GifRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, _ := zap.NewDevelopment()
	return CreateGifRepository(db, logger), mock
}

func TestGetUserGifsEnsuresUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO catalog_users").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows([]string{"user_id", "id", "title", "url", "thumbnail_url", "tags"}).
		AddRow("alice", "g1", "Happy", "/static/gifs/a.gif", "/static/gifs/thumbnails/a.gif", []byte(`["happy","smile"]`))
	mock.ExpectQuery("SELECT user_id, id, title, url, thumbnail_url, tags FROM gif_records").
		WithArgs("alice").
		WillReturnRows(rows)

	gifs, err := repo.GetUserGifs(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, gifs, 1)
	assert.Equal(t, []string{"happy", "smile"}, gifs[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendInsertsRecord(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO catalog_users").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO gif_records").
		WithArgs("alice", "g1", "Happy", "", "", []byte(`["happy"]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, err := repo.Append(context.Background(), "alice", storage.GifRecord{
		ID:    "g1",
		Title: "Happy",
		Tags:  []string{"happy"},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("DELETE FROM gif_records").
		WithArgs("alice", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "id", "title", "url", "thumbnail_url", "tags"}))

	_, err := repo.Delete(context.Background(), "alice", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReturnsRemovedRecord(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"user_id", "id", "title", "url", "thumbnail_url", "tags"}).
		AddRow("alice", "g1", "Happy", "", "", []byte(`["happy"]`))
	mock.ExpectQuery("DELETE FROM gif_records").
		WithArgs("alice", "g1").
		WillReturnRows(rows)

	removed, err := repo.Delete(context.Background(), "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, "Happy", removed.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chlee-dev/gif-catalog/internal/storage"
)

func TestMemoryCatalog_AppendAndGet(t *testing.T) {
	mem, _ := storage.CreateMemoryCatalog()

	record := storage.GifRecord{
		ID:    "g1",
		Title: "Happy",
		Tags:  []string{"happy", "smile"},
	}

	stored, err := mem.Append(context.Background(), "alice", record)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.UserID)

	gifs, err := mem.GetUserGifs(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, gifs, 1)
	assert.Equal(t, "g1", gifs[0].ID)
}

func TestMemoryCatalog_GetCreatesUser(t *testing.T) {
	mem, _ := storage.CreateMemoryCatalog()

	gifs, err := mem.GetUserGifs(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Empty(t, gifs)

	catalog, err := mem.Load(context.Background())
	require.NoError(t, err)
	_, ok := catalog["fresh"]
	assert.True(t, ok)
}

func TestMemoryCatalog_Delete(t *testing.T) {
	mem, _ := storage.CreateMemoryCatalog()

	_, err := mem.Append(context.Background(), "alice", storage.GifRecord{ID: "g1", Title: "Happy", Tags: []string{"happy"}})
	require.NoError(t, err)

	removed, err := mem.Delete(context.Background(), "alice", "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", removed.ID)

	_, err = mem.Delete(context.Background(), "alice", "g1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryCatalog_LoadReturnsCopy(t *testing.T) {
	mem, _ := storage.CreateMemoryCatalog()

	_, err := mem.Append(context.Background(), "alice", storage.GifRecord{ID: "g1", Title: "Happy", Tags: []string{"happy"}})
	require.NoError(t, err)

	catalog, err := mem.Load(context.Background())
	require.NoError(t, err)
	catalog["alice"][0].Title = "mutated"

	gifs, err := mem.GetUserGifs(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Happy", gifs[0].Title)
}

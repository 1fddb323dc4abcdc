package service_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/asset"
	"github.com/chlee-dev/gif-catalog/internal/models"
	"github.com/chlee-dev/gif-catalog/internal/storage"
)

var gifPayload = base64.StdEncoding.EncodeToString([]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"))

func newTestService(t *testing.T) (*service.GifService, string) {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	mem, _ := storage.CreateMemoryCatalog()

	gifDir := t.TempDir()
	thumbDir := filepath.Join(gifDir, "thumbnails")

	return service.NewGif(mem, asset.NewFSWriter(logger), logger, gifDir, thumbDir), gifDir
}

func TestCreateGifValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  models.CreateGifRequest
		want string
	}{
		{
			name: "missing title",
			req:  models.CreateGifRequest{Tags: []string{"x"}},
			want: "missing required field: title",
		},
		{
			name: "missing tags",
			req:  models.CreateGifRequest{Title: "Happy"},
			want: "missing required field: tags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGif(context.Background(), "alice", tt.req)
			require.ErrorIs(t, err, service.ErrValidation)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestCreateGifGeneratesID(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		Title: "Happy",
		Tags:  []string{"happy", "smile"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "alice", record.UserID)
}

func TestCreateGifOwnerOverridesPayloadUser(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		Title:  "Happy",
		Tags:   []string{"happy"},
		UserID: "mallory",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", record.UserID)
}

func TestCreateGifWithInlinePayload(t *testing.T) {
	svc, gifDir := newTestService(t)

	record, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		ID:         "g1",
		Title:      "Happy",
		Tags:       []string{"happy"},
		Base64Data: gifPayload,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^/static/gifs/alice_g1_\d{8}_\d{6}\.gif$`, record.URL)
	assert.Regexp(t, `^/static/gifs/thumbnails/alice_g1_\d{8}_\d{6}_thumb\.gif$`, record.ThumbnailURL)

	// Primary and thumbnail hold identical bytes.
	primary, err := os.ReadFile(filepath.Join(gifDir, filepath.Base(record.URL)))
	require.NoError(t, err)
	thumb, err := os.ReadFile(filepath.Join(gifDir, "thumbnails", filepath.Base(record.ThumbnailURL)))
	require.NoError(t, err)
	assert.Equal(t, primary, thumb)
}

func TestCreateGifBadPayloadLeavesCatalogUntouched(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		Title:      "Happy",
		Tags:       []string{"happy"},
		Base64Data: "%%%not-base64%%%",
	})
	require.ErrorIs(t, err, service.ErrAssetWrite)

	gifs, err := svc.GetUserGifs(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, gifs)
}

func TestCreateGifExternalURL(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		Title:        "Remote",
		Tags:         []string{"remote"},
		URL:          "https://example.com/a.gif",
		ThumbnailURL: "https://example.com/a_thumb.gif",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.gif", record.URL)
	assert.Equal(t, "https://example.com/a_thumb.gif", record.ThumbnailURL)
}

func TestDeleteGif(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		Title: "Happy",
		Tags:  []string{"happy"},
	})
	require.NoError(t, err)

	removed, err := svc.DeleteGif(context.Background(), "alice", record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, removed.ID)

	_, err = svc.DeleteGif(context.Background(), "alice", record.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteGifCrossUserIsolation(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.CreateGif(context.Background(), "u2", models.CreateGifRequest{
		ID:    "shared",
		Title: "Wave",
		Tags:  []string{"wave"},
	})
	require.NoError(t, err)

	_, err = svc.DeleteGif(context.Background(), "u1", record.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	gifs, err := svc.GetUserGifs(context.Background(), "u2")
	require.NoError(t, err)
	assert.Len(t, gifs, 1)
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		ID:    "g1",
		Title: "Happy",
		Tags:  []string{"happy", "smile"},
	})
	require.NoError(t, err)
	_, err = svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		ID:    "g2",
		Title: "Thumbs Up",
		Tags:  []string{"thumbs", "approve"},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns everything", query: "", wantIDs: []string{"g1", "g2"}},
		{name: "case-insensitive tag match", query: "SMI", wantIDs: []string{"g1"}},
		{name: "title match", query: "thumbs", wantIDs: []string{"g2"}},
		{name: "substring of tag", query: "rov", wantIDs: []string{"g2"}},
		{name: "no match", query: "zzz", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), "alice", tt.query)
			require.NoError(t, err)

			ids := make([]string, 0)
			for _, gif := range got {
				ids = append(ids, gif.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchEmptyQueryMatchesList(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateGif(context.Background(), "alice", models.CreateGifRequest{
		ID:    "g1",
		Title: "Happy",
		Tags:  []string{"happy"},
	})
	require.NoError(t, err)

	listed, err := svc.GetUserGifs(context.Background(), "alice")
	require.NoError(t, err)
	searched, err := svc.Search(context.Background(), "alice", "")
	require.NoError(t, err)
	assert.Equal(t, listed, searched)
}

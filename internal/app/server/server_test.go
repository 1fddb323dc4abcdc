package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/server"
	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/asset"
	"github.com/chlee-dev/gif-catalog/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	mem, _ := storage.CreateMemoryCatalog()

	gifDir := t.TempDir()
	svc := service.NewGif(mem, asset.NewFSWriter(logger), logger, gifDir, filepath.Join(gifDir, "thumbnails"))

	ts := httptest.NewServer(server.Init(logger, svc, service.NewAuth(), gifDir))
	t.Cleanup(ts.Close)

	return ts
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	return resp, payload
}

func TestCreateSearchDeleteFlow(t *testing.T) {
	ts := newTestServer(t)

	// Create via the query-parameter family.
	resp, created := doJSON(t, http.MethodPost, ts.URL+"/gifs?userId=alice",
		`{"title":"Happy","tags":["happy","smile"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, created["success"])

	record := created["data"].(map[string]any)
	gifID := record["id"].(string)
	require.NotEmpty(t, gifID)
	assert.Equal(t, "alice", record["userId"])

	// Case-insensitive substring search finds it.
	resp, searched := doJSON(t, http.MethodGet, ts.URL+"/gifs/search?userId=alice&q=SMI", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), searched["count"])

	// Delete it, then the listing is empty again.
	resp, deleted := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/gifs/%s?userId=alice", ts.URL, gifID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, deleted["success"])

	resp, listed := doJSON(t, http.MethodGet, ts.URL+"/gifs?userId=alice", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), listed["count"])
	assert.Equal(t, []any{}, listed["data"])
}

func TestUserPathFamilyMatchesQueryFamily(t *testing.T) {
	ts := newTestServer(t)

	resp, created := doJSON(t, http.MethodPost, ts.URL+"/users/bob/gifs",
		`{"title":"Clap","tags":["clap"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, created["success"])

	// The same record is visible through the other family.
	resp, listed := doJSON(t, http.MethodGet, ts.URL+"/gifs?userId=bob", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), listed["count"])
}

func TestListUnknownUserReturnsEmpty(t *testing.T) {
	ts := newTestServer(t)

	resp, listed := doJSON(t, http.MethodGet, ts.URL+"/users/nobody/gifs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, listed["success"])
	assert.Equal(t, float64(0), listed["count"])
}

func TestDeleteIsScopedToUser(t *testing.T) {
	ts := newTestServer(t)

	_, created := doJSON(t, http.MethodPost, ts.URL+"/users/u2/gifs",
		`{"id":"shared","title":"Wave","tags":["wave"]}`)
	require.Equal(t, true, created["success"])

	resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/users/u1/gifs/shared", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, listed := doJSON(t, http.MethodGet, ts.URL+"/users/u2/gifs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), listed["count"])
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, health := doJSON(t, http.MethodGet, ts.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, health["success"])
}

func TestPingWithoutDatabase(t *testing.T) {
	ts := newTestServer(t)

	// The in-memory store has no connection to report on.
	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMissingUserIsRejected(t *testing.T) {
	ts := newTestServer(t)

	resp, payload := doJSON(t, http.MethodGet, ts.URL+"/gifs", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

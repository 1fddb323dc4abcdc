package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/asset"
	"github.com/chlee-dev/gif-catalog/internal/models"
	"github.com/chlee-dev/gif-catalog/internal/storage"
	"github.com/chlee-dev/gif-catalog/internal/worker"
)

// ErrValidation is returned when a create request misses a required
// field. The offending field name is appended to the message.
var ErrValidation = errors.New("missing required field")

// ErrAssetWrite is returned when an inline payload cannot be decoded or
// written; no catalog mutation happens in that case.
var ErrAssetWrite = errors.New("cannot store gif asset")

const (
	staticGifPrefix   = "/static/gifs/"
	staticThumbPrefix = "/static/gifs/thumbnails/"
)

type GifService struct {
	repository Storage
	assets     asset.Writer
	logger     *zap.Logger
	gifDir     string
	thumbDir   string
	ch         chan<- string
}

func NewGif(repo Storage, assets asset.Writer, logger *zap.Logger, gifDir, thumbDir string) *GifService {
	cleanup := worker.NewCleanupWorker(logger, assets)
	in := cleanup.GetInChannel()

	service := GifService{
		repository: repo,
		assets:     assets,
		logger:     logger,
		gifDir:     gifDir,
		thumbDir:   thumbDir,
		ch:         in,
	}

	go cleanup.FlushPaths()

	return &service
}

func (s *GifService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// GetUserGifs returns the user's records in upload order, creating the
// user's catalog entry when it does not exist yet.
func (s *GifService) GetUserGifs(ctx context.Context, userID string) ([]storage.GifRecord, error) {
	return s.repository.GetUserGifs(ctx, userID)
}

// CreateGif validates the request, stores the inline payload when one
// is present and appends the record to the user's catalog. The record
// is not appended if the asset files cannot be written.
func (s *GifService) CreateGif(ctx context.Context, userID string, req models.CreateGifRequest) (*storage.GifRecord, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title", ErrValidation)
	}
	if req.Tags == nil {
		return nil, fmt.Errorf("%w: tags", ErrValidation)
	}

	id := NewRecordID(req.ID)
	url := req.URL
	thumbnailURL := req.ThumbnailURL

	if req.Base64Data != "" {
		filename, thumbName := AssetFilenames(userID, id, time.Now())

		err := s.assets.WriteBase64(req.Base64Data,
			filepath.Join(s.gifDir, filename),
			filepath.Join(s.thumbDir, thumbName),
		)
		if err != nil {
			s.logger.Error("asset write failed", zap.String("userID", userID), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrAssetWrite, err)
		}

		url = staticGifPrefix + filename
		thumbnailURL = staticThumbPrefix + thumbName
	}

	record := storage.GifRecord{
		ID:           id,
		Title:        req.Title,
		URL:          url,
		ThumbnailURL: thumbnailURL,
		Tags:         req.Tags,
		UserID:       userID,
	}

	return s.repository.Append(ctx, userID, record)
}

// DeleteGif removes the record from the user's catalog and queues its
// asset files for best-effort removal. Cleanup failures never undo or
// block the catalog mutation.
func (s *GifService) DeleteGif(ctx context.Context, userID string, gifID string) (*storage.GifRecord, error) {
	removed, err := s.repository.Delete(ctx, userID, gifID)
	if err != nil {
		return nil, err
	}

	for _, p := range s.assetPaths(removed) {
		s.ch <- p
	}

	return removed, nil
}

// assetPaths maps a record's public URLs back to local file paths.
// Externally hosted URLs produce nothing.
func (s *GifService) assetPaths(record *storage.GifRecord) []string {
	var paths []string

	if rest, ok := strings.CutPrefix(record.ThumbnailURL, staticThumbPrefix); ok {
		paths = append(paths, filepath.Join(s.thumbDir, rest))
	}
	if rest, ok := strings.CutPrefix(record.URL, staticGifPrefix); ok && !strings.HasPrefix(record.URL, staticThumbPrefix) {
		paths = append(paths, filepath.Join(s.gifDir, rest))
	}

	return paths
}

// Search filters the user's records by case-insensitive substring match
// against the title or any tag. An empty query returns everything.
func (s *GifService) Search(ctx context.Context, userID string, query string) ([]storage.GifRecord, error) {
	gifs, err := s.repository.GetUserGifs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return gifs, nil
	}

	q := strings.ToLower(query)
	filtered := make([]storage.GifRecord, 0)
	for _, gif := range gifs {
		if matches(gif, q) {
			filtered = append(filtered, gif)
		}
	}

	return filtered, nil
}

func matches(gif storage.GifRecord, q string) bool {
	if strings.Contains(strings.ToLower(gif.Title), q) {
		return true
	}
	for _, tag := range gif.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

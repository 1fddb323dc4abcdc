package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileCatalog persists the whole catalog as one pretty-printed JSON
// document. Every mutating call rereads the document, applies the
// change in memory and rewrites the file. A single mutex guards the
// full load-mutate-persist cycle so overlapping calls cannot lose
// updates.
type FileCatalog struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewFileCatalog opens the catalog file at path, creating it with an
// empty mapping if it does not exist yet.
func NewFileCatalog(path string, logger *zap.Logger) (*FileCatalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	fc := &FileCatalog{
		path:   path,
		logger: logger,
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := fc.persist(Catalog{}); err != nil {
			return nil, err
		}
	}

	return fc, nil
}

func (fc *FileCatalog) load() (Catalog, error) {
	data, err := os.ReadFile(fc.path)
	if errors.Is(err, os.ErrNotExist) {
		// Recreate if the file disappeared after startup.
		if err := fc.persist(Catalog{}); err != nil {
			return nil, err
		}
		return Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	catalog := Catalog{}
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return catalog, nil
}

func (fc *FileCatalog) persist(catalog Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.WriteFile(fc.path, append(data, '\n'), 0660); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}

	return nil
}

// Load returns the full user-to-records mapping.
func (fc *FileCatalog) Load(ctx context.Context) (Catalog, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	return fc.load()
}

// GetUserGifs returns the records of one user in upload order. A user
// never seen before gets an empty collection which is persisted right
// away, so listing alone is enough to materialize the user entry.
func (fc *FileCatalog) GetUserGifs(ctx context.Context, userID string) ([]GifRecord, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	catalog, err := fc.load()
	if err != nil {
		return nil, err
	}

	gifs, ok := catalog[userID]
	if !ok {
		catalog[userID] = []GifRecord{}
		if err := fc.persist(catalog); err != nil {
			return nil, err
		}
		fc.logger.Info("initialized catalog entry for new user", zap.String("userID", userID))
		return []GifRecord{}, nil
	}

	return gifs, nil
}

// Append adds a record to the end of the user's collection and rewrites
// the document. The stored record always carries the owning user's id,
// whatever the caller put in the payload.
func (fc *FileCatalog) Append(ctx context.Context, userID string, record GifRecord) (*GifRecord, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	catalog, err := fc.load()
	if err != nil {
		return nil, err
	}

	record.UserID = userID
	catalog[userID] = append(catalog[userID], record)

	if err := fc.persist(catalog); err != nil {
		return nil, err
	}

	return &record, nil
}

// Delete removes the first record with the given id from the user's
// collection. Records with the same id under a different user are not
// considered.
func (fc *FileCatalog) Delete(ctx context.Context, userID string, gifID string) (*GifRecord, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	catalog, err := fc.load()
	if err != nil {
		return nil, err
	}

	gifs := catalog[userID]
	for i, gif := range gifs {
		if gif.ID == gifID {
			removed := gif
			catalog[userID] = append(gifs[:i:i], gifs[i+1:]...)
			if err := fc.persist(catalog); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}

	return nil, ErrNotFound
}

func (fc *FileCatalog) PingContext(ctx context.Context) error {
	_, err := os.Stat(fc.path)
	return err
}

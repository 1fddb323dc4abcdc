package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryCatalog keeps the catalog in process memory only. Same
// semantics as FileCatalog minus durability; used when no file path or
// database is configured and throughout the tests.
type MemoryCatalog struct {
	mu      sync.Mutex
	catalog Catalog
}

func CreateMemoryCatalog() (*MemoryCatalog, error) {
	return &MemoryCatalog{
		catalog: Catalog{},
	}, nil
}

func (m *MemoryCatalog) Load(ctx context.Context) (Catalog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := Catalog{}
	for userID, gifs := range m.catalog {
		out[userID] = append([]GifRecord{}, gifs...)
	}
	return out, nil
}

func (m *MemoryCatalog) GetUserGifs(ctx context.Context, userID string) ([]GifRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gifs, ok := m.catalog[userID]
	if !ok {
		m.catalog[userID] = []GifRecord{}
		return []GifRecord{}, nil
	}

	return append([]GifRecord{}, gifs...), nil
}

func (m *MemoryCatalog) Append(ctx context.Context, userID string, record GifRecord) (*GifRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record.UserID = userID
	m.catalog[userID] = append(m.catalog[userID], record)

	return &record, nil
}

func (m *MemoryCatalog) Delete(ctx context.Context, userID string, gifID string) (*GifRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gifs := m.catalog[userID]
	for i, gif := range gifs {
		if gif.ID == gifID {
			removed := gif
			m.catalog[userID] = append(gifs[:i:i], gifs[i+1:]...)
			return &removed, nil
		}
	}

	return nil, ErrNotFound
}

func (m *MemoryCatalog) PingContext(ctx context.Context) error {
	return errors.ErrUnsupported
}

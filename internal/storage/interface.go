package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a GIF id does not exist within the
// requested user's collection.
var ErrNotFound = errors.New("gif not found")

type CatalogI interface {
	Load(context.Context) (Catalog, error)
	GetUserGifs(context.Context, string) ([]GifRecord, error)
	Append(context.Context, string, GifRecord) (*GifRecord, error)
	Delete(context.Context, string, string) (*GifRecord, error)
	PingContext(context.Context) error
}

package service

import (
	"context"

	"github.com/chlee-dev/gif-catalog/internal/models"
	"github.com/chlee-dev/gif-catalog/internal/storage"
)

type Storage interface {
	Load(context.Context) (storage.Catalog, error)
	GetUserGifs(context.Context, string) ([]storage.GifRecord, error)
	Append(context.Context, string, storage.GifRecord) (*storage.GifRecord, error)
	Delete(context.Context, string, string) (*storage.GifRecord, error)
	PingContext(context.Context) error
}

// GifServiceIface is the surface the HTTP handlers program against.
type GifServiceIface interface {
	GetUserGifs(ctx context.Context, userID string) ([]storage.GifRecord, error)
	CreateGif(ctx context.Context, userID string, req models.CreateGifRequest) (*storage.GifRecord, error)
	DeleteGif(ctx context.Context, userID string, gifID string) (*storage.GifRecord, error)
	Search(ctx context.Context, userID string, query string) ([]storage.GifRecord, error)
	PingContext(ctx context.Context) error
}

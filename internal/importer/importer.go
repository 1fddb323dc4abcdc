// Package importer bulk-loads a directory of GIF files into a user's
// catalog. It produces entries structurally identical to those created
// over HTTP, so both paths stay interchangeable.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/asset"
	"github.com/chlee-dev/gif-catalog/internal/storage"
)

// importTags mark bulk-loaded records.
var importTags = []string{"uploaded", "custom"}

const timestampLayout = "20060102_150405"

type Importer struct {
	store    service.Storage
	assets   asset.Writer
	logger   *zap.Logger
	gifDir   string
	thumbDir string
}

func New(store service.Storage, assets asset.Writer, logger *zap.Logger, gifDir, thumbDir string) *Importer {
	return &Importer{
		store:    store,
		assets:   assets,
		logger:   logger,
		gifDir:   gifDir,
		thumbDir: thumbDir,
	}
}

// Run imports every *.gif file found in srcDir into the user's catalog
// and returns how many records were added. Record ids follow the
// {basename}_{timestamp} scheme and filenames the {userID}_{id}.gif
// scheme of the import path.
func (i *Importer) Run(ctx context.Context, userID, srcDir string) (int, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return 0, fmt.Errorf("gif source directory %q does not exist: %w", srcDir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("gif source path %q is not a directory", srcDir)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, fmt.Errorf("read gif source directory: %w", err)
	}

	// Materializes the user entry even when the directory holds no gifs.
	if _, err := i.store.GetUserGifs(ctx, userID); err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".gif") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return count, fmt.Errorf("read gif %q: %w", entry.Name(), err)
		}

		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		id := fmt.Sprintf("%s_%s", base, time.Now().Format(timestampLayout))
		filename := fmt.Sprintf("%s_%s.gif", userID, id)

		err = i.assets.Write(data,
			filepath.Join(i.gifDir, filename),
			filepath.Join(i.thumbDir, filename),
		)
		if err != nil {
			return count, err
		}

		_, err = i.store.Append(ctx, userID, storage.GifRecord{
			ID:           id,
			Title:        base,
			URL:          "/static/gifs/" + filename,
			ThumbnailURL: "/static/gifs/thumbnails/" + filename,
			Tags:         importTags,
			UserID:       userID,
		})
		if err != nil {
			return count, err
		}

		i.logger.Info("imported gif", zap.String("userID", userID), zap.String("file", entry.Name()))
		count++
	}

	return count, nil
}

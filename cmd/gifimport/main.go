// Command gifimport bulk-loads a directory of GIF files into a user's
// catalog without going through the HTTP server.
//
// Usage:
//
//	gifimport [flags] <userID> [sourceDir]
//
// When sourceDir is omitted, a directory named after the user in the
// current working directory is used.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/asset"
	"github.com/chlee-dev/gif-catalog/internal/config"
	"github.com/chlee-dev/gif-catalog/internal/importer"
	"github.com/chlee-dev/gif-catalog/internal/logger"
	"github.com/chlee-dev/gif-catalog/internal/repository"
	"github.com/chlee-dev/gif-catalog/internal/storage"
)

func main() {
	options := config.Parse()

	userID := flag.Arg(0)
	if userID == "" {
		fmt.Fprintln(os.Stderr, "usage: gifimport [flags] <userID> [sourceDir]")
		os.Exit(2)
	}

	srcDir := flag.Arg(1)
	if srcDir == "" {
		srcDir = userID
	}

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	var s service.Storage
	var err error

	if options.DatabaseDSN != "" {
		zapLogger.Info("using db", zap.String("dbName", options.DatabaseDSN))
		db := repository.InitDB(options.DatabaseDSN, zapLogger)
		defer db.Close()
		s = repository.CreateGifRepository(db, zapLogger)
	} else {
		zapLogger.Info("using catalog file", zap.String("catalogPath", options.CatalogPath))
		s, err = storage.NewFileCatalog(options.CatalogPath, zapLogger)
		if err != nil {
			panic(err)
		}
	}

	imp := importer.New(s, asset.NewFSWriter(zapLogger), zapLogger, options.GifDir, options.ThumbDir())

	count, err := imp.Run(context.Background(), userID, srcDir)
	if err != nil {
		zapLogger.Error("import failed", zap.Error(err))
		os.Exit(1)
	}

	zapLogger.Info("import complete", zap.String("userID", userID), zap.Int("imported", count))
}

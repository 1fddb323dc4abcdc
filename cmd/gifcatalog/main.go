package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/chlee-dev/gif-catalog/internal/app/server"
	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/asset"
	"github.com/chlee-dev/gif-catalog/internal/config"
	"github.com/chlee-dev/gif-catalog/internal/logger"
	"github.com/chlee-dev/gif-catalog/internal/repository"
	"github.com/chlee-dev/gif-catalog/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()
	hostname := options.Port
	catalogPath := options.CatalogPath
	dbName := options.DatabaseDSN
	useTLS := options.EnableHTTPS

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	var s service.Storage

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	err := log.Init("Info")
	zapLogger := log.Log
	if err != nil {
		panic(err)
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	if dbName != "" {
		zapLogger.Info("using db", zap.String("dbName", dbName))
		db := repository.InitDB(dbName, zapLogger)
		defer db.Close()
		s = repository.CreateGifRepository(db, zapLogger)
		zapLogger.Info("Database connected and tables ready.")
	} else if catalogPath != "" {
		zapLogger.Info("using catalog file", zap.String("catalogPath", catalogPath))

		s, err = storage.NewFileCatalog(catalogPath, zapLogger)
		if err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("using in memory storage")

		s, err = storage.CreateMemoryCatalog()
		if err != nil {
			panic(err)
		}
	}

	gifService := service.NewGif(s, asset.NewFSWriter(zapLogger), zapLogger, options.GifDir, options.ThumbDir())
	r := server.Init(zapLogger, gifService, service.NewAuth(), options.GifDir)

	if useTLS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("mysite.ru", "www.mysite.ru"),
		}
		server := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", hostname))
		server.ListenAndServeTLS("", "")
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", hostname))
		err = http.ListenAndServe(hostname, r)

		if err != nil {
			panic(err)
		}
	}
}

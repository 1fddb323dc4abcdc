// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// BaseURL is the public base URL prepended to asset links.
	BaseURL string

	// CatalogPath is the path to the JSON document holding the catalog.
	CatalogPath string

	// GifDir is the directory where uploaded GIF files are written.
	GifDir string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:5000", "run on ip:port server")
	flag.StringVar(&options.BaseURL, "b", "", "public base url for asset links")
	flag.StringVar(&options.CatalogPath, "f", "users_gifs.json", "path to catalog file")
	flag.StringVar(&options.GifDir, "g", "./public/gifs", "directory for stored gifs")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.BaseURL = baseURL
	}

	if catalogPath := os.Getenv("CATALOG_FILE_PATH"); catalogPath != "" {
		options.CatalogPath = catalogPath
	}

	if gifDir := os.Getenv("GIF_DIRECTORY"); gifDir != "" {
		options.GifDir = gifDir
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpMode
	}

	return options
}

// ThumbDir returns the thumbnail directory derived from GifDir.
func (o *Options) ThumbDir() string {
	return filepath.Join(o.GifDir, "thumbnails")
}

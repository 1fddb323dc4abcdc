// Package asset writes and removes the binary GIF files referenced by
// catalog records. The thumbnail is the same bytes under a second name.
package asset

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type Writer interface {
	WriteBase64(encoded string, paths ...string) error
	Write(data []byte, paths ...string) error
	Remove(path string) error
}

type FSWriter struct {
	logger *zap.Logger
}

func NewFSWriter(logger *zap.Logger) *FSWriter {
	return &FSWriter{
		logger: logger,
	}
}

// WriteBase64 decodes the payload and writes it to every given path.
// A "data:image/gif;base64," style prefix is stripped when present.
func (w *FSWriter) WriteBase64(encoded string, paths ...string) error {
	if i := strings.IndexByte(encoded, ','); i >= 0 {
		encoded = encoded[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode base64 payload: %w", err)
	}

	return w.Write(data, paths...)
}

// Write stores the bytes at every given path, creating directories as
// needed. The first failure aborts the remaining writes.
func (w *FSWriter) Write(data []byte, paths ...string) error {
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
			return fmt.Errorf("create asset directory: %w", err)
		}
		if err := os.WriteFile(p, data, 0660); err != nil {
			return fmt.Errorf("write asset file: %w", err)
		}
		w.logger.Info("asset written", zap.String("path", p), zap.Int("size", len(data)))
	}

	return nil
}

// Remove deletes one asset file. A missing file is not an error.
func (w *FSWriter) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

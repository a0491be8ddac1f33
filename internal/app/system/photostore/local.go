// internal/app/system/photostore/local.go
package photostore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Local stores photos as files under a single directory and serves them
// through the /uploads retrieval endpoint.
type Local struct {
	dir       string
	urlPrefix string // e.g. "/uploads"
	log       *zap.Logger
}

// NewLocal creates the uploads directory if needed and returns a Local
// store rooted there.
func NewLocal(dir, urlPrefix string, logger *zap.Logger) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Local{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		log:       logger,
	}, nil
}

// Save decodes an embedded image payload, writes it under a generated
// unique filename, and returns the URL path a browser can fetch it from.
func (l *Local) Save(_ context.Context, dataURL string) (string, error) {
	ext, data, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	name := newFilename(ext)
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return l.urlPrefix + "/" + name, nil
}

// Delete removes the file behind ref. Missing files and embedded data
// references are no-ops.
func (l *Local) Delete(_ context.Context, ref string) error {
	if ref == "" || IsEmbedded(ref) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(ref, l.urlPrefix+"/"))
	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FullPath resolves a stored photo filename to its on-disk path for
// serving. It rejects anything that would escape the uploads directory.
func (l *Local) FullPath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fs.ErrNotExist
	}
	full := filepath.Join(l.dir, filename)
	if _, err := os.Stat(full); err != nil {
		return "", err
	}
	return full, nil
}

// internal/app/store/credentials/file.go
package credentialstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

// File keeps the credentials in a small JSON file (e.g. data/admin.json).
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a file-backed credentials store at path. The parent
// directory is created if needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{path: path}, nil
}

// Get returns the stored credentials, or the defaults when the file does
// not exist yet.
func (s *File) Get(_ context.Context) (models.AdminCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults(), nil
	}
	if err != nil {
		return models.AdminCredentials{}, err
	}
	var creds models.AdminCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return models.AdminCredentials{}, fmt.Errorf("parse credentials file: %w", err)
	}
	return creds, nil
}

// Set replaces the stored credentials. Written with a restrictive mode
// since the file holds a password.
func (s *File) Set(_ context.Context, creds models.AdminCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

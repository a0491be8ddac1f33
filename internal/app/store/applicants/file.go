// internal/app/store/applicants/file.go
package applicantstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harvalefoods/harvalehub/internal/app/system/photostore"
	"github.com/harvalefoods/harvalehub/internal/domain/models"
	"go.uber.org/zap"
)

// File stores applicants as a single JSON array on disk. Intended for
// installs without a database; a process-wide mutex serializes access,
// which is fine at this scale.
//
// Older records may still carry their photograph inline as a base64 data
// URI. The first successful read migrates those through the photo store
// so every record ends up holding a durable reference.
type File struct {
	path   string
	photos photostore.Store
	log    *zap.Logger

	mu       sync.Mutex
	migrated bool
}

// NewFile creates a file-backed applicant store at path (e.g.
// data/applicants.json). The parent directory is created if needed.
func NewFile(path string, photos photostore.Store, logger *zap.Logger) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{path: path, photos: photos, log: logger}, nil
}

// load reads the backing file. A missing file is an empty store, not an
// error; anything else unreadable is reported as unavailable.
func (s *File) load() ([]models.Applicant, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Applicant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	applicants := []models.Applicant{}
	if err := json.Unmarshal(raw, &applicants); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return applicants, nil
}

// save writes the full record set atomically (temp file then rename) so
// a crash mid-write cannot corrupt the store.
func (s *File) save(applicants []models.Applicant) error {
	raw, err := json.MarshalIndent(applicants, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// migrate moves inline base64 photographs out to the photo store. Runs
// at most once per process; individual failures leave that record inline
// and are logged rather than failing the read.
func (s *File) migrate(ctx context.Context, applicants []models.Applicant) []models.Applicant {
	if s.migrated {
		return applicants
	}
	s.migrated = true

	changed := false
	for i, a := range applicants {
		if !photostore.IsEmbedded(a.Photograph) {
			continue
		}
		ref, err := s.photos.Save(ctx, a.Photograph)
		if err != nil {
			s.log.Warn("photo migration failed",
				zap.String("applicant_id", a.ID), zap.Error(err))
			continue
		}
		applicants[i].Photograph = ref
		changed = true
	}
	if changed {
		if err := s.save(applicants); err != nil {
			s.log.Warn("saving migrated applicants failed", zap.Error(err))
		} else {
			s.log.Info("migrated inline photographs to photo store")
		}
	}
	return applicants
}

// ListAll returns every applicant sorted newest-first.
func (s *File) ListAll(ctx context.Context) ([]models.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applicants, err := s.load()
	if err != nil {
		return nil, err
	}
	applicants = s.migrate(ctx, applicants)
	sort.SliceStable(applicants, func(i, j int) bool {
		return applicants[i].CreatedAt.After(applicants[j].CreatedAt)
	})
	return applicants, nil
}

// Create appends a new applicant, assigning its id and creation time.
func (s *File) Create(_ context.Context, in models.NewApplicant) (models.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applicants, err := s.load()
	if err != nil {
		return models.Applicant{}, err
	}
	a := models.Applicant{
		ID:             uuid.NewString(),
		FullName:       in.FullName,
		PhoneNumber:    in.PhoneNumber,
		PassportNumber: in.PassportNumber,
		Gender:         in.Gender,
		Photograph:     in.Photograph,
		Age:            in.Age,
		Status:         in.Status,
		CreatedAt:      time.Now().UTC(),
	}
	if !models.IsValidStatus(a.Status) {
		a.Status = models.StatusPending
	}
	if err := s.save(append(applicants, a)); err != nil {
		return models.Applicant{}, err
	}
	return a, nil
}

// UpdateStatus sets the status of one applicant and returns the updated
// record.
func (s *File) UpdateStatus(_ context.Context, id, status string) (models.Applicant, error) {
	if !models.IsValidStatus(status) {
		return models.Applicant{}, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	applicants, err := s.load()
	if err != nil {
		return models.Applicant{}, err
	}
	for i := range applicants {
		if applicants[i].ID != id {
			continue
		}
		applicants[i].Status = status
		if err := s.save(applicants); err != nil {
			return models.Applicant{}, err
		}
		return applicants[i], nil
	}
	return models.Applicant{}, ErrNotFound
}

// Delete removes one applicant and returns the removed record.
func (s *File) Delete(_ context.Context, id string) (models.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applicants, err := s.load()
	if err != nil {
		return models.Applicant{}, err
	}
	for i, a := range applicants {
		if a.ID != id {
			continue
		}
		if err := s.save(append(applicants[:i:i], applicants[i+1:]...)); err != nil {
			return models.Applicant{}, err
		}
		return a, nil
	}
	return models.Applicant{}, ErrNotFound
}

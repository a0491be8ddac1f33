// Package applicantstore persists job applicant records. Three
// implementations share one interface: MongoDB for normal deployments,
// a JSON file for installs without a database, and a read-through cache
// that wraps either. Callers pick the backend at bootstrap and never
// look behind the interface again.
package applicantstore

import (
	"context"
	"errors"

	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

var (
	// ErrNotFound means no applicant exists with the given id.
	ErrNotFound = errors.New("applicant not found")
	// ErrInvalidStatus means a status value outside the allowed set was
	// offered to an update.
	ErrInvalidStatus = errors.New("invalid applicant status")
	// ErrUnavailable wraps backend failures (unreachable database,
	// unreadable data file) so handlers can degrade instead of 500ing
	// on reads.
	ErrUnavailable = errors.New("applicant storage unavailable")
)

// Store is the applicant persistence contract.
//
// ListAll returns every applicant newest-first. Create assigns the id and
// creation time. UpdateStatus and Delete return the affected record so
// callers can react to it (status board refresh, photo cleanup).
type Store interface {
	ListAll(ctx context.Context) ([]models.Applicant, error)
	Create(ctx context.Context, in models.NewApplicant) (models.Applicant, error)
	UpdateStatus(ctx context.Context, id, status string) (models.Applicant, error)
	Delete(ctx context.Context, id string) (models.Applicant, error)
}

// Package credentialstore persists the single admin login used by the
// dashboard. Defaults apply until an override is saved, so a fresh
// install is immediately usable.
package credentialstore

import (
	"context"

	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

// Store reads and replaces the admin credential pair. Get never fails on
// a missing record; it returns the built-in defaults instead.
type Store interface {
	Get(ctx context.Context) (models.AdminCredentials, error)
	Set(ctx context.Context, creds models.AdminCredentials) error
}

func defaults() models.AdminCredentials {
	return models.AdminCredentials{
		Username: models.DefaultAdminUsername,
		Password: models.DefaultAdminPassword,
	}
}

// internal/app/store/applicants/cache.go
package applicantstore

import (
	"context"
	"sync"
	"time"

	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

// Cached is a read-through cache over another Store. The public status
// board polls ListAll; caching it keeps that traffic off the backend.
// Any successful write invalidates the cache so the next read reflects
// the change immediately, and errors are never cached.
type Cached struct {
	inner Store
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries []models.Applicant
	fetched time.Time
	valid   bool
}

// NewCached wraps inner with a ListAll cache of the given TTL.
func NewCached(inner Store, ttl time.Duration) *Cached {
	return &Cached{inner: inner, ttl: ttl, now: time.Now}
}

// ListAll serves from cache while fresh, otherwise reads through.
func (c *Cached) ListAll(ctx context.Context) ([]models.Applicant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.fetched) < c.ttl {
		return copyApplicants(c.entries), nil
	}
	entries, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	c.entries = entries
	c.fetched = c.now()
	c.valid = true
	return copyApplicants(entries), nil
}

// Create delegates and invalidates on success.
func (c *Cached) Create(ctx context.Context, in models.NewApplicant) (models.Applicant, error) {
	a, err := c.inner.Create(ctx, in)
	if err == nil {
		c.invalidate()
	}
	return a, err
}

// UpdateStatus delegates and invalidates on success.
func (c *Cached) UpdateStatus(ctx context.Context, id, status string) (models.Applicant, error) {
	a, err := c.inner.UpdateStatus(ctx, id, status)
	if err == nil {
		c.invalidate()
	}
	return a, err
}

// Delete delegates and invalidates on success.
func (c *Cached) Delete(ctx context.Context, id string) (models.Applicant, error) {
	a, err := c.inner.Delete(ctx, id)
	if err == nil {
		c.invalidate()
	}
	return a, err
}

func (c *Cached) invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// copyApplicants shields the cached slice from caller mutation.
func copyApplicants(in []models.Applicant) []models.Applicant {
	out := make([]models.Applicant, len(in))
	copy(out, in)
	return out
}

package repositories

import (
	"context"

	"prestige-properties/internal/models"
)

// PropertyRepository reads the static property catalog.
type PropertyRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Property, error)
	FindPublished(ctx context.Context, category string) ([]models.Property, error)
	FindFeatured(ctx context.Context, limit int) ([]models.Property, error)
	Content(ctx context.Context) *models.Content
}

// SessionState is the key/value state of one visitor session. It outlives page
// navigations but not the session. A missing key is reported with ok=false, not an error.
type SessionState interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Take reads and deletes key atomically.
	Take(ctx context.Context, key string) (value string, ok bool, err error)
}

// SessionStateRepository hands out the state scoped to a session id.
type SessionStateRepository interface {
	ForSession(sessionID string) SessionState
	Backend() string
}

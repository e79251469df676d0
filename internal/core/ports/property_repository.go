package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// PropertyFilter carries the property listing parameters. Search matches
// title, description, and city case-insensitively.
type PropertyFilter struct {
	Search  string
	Type    domain.PropertyType // optional
	OwnerID string              // optional: scope to one owner
	Active  *bool               // optional
	Page    int                 // 1-based
	Limit   int
}

// PropertyRepository defines persistence for property listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// Update replaces the mutable fields of an existing property and returns
	// the post-update record.
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	// AddImages appends uploaded image references to a property.
	AddImages(ctx context.Context, id string, images []domain.Image) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]*domain.Property, int64, error)
	Count(ctx context.Context, filter PropertyFilter) (int64, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	// Featured returns the latest n active properties via an aggregation
	// pipeline.
	Featured(ctx context.Context, n int) ([]*domain.Property, error)
}

package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// FavoriteRepository defines persistence for bookmarks.
type FavoriteRepository interface {
	// Add inserts the (user, property) pair; inserting an existing pair is a
	// no-op.
	Add(ctx context.Context, userID, propertyID string) error
	Remove(ctx context.Context, userID, propertyID string) error
	Exists(ctx context.Context, userID, propertyID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
}

// FavoriteService implements per-user bookmarks.
type FavoriteService interface {
	// Toggle adds the property to the caller's favorites, or removes it when
	// already present. It reports whether the property is favorited after
	// the call.
	Toggle(ctx context.Context, claims *domain.Claims, propertyID string) (bool, error)
	ListMine(ctx context.Context, claims *domain.Claims) ([]*domain.Favorite, error)
}

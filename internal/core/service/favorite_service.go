package service

import (
	"context"
	"fmt"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// FavoriteService implements per-user property bookmarks.
type FavoriteService struct {
	favorites  ports.FavoriteRepository
	properties ports.PropertyRepository
}

func NewFavoriteService(favorites ports.FavoriteRepository, properties ports.PropertyRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, properties: properties}
}

// Toggle flips the caller's bookmark on a property and reports the resulting
// state (true = now favorited).
func (s *FavoriteService) Toggle(ctx context.Context, claims *domain.Claims, propertyID string) (bool, error) {
	if err := Authorize(claims, "", ""); err != nil {
		return false, err
	}

	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return false, err
	}

	exists, err := s.favorites.Exists(ctx, claims.Subject, propertyID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	if exists {
		if err := s.favorites.Remove(ctx, claims.Subject, propertyID); err != nil {
			return false, fmt.Errorf("toggle favorite: %w", err)
		}
		return false, nil
	}
	if err := s.favorites.Add(ctx, claims.Subject, propertyID); err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return true, nil
}

func (s *FavoriteService) ListMine(ctx context.Context, claims *domain.Claims) ([]*domain.Favorite, error) {
	if err := Authorize(claims, "", ""); err != nil {
		return nil, err
	}
	return s.favorites.ListByUser(ctx, claims.Subject)
}

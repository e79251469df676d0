package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

const featuredDefault = 6

// FeaturedCache is a short-TTL cache in front of the featured-properties
// aggregation (Redis-backed in production).
type FeaturedCache interface {
	Get(ctx context.Context, n int) ([]*domain.Property, bool)
	Set(ctx context.Context, n int, items []*domain.Property)
}

// PropertyService implements listing management with owner-scoped mutations.
type PropertyService struct {
	repo     ports.PropertyRepository
	users    ports.UserRepository
	uploader ports.Uploader
	cache    FeaturedCache
	logger   zerolog.Logger
}

func NewPropertyService(
	repo ports.PropertyRepository,
	users ports.UserRepository,
	uploader ports.Uploader,
	cache FeaturedCache,
	logger zerolog.Logger,
) *PropertyService {
	return &PropertyService{repo: repo, users: users, uploader: uploader, cache: cache, logger: logger}
}

// Create lists a new property. Only approved, active owners may publish;
// admins bypass the approval check.
func (s *PropertyService) Create(ctx context.Context, claims *domain.Claims, input ports.CreatePropertyInput) (*domain.Property, error) {
	if err := Authorize(claims, domain.RoleOwner, ""); err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidTarget
	}

	if !claims.IsAdmin() {
		owner, err := s.users.FindByID(ctx, claims.Subject)
		if err != nil {
			return nil, err
		}
		if owner.HostStatus != domain.HostApproved || !owner.IsActive {
			return nil, domain.ErrHostNotApproved
		}
	}

	now := time.Now().UTC()
	property := &domain.Property{
		OwnerID:       claims.Subject,
		Title:         input.Title,
		Description:   input.Description,
		Type:          input.Type,
		PricePerNight: input.PricePerNight,
		Capacity:      input.Capacity,
		Location:      input.Location,
		Amenities:     input.Amenities,
		Images:        []domain.Image{},
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.logger.Info().Str("property_id", created.ID).Str("owner_id", created.OwnerID).Str("type", string(created.Type)).Msg("property created")
	return created, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// Update mutates a property after the owner-or-admin check. The check runs
// against the stored owner id before any write.
func (s *PropertyService) Update(ctx context.Context, claims *domain.Claims, id string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(claims, "", property.OwnerID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, domain.ErrInvalidTarget
		}
		property.Type = *input.Type
	}
	if input.PricePerNight != nil {
		property.PricePerNight = *input.PricePerNight
	}
	if input.Capacity != nil {
		property.Capacity = *input.Capacity
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.Amenities != nil {
		property.Amenities = input.Amenities
	}
	if input.IsActive != nil {
		property.IsActive = *input.IsActive
	}
	property.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, property)
	if err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	return updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, claims *domain.Claims, id string) error {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(claims, "", property.OwnerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	s.logger.Info().Str("property_id", id).Str("by", claims.Subject).Msg("property deleted")
	return nil
}

// UploadImages hands each payload to the object store and appends the
// returned references. Upload failures abort before any reference is written.
func (s *PropertyService) UploadImages(ctx context.Context, claims *domain.Claims, id string, files []ports.FileUpload) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(claims, "", property.OwnerID); err != nil {
		return nil, err
	}

	images := make([]domain.Image, 0, len(files))
	for _, f := range files {
		res, err := s.uploader.Upload(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("upload image %q: %w", f.Filename, err)
		}
		images = append(images, domain.Image{URL: res.URL, PublicID: res.PublicID})
	}

	updated, err := s.repo.AddImages(ctx, id, images)
	if err != nil {
		return nil, fmt.Errorf("attach images: %w", err)
	}
	return updated, nil
}

func (s *PropertyService) List(ctx context.Context, filter ports.PropertyFilter) (*ports.PropertyPage, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return &ports.PropertyPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Featured serves the latest active properties, preferring the cache. Cache
// failures fall through to the store silently.
func (s *PropertyService) Featured(ctx context.Context, n int) ([]*domain.Property, error) {
	if n <= 0 {
		n = featuredDefault
	}

	if s.cache != nil {
		if items, ok := s.cache.Get(ctx, n); ok {
			return items, nil
		}
	}

	items, err := s.repo.Featured(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("featured properties: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, n, items)
	}
	return items, nil
}

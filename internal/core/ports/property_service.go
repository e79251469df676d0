package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// CreatePropertyInput carries the data needed to list a lodging.
type CreatePropertyInput struct {
	Title         string
	Description   string
	Type          domain.PropertyType
	PricePerNight float64
	Capacity      int
	Location      domain.Location
	Amenities     []string
}

// UpdatePropertyInput holds the mutable property fields. Nil pointers mean
// "leave unchanged".
type UpdatePropertyInput struct {
	Title         *string
	Description   *string
	Type          *domain.PropertyType
	PricePerNight *float64
	Capacity      *int
	Location      *domain.Location
	Amenities     []string
	IsActive      *bool
}

// FileUpload is a raw image payload handed to the object store.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PropertyPage is one page of property results.
type PropertyPage struct {
	Items      []*domain.Property
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PropertyService implements listing management. Mutations are owner-scoped:
// only the property's owner or an admin may change it.
type PropertyService interface {
	// Create lists a new property. The caller must be an approved, active
	// owner; admins bypass the approval check.
	Create(ctx context.Context, claims *domain.Claims, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, claims *domain.Claims, id string, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, claims *domain.Claims, id string) error
	// UploadImages pushes files to the object store and appends the returned
	// references to the property.
	UploadImages(ctx context.Context, claims *domain.Claims, id string, files []FileUpload) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) (*PropertyPage, error)
	// Featured returns the latest active properties, served from a short-TTL
	// cache when warm.
	Featured(ctx context.Context, n int) ([]*domain.Property, error)
}

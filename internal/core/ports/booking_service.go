package ports

import (
	"context"
	"time"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// CreateBookingInput carries a reservation request.
type CreateBookingInput struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
}

// BookingService implements reservation use cases.
type BookingService interface {
	// Create places a pending booking for the caller on an active property.
	Create(ctx context.Context, claims *domain.Claims, input CreateBookingInput) (*domain.Booking, error)
	ListMine(ctx context.Context, claims *domain.Claims) ([]*domain.Booking, error)
	// Confirm moves a pending booking to confirmed. Only the booked
	// property's owner or an admin may confirm.
	Confirm(ctx context.Context, claims *domain.Claims, bookingID string) (*domain.Booking, error)
}

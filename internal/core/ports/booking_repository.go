package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// BookingRepository defines persistence for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus atomically sets the booking status and returns the
	// post-update record.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// BookingService implements reservation use cases.
type BookingService struct {
	bookings   ports.BookingRepository
	properties ports.PropertyRepository
	notifier   ports.Notifier
	logger     zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	properties ports.PropertyRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{bookings: bookings, properties: properties, notifier: notifier, logger: logger}
}

// Create places a pending booking on an active property. Total price is
// nights x nightly rate.
func (s *BookingService) Create(ctx context.Context, claims *domain.Claims, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := Authorize(claims, "", ""); err != nil {
		return nil, err
	}
	if !input.CheckOut.After(input.CheckIn) || input.Guests < 1 {
		return nil, domain.ErrInvalidTarget
	}

	property, err := s.properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsActive {
		return nil, domain.ErrInvalidTarget
	}
	if input.Guests > property.Capacity {
		return nil, domain.ErrInvalidTarget
	}

	nights := int(input.CheckOut.Sub(input.CheckIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		PropertyID: property.ID,
		UserID:     claims.Subject,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Guests:     input.Guests,
		TotalPrice: float64(nights) * property.PricePerNight,
		Status:     domain.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info().Str("booking_id", created.ID).Str("property_id", property.ID).Str("user_id", claims.Subject).Msg("booking created")
	return created, nil
}

func (s *BookingService) ListMine(ctx context.Context, claims *domain.Claims) ([]*domain.Booking, error) {
	if err := Authorize(claims, "", ""); err != nil {
		return nil, err
	}
	return s.bookings.ListByUser(ctx, claims.Subject)
}

// Confirm moves a pending booking to confirmed. The gate is ownership of the
// booked property, with the usual admin bypass. Confirming a confirmed
// booking is a no-op success.
func (s *BookingService) Confirm(ctx context.Context, claims *domain.Claims, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	property, err := s.properties.FindByID(ctx, booking.PropertyID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(claims, "", property.OwnerID); err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingCancelled {
		return nil, domain.ErrInvalidTarget
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Enqueue(ports.NotificationInput{
			RecipientID: updated.UserID,
			Kind:        domain.MessageBookingConfirmed,
			Body:        fmt.Sprintf("Your booking for %s has been confirmed.", property.Title),
		})
	}
	return updated, nil
}

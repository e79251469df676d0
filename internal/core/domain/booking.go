package domain

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking is a stay reservation placed by a user on a property.
type Booking struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	PropertyID string        `json:"property_id" bson:"property_id"`
	UserID     string        `json:"user_id" bson:"user_id"`
	CheckIn    time.Time     `json:"check_in" bson:"check_in"`
	CheckOut   time.Time     `json:"check_out" bson:"check_out"`
	Guests     int           `json:"guests" bson:"guests"`
	TotalPrice float64       `json:"total_price" bson:"total_price"`
	Status     BookingStatus `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}

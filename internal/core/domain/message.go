package domain

import "time"

// MessageKind distinguishes system notifications delivered to a user's inbox.
type MessageKind string

const (
	MessageHostApproved     MessageKind = "host_approved"
	MessageHostRejected     MessageKind = "host_rejected"
	MessageBookingConfirmed MessageKind = "booking_confirmed"
)

// Message is a persisted notification addressed to one user.
type Message struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	RecipientID string      `json:"recipient_id" bson:"recipient_id"`
	Kind        MessageKind `json:"kind" bson:"kind"`
	Body        string      `json:"body" bson:"body"`
	Read        bool        `json:"read" bson:"read"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

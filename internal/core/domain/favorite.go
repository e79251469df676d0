package domain

import "time"

// Favorite links a user to a property they bookmarked. The (user, property)
// pair is unique.
type Favorite struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id"`
	PropertyID string    `json:"property_id" bson:"property_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

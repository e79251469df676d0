package domain

import "time"

// PropertyType categorises an unusual lodging.
type PropertyType string

const (
	TypeCabin         PropertyType = "cabin"
	TypeYurt          PropertyType = "yurt"
	TypeFloatingHouse PropertyType = "floating_house"
	TypeDome          PropertyType = "dome"
	TypeTreehouse     PropertyType = "treehouse"
	TypeOther         PropertyType = "other"
)

// Valid reports whether t is one of the known property types.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeCabin, TypeYurt, TypeFloatingHouse, TypeDome, TypeTreehouse, TypeOther:
		return true
	}
	return false
}

// Location is where a property sits.
type Location struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Country string `json:"country" bson:"country"`
}

// Image is an uploaded property photo, referenced by the URL and public id
// returned by the object store.
type Image struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"public_id" bson:"public_id"`
}

// Property is a lodging listed by an owner.
type Property struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	OwnerID       string       `json:"owner_id" bson:"owner_id"`
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description" bson:"description"`
	Type          PropertyType `json:"type" bson:"type"`
	PricePerNight float64      `json:"price_per_night" bson:"price_per_night"`
	Capacity      int          `json:"capacity" bson:"capacity"`
	Location      Location     `json:"location" bson:"location"`
	Images        []Image      `json:"images" bson:"images"`
	Amenities     []string     `json:"amenities" bson:"amenities"`
	IsActive      bool         `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" bson:"updated_at"`
}

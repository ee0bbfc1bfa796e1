package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength bounds place titles.
const MaxTitleLength = 100

// PlaceID uniquely identifies a place.
type PlaceID uuid.UUID

// String returns the canonical textual form of the ID.
func (id PlaceID) String() string { return uuid.UUID(id).String() }

// Place is a property listed by a user.
type Place struct {
	ID PlaceID `json:"id"`

	// Title is required and at most MaxTitleLength characters.
	Title string `json:"title"`
	// Description is free text and defaults to empty.
	Description string `json:"description"`
	// Price is the nightly price and must not be negative.
	Price float64 `json:"price"`
	// Latitude must be within [-90, 90], Longitude within [-180, 180].
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// OwnerID references the user that owns the place.
	OwnerID UserID `json:"ownerId"`
	// AmenityIDs is the deduplicated, order-preserving set of associated amenities.
	AmenityIDs []AmenityID `json:"amenityIds"`
	// ReviewIDs is derived from the review store at read time; it is never
	// persisted with the place itself.
	ReviewIDs []ReviewID `json:"reviewIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPlace validates the given fields and returns a new place with a fresh ID.
// Duplicate amenity ids are silently collapsed; existence of the owner and the
// amenities is the facade's concern.
func NewPlace(title, description string,
	price, latitude, longitude float64,
	ownerID UserID,
	amenityIDs []AmenityID) (*Place, error) {
	if err := requireLength("title", title, MaxTitleLength); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, invalid("price", "must not be negative")
	}
	if latitude < -90 || latitude > 90 {
		return nil, invalid("latitude", "must be within [-90, 90]")
	}
	if longitude < -180 || longitude > 180 {
		return nil, invalid("longitude", "must be within [-180, 180]")
	}

	p := &Place{
		ID:          PlaceID(uuid.New()),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	for _, id := range amenityIDs {
		p.AddAmenity(id)
	}

	return p, nil
}

// Touch refreshes the modification timestamp.
func (p *Place) Touch() { p.UpdatedAt = time.Now().UTC() }

// AddAmenity appends the amenity reference if it is not already present.
// It reports whether the set changed.
func (p *Place) AddAmenity(id AmenityID) bool {
	for _, existing := range p.AmenityIDs {
		if existing == id {
			return false
		}
	}
	p.AmenityIDs = append(p.AmenityIDs, id)

	return true
}

// PlacePatch describes the mutable place fields. Nil fields are left
// unchanged. Ownership and the amenity set are mutated through dedicated
// facade operations, not through the generic patch.
type PlacePatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Apply validates and overwrites the non-nil patch fields, then touches the
// entity.
func (p *Place) Apply(patch PlacePatch) error {
	if patch.Title != nil {
		if err := requireLength("title", *patch.Title, MaxTitleLength); err != nil {
			return err
		}
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return invalid("price", "must not be negative")
		}
		p.Price = *patch.Price
	}
	if patch.Latitude != nil {
		if *patch.Latitude < -90 || *patch.Latitude > 90 {
			return invalid("latitude", "must be within [-90, 90]")
		}
		p.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		if *patch.Longitude < -180 || *patch.Longitude > 180 {
			return invalid("longitude", "must be within [-180, 180]")
		}
		p.Longitude = *patch.Longitude
	}

	p.Touch()

	return nil
}

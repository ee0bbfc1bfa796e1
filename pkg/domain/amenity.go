package domain

import (
	"time"

	"github.com/google/uuid"
)

// AmenityID uniquely identifies an amenity.
type AmenityID uuid.UUID

// String returns the canonical textual form of the ID.
func (id AmenityID) String() string { return uuid.UUID(id).String() }

// Amenity is a named feature that places can be associated with.
type Amenity struct {
	ID AmenityID `json:"id"`

	// Name is required and at most MaxNameLength characters.
	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAmenity validates the name and returns a new amenity with a fresh ID.
func NewAmenity(name string) (*Amenity, error) {
	if err := requireLength("name", name, MaxNameLength); err != nil {
		return nil, err
	}

	return &Amenity{
		ID:        AmenityID(uuid.New()),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Touch refreshes the modification timestamp.
func (a *Amenity) Touch() { a.UpdatedAt = time.Now().UTC() }

// AmenityPatch describes the mutable amenity fields.
type AmenityPatch struct {
	Name *string `json:"name"`
}

// Apply validates and overwrites the non-nil patch fields, then touches the
// entity.
func (a *Amenity) Apply(patch AmenityPatch) error {
	if patch.Name != nil {
		if err := requireLength("name", *patch.Name, MaxNameLength); err != nil {
			return err
		}
		a.Name = *patch.Name
	}

	a.Touch()

	return nil
}

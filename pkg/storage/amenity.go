package storage

import (
	"context"

	"stays/pkg/domain"
)

// AmenityStorage defines CRUD and query operations for amenities.
type AmenityStorage interface {
	// AddAmenity stores a new amenity. It fails with a conflict error when an
	// amenity with the same id already exists.
	AddAmenity(ctx context.Context, amenity domain.Amenity) error
	// AmenityByID fetches an amenity by id. Returns nil when not found.
	AmenityByID(ctx context.Context, id domain.AmenityID) (*domain.Amenity, error)
	// Amenities returns all stored amenities in a stable, backend-defined order.
	Amenities(ctx context.Context) ([]domain.Amenity, error)
	// UpdateAmenity replaces the stored amenity with the given id. No-op when absent.
	UpdateAmenity(ctx context.Context, id domain.AmenityID, amenity domain.Amenity) error
	// DeleteAmenity removes the amenity with the given id. No-op when absent.
	DeleteAmenity(ctx context.Context, id domain.AmenityID) error
	// AmenityByName fetches an amenity by its exact name. Returns nil when not
	// found.
	AmenityByName(ctx context.Context, name string) (*domain.Amenity, error)
}

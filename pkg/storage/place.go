package storage

import (
	"context"

	"stays/pkg/domain"
)

// PlaceStorage defines CRUD operations for places. The stored shape does not
// include the derived review collection; callers fill Place.ReviewIDs from
// ReviewStorage when they need it.
type PlaceStorage interface {
	// AddPlace stores a new place. It fails with a conflict error when a place
	// with the same id already exists.
	AddPlace(ctx context.Context, place domain.Place) error
	// PlaceByID fetches a place by id. Returns nil when not found.
	PlaceByID(ctx context.Context, id domain.PlaceID) (*domain.Place, error)
	// Places returns all stored places in a stable, backend-defined order.
	Places(ctx context.Context) ([]domain.Place, error)
	// UpdatePlace replaces the stored place with the given id. No-op when absent.
	UpdatePlace(ctx context.Context, id domain.PlaceID, place domain.Place) error
	// DeletePlace removes the place with the given id. No-op when absent.
	// Removing associated reviews is the facade's responsibility and happens in
	// the same transaction.
	DeletePlace(ctx context.Context, id domain.PlaceID) error
}

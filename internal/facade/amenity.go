package facade

import (
	"context"
	"fmt"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

// CreateAmenity validates the name, enforces name uniqueness and stores the
// amenity.
func (f *facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.AmenityByName(ctx, amenity.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "amenity %q already exists", amenity.Name)
		}

		return tx.AddAmenity(ctx, *amenity)
	}); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Amenity fetches an amenity by id, failing NotFound when absent.
func (f *facade) Amenity(ctx context.Context, id domain.AmenityID) (*domain.Amenity, error) {
	amenity, err := f.storage.AmenityByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get amenity: %w", err)
	}
	if amenity == nil {
		return nil, serrors.With(serrors.ErrNotFound, "amenity not found")
	}

	return amenity, nil
}

// Amenities returns all amenities.
func (f *facade) Amenities(ctx context.Context) ([]domain.Amenity, error) {
	amenities, err := f.storage.Amenities(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list amenities: %w", err)
	}

	return amenities, nil
}

// UpdateAmenity applies the whitelisted patch, keeping the name unique.
func (f *facade) UpdateAmenity(ctx context.Context,
	id domain.AmenityID,
	patch domain.AmenityPatch) (*domain.Amenity, error) {
	var updated *domain.Amenity
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		amenity, err := tx.AmenityByID(ctx, id)
		if err != nil {
			return err
		}
		if amenity == nil {
			return serrors.With(serrors.ErrNotFound, "amenity not found")
		}
		if patch.Name != nil {
			existing, err := tx.AmenityByName(ctx, *patch.Name)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != id {
				return serrors.With(serrors.ErrConflict, "amenity %q already exists", *patch.Name)
			}
		}
		if err := amenity.Apply(patch); err != nil {
			return err
		}
		updated = amenity

		return tx.UpdateAmenity(ctx, id, *amenity)
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAmenity removes the amenity and scrubs its reference from every place
// in the same transaction, so no place ever points at a missing amenity.
func (f *facade) DeleteAmenity(ctx context.Context, id domain.AmenityID) error {
	return f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		amenity, err := tx.AmenityByID(ctx, id)
		if err != nil {
			return err
		}
		if amenity == nil {
			return serrors.With(serrors.ErrNotFound, "amenity not found")
		}

		places, err := tx.Places(ctx)
		if err != nil {
			return err
		}
		for i := range places {
			place := places[i]
			kept := place.AmenityIDs[:0]
			for _, aid := range place.AmenityIDs {
				if aid != id {
					kept = append(kept, aid)
				}
			}
			if len(kept) == len(place.AmenityIDs) {
				continue
			}
			place.AmenityIDs = kept
			place.Touch()
			if err := tx.UpdatePlace(ctx, place.ID, place); err != nil {
				return err
			}
		}

		return tx.DeleteAmenity(ctx, id)
	})
}

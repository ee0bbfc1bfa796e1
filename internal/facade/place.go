package facade

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stays/pkg/domain"
	"stays/pkg/logger"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

// CreatePlace resolves the owner and amenity references and stores the place.
// Amenity ids that do not resolve are dropped rather than failing the whole
// request; every drop is logged so the laxity stays observable.
func (f *facade) CreatePlace(ctx context.Context, input NewPlace) (*domain.Place, error) {
	var place *domain.Place
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		owner, err := tx.UserByID(ctx, input.OwnerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return serrors.With(serrors.ErrNotFound, "owner not found")
		}

		resolved := make([]domain.AmenityID, 0, len(input.AmenityIDs))
		for _, id := range input.AmenityIDs {
			amenity, err := tx.AmenityByID(ctx, id)
			if err != nil {
				return err
			}
			if amenity == nil {
				logger.Warn(ctx, "dropping unknown amenity id on place creation",
					zap.String("amenity_id", id.String()))

				continue
			}
			resolved = append(resolved, id)
		}

		place, err = domain.NewPlace(input.Title, input.Description,
			input.Price, input.Latitude, input.Longitude,
			input.OwnerID, resolved)
		if err != nil {
			return err
		}

		return tx.AddPlace(ctx, *place)
	}); err != nil {
		return nil, err
	}

	return place, nil
}

// Place fetches a place by id with its derived review collection, failing
// NotFound when absent.
func (f *facade) Place(ctx context.Context, id domain.PlaceID) (*domain.Place, error) {
	place, err := f.storage.PlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	reviews, err := f.storage.ReviewsByPlace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get place reviews: %w", err)
	}
	place.ReviewIDs = reviewIDs(reviews)

	return place, nil
}

// Places returns all places with their derived review collections.
func (f *facade) Places(ctx context.Context) ([]domain.Place, error) {
	places, err := f.storage.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list places: %w", err)
	}

	reviews, err := f.storage.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list reviews: %w", err)
	}
	byPlace := make(map[domain.PlaceID][]domain.ReviewID)
	for _, r := range reviews {
		byPlace[r.PlaceID] = append(byPlace[r.PlaceID], r.ID)
	}
	for i := range places {
		places[i].ReviewIDs = byPlace[places[i].ID]
	}

	return places, nil
}

// UpdatePlace applies the whitelisted patch. Permitted for the owner or an
// admin.
func (f *facade) UpdatePlace(ctx context.Context,
	id domain.PlaceID,
	requesterID domain.UserID,
	patch domain.PlacePatch) (*domain.Place, error) {
	var updated *domain.Place
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		place, err := tx.PlaceByID(ctx, id)
		if err != nil {
			return err
		}
		if place == nil {
			return serrors.With(serrors.ErrNotFound, "place not found")
		}
		if err := authorize(ctx, tx, requesterID, place.OwnerID); err != nil {
			return err
		}
		if err := place.Apply(patch); err != nil {
			return err
		}
		updated = place

		return tx.UpdatePlace(ctx, id, *place)
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeletePlace removes the place and cascades: every review referencing it is
// deleted in the same transaction, preserving referential integrity.
// Permitted for the owner or an admin.
func (f *facade) DeletePlace(ctx context.Context, id domain.PlaceID, requesterID domain.UserID) error {
	return f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		place, err := tx.PlaceByID(ctx, id)
		if err != nil {
			return err
		}
		if place == nil {
			return serrors.With(serrors.ErrNotFound, "place not found")
		}
		if err := authorize(ctx, tx, requesterID, place.OwnerID); err != nil {
			return err
		}

		removed, err := tx.DeleteReviewsByPlace(ctx, id)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.Info(ctx, "cascaded review deletion",
				zap.String("place_id", id.String()),
				zap.Int64("reviews_removed", removed))
		}

		return tx.DeletePlace(ctx, id)
	})
}

// AddAmenityToPlace associates the amenity with the place. The operation is
// idempotent: adding an already-present amenity is a no-op. Permitted for the
// owner or an admin.
func (f *facade) AddAmenityToPlace(ctx context.Context,
	placeID domain.PlaceID,
	amenityID domain.AmenityID,
	requesterID domain.UserID) (*domain.Place, error) {
	var updated *domain.Place
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		place, err := tx.PlaceByID(ctx, placeID)
		if err != nil {
			return err
		}
		if place == nil {
			return serrors.With(serrors.ErrNotFound, "place not found")
		}
		if err := authorize(ctx, tx, requesterID, place.OwnerID); err != nil {
			return err
		}

		amenity, err := tx.AmenityByID(ctx, amenityID)
		if err != nil {
			return err
		}
		if amenity == nil {
			return serrors.With(serrors.ErrNotFound, "amenity not found")
		}

		updated = place
		if !place.AddAmenity(amenityID) {
			return nil
		}
		place.Touch()

		return tx.UpdatePlace(ctx, placeID, *place)
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func reviewIDs(reviews []domain.Review) []domain.ReviewID {
	if len(reviews) == 0 {
		return nil
	}

	out := make([]domain.ReviewID, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.ID)
	}

	return out
}

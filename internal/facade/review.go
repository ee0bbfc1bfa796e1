package facade

import (
	"context"
	"fmt"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

// CreateReview resolves the author and the place, rejects duplicates and
// self-reviews, and stores the review. All checks and the insert are one
// transaction: a reader can never observe the review half-applied, and two
// concurrent creates for the same (user, place) pair cannot both pass the
// duplicate check.
func (f *facade) CreateReview(ctx context.Context, input NewReview) (*domain.Review, error) {
	var review *domain.Review
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByID(ctx, input.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}

		place, err := tx.PlaceByID(ctx, input.PlaceID)
		if err != nil {
			return err
		}
		if place == nil {
			return serrors.With(serrors.ErrNotFound, "place not found")
		}

		existing, err := tx.ReviewByUserAndPlace(ctx, input.UserID, input.PlaceID)
		if err != nil {
			return err
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "place already reviewed by this user")
		}

		if place.OwnerID == input.UserID {
			return serrors.With(serrors.ErrSelfReview, "owner cannot review their own place")
		}

		review, err = domain.NewReview(input.Text, input.Rating, input.PlaceID, input.UserID)
		if err != nil {
			return err
		}

		return tx.AddReview(ctx, *review)
	}); err != nil {
		return nil, err
	}

	return review, nil
}

// Review fetches a review by id, failing NotFound when absent.
func (f *facade) Review(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	review, err := f.storage.ReviewByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get review: %w", err)
	}
	if review == nil {
		return nil, serrors.With(serrors.ErrNotFound, "review not found")
	}

	return review, nil
}

// Reviews returns all reviews.
func (f *facade) Reviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := f.storage.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list reviews: %w", err)
	}

	return reviews, nil
}

// ReviewsForPlace returns all reviews referencing the place. The place must
// exist.
func (f *facade) ReviewsForPlace(ctx context.Context, placeID domain.PlaceID) ([]domain.Review, error) {
	place, err := f.storage.PlaceByID(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("could not get place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	reviews, err := f.storage.ReviewsByPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("could not list place reviews: %w", err)
	}

	return reviews, nil
}

// ReviewByUserAndPlace fetches the review the user left on the place, failing
// NotFound when the pair is not reviewed.
func (f *facade) ReviewByUserAndPlace(ctx context.Context,
	userID domain.UserID,
	placeID domain.PlaceID) (*domain.Review, error) {
	review, err := f.storage.ReviewByUserAndPlace(ctx, userID, placeID)
	if err != nil {
		return nil, fmt.Errorf("could not get review by user and place: %w", err)
	}
	if review == nil {
		return nil, serrors.With(serrors.ErrNotFound, "review not found")
	}

	return review, nil
}

// UpdateReview applies the whitelisted patch. Permitted for the author or an
// admin.
func (f *facade) UpdateReview(ctx context.Context,
	id domain.ReviewID,
	requesterID domain.UserID,
	patch domain.ReviewPatch) (*domain.Review, error) {
	var updated *domain.Review
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		review, err := tx.ReviewByID(ctx, id)
		if err != nil {
			return err
		}
		if review == nil {
			return serrors.With(serrors.ErrNotFound, "review not found")
		}
		if err := authorize(ctx, tx, requesterID, review.UserID); err != nil {
			return err
		}
		if err := review.Apply(patch); err != nil {
			return err
		}
		updated = review

		return tx.UpdateReview(ctx, id, *review)
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteReview removes the review. Permitted for the author or an admin.
func (f *facade) DeleteReview(ctx context.Context, id domain.ReviewID, requesterID domain.UserID) error {
	return f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		review, err := tx.ReviewByID(ctx, id)
		if err != nil {
			return err
		}
		if review == nil {
			return serrors.With(serrors.ErrNotFound, "review not found")
		}
		if err := authorize(ctx, tx, requesterID, review.UserID); err != nil {
			return err
		}

		return tx.DeleteReview(ctx, id)
	})
}

package storage

import (
	"context"

	"stays/pkg/domain"
)

// ReviewStorage defines CRUD and query operations for reviews.
type ReviewStorage interface {
	// AddReview stores a new review. It fails with a conflict error when a
	// review with the same id already exists, or (relational backend) when the
	// (user, place) pair is already reviewed.
	AddReview(ctx context.Context, review domain.Review) error
	// ReviewByID fetches a review by id. Returns nil when not found.
	ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error)
	// Reviews returns all stored reviews in a stable, backend-defined order.
	Reviews(ctx context.Context) ([]domain.Review, error)
	// UpdateReview replaces the stored review with the given id. No-op when absent.
	UpdateReview(ctx context.Context, id domain.ReviewID, review domain.Review) error
	// DeleteReview removes the review with the given id. No-op when absent.
	DeleteReview(ctx context.Context, id domain.ReviewID) error
	// ReviewByUserAndPlace fetches the review the given user left on the given
	// place. Returns nil when the pair is not reviewed.
	ReviewByUserAndPlace(ctx context.Context, userID domain.UserID, placeID domain.PlaceID) (*domain.Review, error)
	// ReviewsByPlace returns all reviews for the given place.
	ReviewsByPlace(ctx context.Context, placeID domain.PlaceID) ([]domain.Review, error)
	// DeleteReviewsByPlace removes every review referencing the given place and
	// returns the number of removed rows. Used by the place-delete cascade.
	DeleteReviewsByPlace(ctx context.Context, placeID domain.PlaceID) (int64, error)
}

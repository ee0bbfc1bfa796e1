package memory

import (
	"context"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

func (s *state) addReview(review domain.Review) error {
	if _, ok := s.reviews[review.ID]; ok {
		return serrors.Wrap(serrors.ErrConflict, storage.ErrDuplicateID, "review %s", review.ID)
	}
	s.reviews[review.ID] = review

	return nil
}

func (s *state) reviewByID(id domain.ReviewID) *domain.Review {
	r, ok := s.reviews[id]
	if !ok {
		return nil
	}

	return &r
}

func (s *state) allReviews() []domain.Review {
	out := make([]domain.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, r)
	}
	sortByCreation(out, func(r domain.Review) creationKey {
		return creationKey{at: r.CreatedAt, id: r.ID.String()}
	})

	return out
}

func (s *state) reviewByUserAndPlace(userID domain.UserID, placeID domain.PlaceID) *domain.Review {
	for _, r := range s.reviews {
		if r.UserID == userID && r.PlaceID == placeID {
			return &r
		}
	}

	return nil
}

func (s *state) reviewsByPlace(placeID domain.PlaceID) []domain.Review {
	var out []domain.Review
	for _, r := range s.reviews {
		if r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	sortByCreation(out, func(r domain.Review) creationKey {
		return creationKey{at: r.CreatedAt, id: r.ID.String()}
	})

	return out
}

func (s *state) deleteReviewsByPlace(placeID domain.PlaceID) int64 {
	var n int64
	for id, r := range s.reviews {
		if r.PlaceID == placeID {
			delete(s.reviews, id)
			n++
		}
	}

	return n
}

// AddReview stores a new review, failing with a conflict on a duplicate id.
func (m *Memory) AddReview(_ context.Context, review domain.Review) error {
	return m.write(func(s *state) error { return s.addReview(review) })
}

// ReviewByID fetches a review by id, returning nil when absent.
func (m *Memory) ReviewByID(_ context.Context, id domain.ReviewID) (*domain.Review, error) {
	var r *domain.Review
	m.read(func(s *state) { r = s.reviewByID(id) })

	return r, nil
}

// Reviews returns all reviews ordered by creation time.
func (m *Memory) Reviews(_ context.Context) ([]domain.Review, error) {
	var out []domain.Review
	m.read(func(s *state) { out = s.allReviews() })

	return out, nil
}

// UpdateReview replaces the stored review. No-op when absent.
func (m *Memory) UpdateReview(_ context.Context, id domain.ReviewID, review domain.Review) error {
	return m.write(func(s *state) error {
		if _, ok := s.reviews[id]; ok {
			s.reviews[id] = review
		}

		return nil
	})
}

// DeleteReview removes the review. No-op when absent.
func (m *Memory) DeleteReview(_ context.Context, id domain.ReviewID) error {
	return m.write(func(s *state) error {
		delete(s.reviews, id)

		return nil
	})
}

// ReviewByUserAndPlace fetches the review left by userID on placeID, returning
// nil when absent.
func (m *Memory) ReviewByUserAndPlace(_ context.Context,
	userID domain.UserID,
	placeID domain.PlaceID) (*domain.Review, error) {
	var r *domain.Review
	m.read(func(s *state) { r = s.reviewByUserAndPlace(userID, placeID) })

	return r, nil
}

// ReviewsByPlace returns all reviews for the given place ordered by creation time.
func (m *Memory) ReviewsByPlace(_ context.Context, placeID domain.PlaceID) ([]domain.Review, error) {
	var out []domain.Review
	m.read(func(s *state) { out = s.reviewsByPlace(placeID) })

	return out, nil
}

// DeleteReviewsByPlace removes every review referencing the place and returns
// the removed count.
func (m *Memory) DeleteReviewsByPlace(_ context.Context, placeID domain.PlaceID) (int64, error) {
	var n int64
	err := m.write(func(s *state) error {
		n = s.deleteReviewsByPlace(placeID)

		return nil
	})

	return n, err
}

// AddReview stores a new review within the transaction.
func (t *Tx) AddReview(_ context.Context, review domain.Review) error {
	return t.work.addReview(review)
}

// ReviewByID fetches a review by id within the transaction.
func (t *Tx) ReviewByID(_ context.Context, id domain.ReviewID) (*domain.Review, error) {
	return t.work.reviewByID(id), nil
}

// Reviews returns all reviews within the transaction.
func (t *Tx) Reviews(_ context.Context) ([]domain.Review, error) {
	return t.work.allReviews(), nil
}

// UpdateReview replaces the stored review within the transaction. No-op when absent.
func (t *Tx) UpdateReview(_ context.Context, id domain.ReviewID, review domain.Review) error {
	if _, ok := t.work.reviews[id]; ok {
		t.work.reviews[id] = review
	}

	return nil
}

// DeleteReview removes the review within the transaction. No-op when absent.
func (t *Tx) DeleteReview(_ context.Context, id domain.ReviewID) error {
	delete(t.work.reviews, id)

	return nil
}

// ReviewByUserAndPlace fetches the review left by userID on placeID within the
// transaction.
func (t *Tx) ReviewByUserAndPlace(_ context.Context,
	userID domain.UserID,
	placeID domain.PlaceID) (*domain.Review, error) {
	return t.work.reviewByUserAndPlace(userID, placeID), nil
}

// ReviewsByPlace returns all reviews for the place within the transaction.
func (t *Tx) ReviewsByPlace(_ context.Context, placeID domain.PlaceID) ([]domain.Review, error) {
	return t.work.reviewsByPlace(placeID), nil
}

// DeleteReviewsByPlace removes the place's reviews within the transaction.
func (t *Tx) DeleteReviewsByPlace(_ context.Context, placeID domain.PlaceID) (int64, error) {
	return t.work.deleteReviewsByPlace(placeID), nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewID uniquely identifies a review.
type ReviewID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ReviewID) String() string { return uuid.UUID(id).String() }

// Review is a rating and comment a user leaves on a place. A user may hold at
// most one review per place, and never on a place they own; both rules are
// enforced by the facade.
type Review struct {
	ID ReviewID `json:"id"`

	// Text is the review body and must not be empty.
	Text string `json:"text"`
	// Rating is an integer within [MinRating, MaxRating].
	Rating int `json:"rating"`

	// PlaceID references the reviewed place, UserID its author.
	PlaceID PlaceID `json:"placeId"`
	UserID  UserID  `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewReview validates the given fields and returns a new review with a fresh
// ID. Existence of the place and the author is the facade's concern.
func NewReview(text string, rating int, placeID PlaceID, userID UserID) (*Review, error) {
	if err := validateReviewText(text); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	return &Review{
		ID:        ReviewID(uuid.New()),
		Text:      text,
		Rating:    rating,
		PlaceID:   placeID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func validateReviewText(text string) error {
	if text == "" {
		return invalid("text", "must not be empty")
	}

	return nil
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return invalid("rating", "must be within [%d, %d]", MinRating, MaxRating)
	}

	return nil
}

// Touch refreshes the modification timestamp.
func (r *Review) Touch() { r.UpdatedAt = time.Now().UTC() }

// ReviewPatch describes the mutable review fields.
type ReviewPatch struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// Apply validates and overwrites the non-nil patch fields, then touches the
// entity.
func (r *Review) Apply(patch ReviewPatch) error {
	if patch.Text != nil {
		if err := validateReviewText(*patch.Text); err != nil {
			return err
		}
		r.Text = *patch.Text
	}
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return err
		}
		r.Rating = *patch.Rating
	}

	r.Touch()

	return nil
}

package v1handler

import (
	"net/http"
	"time"

	"stays/internal/facade"
	"stays/pkg/domain"
	"stays/pkg/serrors"

	"github.com/google/uuid"
)

type createReviewRequest struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
}

type updateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func domainReviewToV1(in *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        in.ID.String(),
		Text:      in.Text,
		Rating:    in.Rating,
		PlaceID:   in.PlaceID.String(),
		UserID:    in.UserID.String(),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// CreateReview posts a review authored by the requester.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createReviewRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		WriteError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "place_id: malformed id"))

		return
	}

	review, err := h.deps.Facade.CreateReview(ctx, facade.NewReview{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: domain.PlaceID(placeID),
		UserID:  GetUserIDFromContext(ctx),
	})
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, domainReviewToV1(review))
}

// GetReview returns a review by id.
func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	review, err := h.deps.Facade.Review(ctx, domain.ReviewID(id))
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainReviewToV1(review))
}

// ListReviews returns all reviews.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviews, err := h.deps.Facade.Reviews(ctx)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	items := make([]reviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, domainReviewToV1(&reviews[i]))
	}

	writeJSON(w, http.StatusOK, items)
}

// UpdateReview applies a partial update. Permitted for the author or an
// admin.
func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	var req updateReviewRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	review, err := h.deps.Facade.UpdateReview(ctx, domain.ReviewID(id), GetUserIDFromContext(ctx), domain.ReviewPatch{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainReviewToV1(review))
}

// DeleteReview removes a review. Permitted for the author or an admin.
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	if err := h.deps.Facade.DeleteReview(ctx, domain.ReviewID(id), GetUserIDFromContext(ctx)); err != nil {
		WriteError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

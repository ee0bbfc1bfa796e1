package v1handler

import (
	"net/http"
	"time"

	"stays/internal/facade"
	"stays/pkg/domain"
	"stays/pkg/serrors"

	"github.com/google/uuid"
)

type createPlaceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AmenityIDs  []string `json:"amenity_ids"`
}

type updatePlaceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type placeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	AmenityIDs  []string  `json:"amenity_ids"`
	ReviewIDs   []string  `json:"review_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func domainPlaceToV1(in *domain.Place) placeResponse {
	amenityIDs := make([]string, 0, len(in.AmenityIDs))
	for _, id := range in.AmenityIDs {
		amenityIDs = append(amenityIDs, id.String())
	}
	reviewIDs := make([]string, 0, len(in.ReviewIDs))
	for _, id := range in.ReviewIDs {
		reviewIDs = append(reviewIDs, id.String())
	}

	return placeResponse{
		ID:          in.ID.String(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OwnerID:     in.OwnerID.String(),
		AmenityIDs:  amenityIDs,
		ReviewIDs:   reviewIDs,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

// CreatePlace registers a new place owned by the requester.
func (h *Handler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createPlaceRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	amenityIDs := make([]domain.AmenityID, 0, len(req.AmenityIDs))
	for _, raw := range req.AmenityIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			WriteError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "amenity_ids: malformed id"))

			return
		}
		amenityIDs = append(amenityIDs, domain.AmenityID(id))
	}

	place, err := h.deps.Facade.CreatePlace(ctx, facade.NewPlace{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     GetUserIDFromContext(ctx),
		AmenityIDs:  amenityIDs,
	})
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, domainPlaceToV1(place))
}

// GetPlace returns a place by id, amenity and review references included.
func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	place, err := h.deps.Facade.Place(ctx, domain.PlaceID(id))
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainPlaceToV1(place))
}

// ListPlaces returns all places.
func (h *Handler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	places, err := h.deps.Facade.Places(ctx)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	items := make([]placeResponse, 0, len(places))
	for i := range places {
		items = append(items, domainPlaceToV1(&places[i]))
	}

	writeJSON(w, http.StatusOK, items)
}

// UpdatePlace applies a partial update. Permitted for the owner or an admin.
func (h *Handler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	var req updatePlaceRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	place, err := h.deps.Facade.UpdatePlace(ctx, domain.PlaceID(id), GetUserIDFromContext(ctx), domain.PlacePatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainPlaceToV1(place))
}

// DeletePlace removes a place and its reviews. Permitted for the owner or an
// admin.
func (h *Handler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	if err := h.deps.Facade.DeletePlace(ctx, domain.PlaceID(id), GetUserIDFromContext(ctx)); err != nil {
		WriteError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddAmenityToPlace attaches an existing amenity to a place. Permitted for
// the owner or an admin; attaching an already attached amenity is a no-op.
func (h *Handler) AddAmenityToPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	placeID, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}
	amenityID, err := pathUUID(r, "amenityID")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	place, err := h.deps.Facade.AddAmenityToPlace(ctx,
		domain.PlaceID(placeID),
		domain.AmenityID(amenityID),
		GetUserIDFromContext(ctx))
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainPlaceToV1(place))
}

// ListPlaceReviews returns all reviews of a place.
func (h *Handler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	reviews, err := h.deps.Facade.ReviewsForPlace(ctx, domain.PlaceID(id))
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

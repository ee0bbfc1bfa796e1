package v1handler

import (
	"net/http"
	"time"

	"stays/pkg/domain"
)

type amenityRequest struct {
	Name string `json:"name"`
}

type updateAmenityRequest struct {
	Name *string `json:"name"`
}

type amenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func domainAmenityToV1(in *domain.Amenity) amenityResponse {
	return amenityResponse{
		ID:        in.ID.String(),
		Name:      in.Name,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// CreateAmenity registers a new amenity. Admin only.
func (h *Handler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req amenityRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	amenity, err := h.deps.Facade.CreateAmenity(ctx, req.Name)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, domainAmenityToV1(amenity))
}

// GetAmenity returns an amenity by id.
func (h *Handler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	amenity, err := h.deps.Facade.Amenity(ctx, domain.AmenityID(id))
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainAmenityToV1(amenity))
}

// ListAmenities returns all amenities.
func (h *Handler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amenities, err := h.deps.Facade.Amenities(ctx)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	items := make([]amenityResponse, 0, len(amenities))
	for i := range amenities {
		items = append(items, domainAmenityToV1(&amenities[i]))
	}

	writeJSON(w, http.StatusOK, items)
}

// UpdateAmenity renames an amenity. Admin only.
func (h *Handler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	var req updateAmenityRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	amenity, err := h.deps.Facade.UpdateAmenity(ctx, domain.AmenityID(id), domain.AmenityPatch{Name: req.Name})
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainAmenityToV1(amenity))
}

// DeleteAmenity removes an amenity and detaches it from every place. Admin
// only.
func (h *Handler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	if err := h.deps.Facade.DeleteAmenity(ctx, domain.AmenityID(id)); err != nil {
		WriteError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package v1handler

import (
	"net/http"
	"time"

	"stays/internal/facade"
	"stays/pkg/domain"
)

type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// updateUserRequest deliberately has no email or password field; unknown keys
// in the payload fail decoding.
type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type userResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func domainUserToV1(in *domain.User) userResponse {
	return userResponse{
		ID:        in.ID.String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsAdmin:   in.IsAdmin,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// CreateUser registers a new user. Registration is open; the admin flag can
// only be set through the create-admin command.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createUserRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	user, err := h.deps.Facade.CreateUser(ctx, facade.NewUser{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, domainUserToV1(user))
}

// GetUser returns a user by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	user, err := h.deps.Facade.User(ctx, domain.UserID(id))
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainUserToV1(user))
}

// ListUsers returns all users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.deps.Facade.Users(ctx)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, domainUserToV1(&users[i]))
	}

	writeJSON(w, http.StatusOK, items)
}

// UpdateUser applies a partial update. Permitted for the user themselves or
// an admin.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	var req updateUserRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	user, err := h.deps.Facade.UpdateUser(ctx, domain.UserID(id), GetUserIDFromContext(ctx), domain.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, domainUserToV1(user))
}

// DeleteUser removes a user. Permitted for the user themselves or an admin.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	if err := h.deps.Facade.DeleteUser(ctx, domain.UserID(id), GetUserIDFromContext(ctx)); err != nil {
		WriteError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

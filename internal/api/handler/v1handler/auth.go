package v1handler

import (
	"errors"
	"net/http"
	"time"

	"stays/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(ctx, w, err)

		return
	}

	user, err := h.deps.Facade.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			WriteError(ctx, w, serrors.With(serrors.ErrUnauthorized, "invalid credentials"))

			return
		}
		WriteError(ctx, w, err)

		return
	}

	if !h.deps.Hasher.Verify(req.Password, user.PasswordHash) {
		WriteError(ctx, w, serrors.With(serrors.ErrUnauthorized, "invalid credentials"))

		return
	}

	now := time.Now()
	claims := Claims{
		Admin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.deps.TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(h.privateKey)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: signed})
}

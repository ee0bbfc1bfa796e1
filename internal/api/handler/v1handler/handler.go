// Package v1handler implements the version 1 JSON handlers. Handlers only
// translate between HTTP and the facade: decoding payloads, resolving the
// requester from the context and mapping semantic errors to status codes.
package v1handler

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stays/internal/facade"
	"stays/pkg/hasher"
	"stays/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Deps groups the collaborators the handlers need.
type Deps struct {
	Facade facade.Facade
	Hasher hasher.Hasher

	// PrivateKey is the PEM-encoded RSA private key used to sign login tokens.
	PrivateKey string
	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration
}

type Handler struct {
	deps       Deps
	privateKey *rsa.PrivateKey
}

// New parses the signing key and returns a ready Handler.
func New(deps Deps) (*Handler, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(deps.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT private key: %w", err)
	}

	return &Handler{deps: deps, privateKey: key}, nil
}

// Register mounts all v1 routes on mux. Login and registration are public;
// everything else goes through the bearer middleware.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/users", h.CreateUser)

	authed := http.NewServeMux()

	authed.HandleFunc("GET /v1/users", h.ListUsers)
	authed.HandleFunc("GET /v1/users/{id}", h.GetUser)
	authed.HandleFunc("PUT /v1/users/{id}", h.UpdateUser)
	authed.HandleFunc("DELETE /v1/users/{id}", h.DeleteUser)

	authed.HandleFunc("GET /v1/amenities", h.ListAmenities)
	authed.HandleFunc("GET /v1/amenities/{id}", h.GetAmenity)
	authed.HandleFunc("POST /v1/amenities", requireAdmin(h.CreateAmenity))
	authed.HandleFunc("PUT /v1/amenities/{id}", requireAdmin(h.UpdateAmenity))
	authed.HandleFunc("DELETE /v1/amenities/{id}", requireAdmin(h.DeleteAmenity))

	authed.HandleFunc("GET /v1/places", h.ListPlaces)
	authed.HandleFunc("POST /v1/places", h.CreatePlace)
	authed.HandleFunc("GET /v1/places/{id}", h.GetPlace)
	authed.HandleFunc("PUT /v1/places/{id}", h.UpdatePlace)
	authed.HandleFunc("DELETE /v1/places/{id}", h.DeletePlace)
	authed.HandleFunc("POST /v1/places/{id}/amenities/{amenityID}", h.AddAmenityToPlace)
	authed.HandleFunc("GET /v1/places/{id}/reviews", h.ListPlaceReviews)

	authed.HandleFunc("GET /v1/reviews", h.ListReviews)
	authed.HandleFunc("POST /v1/reviews", h.CreateReview)
	authed.HandleFunc("GET /v1/reviews/{id}", h.GetReview)
	authed.HandleFunc("PUT /v1/reviews/{id}", h.UpdateReview)
	authed.HandleFunc("DELETE /v1/reviews/{id}", h.DeleteReview)

	mux.Handle("/v1/", sec.Middleware(authed))
}

// requireAdmin guards a handler behind the token's admin claim.
func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromContext(r.Context()) {
			WriteError(r.Context(), w, serrors.With(serrors.ErrForbidden, "admin privileges required"))

			return
		}
		next(w, r)
	}
}

// readJSON decodes the request body into dst. Unknown fields are rejected so
// that patch payloads cannot smuggle in forbidden attributes.
func readJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrValidation, err, "invalid request body")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathUUID parses a uuid path segment, failing VALIDATION on malformed input.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrValidation, err, "%s: malformed id", name)
	}

	return id, nil
}

package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"stays/internal/config"
	"stays/pkg/domain"
	"stays/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey int

const (
	// UserIDKey carries the authenticated requester's domain.UserID.
	UserIDKey ctxKey = iota
	// AdminKey carries the token's admin claim.
	AdminKey
)

// Claims is the token payload issued by Login and the jwt CLI command. The
// subject is the user id.
type Claims struct {
	Admin bool `json:"admin,omitempty"`

	jwt.RegisteredClaims
}

// SecHandlerOptions configures bearer token verification for v1 endpoints.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	PublicKey string
}

// NewSecHandlerOptions extracts the security related settings from the
// application configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens and resolves the requester.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the verification key and returns a ready SecHandler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Authenticate verifies the raw token and returns a context carrying the
// requester id and admin claim. Any verification failure maps to UNAUTHORIZED.
func (s *SecHandler) Authenticate(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return s.publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if !parsed.Valid {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(uid))
	ctx = context.WithValue(ctx, AdminKey, claims.Admin)

	return ctx, nil
}

// Middleware authenticates the request from its Authorization header before
// handing off to next.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, prefix) {
			WriteError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.Authenticate(r.Context(), strings.TrimPrefix(auth, prefix))
		if err != nil {
			WriteError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated requester's id, or the zero
// id when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if v, ok := ctx.Value(UserIDKey).(domain.UserID); ok {
		return v
	}

	return domain.UserID{}
}

// IsAdminFromContext returns the token's admin claim.
func IsAdminFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(AdminKey).(bool)

	return v
}

// Package facade is the domain core of the service. It is the only component
// that mutates storage: every cross-entity invariant (email uniqueness,
// review deduplication, self-review rejection, referential integrity) and
// every authorization decision lives here, never in the API layer and never
// in the entity constructors.
package facade

import (
	"context"

	"stays/pkg/domain"
)

// NewUser carries the fields for creating a user. Password is plaintext and
// is handed to the hasher exactly once; it is never stored or logged.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// NewPlace carries the fields for creating a place.
type NewPlace struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     domain.UserID
	AmenityIDs  []domain.AmenityID
}

// NewReview carries the fields for creating a review.
type NewReview struct {
	Text    string
	Rating  int
	PlaceID domain.PlaceID
	UserID  domain.UserID
}

// Facade exposes the entity-management operations consumed by the API layer.
// Mutating operations on users, places and reviews take the requester id
// supplied by the identity provider; the facade resolves the admin flag from
// storage and enforces the owner-or-admin rule itself.
type Facade interface {
	// Users.
	CreateUser(ctx context.Context, input NewUser) (*domain.User, error)
	User(ctx context.Context, id domain.UserID) (*domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, id, requesterID domain.UserID, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id, requesterID domain.UserID) error

	// Amenities. Admin gating happens at the API layer; the facade only owns
	// the name-uniqueness invariant.
	CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error)
	Amenity(ctx context.Context, id domain.AmenityID) (*domain.Amenity, error)
	Amenities(ctx context.Context) ([]domain.Amenity, error)
	UpdateAmenity(ctx context.Context, id domain.AmenityID, patch domain.AmenityPatch) (*domain.Amenity, error)
	DeleteAmenity(ctx context.Context, id domain.AmenityID) error

	// Places.
	CreatePlace(ctx context.Context, input NewPlace) (*domain.Place, error)
	Place(ctx context.Context, id domain.PlaceID) (*domain.Place, error)
	Places(ctx context.Context) ([]domain.Place, error)
	UpdatePlace(ctx context.Context, id domain.PlaceID, requesterID domain.UserID, patch domain.PlacePatch) (*domain.Place, error)
	DeletePlace(ctx context.Context, id domain.PlaceID, requesterID domain.UserID) error
	AddAmenityToPlace(ctx context.Context,
		placeID domain.PlaceID,
		amenityID domain.AmenityID,
		requesterID domain.UserID) (*domain.Place, error)

	// Reviews.
	CreateReview(ctx context.Context, input NewReview) (*domain.Review, error)
	Review(ctx context.Context, id domain.ReviewID) (*domain.Review, error)
	Reviews(ctx context.Context) ([]domain.Review, error)
	ReviewsForPlace(ctx context.Context, placeID domain.PlaceID) ([]domain.Review, error)
	ReviewByUserAndPlace(ctx context.Context, userID domain.UserID, placeID domain.PlaceID) (*domain.Review, error)
	UpdateReview(ctx context.Context, id domain.ReviewID, requesterID domain.UserID, patch domain.ReviewPatch) (*domain.Review, error)
	DeleteReview(ctx context.Context, id domain.ReviewID, requesterID domain.UserID) error
}

package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"stays/pkg/domain"
)

type PgUser struct {
	ID           uuid.UUID    `db:"id"`
	FirstName    string       `db:"first_name"`
	LastName     string       `db:"last_name"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	IsAdmin      bool         `db:"is_admin"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		IsAdmin:      p.IsAdmin,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    nullTime(user.UpdatedAt),
	}
}

type PgAmenity struct {
	ID        uuid.UUID    `db:"id"`
	Name      string       `db:"name"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func (p *PgAmenity) ToDomain() *domain.Amenity {
	return &domain.Amenity{
		ID:        domain.AmenityID(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgAmenity) FromDomain(amenity domain.Amenity) {
	*p = PgAmenity{
		ID:        uuid.UUID(amenity.ID),
		Name:      amenity.Name,
		CreatedAt: amenity.CreatedAt,
		UpdatedAt: nullTime(amenity.UpdatedAt),
	}
}

// PgPlace maps the places row. The amenity set lives in the place_amenities
// join table and the review collection is derived from reviews; neither is
// part of this struct.
type PgPlace struct {
	ID          uuid.UUID    `db:"id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Price       float64      `db:"price"`
	Latitude    float64      `db:"latitude"`
	Longitude   float64      `db:"longitude"`
	OwnerID     uuid.UUID    `db:"owner_id"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   sql.NullTime `db:"updated_at"`
}

func (p *PgPlace) ToDomain() *domain.Place {
	return &domain.Place{
		ID:          domain.PlaceID(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     domain.UserID(p.OwnerID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgPlace) FromDomain(place domain.Place) {
	*p = PgPlace{
		ID:          uuid.UUID(place.ID),
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		OwnerID:     uuid.UUID(place.OwnerID),
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   nullTime(place.UpdatedAt),
	}
}

// PgPlaceAmenity maps one row of the place_amenities join table. Position
// preserves the association order.
type PgPlaceAmenity struct {
	PlaceID   uuid.UUID `db:"place_id"`
	AmenityID uuid.UUID `db:"amenity_id"`
	Position  int       `db:"position"`
}

type PgReview struct {
	ID        uuid.UUID    `db:"id"`
	Text      string       `db:"text"`
	Rating    int          `db:"rating"`
	PlaceID   uuid.UUID    `db:"place_id"`
	UserID    uuid.UUID    `db:"user_id"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func (p *PgReview) ToDomain() *domain.Review {
	return &domain.Review{
		ID:        domain.ReviewID(p.ID),
		Text:      p.Text,
		Rating:    p.Rating,
		PlaceID:   domain.PlaceID(p.PlaceID),
		UserID:    domain.UserID(p.UserID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgReview) FromDomain(review domain.Review) {
	*p = PgReview{
		ID:        uuid.UUID(review.ID),
		Text:      review.Text,
		Rating:    review.Rating,
		PlaceID:   uuid.UUID(review.PlaceID),
		UserID:    uuid.UUID(review.UserID),
		CreatedAt: review.CreatedAt,
		UpdatedAt: nullTime(review.UpdatedAt),
	}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

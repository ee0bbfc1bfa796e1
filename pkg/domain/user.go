package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNameLength bounds user names and amenity names.
const MaxNameLength = 50

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// User represents an account that can own places and author reviews.
type User struct {
	// ID is the unique identifier of the user. It is assigned at construction
	// and never reassigned.
	ID UserID `json:"id"`

	// FirstName and LastName are required and at most MaxNameLength characters.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is stored lower-cased and is unique across all users.
	Email string `json:"email"`
	// PasswordHash is the opaque credential blob produced by the hasher.
	// It is never part of any external representation.
	PasswordHash string `json:"-"`

	// IsAdmin marks accounts that may mutate any resource.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is set once at construction.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is refreshed by Touch on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser validates the given fields and returns a new user with a fresh ID
// and normalized email. The credential is set separately by the caller, after
// hashing.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	if err := requireLength("first_name", firstName, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireLength("last_name", lastName, MaxNameLength); err != nil {
		return nil, err
	}

	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &User{
		ID:        UserID(uuid.New()),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Touch refreshes the modification timestamp.
func (u *User) Touch() { u.UpdatedAt = time.Now().UTC() }

// UserPatch describes the mutable user fields. Nil fields are left unchanged.
// Email and credential are deliberately not representable here; they are never
// mutated through the generic update path.
type UserPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// Apply validates and overwrites the non-nil patch fields, then touches the
// entity.
func (u *User) Apply(patch UserPatch) error {
	if patch.FirstName != nil {
		if err := requireLength("first_name", *patch.FirstName, MaxNameLength); err != nil {
			return err
		}
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		if err := requireLength("last_name", *patch.LastName, MaxNameLength); err != nil {
			return err
		}
		u.LastName = *patch.LastName
	}

	u.Touch()

	return nil
}

package storage

import (
	"context"

	"stays/pkg/domain"
)

// UserStorage defines CRUD and query operations for users.
type UserStorage interface {
	// AddUser stores a new user. It fails with a conflict error when a user with
	// the same id already exists.
	AddUser(ctx context.Context, user domain.User) error
	// UserByID fetches a user by id. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// Users returns all stored users in a stable, backend-defined order.
	Users(ctx context.Context) ([]domain.User, error)
	// UpdateUser replaces the stored user with the given id. It is a no-op when
	// the user is absent; callers needing existence guarantees check first.
	UpdateUser(ctx context.Context, id domain.UserID, user domain.User) error
	// DeleteUser removes the user with the given id. No-op when absent.
	DeleteUser(ctx context.Context, id domain.UserID) error
	// UserByEmail fetches a user by normalized email. Returns nil when not
	// found. The relational backend resolves this through the unique email
	// index.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}

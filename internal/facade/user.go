package facade

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stays/pkg/domain"
	"stays/pkg/logger"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

// CreateUser validates the fields, enforces email uniqueness and stores the
// user with a hashed credential. The uniqueness check and the insert run in
// one transaction so two concurrent creates with the same email cannot both
// succeed.
func (f *facade) CreateUser(ctx context.Context, input NewUser) (*domain.User, error) {
	user, err := domain.NewUser(input.FirstName, input.LastName, input.Email, input.IsAdmin)
	if err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, serrors.With(serrors.ErrValidation, "password: must not be empty")
	}

	// Hashing is deliberately outside the transaction; bcrypt is slow and must
	// not extend the storage critical section.
	user.PasswordHash, err = f.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.UserByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "email %s is already registered", user.Email)
		}

		return tx.AddUser(ctx, *user)
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created", zap.String("user_id", user.ID.String()))

	return user, nil
}

// User fetches a user by id, failing NotFound when absent.
func (f *facade) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := f.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// Users returns all users.
func (f *facade) Users(ctx context.Context) ([]domain.User, error) {
	users, err := f.storage.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}

// UserByEmail fetches a user by email, failing NotFound when absent. The
// lookup normalizes the email the same way construction does.
func (f *facade) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := f.storage.UserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// UpdateUser applies the whitelisted patch to the user. Permitted for the
// user themselves or an admin. Email and credential are not part of the patch
// type and therefore cannot be mutated here.
func (f *facade) UpdateUser(ctx context.Context,
	id, requesterID domain.UserID,
	patch domain.UserPatch) (*domain.User, error) {
	var updated *domain.User
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}
		if err := authorize(ctx, tx, requesterID, user.ID); err != nil {
			return err
		}
		if err := user.Apply(patch); err != nil {
			return err
		}
		updated = user

		return tx.UpdateUser(ctx, id, *user)
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteUser removes the user. Permitted for the user themselves or an admin.
// The user's places and reviews are left in place; cleaning them up is the
// caller's decision.
func (f *facade) DeleteUser(ctx context.Context, id, requesterID domain.UserID) error {
	return f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}
		if err := authorize(ctx, tx, requesterID, user.ID); err != nil {
			return err
		}

		return tx.DeleteUser(ctx, id)
	})
}

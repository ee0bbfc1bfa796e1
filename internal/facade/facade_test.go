package facade_test

import (
	"context"
	"testing"

	"stays/internal/facade"
	"stays/pkg/domain"
	"stays/pkg/hasher"
	"stays/pkg/logger"
	"stays/pkg/serrors"
	"stays/pkg/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestFacade(t *testing.T) (facade.Facade, *memory.Memory, hasher.Hasher) {
	t.Helper()
	strg := memory.New()
	h := hasher.NewBcrypt(bcrypt.MinCost)

	return facade.New(strg, h), strg, h
}

func createUser(t *testing.T, f facade.Facade, email string, admin bool) *domain.User {
	t.Helper()
	u, err := f.CreateUser(context.Background(), facade.NewUser{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "hunter22",
		IsAdmin:   admin,
	})
	require.NoError(t, err)

	return u
}

func createPlace(t *testing.T, f facade.Facade, owner domain.UserID) *domain.Place {
	t.Helper()
	p, err := f.CreatePlace(context.Background(), facade.NewPlace{
		Title:     "Sea View Flat",
		Price:     100,
		Latitude:  10,
		Longitude: 20,
		OwnerID:   owner,
	})
	require.NoError(t, err)

	return p
}

func TestCreateUser(t *testing.T) {
	f, _, h := newTestFacade(t)
	ctx := context.Background()

	u, err := f.CreateUser(ctx, facade.NewUser{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     " Jane@Example.COM ",
		Password:  "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", u.Email)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "hunter22", u.PasswordHash)
	require.True(t, h.Verify("hunter22", u.PasswordHash))
	require.False(t, h.Verify("wrong", u.PasswordHash))
}

func TestCreateUser_EmptyPassword(t *testing.T) {
	f, _, _ := newTestFacade(t)

	_, err := f.CreateUser(context.Background(), facade.NewUser{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Contains(t, err.Error(), "password")
}

func TestCreateUser_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	f, _, _ := newTestFacade(t)

	createUser(t, f, "jane@example.com", false)

	_, err := f.CreateUser(context.Background(), facade.NewUser{
		FirstName: "Another",
		LastName:  "Jane",
		Email:     "JANE@example.com",
		Password:  "hunter22",
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestUserByEmail_NormalizesLookup(t *testing.T) {
	f, _, _ := newTestFacade(t)
	u := createUser(t, f, "jane@example.com", false)

	got, err := f.UserByEmail(context.Background(), "  JANE@Example.com ")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = f.UserByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdateUser_Authorization(t *testing.T) {
	f, _, _ := newTestFacade(t)
	ctx := context.Background()

	target := createUser(t, f, "target@example.com", false)
	stranger := createUser(t, f, "stranger@example.com", false)
	admin := createUser(t, f, "admin@example.com", true)

	newName := "Janet"

	// self
	got, err := f.UpdateUser(ctx, target.ID, target.ID, domain.UserPatch{FirstName: &newName})
	require.NoError(t, err)
	require.Equal(t, "Janet", got.FirstName)

	// stranger
	_, err = f.UpdateUser(ctx, target.ID, stranger.ID, domain.UserPatch{FirstName: &newName})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	// admin
	_, err = f.UpdateUser(ctx, target.ID, admin.ID, domain.UserPatch{FirstName: &newName})
	require.NoError(t, err)

	// unresolvable requester fails Forbidden, not NotFound
	_, err = f.UpdateUser(ctx, target.ID, domain.UserID(uuid.New()), domain.UserPatch{FirstName: &newName})
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestDeleteUser(t *testing.T) {
	f, _, _ := newTestFacade(t)
	ctx := context.Background()

	target := createUser(t, f, "target@example.com", false)
	stranger := createUser(t, f, "stranger@example.com", false)

	require.ErrorIs(t, f.DeleteUser(ctx, target.ID, stranger.ID), serrors.ErrForbidden)
	require.NoError(t, f.DeleteUser(ctx, target.ID, target.ID))

	_, err := f.User(ctx, target.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.ErrorIs(t, f.DeleteUser(ctx, target.ID, stranger.ID), serrors.ErrNotFound)
}

func TestConcurrentDuplicateEmail(t *testing.T) {
	f, _, _ := newTestFacade(t)
	ctx := context.Background()

	const attempts = 8
	errs := make(chan error, attempts)
	for range attempts {
		go func() {
			_, err := f.CreateUser(ctx, facade.NewUser{
				FirstName: "Race",
				LastName:  "Runner",
				Email:     "race@example.com",
				Password:  "hunter22",
			})
			errs <- err
		}()
	}

	var successes int
	for range attempts {
		if err := <-errs; err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, serrors.ErrConflict)
		}
	}
	require.Equal(t, 1, successes)

	users, err := f.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

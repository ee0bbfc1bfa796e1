package memory_test

import (
	"context"
	"errors"
	"testing"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
	"stays/pkg/storage/memory"

	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, email string) domain.User {
	t.Helper()
	u, err := domain.NewUser("Jane", "Doe", email, false)
	require.NoError(t, err)
	u.PasswordHash = "blob"

	return *u
}

func TestMemory_UserCRUD(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	u := mustUser(t, "jane@example.com")
	require.NoError(t, m.AddUser(ctx, u))

	got, err := m.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, u.Email, got.Email)

	got, err = m.UserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, u.ID, got.ID)

	got, err = m.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, got)

	u.FirstName = "Janet"
	require.NoError(t, m.UpdateUser(ctx, u.ID, u))
	got, err = m.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Janet", got.FirstName)

	require.NoError(t, m.DeleteUser(ctx, u.ID))
	got, err = m.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemory_AddDuplicateIDConflicts(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	u := mustUser(t, "jane@example.com")
	require.NoError(t, m.AddUser(ctx, u))

	err := m.AddUser(ctx, u)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, storage.ErrDuplicateID)
}

func TestMemory_UpdateDeleteMissingAreNoOps(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	u := mustUser(t, "ghost@example.com")
	require.NoError(t, m.UpdateUser(ctx, u.ID, u))
	require.NoError(t, m.DeleteUser(ctx, u.ID))

	got, err := m.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemory_ListOrderIsCreationOrder(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	first := mustUser(t, "a@example.com")
	second := mustUser(t, "b@example.com")
	third := mustUser(t, "c@example.com")
	for _, u := range []domain.User{first, second, third} {
		require.NoError(t, m.AddUser(ctx, u))
	}

	all, err := m.Users(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, first.ID, all[0].ID)
	require.Equal(t, second.ID, all[1].ID)
	require.Equal(t, third.ID, all[2].ID)
}

func TestMemory_ReturnedEntitiesAreCopies(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	owner := mustUser(t, "owner@example.com")
	require.NoError(t, m.AddUser(ctx, owner))

	amenity, err := domain.NewAmenity("wifi")
	require.NoError(t, err)
	require.NoError(t, m.AddAmenity(ctx, *amenity))

	place, err := domain.NewPlace("Flat", "", 10, 0, 0, owner.ID, []domain.AmenityID{amenity.ID})
	require.NoError(t, err)
	require.NoError(t, m.AddPlace(ctx, *place))

	got, err := m.PlaceByID(ctx, place.ID)
	require.NoError(t, err)
	got.AmenityIDs[0] = domain.AmenityID{}
	got.Title = "mutated"

	again, err := m.PlaceByID(ctx, place.ID)
	require.NoError(t, err)
	require.Equal(t, "Flat", again.Title)
	require.Equal(t, amenity.ID, again.AmenityIDs[0])
}

func TestMemory_WithTx_CommitAndRollback(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	committed := mustUser(t, "kept@example.com")
	err := m.WithTx(ctx, func(s storage.AllStorage) error {
		return s.AddUser(ctx, committed)
	})
	require.NoError(t, err)

	got, err := m.UserByID(ctx, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// error in the callback discards every write
	discarded := mustUser(t, "gone@example.com")
	err = m.WithTx(ctx, func(s storage.AllStorage) error {
		if err := s.AddUser(ctx, discarded); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	got, err = m.UserByID(ctx, discarded.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemory_TxSerializesCheckThenAct(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	// two goroutines race to claim the same email inside a transaction;
	// exactly one of them must win
	errs := make(chan error, 2)
	for range 2 {
		go func() {
			errs <- m.WithTx(ctx, func(s storage.AllStorage) error {
				existing, err := s.UserByEmail(ctx, "race@example.com")
				if err != nil {
					return err
				}
				if existing != nil {
					return serrors.With(serrors.ErrConflict, "email already registered")
				}

				u, err := domain.NewUser("Race", "Runner", "race@example.com", false)
				if err != nil {
					return err
				}
				u.PasswordHash = "blob"

				return s.AddUser(ctx, *u)
			})
		}()
	}

	var conflicts, successes int
	for range 2 {
		if err := <-errs; err != nil {
			require.ErrorIs(t, err, serrors.ErrConflict)
			conflicts++
		} else {
			successes++
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, conflicts)

	all, err := m.Users(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

package facade_test

import (
	"context"
	"testing"

	"stays/internal/facade"
	"stays/pkg/domain"
	"stays/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	f, _, _ := newTestFacade(t)
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	place := createPlace(t, f, owner.ID)

	// unknown author
	_, err := f.CreateReview(ctx, facade.NewReview{
		Text: "x", Rating: 3,
		PlaceID: place.ID,
		UserID:  domain.UserID(uuid.New()),
	})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// unknown place
	_, err = f.CreateReview(ctx, facade.NewReview{
		Text: "x", Rating: 3,
		PlaceID: domain.PlaceID(uuid.New()),
		UserID:  guest.ID,
	})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// owner reviewing their own place
	_, err = f.CreateReview(ctx, facade.NewReview{
		Text: "x", Rating: 3,
		PlaceID: place.ID,
		UserID:  owner.ID,
	})
	require.ErrorIs(t, err, serrors.ErrSelfReview)

	// success
	review, err := f.CreateReview(ctx, facade.NewReview{
		Text: "great stay", Rating: 4,
		PlaceID: place.ID,
		UserID:  guest.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 4, review.Rating)

	// second review by the same guest
	_, err = f.CreateReview(ctx, facade.NewReview{
		Text: "again", Rating: 5,
		PlaceID: place.ID,
		UserID:  guest.ID,
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestReviewLookups(t *testing.T) {
	f, _, _ := newTestFacade(t)
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(ctx, facade.NewReview{
		Text: "great stay", Rating: 4,
		PlaceID: place.ID,
		UserID:  guest.ID,
	})
	require.NoError(t, err)

	got, err := f.ReviewByUserAndPlace(ctx, guest.ID, place.ID)
	require.NoError(t, err)
	require.Equal(t, review.ID, got.ID)

	_, err = f.ReviewByUserAndPlace(ctx, owner.ID, place.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	forPlace, err := f.ReviewsForPlace(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, forPlace, 1)

	_, err = f.ReviewsForPlace(ctx, domain.PlaceID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdateReview_Authorization(t *testing.T) {
	f, _, _ := newTestFacade(t)
	ctx := context.Background()

	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	admin := createUser(t, f, "admin@example.com", true)
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(ctx, facade.NewReview{
		Text: "fine", Rating: 3,
		PlaceID: place.ID,
		UserID:  guest.ID,
	})
	require.NoError(t, err)

	rating := 5

	_, err = f.UpdateReview(ctx, review.ID, owner.ID, domain.ReviewPatch{Rating: &rating})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	got, err := f.UpdateReview(ctx, review.ID, guest.ID, domain.ReviewPatch{Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, 5, got.Rating)

	require.ErrorIs(t, f.DeleteReview(ctx, review.ID, owner.ID), serrors.ErrForbidden)
	require.NoError(t, f.DeleteReview(ctx, review.ID, admin.ID))

	_, err = f.Review(ctx, review.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

// TestListingLifecycle walks the whole flow: two users register, one lists a
// place, the other reviews it, the duplicate and self-review rules kick in,
// and deleting the place takes its reviews with it.
func TestListingLifecycle(t *testing.T) {
	f, _, _ := newTestFacade(t)
	ctx := context.Background()

	alice, err := f.CreateUser(ctx, facade.NewUser{
		FirstName: "Alice", LastName: "Host",
		Email: "a@x.com", Password: "hunter22",
	})
	require.NoError(t, err)

	bob, err := f.CreateUser(ctx, facade.NewUser{
		FirstName: "Bob", LastName: "Guest",
		Email: "b@x.com", Password: "hunter22",
	})
	require.NoError(t, err)

	place, err := f.CreatePlace(ctx, facade.NewPlace{
		Title: "P", Price: 100, Latitude: 10, Longitude: 20,
		OwnerID: alice.ID,
	})
	require.NoError(t, err)

	review, err := f.CreateReview(ctx, facade.NewReview{
		Text: "nice", Rating: 4,
		PlaceID: place.ID, UserID: bob.ID,
	})
	require.NoError(t, err)

	_, err = f.CreateReview(ctx, facade.NewReview{
		Text: "again", Rating: 4,
		PlaceID: place.ID, UserID: bob.ID,
	})
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = f.CreateReview(ctx, facade.NewReview{
		Text: "mine", Rating: 5,
		PlaceID: place.ID, UserID: alice.ID,
	})
	require.ErrorIs(t, err, serrors.ErrSelfReview)

	got, err := f.Place(ctx, place.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.ReviewID{review.ID}, got.ReviewIDs)

	require.NoError(t, f.DeletePlace(ctx, place.ID, alice.ID))

	_, err = f.Review(ctx, review.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	reviews, err := f.Reviews(ctx)
	require.NoError(t, err)
	require.Empty(t, reviews)
}

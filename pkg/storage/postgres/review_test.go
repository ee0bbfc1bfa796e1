package postgres_test

import (
	"context"
	"testing"

	"stays/pkg/domain"
	"stays/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Review_UniquePairAndCount(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := mustUser(t, "owner@example.com")
	guest := mustUser(t, "guest@example.com")
	other := mustUser(t, "other@example.com")
	require.NoError(t, pg.AddUser(ctx, owner))
	require.NoError(t, pg.AddUser(ctx, guest))
	require.NoError(t, pg.AddUser(ctx, other))

	place := mustPlace(t, owner.ID, nil)
	require.NoError(t, pg.AddPlace(ctx, place))

	first, err := domain.NewReview("great stay", 4, place.ID, guest.ID)
	require.NoError(t, err)
	require.NoError(t, pg.AddReview(ctx, *first))

	// second review by the same user for the same place violates the unique pair
	dup, err := domain.NewReview("changed my mind", 2, place.ID, guest.ID)
	require.NoError(t, err)
	err = pg.AddReview(ctx, *dup)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)

	// a different user can still review
	second, err := domain.NewReview("decent", 3, place.ID, other.ID)
	require.NoError(t, err)
	require.NoError(t, pg.AddReview(ctx, *second))

	// lookup by the pair
	got, err := pg.ReviewByUserAndPlace(ctx, guest.ID, place.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, first.ID, got.ID)

	byPlace, err := pg.ReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, byPlace, 2)

	deleted, err := pg.DeleteReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	byPlace, err = pg.ReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	require.Empty(t, byPlace)
}

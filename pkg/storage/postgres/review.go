package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"stays/pkg/domain"
)

const reviewsTable = "reviews"

// AddReview inserts a new review row. Duplicate id or (user, place) pair
// surfaces as a conflict error through the table's unique constraints.
func (p *PgSQL) AddReview(ctx context.Context, review domain.Review) error {
	var row PgReview
	row.FromDomain(review)

	if _, err := p.Builder.Insert(reviewsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not store review in pg")
	}

	return nil
}

// ReviewByID fetches a review by id. Returns nil when not found.
func (p *PgSQL) ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Reviews returns all reviews ordered by creation time.
func (p *PgSQL) Reviews(ctx context.Context) ([]domain.Review, error) {
	var rows []PgReview
	if err := p.Builder.From(reviewsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch reviews from pg: %w", err)
	}

	out := make([]domain.Review, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateReview replaces the stored review row. No-op when absent.
func (p *PgSQL) UpdateReview(ctx context.Context, id domain.ReviewID, review domain.Review) error {
	var row PgReview
	row.FromDomain(review)
	row.ID = uuid.UUID(id)

	if _, err := p.Builder.Update(reviewsTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not update review in pg")
	}

	return nil
}

// DeleteReview removes the review row. No-op when absent.
func (p *PgSQL) DeleteReview(ctx context.Context, id domain.ReviewID) error {
	if _, err := p.Builder.Delete(reviewsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete review in pg: %w", err)
	}

	return nil
}

// ReviewByUserAndPlace resolves the (user, place) pair through the unique
// index. Returns nil when the pair is not reviewed.
func (p *PgSQL) ReviewByUserAndPlace(ctx context.Context,
	userID domain.UserID,
	placeID domain.PlaceID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("place_id").Eq(uuid.UUID(placeID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review by user and place: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ReviewsByPlace returns all reviews for the place ordered by creation time.
func (p *PgSQL) ReviewsByPlace(ctx context.Context, placeID domain.PlaceID) ([]domain.Review, error) {
	var rows []PgReview
	if err := p.Builder.From(reviewsTable).
		Where(goqu.I("place_id").Eq(uuid.UUID(placeID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch reviews by place from pg: %w", err)
	}

	out := make([]domain.Review, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// DeleteReviewsByPlace removes every review referencing the place and returns
// the removed count.
func (p *PgSQL) DeleteReviewsByPlace(ctx context.Context, placeID domain.PlaceID) (int64, error) {
	res, err := p.Builder.Delete(reviewsTable).
		Where(goqu.I("place_id").Eq(uuid.UUID(placeID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete reviews by place in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read delete result: %w", err)
	}

	return affected, nil
}

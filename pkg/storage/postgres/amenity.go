package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"stays/pkg/domain"
)

const amenitiesTable = "amenities"

// AddAmenity inserts a new amenity row. Duplicate id or name surfaces as a
// conflict error.
func (p *PgSQL) AddAmenity(ctx context.Context, amenity domain.Amenity) error {
	var row PgAmenity
	row.FromDomain(amenity)

	if _, err := p.Builder.Insert(amenitiesTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not store amenity in pg")
	}

	return nil
}

// AmenityByID fetches an amenity by id. Returns nil when not found.
func (p *PgSQL) AmenityByID(ctx context.Context, id domain.AmenityID) (*domain.Amenity, error) {
	var row PgAmenity
	found, err := p.Builder.From(amenitiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch amenity by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Amenities returns all amenities ordered by creation time.
func (p *PgSQL) Amenities(ctx context.Context) ([]domain.Amenity, error) {
	var rows []PgAmenity
	if err := p.Builder.From(amenitiesTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch amenities from pg: %w", err)
	}

	out := make([]domain.Amenity, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateAmenity replaces the stored amenity row. No-op when absent.
func (p *PgSQL) UpdateAmenity(ctx context.Context, id domain.AmenityID, amenity domain.Amenity) error {
	var row PgAmenity
	row.FromDomain(amenity)
	row.ID = uuid.UUID(id)

	if _, err := p.Builder.Update(amenitiesTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not update amenity in pg")
	}

	return nil
}

// DeleteAmenity removes the amenity row. No-op when absent.
func (p *PgSQL) DeleteAmenity(ctx context.Context, id domain.AmenityID) error {
	if _, err := p.Builder.Delete(amenitiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete amenity in pg: %w", err)
	}

	return nil
}

// AmenityByName fetches an amenity by its exact name. Returns nil when not
// found.
func (p *PgSQL) AmenityByName(ctx context.Context, name string) (*domain.Amenity, error) {
	var row PgAmenity
	found, err := p.Builder.From(amenitiesTable).
		Where(goqu.I("name").Eq(name)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch amenity by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

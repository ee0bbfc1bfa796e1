package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"stays/pkg/domain"
)

const (
	placesTable         = "places"
	placeAmenitiesTable = "place_amenities"
)

// AddPlace inserts a new place row together with its amenity associations.
// Callers run this inside a transaction when atomicity with other writes
// matters; the facade always does.
func (p *PgSQL) AddPlace(ctx context.Context, place domain.Place) error {
	var row PgPlace
	row.FromDomain(place)

	if _, err := p.Builder.Insert(placesTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not store place in pg")
	}

	return p.insertPlaceAmenities(ctx, place.ID, place.AmenityIDs)
}

func (p *PgSQL) insertPlaceAmenities(ctx context.Context, placeID domain.PlaceID, amenityIDs []domain.AmenityID) error {
	if len(amenityIDs) == 0 {
		return nil
	}

	rows := make([]PgPlaceAmenity, 0, len(amenityIDs))
	for i, id := range amenityIDs {
		rows = append(rows, PgPlaceAmenity{
			PlaceID:   uuid.UUID(placeID),
			AmenityID: uuid.UUID(id),
			Position:  i,
		})
	}

	if _, err := p.Builder.Insert(placeAmenitiesTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not store place amenities in pg")
	}

	return nil
}

func (p *PgSQL) placeAmenityIDs(ctx context.Context, placeID domain.PlaceID) ([]domain.AmenityID, error) {
	var rows []PgPlaceAmenity
	if err := p.Builder.From(placeAmenitiesTable).
		Where(goqu.I("place_id").Eq(uuid.UUID(placeID))).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch place amenities: %w", err)
	}

	out := make([]domain.AmenityID, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.AmenityID(r.AmenityID))
	}

	return out, nil
}

// PlaceByID fetches a place by id, including its amenity references. Returns
// nil when not found.
func (p *PgSQL) PlaceByID(ctx context.Context, id domain.PlaceID) (*domain.Place, error) {
	var row PgPlace
	found, err := p.Builder.From(placesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	place := row.ToDomain()
	place.AmenityIDs, err = p.placeAmenityIDs(ctx, place.ID)
	if err != nil {
		return nil, err
	}

	return place, nil
}

// Places returns all places ordered by creation time, including their amenity
// references.
func (p *PgSQL) Places(ctx context.Context) ([]domain.Place, error) {
	var rows []PgPlace
	if err := p.Builder.From(placesTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch places from pg: %w", err)
	}

	var assoc []PgPlaceAmenity
	if err := p.Builder.From(placeAmenitiesTable).
		Order(goqu.I("place_id").Asc(), goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &assoc); err != nil {
		return nil, fmt.Errorf("could not fetch place amenities from pg: %w", err)
	}

	byPlace := make(map[domain.PlaceID][]domain.AmenityID, len(rows))
	for _, a := range assoc {
		id := domain.PlaceID(a.PlaceID)
		byPlace[id] = append(byPlace[id], domain.AmenityID(a.AmenityID))
	}

	out := make([]domain.Place, 0, len(rows))
	for i := range rows {
		place := rows[i].ToDomain()
		place.AmenityIDs = byPlace[place.ID]
		out = append(out, *place)
	}

	return out, nil
}

// UpdatePlace replaces the stored place row and rewrites its amenity
// associations. No-op when the row is absent.
func (p *PgSQL) UpdatePlace(ctx context.Context, id domain.PlaceID, place domain.Place) error {
	var row PgPlace
	row.FromDomain(place)
	row.ID = uuid.UUID(id)

	res, err := p.Builder.Update(placesTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return wrapConflict(err, "could not update place in pg")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read update result: %w", err)
	}
	if affected == 0 {
		return nil
	}

	if _, err := p.Builder.Delete(placeAmenitiesTable).
		Where(goqu.I("place_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear place amenities in pg: %w", err)
	}

	return p.insertPlaceAmenities(ctx, id, place.AmenityIDs)
}

// DeletePlace removes the place row; the join table cascades on the foreign
// key. No-op when absent. Deleting the place's reviews is the facade's
// responsibility, in the same transaction.
func (p *PgSQL) DeletePlace(ctx context.Context, id domain.PlaceID) error {
	if _, err := p.Builder.Delete(placesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete place in pg: %w", err)
	}

	return nil
}

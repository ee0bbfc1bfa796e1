package memory

import (
	"context"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

func (s *state) addPlace(place domain.Place) error {
	if _, ok := s.places[place.ID]; ok {
		return serrors.Wrap(serrors.ErrConflict, storage.ErrDuplicateID, "place %s", place.ID)
	}
	s.places[place.ID] = clonePlace(place)

	return nil
}

func (s *state) placeByID(id domain.PlaceID) *domain.Place {
	p, ok := s.places[id]
	if !ok {
		return nil
	}
	p = clonePlace(p)

	return &p
}

func (s *state) allPlaces() []domain.Place {
	out := make([]domain.Place, 0, len(s.places))
	for _, p := range s.places {
		out = append(out, clonePlace(p))
	}
	sortByCreation(out, func(p domain.Place) creationKey {
		return creationKey{at: p.CreatedAt, id: p.ID.String()}
	})

	return out
}

// AddPlace stores a new place, failing with a conflict on a duplicate id.
func (m *Memory) AddPlace(_ context.Context, place domain.Place) error {
	return m.write(func(s *state) error { return s.addPlace(place) })
}

// PlaceByID fetches a place by id, returning nil when absent.
func (m *Memory) PlaceByID(_ context.Context, id domain.PlaceID) (*domain.Place, error) {
	var p *domain.Place
	m.read(func(s *state) { p = s.placeByID(id) })

	return p, nil
}

// Places returns all places ordered by creation time.
func (m *Memory) Places(_ context.Context) ([]domain.Place, error) {
	var out []domain.Place
	m.read(func(s *state) { out = s.allPlaces() })

	return out, nil
}

// UpdatePlace replaces the stored place. No-op when absent.
func (m *Memory) UpdatePlace(_ context.Context, id domain.PlaceID, place domain.Place) error {
	return m.write(func(s *state) error {
		if _, ok := s.places[id]; ok {
			s.places[id] = clonePlace(place)
		}

		return nil
	})
}

// DeletePlace removes the place. No-op when absent.
func (m *Memory) DeletePlace(_ context.Context, id domain.PlaceID) error {
	return m.write(func(s *state) error {
		delete(s.places, id)

		return nil
	})
}

// AddPlace stores a new place within the transaction.
func (t *Tx) AddPlace(_ context.Context, place domain.Place) error {
	return t.work.addPlace(place)
}

// PlaceByID fetches a place by id within the transaction.
func (t *Tx) PlaceByID(_ context.Context, id domain.PlaceID) (*domain.Place, error) {
	return t.work.placeByID(id), nil
}

// Places returns all places within the transaction.
func (t *Tx) Places(_ context.Context) ([]domain.Place, error) {
	return t.work.allPlaces(), nil
}

// UpdatePlace replaces the stored place within the transaction. No-op when absent.
func (t *Tx) UpdatePlace(_ context.Context, id domain.PlaceID, place domain.Place) error {
	if _, ok := t.work.places[id]; ok {
		t.work.places[id] = clonePlace(place)
	}

	return nil
}

// DeletePlace removes the place within the transaction. No-op when absent.
func (t *Tx) DeletePlace(_ context.Context, id domain.PlaceID) error {
	delete(t.work.places, id)

	return nil
}

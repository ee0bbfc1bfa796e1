package memory

import (
	"context"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

func (s *state) addAmenity(amenity domain.Amenity) error {
	if _, ok := s.amenities[amenity.ID]; ok {
		return serrors.Wrap(serrors.ErrConflict, storage.ErrDuplicateID, "amenity %s", amenity.ID)
	}
	s.amenities[amenity.ID] = amenity

	return nil
}

func (s *state) amenityByID(id domain.AmenityID) *domain.Amenity {
	a, ok := s.amenities[id]
	if !ok {
		return nil
	}

	return &a
}

func (s *state) allAmenities() []domain.Amenity {
	out := make([]domain.Amenity, 0, len(s.amenities))
	for _, a := range s.amenities {
		out = append(out, a)
	}
	sortByCreation(out, func(a domain.Amenity) creationKey {
		return creationKey{at: a.CreatedAt, id: a.ID.String()}
	})

	return out
}

func (s *state) amenityByName(name string) *domain.Amenity {
	for _, a := range s.amenities {
		if a.Name == name {
			return &a
		}
	}

	return nil
}

// AddAmenity stores a new amenity, failing with a conflict on a duplicate id.
func (m *Memory) AddAmenity(_ context.Context, amenity domain.Amenity) error {
	return m.write(func(s *state) error { return s.addAmenity(amenity) })
}

// AmenityByID fetches an amenity by id, returning nil when absent.
func (m *Memory) AmenityByID(_ context.Context, id domain.AmenityID) (*domain.Amenity, error) {
	var a *domain.Amenity
	m.read(func(s *state) { a = s.amenityByID(id) })

	return a, nil
}

// Amenities returns all amenities ordered by creation time.
func (m *Memory) Amenities(_ context.Context) ([]domain.Amenity, error) {
	var out []domain.Amenity
	m.read(func(s *state) { out = s.allAmenities() })

	return out, nil
}

// UpdateAmenity replaces the stored amenity. No-op when absent.
func (m *Memory) UpdateAmenity(_ context.Context, id domain.AmenityID, amenity domain.Amenity) error {
	return m.write(func(s *state) error {
		if _, ok := s.amenities[id]; ok {
			s.amenities[id] = amenity
		}

		return nil
	})
}

// DeleteAmenity removes the amenity. No-op when absent.
func (m *Memory) DeleteAmenity(_ context.Context, id domain.AmenityID) error {
	return m.write(func(s *state) error {
		delete(s.amenities, id)

		return nil
	})
}

// AmenityByName fetches an amenity by name, returning nil when absent.
func (m *Memory) AmenityByName(_ context.Context, name string) (*domain.Amenity, error) {
	var a *domain.Amenity
	m.read(func(s *state) { a = s.amenityByName(name) })

	return a, nil
}

// AddAmenity stores a new amenity within the transaction.
func (t *Tx) AddAmenity(_ context.Context, amenity domain.Amenity) error {
	return t.work.addAmenity(amenity)
}

// AmenityByID fetches an amenity by id within the transaction.
func (t *Tx) AmenityByID(_ context.Context, id domain.AmenityID) (*domain.Amenity, error) {
	return t.work.amenityByID(id), nil
}

// Amenities returns all amenities within the transaction.
func (t *Tx) Amenities(_ context.Context) ([]domain.Amenity, error) {
	return t.work.allAmenities(), nil
}

// UpdateAmenity replaces the stored amenity within the transaction. No-op when absent.
func (t *Tx) UpdateAmenity(_ context.Context, id domain.AmenityID, amenity domain.Amenity) error {
	if _, ok := t.work.amenities[id]; ok {
		t.work.amenities[id] = amenity
	}

	return nil
}

// DeleteAmenity removes the amenity within the transaction. No-op when absent.
func (t *Tx) DeleteAmenity(_ context.Context, id domain.AmenityID) error {
	delete(t.work.amenities, id)

	return nil
}

// AmenityByName fetches an amenity by name within the transaction.
func (t *Tx) AmenityByName(_ context.Context, name string) (*domain.Amenity, error) {
	return t.work.amenityByName(name), nil
}

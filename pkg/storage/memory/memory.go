// Package memory implements the storage contract with process-lifetime,
// map-backed state. It is the volatile backend: fast, dependency-free and
// suitable for tests and single-node deployments that can afford to lose data
// on restart.
//
// Concurrency model: plain reads take a shared lock against the live state.
// Transactions take the store's exclusive lock for their whole lifetime and
// work on a deep copy of the state, which is swapped in at commit. Readers
// therefore always observe either none or all of a transaction's writes, and
// two concurrent check-then-act sequences serialize on the store lock.
package memory

import (
	"context"
	"slices"
	"sync"

	"stays/pkg/domain"
	"stays/pkg/storage"
)

// state holds one map per entity type. Entities are stored by value; slices
// inside them are cloned on the way in and out so callers can never mutate
// stored state through a returned entity.
type state struct {
	users     map[domain.UserID]domain.User
	amenities map[domain.AmenityID]domain.Amenity
	places    map[domain.PlaceID]domain.Place
	reviews   map[domain.ReviewID]domain.Review
}

func newState() *state {
	return &state{
		users:     make(map[domain.UserID]domain.User),
		amenities: make(map[domain.AmenityID]domain.Amenity),
		places:    make(map[domain.PlaceID]domain.Place),
		reviews:   make(map[domain.ReviewID]domain.Review),
	}
}

func (s *state) clone() *state {
	c := &state{
		users:     make(map[domain.UserID]domain.User, len(s.users)),
		amenities: make(map[domain.AmenityID]domain.Amenity, len(s.amenities)),
		places:    make(map[domain.PlaceID]domain.Place, len(s.places)),
		reviews:   make(map[domain.ReviewID]domain.Review, len(s.reviews)),
	}
	for id, u := range s.users {
		c.users[id] = u
	}
	for id, a := range s.amenities {
		c.amenities[id] = a
	}
	for id, p := range s.places {
		c.places[id] = clonePlace(p)
	}
	for id, r := range s.reviews {
		c.reviews[id] = r
	}

	return c
}

func clonePlace(p domain.Place) domain.Place {
	p.AmenityIDs = slices.Clone(p.AmenityIDs)
	p.ReviewIDs = slices.Clone(p.ReviewIDs)

	return p
}

// Memory is the non-transactional store handle. It implements storage.Storage.
type Memory struct {
	mu    sync.RWMutex
	state *state
}

var (
	_ storage.Storage   = (*Memory)(nil)
	_ storage.TxStorage = (*Tx)(nil)
)

// New returns an empty in-memory store.
func New() *Memory {
	return &Memory{state: newState()}
}

// Close releases nothing; the store lives and dies with the process.
func (m *Memory) Close() error { return nil }

// Begin locks the store exclusively and returns a transactional handle working
// on a deep copy of the state. The lock is held until Commit or Rollback.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	m.mu.Lock()

	return &Tx{parent: m, work: m.state.clone()}, nil
}

// WithTx runs cb inside a transaction, committing on success and rolling back
// when cb returns an error.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// Tx is a transactional handle over a cloned state. It implements
// storage.TxStorage and must not be used after Commit or Rollback.
type Tx struct {
	parent *Memory
	work   *state
	done   bool
}

// Commit swaps the working state into the store and releases the lock.
func (t *Tx) Commit() error {
	if t.done {
		return storage.ErrNotInTx
	}
	t.done = true
	t.parent.state = t.work
	t.parent.mu.Unlock()

	return nil
}

// Rollback discards the working state and releases the lock.
func (t *Tx) Rollback() error {
	if t.done {
		return storage.ErrNotInTx
	}
	t.done = true
	t.parent.mu.Unlock()

	return nil
}

// read runs fn against the live state under a shared lock.
func (m *Memory) read(fn func(s *state)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.state)
}

// write runs fn against the live state under the exclusive lock.
func (m *Memory) write(fn func(s *state) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(m.state)
}

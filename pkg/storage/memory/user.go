package memory

import (
	"context"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

func (s *state) addUser(user domain.User) error {
	if _, ok := s.users[user.ID]; ok {
		return serrors.Wrap(serrors.ErrConflict, storage.ErrDuplicateID, "user %s", user.ID)
	}
	s.users[user.ID] = user

	return nil
}

func (s *state) userByID(id domain.UserID) *domain.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}

	return &u
}

func (s *state) allUsers() []domain.User {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sortByCreation(out, func(u domain.User) creationKey {
		return creationKey{at: u.CreatedAt, id: u.ID.String()}
	})

	return out
}

func (s *state) userByEmail(email string) *domain.User {
	for _, u := range s.users {
		if u.Email == email {
			return &u
		}
	}

	return nil
}

// AddUser stores a new user, failing with a conflict on a duplicate id.
func (m *Memory) AddUser(_ context.Context, user domain.User) error {
	return m.write(func(s *state) error { return s.addUser(user) })
}

// UserByID fetches a user by id, returning nil when absent.
func (m *Memory) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	var u *domain.User
	m.read(func(s *state) { u = s.userByID(id) })

	return u, nil
}

// Users returns all users ordered by creation time.
func (m *Memory) Users(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	m.read(func(s *state) { out = s.allUsers() })

	return out, nil
}

// UpdateUser replaces the stored user. No-op when absent.
func (m *Memory) UpdateUser(_ context.Context, id domain.UserID, user domain.User) error {
	return m.write(func(s *state) error {
		if _, ok := s.users[id]; ok {
			s.users[id] = user
		}

		return nil
	})
}

// DeleteUser removes the user. No-op when absent.
func (m *Memory) DeleteUser(_ context.Context, id domain.UserID) error {
	return m.write(func(s *state) error {
		delete(s.users, id)

		return nil
	})
}

// UserByEmail fetches a user by normalized email, returning nil when absent.
func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	var u *domain.User
	m.read(func(s *state) { u = s.userByEmail(email) })

	return u, nil
}

// AddUser stores a new user within the transaction.
func (t *Tx) AddUser(_ context.Context, user domain.User) error {
	return t.work.addUser(user)
}

// UserByID fetches a user by id within the transaction.
func (t *Tx) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	return t.work.userByID(id), nil
}

// Users returns all users within the transaction.
func (t *Tx) Users(_ context.Context) ([]domain.User, error) {
	return t.work.allUsers(), nil
}

// UpdateUser replaces the stored user within the transaction. No-op when absent.
func (t *Tx) UpdateUser(_ context.Context, id domain.UserID, user domain.User) error {
	if _, ok := t.work.users[id]; ok {
		t.work.users[id] = user
	}

	return nil
}

// DeleteUser removes the user within the transaction. No-op when absent.
func (t *Tx) DeleteUser(_ context.Context, id domain.UserID) error {
	delete(t.work.users, id)

	return nil
}

// UserByEmail fetches a user by email within the transaction.
func (t *Tx) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	return t.work.userByEmail(email), nil
}

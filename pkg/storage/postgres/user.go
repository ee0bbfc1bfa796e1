package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"stays/pkg/domain"
)

const usersTable = "users"

// AddUser inserts a new user row. Duplicate id or email surfaces as a
// conflict error.
func (p *PgSQL) AddUser(ctx context.Context, user domain.User) error {
	var row PgUser
	row.FromDomain(user)

	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not store user in pg")
	}

	return nil
}

// UserByID fetches a user by id. Returns nil when not found.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Users returns all users ordered by creation time.
func (p *PgSQL) Users(ctx context.Context) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateUser replaces the stored user row. No-op when the row is absent.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, user domain.User) error {
	var row PgUser
	row.FromDomain(user)
	row.ID = uuid.UUID(id)

	if _, err := p.Builder.Update(usersTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return wrapConflict(err, "could not update user in pg")
	}

	return nil
}

// DeleteUser removes the user row. No-op when absent.
func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) error {
	if _, err := p.Builder.Delete(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete user in pg: %w", err)
	}

	return nil
}

// UserByEmail fetches a user by normalized email through the unique email
// index. Returns nil when not found.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

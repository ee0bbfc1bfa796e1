package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"stays/pkg/serrors"
)

// wrapConflict maps PostgreSQL unique-violation errors to the semantic
// conflict kind so facade callers see the same failure shape as with the
// memory backend, never a raw driver fault.
func wrapConflict(err error, msgFmt string, args ...any) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return serrors.Wrap(serrors.ErrConflict, err, msgFmt, args...)
	}

	return serrors.Wrap(serrors.ErrInternal, err, msgFmt, args...)
}

// Package repositories wraps the store's tables behind thin CRUD types.
// Mutations carry no authorization logic of their own; routes enforce the
// admin gate before any repository call is reached.
package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrConflict is returned when a uniqueness invariant is violated,
	// currently only the appointment (date, time) slot.
	ErrConflict = errors.New("conflict")

	ErrNotFound = errors.New("not found")
)

// isUniqueViolation recognizes a unique-constraint failure from either the
// gorm error translation layer or the raw Postgres SQLSTATE.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

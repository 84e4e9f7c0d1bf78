package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique key (email, slug) already exists.
var ErrDuplicate = errors.New("duplicate key")

// ErrAdminsExist is returned by CreateFirst once any admin has been created.
var ErrAdminsExist = errors.New("admins already exist")

const pgUniqueViolation = "23505"

// mapPgError converts driver errors into repository sentinels.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	return err
}

// validID reports whether id can be a primary key. Malformed ids are
// treated as not found rather than passed to the database.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// normalizeLookupErr maps malformed-uuid input errors (22P02) to ErrNoRows so
// a syntactically invalid id behaves like a missing row, not a server fault.
func normalizeLookupErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return pgx.ErrNoRows
	}
	return err
}

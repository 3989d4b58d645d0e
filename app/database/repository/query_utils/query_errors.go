package util

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun/driver/pgdriver"
)

func SkipNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// UniqueViolation is returned by write operations when postgres rejects a
// row for violating a unique constraint. Callers branch on it with
// errors.As and map Constraint to an API field name.
type UniqueViolation struct {
	Constraint string
	Err        error
}

func (e *UniqueViolation) Error() string {
	return fmt.Sprintf("unique constraint %q violated", e.Constraint)
}

func (e *UniqueViolation) Unwrap() error {
	return e.Err
}

// WrapUniqueViolation converts a pgdriver unique violation (error code
// 23505) into a UniqueViolation carrying the constraint name. Other
// errors pass through unchanged.
func WrapUniqueViolation(err error) error {
	postgresErr, ok := err.(pgdriver.Error)
	if !ok || postgresErr.Field('C') != "23505" { // unique_violation, see at: https://www.postgresql.org/docs/current/errcodes-appendix.html
		return err
	}
	return &UniqueViolation{
		Constraint: postgresErr.Field('n'),
		Err:        err,
	}
}

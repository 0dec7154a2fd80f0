// Package pgutil holds helpers shared by the gorm repositories: translation of
// PostgreSQL error codes into errs types and offset paging.
package pgutil

import (
	"errors"

	"parcels/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeStringTooLong       = "22001"
)

// constraintFields maps unique constraints onto the request field they guard.
var constraintFields = map[string]string{
	"users_email_key":             "email",
	"users_phone_number_key":      "phoneNumber",
	"departments_number_key":      "number",
	"package_categories_name_key": "name",
}

// pgError is the part of a server error both drivers expose.
type pgError struct {
	code       string
	constraint string
	column     string
}

func asPgError(err error) (pgError, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgError{code: pgxErr.Code, constraint: pgxErr.ConstraintName, column: pgxErr.ColumnName}, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgError{code: string(pqErr.Code), constraint: pqErr.Constraint, column: pqErr.Column}, true
	}

	return pgError{}, false
}

// Translate converts driver errors into the errs constraint types. Errors it
// does not recognise are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	pgErr, ok := asPgError(err)
	if !ok {
		return err
	}

	switch pgErr.code {
	case codeUniqueViolation:
		return errs.NewUniqueConstraintViolationError(pgErr.constraint, constraintFields[pgErr.constraint], err)
	case codeStringTooLong:
		return errs.NewMaxLengthExceededError(pgErr.column, err)
	case codeForeignKeyViolation:
		return errs.NewReferenceViolationError(pgErr.constraint, err)
	default:
		return err
	}
}

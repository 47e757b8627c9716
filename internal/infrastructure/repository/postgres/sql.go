package postgres

import (
	"database/sql"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

// pqClassIntegrityConstraint covers not_null, check, unique and foreign key violations.
const pqClassIntegrityConstraint = "23"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Class() == pqClassIntegrityConstraint
}

// wrapWriteError wraps err with msg and marks integrity failures with sentinel.
func wrapWriteError(err, sentinel error, msg string) error {
	if isConstraintViolation(err) {
		return crerr.Wrapf(errors.Join(sentinel, err), "%s", msg)
	}
	return crerr.Wrapf(err, "%s", msg)
}

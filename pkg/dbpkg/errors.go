package dbpkg

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"

	"github.com/go-petr/pet-loans/pkg/errorspkg"
	"github.com/lib/pq"
)

// Postgres error codes the store reacts to.
const (
	CodeUniqueViolation      = "23505"
	CodeCheckViolation       = "23514"
	CodeForeignKeyViolation  = "23503"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeLockNotAvailable     = "55P03"
	CodeQueryCanceled        = "57014"
)

// PQError returns the underlying *pq.Error if there is one.
func PQError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}

	return nil, false
}

// IsUniqueViolation reports whether err violated the given unique constraint.
func IsUniqueViolation(err error, constraint string) bool {
	pqErr, ok := PQError(err)
	return ok && pqErr.Code == CodeUniqueViolation && pqErr.Constraint == constraint
}

// IsCheckViolation reports whether err violated the given check constraint.
func IsCheckViolation(err error, constraint string) bool {
	pqErr, ok := PQError(err)
	return ok && pqErr.Code == CodeCheckViolation && pqErr.Constraint == constraint
}

// MapError translates a store failure into one of the retryable infrastructure errors
// or ErrInternal. Constraint violations that carry domain meaning must be handled
// by the caller before falling back to MapError.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return errorspkg.ErrUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errorspkg.ErrUnavailable
	}

	if errors.Is(err, errorspkg.ErrConflict) || errors.Is(err, errorspkg.ErrUnavailable) {
		return err
	}

	pqErr, ok := PQError(err)
	if !ok {
		return errorspkg.ErrInternal
	}

	switch pqErr.Code {
	case CodeSerializationFailure, CodeDeadlockDetected, CodeLockNotAvailable:
		return errorspkg.ErrConflict
	case CodeQueryCanceled:
		return errorspkg.ErrUnavailable
	}

	switch pqErr.Code.Class() {
	case "08", "53", "57", "58":
		return errorspkg.ErrUnavailable
	}

	return errorspkg.ErrInternal
}

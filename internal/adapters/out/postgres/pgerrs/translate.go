// Package pgerrs maps driver and GORM failures onto the errs taxonomy shared
// by every repository.
package pgerrs

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Translate wraps err as errs.TransientError when a retry could succeed:
// timeouts, cancellations, broken connections, serialization failures and
// deadlocks. Other errors are returned unchanged.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isTransient(err) {
		return errs.NewTransientError(operation, err)
	}
	return err
}

// IsUniqueViolation reports whether err comes from a unique index.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08: connection exception, 40: transaction rollback, 57P: operator intervention
		return strings.HasPrefix(pgErr.Code, "08") ||
			strings.HasPrefix(pgErr.Code, "40") ||
			strings.HasPrefix(pgErr.Code, "57P")
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

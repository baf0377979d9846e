package sqlite

import (
	"errors"
	"strings"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// constraintError maps a SQLite constraint violation to its domain error.
// It returns nil for errors that are not UNIQUE or FOREIGN KEY violations.
func constraintError(err error) error {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return domain.ErrAlreadyExists
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return domain.ErrInvalidReference
	}

	// Primary result code only: fall back to the message.
	if sqliteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return nil
	}
	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return domain.ErrAlreadyExists
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domain.ErrInvalidReference
	default:
		return nil
	}
}

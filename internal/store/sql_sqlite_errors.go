package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a SQLite unique-constraint
// violation (e.g. a duplicate users.name). Repositories translate such
// driver-level failures into [ErrNameAlreadyExists] so that callers never see
// raw store errors.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	// if sqlite returns a classified error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}

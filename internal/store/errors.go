package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNameAlreadyExists is returned when creating or renaming a user fails
	// because the display name is already taken (users.name is UNIQUE).
	ErrNameAlreadyExists = errors.New("name already exists")

	// ErrNoUserWasFound is returned when a lookup by (id, password) matches no
	// user record. It is the authorization gate for every write path: the
	// registry maps it to an authentication failure instead of leaking store
	// details.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCommentNotFound is returned when a pagination cursor references a
	// comment id that does not exist.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrCommentNotSaved is returned when a comment INSERT completes without
	// error but reports zero affected rows.
	ErrCommentNotSaved = errors.New("comment was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails for a reason other than a constraint violation.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

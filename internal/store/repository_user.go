package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles user account creation, credential lookup, and renames against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the store-assigned ID.
//
// Error handling:
//   - SQLite unique-constraint violation on users.name → [ErrNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	// create user in db
	result, err := r.db.ExecContext(ctx, createUser, user.Name, user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		if isUniqueViolation(err) {
			return models.User{}, ErrNameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// pick up the autoincremented id
	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: reading last insert id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.ID = id

	return user, nil
}

// FindUserByCredentials retrieves the user whose id AND password match the
// given pair exactly.
//
// The stored credential is not read back: the password in the returned record
// is the one supplied by the caller, echoed as given. A miss on either field
// yields [ErrNoUserWasFound]; callers must not learn which of the two was
// wrong.
func (r *userRepository) FindUserByCredentials(ctx context.Context, id int64, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	var name string
	row := r.db.QueryRowContext(ctx, findUserByCredentials, id, password)

	if err := row.Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByCredentials").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.User{
		ID:       id,
		Name:     name,
		Password: password,
	}, nil
}

// UpdateUserName persists a new display name for the user with the given id.
// The credential column is untouched: renames never rotate credentials.
//
// Error handling:
//   - SQLite unique-constraint violation on users.name → [ErrNameAlreadyExists].
//   - Zero affected rows (unknown id) → [ErrNoUserWasFound].
func (r *userRepository) UpdateUserName(ctx context.Context, id int64, name string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserName, name, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserName").Msg("error: update failed")

		if isUniqueViolation(err) {
			return ErrNameAlreadyExists
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "*userRepository.UpdateUserName").Int64("id", id).Msg("no user row was updated")
		return ErrNoUserWasFound
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/internal/utils"
	"github.com/MKhiriev/go-comment-board/models"
)

// userService is the concrete implementation of [UserRegistry].
// It handles registration, credential checks, and renames using a
// UserRepository for persistence.
type userService struct {
	// userRepository is the data-access layer used to create, look up, and
	// rename users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserRegistry] wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserRegistry {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new board account.
//
// It validates that the display name is non-empty, generates a 128-bit hex
// credential, and delegates persistence to the UserRepository. The credential
// is generated exactly once here and never again.
//
// Returns the persisted user (with the store-assigned ID and the plaintext
// credential) or:
//   - ErrInvalidDataProvided if the name is empty.
//   - store.ErrNameAlreadyExists (wrapped) if the name is taken; the
//     original holder's credential is unaffected.
func (s *userService) Register(ctx context.Context, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("empty user name provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user := models.User{
		Name:     name,
		Password: utils.GenerateCredential(),
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("name", name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies possession of a user's credential.
//
// The lookup matches id and password together; the returned record has the
// name populated and the password echoed back as supplied. Every failure
// mode (unknown id, wrong credential, empty input) collapses into
// ErrUnauthenticated so callers cannot distinguish which part was wrong.
func (s *userService) Authenticate(ctx context.Context, id int64, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if id <= 0 || password == "" {
		return models.User{}, ErrUnauthenticated
	}

	foundUser, err := s.userRepository.FindUserByCredentials(ctx, id, password)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Int64("id", id).Msg("credential check failed")
			return models.User{}, ErrUnauthenticated
		}

		log.Err(err).Int64("id", id).Msg("user search by credentials failed")
		return models.User{}, fmt.Errorf("user search by credentials failed: %w", err)
	}

	return foundUser, nil
}

// Rename changes the authenticated user's display name.
//
// Authentication failure is a normal error path (ErrUnauthenticated), not an
// invariant violation. The rename persists only the name; the credential
// issued at registration stays valid.
//
// Returns the updated user or:
//   - ErrInvalidDataProvided if the new name is empty.
//   - ErrUnauthenticated if the credential check fails.
//   - store.ErrNameAlreadyExists (wrapped) if the new name collides.
func (s *userService) Rename(ctx context.Context, id int64, password, newName string) (models.User, error) {
	log := logger.FromContext(ctx)

	if newName == "" {
		log.Error().Int64("id", id).Msg("empty new user name provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.Authenticate(ctx, id, password)
	if err != nil {
		return models.User{}, err
	}

	if err := s.userRepository.UpdateUserName(ctx, id, newName); err != nil {
		log.Err(err).Int64("id", id).Str("new_name", newName).Msg("user rename ended with error")
		return models.User{}, fmt.Errorf("user rename ended with error: %w", err)
	}

	user.Name = newName

	return user, nil
}

package store

import (
	"context"

	"github.com/MKhiriev/go-comment-board/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the store-assigned
	// ID. Returns ErrNameAlreadyExists when the name is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByCredentials looks a user up by (id, password). Returns
	// ErrNoUserWasFound when no record matches exactly.
	FindUserByCredentials(ctx context.Context, id int64, password string) (models.User, error)

	// UpdateUserName changes a user's display name. Returns
	// ErrNameAlreadyExists on collision and ErrNoUserWasFound when the id
	// does not exist.
	UpdateUserName(ctx context.Context, id int64, name string) error
}

// CommentRepository is the data-access contract for the comments table.
type CommentRepository interface {
	// CreateComment persists a new comment row and returns the comment with
	// its store-assigned ID.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// FindCommentTime resolves a pagination cursor to the stored creation
	// time of the referenced comment. Returns ErrCommentNotFound for an
	// unknown id.
	FindCommentTime(ctx context.Context, commentID int64) (int64, error)

	// ListByItem returns up to one page of an item's comments strictly newer
	// than timeThreshold, oldest first, each with its author populated.
	// An empty result is a valid page, never an error.
	ListByItem(ctx context.Context, itemID, timeThreshold int64) ([]models.Comment, error)
}

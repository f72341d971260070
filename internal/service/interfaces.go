package service

import (
	"context"

	"github.com/MKhiriev/go-comment-board/models"
)

// UserRegistry manages board accounts and is the single authority on whether
// a caller may act as a given user.
type UserRegistry interface {
	// Register creates a user with the given display name and a freshly
	// generated credential. The returned record is the only place the
	// plaintext credential is ever exposed.
	Register(ctx context.Context, name string) (models.User, error)

	// Authenticate returns the user iff the (id, password) pair matches the
	// credential generated at registration. Any mismatch or unknown id yields
	// ErrUnauthenticated, a normal recoverable control path used as the
	// authorization gate by every write operation.
	Authenticate(ctx context.Context, id int64, password string) (models.User, error)

	// Rename changes the user's display name after authenticating the
	// caller. The credential is never rotated by a rename.
	Rename(ctx context.Context, id int64, password, newName string) (models.User, error)
}

// CommentLedger owns the append-only comment log and its pagination.
type CommentLedger interface {
	// CreateComment authenticates the draft's author, stamps the creation
	// time, and persists the comment. The returned comment carries the full
	// author record.
	CreateComment(ctx context.Context, draft models.CommentDraft) (models.Comment, error)

	// ListComments returns up to one page of the item's comments newer than
	// the comment identified by lastCommentID (0 means "from the
	// beginning"), oldest first.
	ListComments(ctx context.Context, itemID, lastCommentID int64) ([]models.Comment, error)
}

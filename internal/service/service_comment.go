package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/models"
)

// commentService is the concrete implementation of [CommentLedger].
// It authenticates authors through the [UserRegistry] before every write and
// delegates persistence and page reads to a CommentRepository.
type commentService struct {
	// commentRepository is the data-access layer for the comment log.
	commentRepository store.CommentRepository

	// registry performs the credential check that gates every write.
	registry UserRegistry

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCommentService constructs a [CommentLedger] wired to the given
// repository and registry.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCommentService(commentRepository store.CommentRepository, registry UserRegistry, logger *logger.Logger) CommentLedger {
	return &commentService{
		commentRepository: commentRepository,
		registry:          registry,
		logger:            logger,
	}
}

// CreateComment appends a comment to an item's log.
//
// The author is authenticated first; a failed check surfaces as
// ErrUnauthenticated and is fully recoverable. On success the ledger stamps
// the current time in unix seconds, the pagination key, and persists the row.
// The draft's parent reference is accepted but not persisted; the returned
// comment always reports an absent parent and carries the full author record.
func (s *commentService) CreateComment(ctx context.Context, draft models.CommentDraft) (models.Comment, error) {
	log := logger.FromContext(ctx)

	user, err := s.registry.Authenticate(ctx, draft.UserID, draft.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			log.Debug().Int64("user_id", draft.UserID).Msg("comment author failed authentication")
			return models.Comment{}, err
		}

		log.Err(err).Int64("user_id", draft.UserID).Msg("comment author authentication errored")
		return models.Comment{}, fmt.Errorf("comment author authentication errored: %w", err)
	}

	comment := models.Comment{
		ItemID:   draft.ItemID,
		ParentID: draft.ParentID,
		UserID:   user.ID,
		Message:  draft.Message,
		Time:     time.Now().Unix(),
	}

	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Int64("item_id", draft.ItemID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	created.User = user

	return created, nil
}

// ListComments returns one page of an item's comments for incremental
// polling.
//
// A lastCommentID of 0 means "no cursor": the time threshold is the epoch and
// the page starts at the item's oldest comment. Otherwise the cursor resolves
// to that comment's stored time and only strictly newer comments are
// eligible. The cursor compares times, not ids, so comments sharing a
// timestamp with the cursor comment are excluded from the next page.
//
// An item with no eligible comments yields an empty page, never an error; an
// unknown cursor yields store.ErrCommentNotFound.
func (s *commentService) ListComments(ctx context.Context, itemID, lastCommentID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	var timeThreshold int64

	if lastCommentID != 0 {
		t, err := s.commentRepository.FindCommentTime(ctx, lastCommentID)
		if err != nil {
			if errors.Is(err, store.ErrCommentNotFound) {
				log.Debug().Int64("last_comment_id", lastCommentID).Msg("unknown pagination cursor")
				return nil, err
			}

			log.Err(err).Int64("last_comment_id", lastCommentID).Msg("cursor resolution failed")
			return nil, fmt.Errorf("cursor resolution failed: %w", err)
		}
		timeThreshold = t
	}

	comments, err := s.commentRepository.ListByItem(ctx, itemID, timeThreshold)
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("comment listing ended with error")
		return nil, fmt.Errorf("comment listing ended with error: %w", err)
	}

	return comments, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/models"
)

// commentRepository is the SQLite-backed implementation of
// [CommentRepository]. It executes all comment writes and page reads against
// the "comments" table using the injected [*DB] handle.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (item_id, comment_id, etc.).
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment row and returns the comment with its
// store-assigned, monotonically increasing ID.
//
// The parent reference is stored as NULL regardless of what the caller
// supplied: the creation path does not materialise threading, so replies are
// indistinguishable from top-level comments on read.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createComment,
		comment.ItemID, nil, comment.UserID, comment.Message, comment.Time)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Int64("item_id", comment.ItemID).
			Msg("error: insert failed")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "*commentRepository.CreateComment").Msg("comment row was not saved")
		return models.Comment{}, ErrCommentNotSaved
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: reading last insert id")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	comment.ID = id
	comment.ParentID = nil

	return comment, nil
}

// FindCommentTime resolves a pagination cursor to the creation time stored
// for the referenced comment.
//
// Returns [ErrCommentNotFound] when the id is unknown so the dispatcher can
// reject a stale or fabricated cursor instead of failing opaquely.
func (r *commentRepository) FindCommentTime(ctx context.Context, commentID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var t int64
	row := r.db.QueryRowContext(ctx, findCommentTime, commentID)

	if err := row.Scan(&t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCommentNotFound
		}

		log.Err(err).
			Str("func", "*commentRepository.FindCommentTime").
			Int64("comment_id", commentID).
			Msg("error: scanning error")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

// ListByItem returns up to one page of the item's comments with time strictly
// greater than timeThreshold, ordered by time ascending, each joined with its
// authoring user.
//
// A missing item or an exhausted page yields an empty slice, never an error.
func (r *commentRepository) ListByItem(ctx context.Context, itemID, timeThreshold int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCommentsQuery(itemID, timeThreshold)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.ListByItem").
			Int64("item_id", itemID).
			Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.ListByItem").
			Int64("item_id", itemID).
			Int64("time_threshold", timeThreshold).
			Msg("failed to execute query for listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Comment, 0, commentsPageSize)

	for rows.Next() {
		var comment models.Comment
		var author models.User

		scanErr := rows.Scan(
			&author.ID,
			&author.Name,
			&comment.ID,
			&comment.Message,
			&comment.Time,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*commentRepository.ListByItem").
				Int64("item_id", itemID).
				Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		comment.ItemID = itemID
		comment.UserID = author.ID
		comment.User = author

		results = append(results, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*commentRepository.ListByItem").
			Int64("item_id", itemID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

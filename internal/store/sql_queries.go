package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, password)
    VALUES (?, ?);`

	findUserByCredentials = `SELECT name
    FROM users
    WHERE id = ? AND password = ?;`

	updateUserName = `UPDATE users
    SET name = ?
    WHERE id = ?;`

	createComment = `INSERT INTO comments (itemId, parentId, userId, message, time)
    VALUES (?, ?, ?, ?, ?);`

	findCommentTime = `SELECT time
    FROM comments
    WHERE id = ?;`
)

// commentsPageSize is the fixed page size of the `comments` operation.
const commentsPageSize = 10

// buildListCommentsQuery builds the comment-page SELECT: comments of one
// item strictly newer than timeThreshold, joined with their authors, oldest
// first, capped at [commentsPageSize].
//
// The parent reference is deliberately not selected: the read path does not
// resolve threading, so every returned comment appears top-level.
func buildListCommentsQuery(itemID, timeThreshold int64) (string, []any, error) {
	query, args, err := sq.
		Select("u.id", "u.name", "c.id", "c.message", "c.time").
		From("comments c").
		InnerJoin("users u ON u.id = c.userId").
		Where(sq.Eq{"c.itemId": itemID}).
		Where(sq.Gt{"c.time": timeThreshold}).
		OrderBy("c.time ASC").
		Limit(commentsPageSize).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

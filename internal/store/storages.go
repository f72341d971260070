package store

import "github.com/MKhiriev/go-comment-board/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	CommentRepository CommentRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
	}
}

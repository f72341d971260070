package service

import (
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/store"
)

// Services aggregates the application's domain services for injection into
// the transport layer.
type Services struct {
	UserRegistry  UserRegistry
	CommentLedger CommentLedger
}

// NewServices wires the registry and the ledger to their repositories.
// The ledger authenticates through the same registry instance the dispatcher
// uses, so there is a single credential-checking path in the process.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	registry := NewUserService(storages.UserRepository, logger)

	return &Services{
		UserRegistry:  registry,
		CommentLedger: NewCommentService(storages.CommentRepository, registry, logger),
	}
}

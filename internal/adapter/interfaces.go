// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the comment board server.
//
// The primary abstraction is [BoardClient], which decouples callers from the
// wire protocol (a single form-encoded endpoint multiplexed on an "op" field).
// The package ships an HTTP implementation ([NewHTTPBoardClient]) together
// with [CommentPoller], a background job that repeatedly fetches new comment
// pages for one item.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-comment-board/models"
)

// BoardClient defines transport-agnostic communication with the comment board
// server. Implementations are responsible for serialisation, credential
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BoardClient interface {
	// SetCredentials stores the (id, password) pair attached to all
	// subsequent authenticated operations. It is called automatically after
	// a successful Register.
	SetCredentials(id int64, password string)

	// Credentials returns the currently stored (id, password) pair, or
	// zero values if none has been set yet.
	Credentials() (int64, string)

	// Register creates a board account with the given display name. On
	// success the server-generated credential is stored via SetCredentials
	// and the returned user carries it in Password. This is the only time
	// the server ever discloses it.
	Register(ctx context.Context, name string) (models.User, error)

	// Rename changes the display name of the account whose credentials are
	// currently stored.
	Rename(ctx context.Context, newName string) (models.User, error)

	// PostComment creates a comment on the given item using the stored
	// credentials. parentID may be nil for a top-level comment; the server
	// accepts the field but flattens all threads, so the returned comment
	// always reports an absent parent.
	PostComment(ctx context.Context, itemID int64, parentID *int64, message string) (models.Comment, error)

	// Comments fetches one page of the item's comments newer than the
	// comment identified by lastID (0 means "from the beginning"),
	// oldest first.
	Comments(ctx context.Context, itemID, lastID int64) ([]models.Comment, error)
}

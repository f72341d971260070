// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserCreatedResponse is the wire shape of a successful `user` operation.
// It is the single place where the plaintext credential leaves the service;
// the creator sees it exactly once, at registration time.
type UserCreatedResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserResponse is the wire shape of a user on every path except
// registration. The credential is deliberately absent.
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CommentResponse is the wire shape of a comment for both the `comment` and
// `comments` operations. ParentID serialises as null when absent and Time is
// numeric seconds since the epoch.
type CommentResponse struct {
	ID       int64        `json:"id"`
	ItemID   int64        `json:"itemId"`
	ParentID *int64       `json:"parentId"`
	User     UserResponse `json:"user"`
	Message  string       `json:"message"`
	Time     float64      `json:"time"`
}

// NewUserCreatedResponse builds the registration response for a freshly
// created user, credential included.
func NewUserCreatedResponse(u User) UserCreatedResponse {
	return UserCreatedResponse{
		ID:       u.ID,
		Name:     u.Name,
		Password: u.Password,
	}
}

// NewUserResponse builds the credential-free wire shape of a user.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:   u.ID,
		Name: u.Name,
	}
}

// NewCommentResponse builds the wire shape of a comment with its author
// embedded as a credential-free [UserResponse].
func NewCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:       c.ID,
		ItemID:   c.ItemID,
		ParentID: c.ParentID,
		User:     NewUserResponse(c.User),
		Message:  c.Message,
		Time:     float64(c.Time),
	}
}

// NewCommentsResponse maps a page of comments to their wire shapes.
// A nil or empty page yields an empty (non-nil) slice so that the dispatcher
// serialises `[]` rather than `null`.
func NewCommentsResponse(comments []Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, NewCommentResponse(c))
	}
	return responses
}

package http

import (
	"fmt"
	"net/url"
	"strconv"
)

// Per-operation parameter structs decoded from the request's form values.
// Decoding is strict about presence and integer syntax; value-level rules
// (empty names, credential checks) belong to the service layer.

type createUserParams struct {
	Name string
}

type renameUserParams struct {
	UserID   int64
	Password string
	Name     string
}

type createCommentParams struct {
	UserID   int64
	Password string
	ItemID   int64
	ParentID *int64
	Message  string
}

type listCommentsParams struct {
	ItemID        int64
	LastCommentID int64
}

func parseCreateUserParams(values url.Values) (createUserParams, error) {
	name, err := requiredField(values, "name")
	if err != nil {
		return createUserParams{}, err
	}

	return createUserParams{Name: name}, nil
}

func parseRenameUserParams(values url.Values) (renameUserParams, error) {
	userID, err := requiredIntField(values, "id")
	if err != nil {
		return renameUserParams{}, err
	}

	password, err := requiredField(values, "password")
	if err != nil {
		return renameUserParams{}, err
	}

	name, err := requiredField(values, "name")
	if err != nil {
		return renameUserParams{}, err
	}

	return renameUserParams{UserID: userID, Password: password, Name: name}, nil
}

func parseCreateCommentParams(values url.Values) (createCommentParams, error) {
	// Author credentials travel as userId/userPassword here, unlike the
	// username operation's id/password pair.
	userID, err := requiredIntField(values, "userId")
	if err != nil {
		return createCommentParams{}, err
	}

	password, err := requiredField(values, "userPassword")
	if err != nil {
		return createCommentParams{}, err
	}

	itemID, err := requiredIntField(values, "itemId")
	if err != nil {
		return createCommentParams{}, err
	}

	// The field must be present even though replies are flat: an absent key
	// is a protocol error, while an empty or non-numeric value means
	// "top level".
	rawParent, err := requiredRawField(values, "parentId")
	if err != nil {
		return createCommentParams{}, err
	}

	var parentID *int64
	if parsed, parseErr := strconv.ParseInt(rawParent, 10, 64); parseErr == nil {
		parentID = &parsed
	}

	message, err := requiredField(values, "message")
	if err != nil {
		return createCommentParams{}, err
	}

	return createCommentParams{
		UserID:   userID,
		Password: password,
		ItemID:   itemID,
		ParentID: parentID,
		Message:  message,
	}, nil
}

func parseListCommentsParams(values url.Values) (listCommentsParams, error) {
	itemID, err := requiredIntField(values, "itemId")
	if err != nil {
		return listCommentsParams{}, err
	}

	lastCommentID, err := requiredIntField(values, "lastId")
	if err != nil {
		return listCommentsParams{}, err
	}

	return listCommentsParams{ItemID: itemID, LastCommentID: lastCommentID}, nil
}

func requiredField(values url.Values, key string) (string, error) {
	if !values.Has(key) {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedRequest, key)
	}
	return values.Get(key), nil
}

// requiredRawField is requiredField under a name that makes call sites
// explicit about tolerating any value, including an empty one.
func requiredRawField(values url.Values, key string) (string, error) {
	return requiredField(values, key)
}

func requiredIntField(values url.Values, key string) (int64, error) {
	raw, err := requiredField(values, key)
	if err != nil {
		return 0, err
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q is not an integer", ErrMalformedRequest, key)
	}

	return parsed, nil
}

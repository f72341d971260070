package models

// Comment represents a single message attached to an external item.
//
// Comments are append-only: once created they are never edited or deleted by
// this service. ID grows monotonically with creation order and doubles as the
// client-side pagination cursor (`lastId`).
type Comment struct {
	// ID is the store-assigned unique identifier. Immutable,
	// monotonically increasing with creation order.
	ID int64

	// ItemID identifies the external thing being commented on. It is opaque
	// to this service and never validated against another table.
	ItemID int64

	// ParentID optionally references another comment for threading.
	// The current creation path accepts it from callers but persists NULL;
	// read paths therefore always see it absent.
	ParentID *int64

	// UserID is the authoring user. Authenticated at write time rather than
	// enforced with a store-level constraint.
	UserID int64

	// Message is the free-text body. No length limit is enforced.
	Message string

	// Time is the creation timestamp in unix seconds, assigned by the ledger
	// at write time. It is the sort and pagination key.
	Time int64

	// User is the author record populated on read paths (join with users).
	// Its Password field is always empty except on the write path, where the
	// credential supplied by the caller is echoed back.
	User User
}

// CommentDraft carries the caller-supplied fields of a comment creation
// request before the ledger has authenticated the author and stamped the
// server-assigned fields.
type CommentDraft struct {
	ItemID   int64
	ParentID *int64
	UserID   int64
	Password string
	Message  string
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

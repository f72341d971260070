package models

// User represents a registered board participant.
//
// Accounts are anonymous-ish: a user owns nothing but a display name and the
// opaque credential generated at registration time. Possession of the
// (ID, Password) pair is the only authorization gate for write operations.
type User struct {
	// ID is the store-assigned unique identifier. Immutable.
	ID int64 `json:"id"`

	// Name is the unique, mutable display name.
	Name string `json:"name"`

	// Password is the opaque credential issued once at registration
	// (128-bit random, hex-encoded). It is write-once, never regenerated,
	// and must never be serialised on any read path; only the
	// registration response exposes it, via [UserCreatedResponse].
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

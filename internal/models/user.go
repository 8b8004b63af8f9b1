// Package models defines the records persisted by the simulated backend and
// the inputs accepted by its services.
package models

import "time"

// User is a stored user record. Ids are positive, unique, and never reused;
// usernames are unique among all users (exact match).
//
// PasswordHash is write-only material: it lives in the persisted blob but is
// stripped from every projection a service returns.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	PasswordHash string    `json:"passwordHash,omitempty"`
}

// Public returns a copy of the user without write-only fields.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// UserCreate is the input accepted by Users.Create.
type UserCreate struct {
	Username string
	Password string
}

// UserPatch lists exactly the user fields an update may change.
// A nil field is left untouched.
type UserPatch struct {
	Username *string
	Password *string
	Active   *bool
}

package models

// Session is the single persisted token/user pair. At most one session exists
// at a time; a new login silently replaces the previous one.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

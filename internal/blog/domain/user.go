package domain

import "time"

// User is an administrative account for the blog. PasswordHash is an
// Argon2id encoded string and is never exposed to templates or logs.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string

	// ResetPasswordRequired forces the password reset flow before the
	// account is considered usable. Cleared on a successful reset.
	ResetPasswordRequired bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
	"github.com/aussiebroadwan/inkpress/internal/blog/store"
	"github.com/aussiebroadwan/inkpress/pkg/cryptox"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Callers must not distinguish the two, otherwise the login form
// leaks which usernames exist.
var ErrInvalidCredentials = errors.New("service: invalid credentials")

type AuthService struct {
	Store store.Store
}

// VerifyCredentials looks up the user and checks the password against the
// stored Argon2id hash. Unknown user and failed verification collapse into
// the same ErrInvalidCredentials; anything else is an internal failure.
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword rehashes the password for the given user, clears the
// mandatory-reset flag and persists the record. The caller has already
// validated the new password (presence, match, minimum length).
func (s *AuthService) ChangePassword(ctx context.Context, userID, password string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hash
	user.ResetPasswordRequired = false

	if err := s.Store.Users().SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

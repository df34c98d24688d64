package app

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
	"github.com/aussiebroadwan/inkpress/pkg/cryptox"
	"github.com/aussiebroadwan/inkpress/pkg/idx"
)

// ensureAdminUser seeds the first admin account on an empty database. The
// generated password is logged once and the account is flagged for a
// mandatory reset, so the logged value stops working after first login.
func (app *Application) ensureAdminUser() error {
	ctx := context.Background()

	empty, err := app.db.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if !empty {
		return nil
	}

	password, err := cryptox.GeneratePassword()
	if err != nil {
		return fmt.Errorf("failed to generate admin password: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := domain.User{
		ID:                    idx.New().String(),
		Username:              "admin",
		Name:                  "Administrator",
		PasswordHash:          hash,
		ResetPasswordRequired: true,
	}
	if err := app.db.Users().CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	app.logger.Warn("created initial admin user; change this password after first login",
		"username", admin.Username,
		"password", password,
	)
	return nil
}

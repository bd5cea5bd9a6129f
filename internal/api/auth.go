package api

import (
	"context"

	"github.com/freshkart/freshkart/internal/model"
)

// AuthAPI groups the authentication and profile endpoints.
type AuthAPI struct {
	c *Client
}

// Login exchanges credentials for a token and the customer profile.
func (a *AuthAPI) Login(ctx context.Context, form model.LoginForm) (model.AuthData, error) {
	var data model.AuthData
	err := a.c.post(ctx, "/auth/login", form, &data)
	return data, err
}

// Register creates an account and returns a token plus the new customer.
func (a *AuthAPI) Register(ctx context.Context, form model.RegisterForm) (model.AuthData, error) {
	var data model.AuthData
	err := a.c.post(ctx, "/auth/register", form, &data)
	return data, err
}

// Logout invalidates the token server-side. Local session cleanup happens
// regardless of the outcome.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.post(ctx, "/auth/logout", nil, nil)
}

// Profile fetches the current customer profile.
func (a *AuthAPI) Profile(ctx context.Context) (model.User, error) {
	var user model.User
	err := a.c.get(ctx, "/auth/profile", nil, &user)
	return user, err
}

// UpdateProfile applies the patch and returns the updated profile.
func (a *AuthAPI) UpdateProfile(ctx context.Context, patch model.ProfilePatch) (model.User, error) {
	var user model.User
	err := a.c.put(ctx, "/auth/profile", patch, &user)
	return user, err
}

// ChangePassword replaces the account password.
func (a *AuthAPI) ChangePassword(ctx context.Context, current, updated string) error {
	body := map[string]string{"currentPassword": current, "newPassword": updated}
	return a.c.put(ctx, "/auth/change-password", body, nil)
}

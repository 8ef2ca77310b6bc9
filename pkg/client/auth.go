package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Register creates a new account.
func (c *Client) Register(ctx context.Context, nickname, email, password string) (*User, error) {
	body := map[string]string{
		"nickname": nickname,
		"email":    email,
		"password": password,
	}

	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/register", body, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// Login authenticates and attaches the issued bearer token to the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var env loginEnvelope
	if err := c.do(ctx, http.MethodPost, "/login", body, &env); err != nil {
		return nil, "", err
	}

	c.token = env.Token
	return &env.User, env.Token, nil
}

// Logout revokes the attached token and clears it from the client.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// ForgotPassword requests a password reset for the email and returns
// the issued reset token.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}

	var env forgotPasswordEnvelope
	if err := c.do(ctx, http.MethodPost, "/forgot-password", body, &env); err != nil {
		return "", err
	}
	return env.ResetToken, nil
}

// ResetPassword overwrites the account password. token may be empty.
func (c *Client) ResetPassword(ctx context.Context, email, password, confirmation, token string) error {
	body := map[string]string{
		"email":                 email,
		"password":              password,
		"password_confirmation": confirmation,
	}
	if token != "" {
		body["token"] = token
	}

	return c.do(ctx, http.MethodPost, "/reset-password", body, nil)
}

// GetUserByEmail looks a user up by email.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(email), nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// ListUsers returns every registered user.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var env usersEnvelope
	if err := c.do(ctx, http.MethodGet, "/users", nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

// UpdateUser rewrites a user profile; password empty keeps the current one.
func (c *Client) UpdateUser(ctx context.Context, id uint, nickname, email, password string) (*User, error) {
	body := map[string]string{
		"nickname": nickname,
		"email":    email,
	}
	if password != "" {
		body["password"] = password
	}

	var env userEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), body, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

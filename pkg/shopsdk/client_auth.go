package shopsdk

import (
	"context"
	"net/http"
)

// Register creates a password account and stores the session cookie.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	d, err := callData[UserData](ctx, c, http.MethodPost, "/api/auth/register", req, http.StatusCreated)
	return d.User, err
}

// Login authenticates with email and password and stores the session cookie.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	d, err := callData[UserData](ctx, c, http.MethodPost, "/api/auth/login",
		LoginRequest{Email: email, Password: password}, http.StatusOK)
	return d.User, err
}

// FirebaseLogin exchanges a Firebase ID token for a storefront session.
func (c *Client) FirebaseLogin(ctx context.Context, idToken string) (User, error) {
	d, err := callData[UserData](ctx, c, http.MethodPost, "/api/auth/firebase-login",
		FirebaseLoginRequest{IDToken: idToken}, http.StatusOK)
	return d.User, err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := callMessage(ctx, c, http.MethodPost, "/api/auth/logout", nil, http.StatusOK)
	return err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := callMessage(ctx, c, http.MethodPost, "/api/auth/forgot-password",
		ForgotPasswordRequest{Email: email}, http.StatusOK)
	return err
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	_, err := callMessage(ctx, c, http.MethodPost, "/api/auth/reset-password", req, http.StatusOK)
	return err
}

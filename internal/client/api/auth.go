package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/validate"
)

func (c *HTTPClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.MessageResponse, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, validationFailed(opRegister, err)
	}
	var out models.MessageResponse
	err := c.doJSON(ctx, request{op: opRegister, method: http.MethodPost, path: []string{"auth", "register"}, body: creds}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login returns the raw answer; checking that both token and user are
// present is left to the session layer, which owns persistence.
func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, validationFailed(opLogin, err)
	}
	var out models.AuthResponse
	err := c.doJSON(ctx, request{op: opLogin, method: http.MethodPost, path: []string{"auth", "login"}, body: creds}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error) {
	if err := validate.Var("email", email, "required,email"); err != nil {
		return nil, validationFailed(opForgotPassword, err)
	}
	var out models.ForgotPasswordResponse
	body := map[string]string{"email": email}
	err := c.doJSON(ctx, request{op: opForgotPassword, method: http.MethodPost, path: []string{"auth", "forgot-password"}, body: body}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.MessageResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationFailed(opResetPassword, err)
	}
	var out models.MessageResponse
	err := c.doJSON(ctx, request{op: opResetPassword, method: http.MethodPost, path: []string{"auth", "reset-password"}, body: req}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

package services

import (
	"context"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/logging"
)

// AccountService covers password recovery. Login, registration and logout
// belong to the session manager.
type AccountService interface {
	// ForgotPassword asks the backend to send a reset code. Development
	// backends echo the code in the response.
	ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error)
}

type accountService struct {
	auth api.AuthClient
	log  logging.Logger
}

func NewAccountService(auth api.AuthClient, log logging.Logger) AccountService {
	if log == nil {
		log = logging.Nop()
	}
	return &accountService{auth: auth, log: log.With("component", "account")}
}

func (s *accountService) ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error) {
	resp, err := s.auth.ForgotPassword(ctx, email)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "password reset requested", "dev_code", resp.VerificationCode != "")
	return resp, nil
}

// ResetPassword returns the backend's confirmation message.
func (s *accountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	resp, err := s.auth.ResetPassword(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/medfinder/internal/client/credstore"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
)

type fakeAuth struct {
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.MessageResponse
	registerErr  error

	loginCalls    []models.LoginCredentials
	registerCalls int
	// onLogin runs inside Login, while the operation is in flight.
	onLogin func()
}

func (f *fakeAuth) Register(ctx context.Context, creds models.RegisterCredentials) (*models.MessageResponse, error) {
	f.registerCalls++
	return f.registerResp, f.registerErr
}

func (f *fakeAuth) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	f.loginCalls = append(f.loginCalls, creds)
	if f.onLogin != nil {
		f.onLogin()
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuth) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.MessageResponse, error) {
	return nil, errors.New("not implemented")
}

// memStore is an in-memory CredentialStore with injectable failures.
type memStore struct {
	mu      sync.Mutex
	creds   credstore.Credentials
	loadErr error
	saveErr error
	clrErr  error
	clears  int
}

func (s *memStore) Load(ctx context.Context) (credstore.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, s.loadErr
}

func (s *memStore) Save(ctx context.Context, c credstore.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.creds = c
	return nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clrErr != nil {
		return s.clrErr
	}
	s.creds = credstore.Credentials{}
	return nil
}

func (s *memStore) snapshot() credstore.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds
}

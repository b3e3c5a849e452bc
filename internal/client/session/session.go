// Package session owns the authenticated identity of the client: who is
// logged in and with which bearer token.
//
// The Manager is the single source of truth. It mirrors the on-device
// credential record and follows two rules:
//   - the credential record is written before the in-memory state changes,
//     so a failed write never leaves the client believing it is logged in;
//   - a record that is only half present or cannot be decoded is wiped on
//     hydration and the client starts logged out.
package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/client/credstore"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
)

// Session is an immutable snapshot of the authentication state.
type Session struct {
	User            *models.User
	Token           string
	IsLoading       bool
	IsAuthenticated bool
	// LastError describes the most recent failure, "" after a success.
	LastError string
	// ExpiresAt is read from the token when it is a JWT. It is shown to
	// the user only and never logs anyone out.
	ExpiresAt time.Time
}

// IsAdmin reports whether the logged-in user may create reports.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated && s.User.IsAdmin()
}

// Store is the session surface consumed by the guard, the services and the
// CLI.
type Store interface {
	Session() Session
	Hydrate(ctx context.Context) error
	Login(ctx context.Context, creds models.LoginCredentials) error
	Register(ctx context.Context, creds models.RegisterCredentials) error
	Logout(ctx context.Context) error
	// Subscribe registers fn to receive every new snapshot and returns a
	// function that removes the subscription.
	Subscribe(fn func(Session)) (unsubscribe func())
}

// CredentialStore persists the token and user profile as one record.
type CredentialStore interface {
	Load(ctx context.Context) (credstore.Credentials, error)
	Save(ctx context.Context, c credstore.Credentials) error
	Clear(ctx context.Context) error
}

var _ CredentialStore = (*credstore.Store)(nil)

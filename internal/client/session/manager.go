package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/credstore"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/validate"
	"github.com/dmitrijs2005/medfinder/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrStorage = credstore.ErrStorage
	// ErrInvalidResponse is returned when the backend accepted the request
	// but its answer lacks the fields the session needs.
	ErrInvalidResponse = api.ErrInvalidResponse
)

// Manager implements Store on top of an AuthClient and a CredentialStore.
// It also serves as the api.TokenSource of the HTTP client.
type Manager struct {
	auth  api.AuthClient
	store CredentialStore
	log   logging.Logger

	// op serializes Hydrate, Login, Register and Logout.
	op sync.Mutex

	mu      sync.RWMutex
	state   Session
	subs    map[int]func(Session)
	nextSub int
}

var (
	_ Store           = (*Manager)(nil)
	_ api.TokenSource = (*Manager)(nil)
)

func NewManager(auth api.AuthClient, store CredentialStore, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		auth:  auth,
		store: store,
		log:   log.With("component", "session"),
		subs:  make(map[int]func(Session)),
	}
}

func (m *Manager) Session() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Token returns the current bearer token. The HTTP client calls it on every
// request, so a logout takes effect immediately.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

func (m *Manager) Subscribe(fn func(Session)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// update applies fn to the state and notifies subscribers outside the lock.
func (m *Manager) update(fn func(s *Session)) {
	m.mu.Lock()
	fn(&m.state)
	snapshot := m.state
	subs := make([]func(Session), 0, len(m.subs))
	for _, s := range m.subs {
		subs = append(subs, s)
	}
	m.mu.Unlock()

	for _, s := range subs {
		s(snapshot)
	}
}

// run executes one serialized operation with IsLoading raised around it.
func (m *Manager) run(fn func() error) error {
	m.op.Lock()
	defer m.op.Unlock()

	m.update(func(s *Session) { s.IsLoading = true })
	defer m.update(func(s *Session) { s.IsLoading = false })

	return fn()
}

func (m *Manager) fail(err error) error {
	m.update(func(s *Session) { s.LastError = err.Error() })
	return err
}

func storageError(op string, err error) error {
	if errors.Is(err, ErrStorage) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// Hydrate restores the session from the credential store. It never fails:
// an empty store leaves the client logged out with no error; anything else
// short of a complete, decodable record leaves it logged out with a
// diagnostic in LastError, after wiping whatever was found. Running it again
// yields the same state.
func (m *Manager) Hydrate(ctx context.Context) error {
	return m.run(func() error {
		creds, err := m.store.Load(ctx)
		switch {
		case err != nil:
			m.discard(ctx, "stored credentials unreadable: "+err.Error())
		case creds.Empty():
			m.update(func(s *Session) {
				s.User, s.Token, s.IsAuthenticated, s.ExpiresAt = nil, "", false, time.Time{}
				s.LastError = ""
			})
		case !creds.Complete():
			m.discard(ctx, "stored credentials incomplete")
		default:
			var user models.User
			if err := json.Unmarshal(creds.UserJSON, &user); err != nil {
				m.discard(ctx, "stored user profile unreadable: "+err.Error())
				return nil
			}
			m.update(func(s *Session) {
				s.User = &user
				s.Token = creds.Token
				s.IsAuthenticated = true
				s.ExpiresAt = tokenExpiry(creds.Token)
				s.LastError = ""
			})
			m.log.Debug(ctx, "session restored", "user_id", user.ID)
		}
		return nil
	})
}

// discard wipes the stored record and resets memory to logged out.
func (m *Manager) discard(ctx context.Context, reason string) {
	m.log.Warn(ctx, "discarding stored credentials", "reason", reason)
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "clear stored credentials", "error", err)
	}
	m.update(func(s *Session) {
		*s = Session{IsLoading: s.IsLoading, LastError: reason}
	})
}

func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials) error {
	return m.run(func() error { return m.login(ctx, creds) })
}

func (m *Manager) login(ctx context.Context, creds models.LoginCredentials) error {
	if err := validate.Struct(creds); err != nil {
		return m.fail(err)
	}

	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		m.log.Info(ctx, "login failed", "error", err)
		return m.fail(err)
	}
	if resp == nil || resp.Token == "" || resp.User == nil {
		return m.fail(fmt.Errorf("%w: login answer lacks token or user", ErrInvalidResponse))
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return m.fail(fmt.Errorf("encode user: %w", err))
	}
	if err := m.store.Save(ctx, credstore.Credentials{Token: resp.Token, UserJSON: userJSON}); err != nil {
		return m.fail(storageError("persist credentials", err))
	}

	user := *resp.User
	m.update(func(s *Session) {
		s.User = &user
		s.Token = resp.Token
		s.IsAuthenticated = true
		s.ExpiresAt = tokenExpiry(resp.Token)
		s.LastError = ""
	})
	m.log.Info(ctx, "logged in", "user_id", user.ID, "role", user.Role)
	return nil
}

// Register creates the account and then logs in with the same email and
// password.
func (m *Manager) Register(ctx context.Context, creds models.RegisterCredentials) error {
	return m.run(func() error {
		if err := validate.Struct(creds); err != nil {
			return m.fail(err)
		}

		resp, err := m.auth.Register(ctx, creds)
		if err != nil {
			m.log.Info(ctx, "registration failed", "error", err)
			return m.fail(err)
		}
		if resp == nil || resp.Message == "" {
			return m.fail(fmt.Errorf("%w: registration answer lacks a message", ErrInvalidResponse))
		}
		m.log.Info(ctx, "registered", "username", creds.Username)

		return m.login(ctx, creds.Login())
	})
}

// Logout always ends the session in memory. A failure to wipe the stored
// record is returned, but the client is logged out regardless.
func (m *Manager) Logout(ctx context.Context) error {
	return m.run(func() error {
		err := m.store.Clear(ctx)
		m.update(func(s *Session) {
			*s = Session{IsLoading: s.IsLoading}
		})
		if err != nil {
			m.log.Warn(ctx, "logout left credentials on disk", "error", err)
			return storageError("clear credentials", err)
		}
		m.log.Info(ctx, "logged out")
		return nil
	})
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client holds no key and only displays the value.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/client/config"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a scripted MedFinder REST backend on a gorilla/mux router.
type fakeBackend struct {
	router *mux.Router
	srv    *httptest.Server

	mu       sync.Mutex
	requests []string
	auth     []string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{router: mux.NewRouter()}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Method+" "+strings.TrimPrefix(r.URL.Path, "/api"))
		b.auth = append(b.auth, r.Header.Get("Authorization"))
		b.mu.Unlock()
		b.router.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) handle(method, path string, h http.HandlerFunc) {
	b.router.HandleFunc("/api"+path, h).Methods(method)
}

func (b *fakeBackend) seen() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *fakeBackend) lastAuth() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.auth) == 0 {
		return ""
	}
	return b.auth[len(b.auth)-1]
}

func (b *fakeBackend) acceptLogin(user models.User, token string) {
	b.handle(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.AuthResponse{Token: token, User: &user, Message: "ok"})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonHandler(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { writeJSON(w, status, v) }
}

var (
	ama   = models.User{ID: 1, Username: "ama", Email: "ama@example.com", Role: models.RoleUser}
	admin = models.User{ID: 2, Username: "root", Email: "admin@example.com", Role: models.RoleAdmin}
)

type harness struct {
	t       *testing.T
	backend *fakeBackend
	cfg     *config.Config
	out     *bytes.Buffer
}

// newHarness runs the CLI against a fake backend with an English locale, a
// fresh on-disk store and a fixed position in Douala.
func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	b := newFakeBackend(t)
	dir := t.TempDir()
	lat, lng := 4.0511, 9.7679

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIURL = b.srv.URL + "/api"
	cfg.RequestTimeout = 2 * time.Second
	cfg.DBPath = filepath.Join(dir, "data", "medfinder.db")
	cfg.SecretPath = filepath.Join(dir, "medfinder.key")
	cfg.PageSize = 2
	cfg.Latitude, cfg.Longitude = &lat, &lng

	return &harness{t: t, backend: b, cfg: cfg, out: &bytes.Buffer{}}
}

// app builds an App reading input. Each call opens the same local store, as
// a restarted client would.
func (h *harness) app(input string) *App {
	h.t.Helper()
	a, err := build(context.Background(), h.cfg, nil, strings.NewReader(input), h.out)
	require.NoError(h.t, err)
	h.t.Cleanup(a.Close)
	return a
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}

// login runs the login command as user; the email is taken from input.
func (h *harness) login(user models.User, rest string) *App {
	h.t.Helper()
	stubPassword(h.t, "secret1")
	h.backend.acceptLogin(user, "tok-"+user.Username)

	a := h.app(user.Email + "\n" + rest)
	require.NoError(h.t, a.Login(context.Background()))
	require.True(h.t, a.isLoggedIn())
	h.out.Reset()
	return a
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a scripted REST backend. Handlers are registered per test
// on a gorilla/mux router; every request is recorded.
type fakeBackend struct {
	t      *testing.T
	router *mux.Router
	srv    *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{t: t, router: mux.NewRouter()}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Clone(r.Context()))
		b.mu.Unlock()
		b.router.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) handle(method, path string, h http.HandlerFunc) {
	b.router.HandleFunc("/api"+path, h).Methods(method)
}

func (b *fakeBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *fakeBackend) lastRequest() *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(b.t, b.requests, "no request reached the backend")
	return b.requests[len(b.requests)-1]
}

func (b *fakeBackend) client(tokens TokenSource) *HTTPClient {
	b.t.Helper()
	c, err := NewHTTPClient(b.srv.URL+"/api", 2*time.Second, tokens, nil)
	require.NoError(b.t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonHandler(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { writeJSON(w, status, v) }
}

func rawHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// Package nav models the client's navigation state as a stack of locations.
// A location is a slash-separated path such as "/drugs/12" or "/(tabs)/report".
package nav

import (
	"strconv"
	"strings"
	"sync"
)

// Fixed destinations.
const (
	Root           = "/"
	Home           = "/(tabs)"
	PharmaciesTab  = "/(tabs)/pharmacies"
	ReportTab      = "/(tabs)/report"
	ProfileTab     = "/(tabs)/profile"
	Login          = "/auth/login"
	Register       = "/auth/register"
	ForgotPassword = "/auth/forgot-password"
	ResetPassword  = "/auth/reset-password"
	DrugSearch     = "/drugs/search"
	NearbySearch   = "/pharmacies/nearby"
	MyReports      = "/reports/my-reports"
	About          = "/about"
)

func Drug(id int64) string     { return "/drugs/" + strconv.FormatInt(id, 10) }
func Pharmacy(id int64) string { return "/pharmacies/" + strconv.FormatInt(id, 10) }
func Report(id int64) string   { return "/reports/" + strconv.FormatInt(id, 10) }

// Segments splits a location into its non-empty path segments. A query
// string, if any, is ignored.
func Segments(location string) []string {
	if i := strings.IndexByte(location, '?'); i >= 0 {
		location = location[:i]
	}
	return strings.FieldsFunc(location, func(r rune) bool { return r == '/' })
}

// Navigator is a location stack safe for concurrent use.
type Navigator struct {
	mu    sync.RWMutex
	stack []string
}

func New(start string) *Navigator {
	return &Navigator{stack: []string{start}}
}

// Push opens location on top of the current one.
func (n *Navigator) Push(location string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack, location)
}

// Replace swaps the current location, so Back never returns to it.
func (n *Navigator) Replace(location string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack[len(n.stack)-1] = location
}

// Back pops the current location. It reports false, and stays put, at the
// bottom of the stack.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) == 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

func (n *Navigator) Current() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack[len(n.stack)-1]
}

// History returns a copy of the stack, oldest first.
func (n *Navigator) History() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]string(nil), n.stack...)
}

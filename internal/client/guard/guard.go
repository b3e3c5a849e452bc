// Package guard keeps the current location consistent with the session:
// logged-out users are sent away from protected screens and logged-in users
// away from the auth screens.
package guard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/medfinder/internal/client/nav"
	"github.com/dmitrijs2005/medfinder/internal/client/session"
	"github.com/dmitrijs2005/medfinder/internal/logging"
)

// Class is the access class of a location.
type Class int

const (
	Public Class = iota
	AuthOnly
	Protected
)

func (c Class) String() string {
	switch c {
	case AuthOnly:
		return "auth-only"
	case Protected:
		return "protected"
	default:
		return "public"
	}
}

// Classify maps path segments to an access class. Protected locations are
// the report and profile tabs and anything below "reports" (the bare
// "reports" listing stays public). Everything under "auth" is auth-only.
func Classify(segments []string) Class {
	if len(segments) == 0 {
		return Public
	}
	switch segments[0] {
	case "auth":
		return AuthOnly
	case "reports":
		if len(segments) > 1 {
			return Protected
		}
	case "(tabs)":
		if len(segments) > 1 && (segments[1] == "report" || segments[1] == "profile") {
			return Protected
		}
	}
	return Public
}

// Router is the part of nav.Navigator the guard drives.
type Router interface {
	Current() string
	Replace(location string)
}

var _ Router = (*nav.Navigator)(nil)

type input struct {
	location      string
	loading       bool
	authenticated bool
}

type Guard struct {
	router Router
	log    logging.Logger

	mu      sync.Mutex
	last    input
	hasLast bool
}

func New(router Router, log logging.Logger) *Guard {
	if log == nil {
		log = logging.Nop()
	}
	return &Guard{router: router, log: log.With("component", "guard")}
}

// Evaluate applies the redirect rules to location and s and returns the
// location it redirected to, or "". Nothing happens while a session
// operation is in flight, or when the inputs equal those of the previous
// call. A redirect is itself a location change: the redirect target becomes
// the remembered location, so navigating to the blocked location again is
// evaluated afresh.
func (g *Guard) Evaluate(ctx context.Context, location string, s session.Session) string {
	in := input{location: location, loading: s.IsLoading, authenticated: s.IsAuthenticated}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hasLast && g.last == in {
		return ""
	}
	g.last, g.hasLast = in, true

	if in.loading {
		return ""
	}

	var target string
	switch class := Classify(nav.Segments(location)); {
	case class == Protected && !in.authenticated:
		target = nav.Login
	case class == AuthOnly && in.authenticated:
		target = nav.Home
	default:
		return ""
	}

	g.log.Debug(ctx, "redirect", "from", location, "to", target)
	g.router.Replace(target)
	g.last.location = target
	return target
}

// Watch re-evaluates the router's current location on every session change.
// The returned function stops watching.
func (g *Guard) Watch(ctx context.Context, store session.Store) (stop func()) {
	return store.Subscribe(func(s session.Session) {
		g.Evaluate(ctx, g.router.Current(), s)
	})
}

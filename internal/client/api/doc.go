// Package api is the typed REST client for the MedFinder backend.
//
// # Overview
//
// HTTPClient turns method calls into JSON requests against a configured
// base URL. Every request carries the bearer token read from a TokenSource
// at dispatch time (never a value captured earlier) and a fresh
// X-Request-ID. Requests are never retried.
//
// # Error Handling
//
// Every failure is an *Error whose Kind is one of the sentinels below, so
// callers match with errors.Is:
//
//	ErrValidation      parameters rejected before any request was sent
//	ErrUnauthorized    401, missing/expired token
//	ErrForbidden       403, e.g. deleting another user's report
//	ErrNotFound        404
//	ErrBackend         any other 4xx/5xx
//	ErrUnavailable     no response received
//	ErrInvalidResponse a 2xx body of an unexpected shape
//
// The message is the backend's "message" field when present, otherwise a
// per-operation fallback. A 401 is only reported; reacting to it (offering
// a new login) is the caller's job.
//
// # Response shapes
//
// Availability endpoints answer either {reports, total, page, totalPages}
// or {availability: [...]}. Both are normalized into models.Availability
// here; anything else is ErrInvalidResponse.
package api

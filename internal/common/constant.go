// Package common contains constants shared by several client packages.
package common

// Header names attached to every backend request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// Fixed keys of the local credential store.
const (
	TokenKey    = "auth_token"
	UserKey     = "user_data"
	LanguageKey = "user_language"
)

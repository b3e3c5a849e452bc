// Package models holds the DTOs exchanged with the MedFinder backend.
// They are treated as immutable values for the lifetime of a screen.
package models

// Role is the capability tag attached to a user profile.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether u may create availability reports. A nil user is
// never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// LoginCredentials are validated client-side before any request is sent.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterCredentials struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login returns the credentials used for the automatic login that follows
// a successful registration.
func (c RegisterCredentials) Login() LoginCredentials {
	return LoginCredentials{Email: c.Email, Password: c.Password}
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is the body of a successful login. Token and User may be
// missing on a misbehaving backend; the session layer checks both.
type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

type ForgotPasswordResponse struct {
	Message string `json:"message"`
	// VerificationCode is only returned by development backends.
	VerificationCode string `json:"verificationCode,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

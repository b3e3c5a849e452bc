package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/i18n"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/nav"
	"github.com/dmitrijs2005/medfinder/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates the
// account. The session manager logs the new user in right away; the guard
// then moves away from the registration screen.
func (a *App) Register(ctx context.Context) error {
	if !a.open(ctx, nav.Register) {
		return nil
	}

	username, err := getSimpleText(a.reader, a.tr.T(i18n.Username), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, a.tr.T(i18n.Email), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.tr.T(i18n.Password), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.RegisterCredentials{Username: username, Email: email, Password: string(password)}
	if err := a.sessions.Register(ctx, creds); err != nil {
		a.log.Error(ctx, "register failed", "err", err)
		a.authFailure(i18n.RegistrationFailed, err)
		return err
	}

	a.println(a.tr.T(i18n.Success))
	a.greet()
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// A failed attempt leaves any previous session in place.
func (a *App) Login(ctx context.Context) error {
	if !a.open(ctx, nav.Login) {
		return nil
	}

	email, err := getSimpleText(a.reader, a.tr.T(i18n.Email), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.tr.T(i18n.Password), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Login(ctx, models.LoginCredentials{Email: email, Password: string(password)}); err != nil {
		a.log.Error(ctx, "login failed", "err", err)
		a.authFailure(i18n.LoginFailed, err)
		return err
	}

	a.greet()
	return nil
}

// Logout ends the session. The in-memory session is cleared even when the
// stored credentials could not be removed; that failure is only reported.
func (a *App) Logout(ctx context.Context) error {
	err := a.sessions.Logout(ctx)
	a.myReports = nil
	if err != nil {
		a.log.Warn(ctx, "credentials not cleared", "err", err)
		a.printf("%s: %s\n", a.tr.T(i18n.Error), err)
	}
	a.println(a.tr.T(i18n.Logout), "OK")
	return err
}

// ForgotPassword requests a verification code and, when the user has one,
// sets a new password with it.
func (a *App) ForgotPassword(ctx context.Context) error {
	if !a.open(ctx, nav.ForgotPassword) {
		return nil
	}

	email, err := getSimpleText(a.reader, a.tr.T(i18n.Email), a.out)
	if err != nil {
		return err
	}
	resp, err := a.account.ForgotPassword(ctx, email)
	if err != nil {
		return a.fail(ctx, "forgot password", err)
	}
	a.println(resp.Message)
	if resp.VerificationCode != "" {
		a.println(a.tr.T(i18n.VerificationCode, resp.VerificationCode))
	}

	code, err := getSimpleText(a.reader, a.tr.T(i18n.ResetPassword)+" (code)", a.out)
	if err != nil || code == "" {
		return err
	}
	if !a.open(ctx, nav.ResetPassword) {
		return nil
	}
	password, err := getPassword(a.tr.T(i18n.Password), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.account.ResetPassword(ctx, models.ResetPasswordRequest{Email: email, Code: code, Password: string(password)})
	if err != nil {
		return a.fail(ctx, "reset password", err)
	}
	a.println(msg)
	a.nav.Replace(nav.Login)
	a.enforce(ctx, nav.Login)
	return nil
}

// Profile shows the logged-in user.
func (a *App) Profile(ctx context.Context) error {
	if !a.open(ctx, nav.ProfileTab) {
		return nil
	}

	s := a.sessions.Session()
	if s.User == nil {
		return nil
	}
	a.printf("%s: %s\n", a.tr.T(i18n.Username), s.User.Username)
	a.printf("%s: %s\n", a.tr.T(i18n.Email), s.User.Email)
	a.printf("role: %s\n", s.User.Role)
	if !s.ExpiresAt.IsZero() {
		a.printf("session: %s\n", formatTime(s.ExpiresAt))
	}
	a.printf("lang: %s\n", a.tr.Language())
	return nil
}

func (a *App) greet() {
	if u := a.sessions.Session().User; u != nil {
		a.println(a.tr.T(i18n.WelcomeBack, u.Username))
	}
}

// authFailure shows the backend's own message, which for login and
// registration says what was wrong with the credentials.
func (a *App) authFailure(title i18n.Key, err error) {
	msg := err.Error()
	if errors.Is(err, api.ErrUnavailable) {
		msg = a.tr.T(i18n.NetworkError)
	}
	a.printf("%s: %s\n", a.tr.T(title), msg)
}

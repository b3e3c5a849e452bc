package services

import (
	"errors"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/geo"
	"github.com/dmitrijs2005/medfinder/internal/client/i18n"
	"github.com/dmitrijs2005/medfinder/internal/client/nav"
)

// Alert is a user-facing rendering of an error. Redirect, when set, is the
// location the user should be offered next.
type Alert struct {
	Title    string
	Message  string
	Redirect string
}

// ErrorAlert maps err to an alert. A 401 is reported as an expired session
// with a way back to the login screen; the session itself is left alone.
func ErrorAlert(t *i18n.Translator, err error) Alert {
	switch {
	case errors.Is(err, ErrLoginRequired):
		return Alert{Title: t.T(i18n.Login), Message: t.T(i18n.LoginToAccess), Redirect: nav.Login}
	case errors.Is(err, ErrAdminOnly):
		return Alert{Title: t.T(i18n.Error), Message: t.T(i18n.AdminOnlyFeature)}
	case errors.Is(err, ErrMissingSelection):
		return Alert{Title: t.T(i18n.Error), Message: t.T(i18n.SelectDrugAndPharmacy)}
	case errors.Is(err, api.ErrUnauthorized):
		return Alert{Title: t.T(i18n.SessionExpired), Message: t.T(i18n.PleaseLoginAgain), Redirect: nav.Login}
	case errors.Is(err, api.ErrUnavailable):
		return Alert{Title: t.T(i18n.Error), Message: t.T(i18n.NetworkError)}
	case errors.Is(err, api.ErrValidation), errors.Is(err, api.ErrForbidden), errors.Is(err, api.ErrNotFound):
		return Alert{Title: t.T(i18n.Error), Message: err.Error()}
	case errors.Is(err, geo.ErrPermissionDenied):
		return Alert{Title: t.T(i18n.Error), Message: t.T(i18n.LocationDenied)}
	case errors.Is(err, geo.ErrInvalidPosition):
		return Alert{Title: t.T(i18n.Error), Message: t.T(i18n.LocationError)}
	default:
		return Alert{Title: t.T(i18n.Error), Message: t.T(i18n.GenericError)}
	}
}

// DeleteAlert is ErrorAlert for report deletion, where a 403 means the
// report belongs to someone else.
func DeleteAlert(t *i18n.Translator, err error) Alert {
	if errors.Is(err, api.ErrForbidden) {
		return Alert{Title: t.T(i18n.Error), Message: t.T(i18n.NotAuthorizedToDelete)}
	}
	return ErrorAlert(t, err)
}

// EmptyState is the text shown in place of a list whose fetch failed.
// Lists degrade to their empty message except when the session expired.
func EmptyState(t *i18n.Translator, err error, empty i18n.Key) string {
	if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, ErrLoginRequired) {
		return t.T(i18n.PleaseLoginAgain)
	}
	return t.T(empty)
}

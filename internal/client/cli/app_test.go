package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/nav"
	"github.com/dmitrijs2005/medfinder/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportsBody(reports ...models.AvailabilityReport) map[string]any {
	if reports == nil {
		reports = []models.AvailabilityReport{}
	}
	return map[string]any{"reports": reports, "total": len(reports), "page": 1, "totalPages": 1}
}

func TestNewApp_CreatesDataDirAndStartsHome(t *testing.T) {
	h := newHarness(t)
	a := h.app("")

	assert.Equal(t, nav.Home, a.nav.Current())
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, models.LanguageEN, a.tr.Language())
	assert.Equal(t, "Guest /(tabs)", a.status())
}

func TestProtectedCommand_GuestIsSentToLogin(t *testing.T) {
	h := newHarness(t)
	a := h.app("")
	ctx := context.Background()

	require.NoError(t, a.MyReports(ctx, nil))
	assert.Contains(t, h.out.String(), "Please log in to access this feature")
	assert.Equal(t, nav.Login, a.nav.Current())

	require.NoError(t, a.SubmitReport(ctx))
	require.NoError(t, a.Profile(ctx))
	assert.Equal(t, 3, strings.Count(h.out.String(), "Please log in to access this feature"))
	assert.Empty(t, h.backend.seen(), "no request for a blocked screen")
}

func TestLogin_GuardLeavesLoginScreen(t *testing.T) {
	h := newHarness(t)
	a := h.login(ama, "")

	assert.Equal(t, nav.Home, a.nav.Current())
	assert.Equal(t, "ama@example.com /(tabs)", a.status())
	assert.Equal(t, []string{"POST /auth/login"}, h.backend.seen())

	// Logged in, the login screen bounces home without prompting.
	require.NoError(t, a.Login(context.Background()))
	assert.Contains(t, h.out.String(), "Welcome back, ama")
	assert.Equal(t, nav.Home, a.nav.Current())
	assert.Len(t, h.backend.seen(), 1)
}

func TestLogin_FailureShowsBackendMessage(t *testing.T) {
	h := newHarness(t)
	stubPassword(t, "wrong")
	h.backend.handle(http.MethodPost, "/auth/login", jsonHandler(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"}))

	a := h.app("ama@example.com\n")
	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, h.out.String(), "Login failed: Invalid credentials")
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, nav.Login, a.nav.Current())
}

func TestLogin_InvalidEmailSendsNothing(t *testing.T) {
	h := newHarness(t)
	stubPassword(t, "secret1")

	a := h.app("not-an-email\n")
	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, h.out.String(), "Login failed:")
	assert.Empty(t, h.backend.seen())
}

func TestSession_SurvivesRestart(t *testing.T) {
	h := newHarness(t)
	first := h.login(ama, "")
	first.Close()

	second := h.app("")
	require.NoError(t, second.sessions.Hydrate(context.Background()))
	assert.True(t, second.isLoggedIn())
	assert.Equal(t, "ama", second.sessions.Session().User.Username)
	assert.Equal(t, "tok-ama", second.sessions.Session().Token)
}

func TestRegister_LogsInAfterwards(t *testing.T) {
	h := newHarness(t)
	stubPassword(t, "secret1")
	h.backend.handle(http.MethodPost, "/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var creds models.RegisterCredentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		assert.Equal(t, models.RegisterCredentials{Username: "ama", Email: "ama@example.com", Password: "secret1"}, creds)
		writeJSON(w, http.StatusCreated, models.MessageResponse{Message: "User registered"})
	})
	h.backend.acceptLogin(ama, "tok-ama")

	a := h.app("ama\nama@example.com\n")
	require.NoError(t, a.Register(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, nav.Home, a.nav.Current())
	assert.Equal(t, []string{"POST /auth/register", "POST /auth/login"}, h.backend.seen())
	assert.Contains(t, h.out.String(), "Welcome back, ama")
}

func TestLogout_GuardLeavesProtectedScreen(t *testing.T) {
	h := newHarness(t)
	a := h.login(ama, "")
	ctx := context.Background()

	require.NoError(t, a.Profile(ctx))
	assert.Contains(t, h.out.String(), "Email: ama@example.com")
	assert.Equal(t, nav.ProfileTab, a.nav.Current())

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, nav.Login, a.nav.Current())

	restarted := h.app("")
	require.NoError(t, restarted.sessions.Hydrate(ctx))
	assert.False(t, restarted.isLoggedIn())
}

func TestBack_GuestIsKeptOffProtectedScreen(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/drugs/5", jsonHandler(http.StatusOK, models.Drug{ID: 5, Name: "Ibuprofen"}))
	h.backend.handle(http.MethodGet, "/drugs/5/availability", jsonHandler(http.StatusOK, reportsBody()))

	a := h.login(ama, "")
	ctx := context.Background()

	require.NoError(t, a.Profile(ctx))
	require.NoError(t, a.ShowDrug(ctx, []string{"5"}))
	require.NoError(t, a.Logout(ctx))
	assert.Equal(t, nav.Drug(5), a.nav.Current(), "a public screen survives logout")

	h.out.Reset()
	require.NoError(t, a.Back(ctx))
	assert.Equal(t, nav.Login, a.nav.Current())
	assert.Contains(t, h.out.String(), "Please log in to access this feature")
	assert.NotContains(t, a.nav.History(), nav.ProfileTab)
}

func TestBack_LoggedInUserSkipsAuthScreen(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/drugs/5", jsonHandler(http.StatusOK, models.Drug{ID: 5, Name: "Ibuprofen"}))
	h.backend.handle(http.MethodGet, "/drugs/5/availability", jsonHandler(http.StatusOK, reportsBody()))
	stubPassword(t, "secret1")

	a := h.app("ama@example.com\nama@example.com\n")
	ctx := context.Background()

	require.Error(t, a.Login(ctx), "no login route yet")
	assert.Equal(t, nav.Login, a.nav.Current())
	require.NoError(t, a.ShowDrug(ctx, []string{"5"}))

	h.backend.acceptLogin(ama, "tok-ama")
	require.NoError(t, a.Login(ctx))
	assert.Equal(t, nav.Home, a.nav.Current())

	require.NoError(t, a.Back(ctx))
	assert.Equal(t, nav.Drug(5), a.nav.Current())

	h.out.Reset()
	require.NoError(t, a.Back(ctx))
	assert.Equal(t, nav.Home, a.nav.Current())
	assert.Contains(t, h.out.String(), "Welcome back, ama")
}

func TestSearchDrugs_PagesWithMore(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/drugs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "para", r.URL.Query().Get("query"))
		assert.Equal(t, "EN", r.URL.Query().Get("language"))
		switch r.URL.Query().Get("page") {
		case "1":
			writeJSON(w, http.StatusOK, map[string]any{"drugs": []models.Drug{
				{ID: 1, Name: "Paracetamol", NameEN: "Acetaminophen", Strength: "500mg"},
				{ID: 2, Name: "Paracetamol", Strength: "1g"},
			}, "total": 3, "page": 1, "totalPages": 2})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"drugs": []models.Drug{
				{ID: 3, Name: "Paracetamol codeine"},
			}, "total": 3, "page": 2, "totalPages": 2})
		}
	})

	a := h.app("")
	ctx := context.Background()
	require.NoError(t, a.SearchDrugs(ctx, []string{"para"}))
	assert.Equal(t, nav.DrugSearch, a.nav.Current())

	out := h.out.String()
	assert.Contains(t, out, "#1 Acetaminophen 500mg")
	assert.Contains(t, out, "#2 Paracetamol 1g")
	assert.Contains(t, out, "(3) Load more: more")
	assert.NotContains(t, out, "#3")

	h.out.Reset()
	require.NoError(t, a.More(ctx))
	assert.Contains(t, h.out.String(), "#3 Paracetamol codeine")
	assert.NotContains(t, h.out.String(), "#1")
	assert.NotContains(t, h.out.String(), "Load more")

	require.NoError(t, a.More(ctx))
	assert.Len(t, h.backend.seen(), 2, "no fetch past the last page")
}

func TestSearchDrugs_FailureShowsEmptyMessage(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/drugs", jsonHandler(http.StatusInternalServerError, map[string]string{"message": "boom"}))

	a := h.app("")
	require.Error(t, a.SearchDrugs(context.Background(), []string{"para"}))
	assert.Contains(t, h.out.String(), "No drugs found")
}

func TestShowDrug(t *testing.T) {
	h := newHarness(t)
	price := 1500.0
	h.backend.handle(http.MethodGet, "/drugs/3", jsonHandler(http.StatusOK, models.Drug{
		ID: 3, Name: "Amoxicilline", NameEN: "Amoxicillin", DescriptionEN: "Antibiotic", CommonBrandNames: []string{"Clamoxyl"},
	}))
	h.backend.handle(http.MethodGet, "/drugs/3/availability", jsonHandler(http.StatusOK, map[string]any{
		"availability": []models.AvailabilityReport{{
			ID: 9, Status: models.StatusInStock, Price: &price, ConfirmedCount: 4, DisputedCount: 1,
			Pharmacy: &models.PharmacySummary{ID: 7, Name: "Pharmacie du Port"},
		}},
	}))

	a := h.app("")
	require.NoError(t, a.ShowDrug(context.Background(), []string{"3"}))

	out := h.out.String()
	assert.Equal(t, nav.Drug(3), a.nav.Current())
	assert.Contains(t, out, "#3 Amoxicillin")
	assert.Contains(t, out, "Antibiotic")
	assert.Contains(t, out, "Clamoxyl")
	assert.Contains(t, out, "#9 In stock | 1500 FCFA | Pharmacie du Port | +4/-1")
}

func TestShowDrug_InvalidID(t *testing.T) {
	h := newHarness(t)
	a := h.app("")

	require.NoError(t, a.ShowDrug(context.Background(), []string{"abc"}))
	assert.Contains(t, h.out.String(), "Invalid drug ID")
	assert.Equal(t, nav.Home, a.nav.Current())
	assert.Empty(t, h.backend.seen())
}

func TestShowPharmacy_NotFound(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/pharmacies/{id}", jsonHandler(http.StatusNotFound, map[string]string{"message": "Pharmacy not found"}))

	a := h.app("")
	require.Error(t, a.ShowPharmacy(context.Background(), []string{"99"}))
	assert.Contains(t, h.out.String(), "Error: Pharmacy not found")
}

func TestSearchPharmacies_Filters(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/pharmacies", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "du port", q.Get("query"))
		assert.Equal(t, "Douala", q.Get("city"))
		assert.Equal(t, "true", q.Get("verified"))
		writeJSON(w, http.StatusOK, map[string]any{"pharmacies": []models.Pharmacy{
			{ID: 7, Name: "Pharmacie du Port", Address: "1 rue du Port", City: "Douala", IsVerified: true},
		}, "total": 1, "page": 1, "totalPages": 1})
	})

	a := h.app("")
	require.NoError(t, a.SearchPharmacies(context.Background(), []string{"du", "city=Douala", "port", "verified"}))
	assert.Contains(t, h.out.String(), "#7 Pharmacie du Port, 1 rue du Port, Douala [verified]")
}

func TestNearby_SortedByDistance(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/pharmacies/nearby", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("radius"))
		writeJSON(w, http.StatusOK, []models.Pharmacy{
			{ID: 2, Name: "Far", Latitude: 4.10, Longitude: 9.80},
			{ID: 1, Name: "Near", Latitude: 4.052, Longitude: 9.768},
		})
	})

	a := h.app("")
	require.NoError(t, a.Nearby(context.Background(), []string{"10km"}))

	out := h.out.String()
	near, far := strings.Index(out, "#1 Near"), strings.Index(out, "#2 Far")
	require.NotEqual(t, -1, near)
	require.NotEqual(t, -1, far)
	assert.Less(t, near, far)
}

func TestNearby_NoPositionIsDenied(t *testing.T) {
	h := newHarness(t)
	h.cfg.Latitude, h.cfg.Longitude = nil, nil

	a := h.app("")
	require.Error(t, a.Nearby(context.Background(), nil))
	assert.Contains(t, h.out.String(), "Location permission denied")
	assert.Empty(t, h.backend.seen())
}

func TestNearby_BadRadius(t *testing.T) {
	h := newHarness(t)
	a := h.app("")

	require.NoError(t, a.Nearby(context.Background(), []string{"-3"}))
	assert.Contains(t, h.out.String(), `Error: "-3"`)
	assert.Empty(t, h.backend.seen())
}

func TestSubmitReport_NonAdminIsRefusedBeforeTheForm(t *testing.T) {
	h := newHarness(t)
	a := h.login(ama, "")

	require.ErrorIs(t, a.SubmitReport(context.Background()), services.ErrAdminOnly)
	assert.Contains(t, h.out.String(), "Only administrators can report availability")
	assert.Equal(t, []string{"POST /auth/login"}, h.backend.seen())
}

func TestSubmitReport_Admin(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/drugs/3", jsonHandler(http.StatusOK, models.Drug{ID: 3, Name: "Amoxicilline"}))
	h.backend.handle(http.MethodGet, "/pharmacies", jsonHandler(http.StatusOK, map[string]any{
		"pharmacies": []models.Pharmacy{{ID: 7, Name: "Pharmacie du Port"}, {ID: 8, Name: "Pharmacie du Marché"}},
		"total":      2, "page": 1, "totalPages": 1,
	}))
	h.backend.handle(http.MethodPost, "/reports", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateReportRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "Bearer tok-root", r.Header.Get("Authorization"))
		assert.Equal(t, int64(3), req.DrugID)
		assert.Equal(t, int64(8), req.PharmacyID)
		assert.Equal(t, models.StatusInStock, req.Status)
		if assert.NotNil(t, req.Price) {
			assert.Equal(t, 1500.0, *req.Price)
		}
		assert.Equal(t, "Fresh stock", req.Notes)
		if assert.NotNil(t, req.ExpiryDate) {
			assert.Equal(t, "2027-01-31", req.ExpiryDate.Format(dateLayout))
		}
		writeJSON(w, http.StatusCreated, models.ReportResponse{Message: "created", Report: models.AvailabilityReport{
			ID: 40, DrugID: req.DrugID, PharmacyID: req.PharmacyID, Status: req.Status, Price: req.Price,
		}})
	})

	form := strings.Join([]string{"#3", "pharmacie", "2", "", "1500", "Fresh stock", "", "2027-01-31", ""}, "\n")
	a := h.login(admin, form)
	require.NoError(t, a.SubmitReport(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, " 2) #8 Pharmacie du Marché")
	assert.Contains(t, out, "Report submitted successfully")
	assert.Contains(t, out, "#40 In stock | 1500 FCFA")
	assert.Equal(t, nav.ReportTab, a.nav.Current())
}

func TestSubmitReport_MissingSelection(t *testing.T) {
	h := newHarness(t)
	// No drug and no pharmacy chosen, then the defaults for the rest.
	a := h.login(admin, "\n\n\n\n\n\n")

	require.Error(t, a.SubmitReport(context.Background()))
	assert.Contains(t, h.out.String(), "Please select a drug and a pharmacy")
	assert.NotContains(t, h.backend.seen(), "POST /reports")
}

func TestSubmitReport_InvalidPrice(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/drugs/3", jsonHandler(http.StatusOK, models.Drug{ID: 3, Name: "Amoxicilline"}))
	h.backend.handle(http.MethodGet, "/pharmacies/7", jsonHandler(http.StatusOK, models.Pharmacy{ID: 7, Name: "Pharmacie du Port"}))

	a := h.login(admin, "#3\n#7\nout_of_stock\ncheap\n")
	require.ErrorIs(t, a.SubmitReport(context.Background()), errInvalidInput)
	assert.NotContains(t, h.backend.seen(), "POST /reports")
}

func TestMyReports_DeleteAndForbidden(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/reports/me", jsonHandler(http.StatusOK, reportsBody(
		models.AvailabilityReport{ID: 5, Status: models.StatusOutOfStock},
		models.AvailabilityReport{ID: 6, Status: models.StatusUnknown},
	)))
	h.backend.handle(http.MethodDelete, "/reports/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h.backend.handle(http.MethodDelete, "/reports/6", jsonHandler(http.StatusForbidden, map[string]string{"message": "Forbidden"}))

	a := h.login(ama, "y\ny\n")
	ctx := context.Background()

	require.NoError(t, a.MyReports(ctx, nil))
	assert.Contains(t, h.out.String(), "#5 Out of stock")
	assert.Contains(t, h.out.String(), "#6 Unknown")
	require.Len(t, a.myReports, 2)

	require.NoError(t, a.DeleteReport(ctx, []string{"5"}))
	assert.Contains(t, h.out.String(), "Report deleted")
	require.Len(t, a.myReports, 1)
	assert.Equal(t, int64(6), a.myReports[0].ID)
	assert.Equal(t, nav.MyReports, a.nav.Current())

	require.Error(t, a.DeleteReport(ctx, []string{"6"}))
	assert.Contains(t, h.out.String(), "You are not authorized to delete this report")
	assert.Len(t, a.myReports, 1, "list unchanged after a failed delete")
}

func TestMyReports_MoreAfterReportActions(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/reports/me", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			writeJSON(w, http.StatusOK, map[string]any{"reports": []models.AvailabilityReport{
				{ID: 7, Status: models.StatusInStock},
			}, "total": 3, "page": 2, "totalPages": 2})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reports": []models.AvailabilityReport{
			{ID: 5, Status: models.StatusOutOfStock},
			{ID: 6, Status: models.StatusUnknown},
		}, "total": 3, "page": 1, "totalPages": 2})
	})
	h.backend.handle(http.MethodDelete, "/reports/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h.backend.handle(http.MethodPost, "/reports/6/confirm", jsonHandler(http.StatusOK, models.MessageResponse{Message: "confirmed"}))

	a := h.login(ama, "y\n")
	ctx := context.Background()

	require.NoError(t, a.MyReports(ctx, nil))
	require.NoError(t, a.DeleteReport(ctx, []string{"5"}))
	require.NoError(t, a.ConfirmReport(ctx, []string{"6"}))
	assert.Equal(t, nav.MyReports, a.nav.Current())

	h.out.Reset()
	require.NoError(t, a.More(ctx))
	assert.Contains(t, h.out.String(), "#7 In stock")
	assert.NotContains(t, h.out.String(), "#5")

	var ids []int64
	for _, r := range a.myReports {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{6, 7}, ids)
}

func TestDeleteReport_Declined(t *testing.T) {
	h := newHarness(t)
	a := h.login(ama, "n\n")

	require.NoError(t, a.DeleteReport(context.Background(), []string{"5"}))
	assert.Equal(t, []string{"POST /auth/login"}, h.backend.seen())
}

func TestMyReports_StatusFilter(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodGet, "/reports/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "in_stock", r.URL.Query().Get("status"))
		writeJSON(w, http.StatusOK, reportsBody())
	})

	a := h.login(ama, "")
	require.NoError(t, a.MyReports(context.Background(), []string{"in_stock"}))
	assert.Contains(t, h.out.String(), "No reports")

	require.ErrorIs(t, a.MyReports(context.Background(), []string{"sold_out"}), errInvalidInput)
}

func TestEditReport_SendsOnlyChangedFields(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodPut, "/reports/5", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, map[string]any{"status": "out_of_stock"}, body)
		writeJSON(w, http.StatusOK, models.ReportResponse{Report: models.AvailabilityReport{ID: 5, Status: models.StatusOutOfStock}})
	})

	a := h.login(ama, "out_of_stock\n\n\n")
	require.NoError(t, a.EditReport(context.Background(), []string{"5"}))
	assert.Contains(t, h.out.String(), "#5 Out of stock")
}

func TestConfirmReport_UnauthorizedKeepsSession(t *testing.T) {
	h := newHarness(t)
	h.backend.handle(http.MethodPost, "/reports/6/confirm", jsonHandler(http.StatusUnauthorized, map[string]string{"message": "jwt expired"}))
	h.backend.handle(http.MethodPost, "/reports/7/dispute", jsonHandler(http.StatusOK, models.MessageResponse{Message: "disputed"}))

	a := h.login(ama, "")
	ctx := context.Background()

	require.Error(t, a.ConfirmReport(ctx, []string{"6"}))
	assert.Contains(t, h.out.String(), "Session expired: Please log in again")
	assert.True(t, a.isLoggedIn(), "a 401 does not log the user out")

	require.NoError(t, a.DisputeReport(ctx, []string{"7"}))
	assert.Equal(t, "Bearer tok-ama", h.backend.lastAuth())
}

func TestForgotPassword_ResetsWithCode(t *testing.T) {
	h := newHarness(t)
	stubPassword(t, "newpass1")
	h.backend.handle(http.MethodPost, "/auth/forgot-password", jsonHandler(http.StatusOK, models.ForgotPasswordResponse{
		Message: "Code sent", VerificationCode: "123456",
	}))
	h.backend.handle(http.MethodPost, "/auth/reset-password", func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetPasswordRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, models.ResetPasswordRequest{Email: "ama@example.com", Code: "123456", Password: "newpass1"}, req)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Password reset"})
	})

	a := h.app("ama@example.com\n123456\n")
	require.NoError(t, a.ForgotPassword(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Verification code: 123456")
	assert.Contains(t, out, "Password reset")
	assert.Equal(t, nav.Login, a.nav.Current())
}

func TestSetLanguage_IsRemembered(t *testing.T) {
	h := newHarness(t)
	a := h.app("")

	require.NoError(t, a.SetLanguage(context.Background(), []string{"fr"}))
	assert.Contains(t, h.out.String(), "Langue changée en français")

	require.ErrorContains(t, a.SetLanguage(context.Background(), []string{"de"}), "unsupported language")

	restarted := h.app("")
	assert.Equal(t, models.LanguageFR, restarted.tr.Language())
	assert.Equal(t, "Invité /(tabs)", restarted.status())
}

func TestBackAndAbout(t *testing.T) {
	h := newHarness(t)
	a := h.app("")
	ctx := context.Background()

	require.NoError(t, a.About(ctx))
	assert.Contains(t, h.out.String(), "crowdsourced")
	assert.Contains(t, h.out.String(), "Build version:")
	assert.Equal(t, nav.About, a.nav.Current())

	require.NoError(t, a.Back(ctx))
	assert.Equal(t, nav.Home, a.nav.Current())
	require.NoError(t, a.Back(ctx))
	assert.Equal(t, nav.Home, a.nav.Current())
}

func TestRun_RestoresSessionAndServesCommands(t *testing.T) {
	h := newHarness(t)
	h.login(ama, "").Close()
	capturePrintln(t)

	a := h.app("about\nexit\n")
	a.Run(context.Background())

	out := h.out.String()
	assert.Contains(t, out, "Find your medication in nearby pharmacies")
	assert.Contains(t, out, "Welcome back, ama")
	assert.Contains(t, out, "crowdsourced")
	assert.Nil(t, a.db, "Run closes local storage")
}


package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/session"
)

type staticSession session.Session

func (s staticSession) Session() session.Session { return session.Session(s) }

var (
	guest = staticSession{}
	user  = staticSession{User: &models.User{ID: 2, Role: models.RoleUser}, Token: "u", IsAuthenticated: true}
	admin = staticSession{User: &models.User{ID: 1, Role: models.RoleAdmin}, Token: "a", IsAuthenticated: true}
)

// fakeReports records calls and answers from its fields.
type fakeReports struct {
	mu    sync.Mutex
	calls []string

	createReq  models.CreateReportRequest
	createResp *models.ReportResponse
	deleteErr  error
	actionErr  error
	myReports  models.Page[models.AvailabilityReport]
	lastStatus models.Status
}

func (f *fakeReports) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeReports) CreateReport(ctx context.Context, req models.CreateReportRequest) (*models.ReportResponse, error) {
	f.record("create")
	f.createReq = req
	if f.createResp == nil {
		return &models.ReportResponse{Message: "ok", Report: models.AvailabilityReport{ID: 100, Status: req.Status}}, nil
	}
	return f.createResp, nil
}

func (f *fakeReports) MyReports(ctx context.Context, page, limit int, status models.Status) (models.Page[models.AvailabilityReport], error) {
	f.record("mine")
	f.lastStatus = status
	return f.myReports, nil
}

func (f *fakeReports) UpdateReport(ctx context.Context, id int64, req models.UpdateReportRequest) (*models.ReportResponse, error) {
	f.record("update")
	if f.actionErr != nil {
		return nil, f.actionErr
	}
	return &models.ReportResponse{Report: models.AvailabilityReport{ID: id}}, nil
}

func (f *fakeReports) DeleteReport(ctx context.Context, id int64) (*models.MessageResponse, error) {
	f.record("delete")
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &models.MessageResponse{Message: "deleted"}, nil
}

func (f *fakeReports) ConfirmReport(ctx context.Context, id int64) (*models.MessageResponse, error) {
	f.record("confirm")
	return &models.MessageResponse{}, f.actionErr
}

func (f *fakeReports) DisputeReport(ctx context.Context, id int64) (*models.MessageResponse, error) {
	f.record("dispute")
	return &models.MessageResponse{}, f.actionErr
}

type fakeCatalog struct {
	drugs      []models.Drug
	nearby     []models.Pharmacy
	nearbyArgs []float64
	searchArgs []string
}

func (f *fakeCatalog) SearchDrugs(ctx context.Context, query string, lang models.Language, page, limit int) (models.Page[models.Drug], error) {
	f.searchArgs = append(f.searchArgs, query, string(lang))
	return models.Page[models.Drug]{Items: f.drugs, Total: len(f.drugs), Page: page, TotalPages: 1}, nil
}

func (f *fakeCatalog) GetDrug(ctx context.Context, id int64) (*models.Drug, error) {
	return &models.Drug{ID: id}, nil
}

func (f *fakeCatalog) DrugAvailability(ctx context.Context, id int64, page, limit int) (models.Availability[models.Drug], error) {
	return models.Availability[models.Drug]{
		Subject: &models.Drug{ID: id},
		Reports: models.Page[models.AvailabilityReport]{Items: []models.AvailabilityReport{{ID: 1, DrugID: id}}, Page: page, TotalPages: 1},
	}, nil
}

func (f *fakeCatalog) SearchPharmacies(ctx context.Context, query, city string, page, limit int, verified *bool) (models.Page[models.Pharmacy], error) {
	return models.Page[models.Pharmacy]{Items: []models.Pharmacy{{ID: 1, City: city}}, Page: page, TotalPages: 1}, nil
}

func (f *fakeCatalog) NearbyPharmacies(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Pharmacy, error) {
	f.nearbyArgs = []float64{lat, lng, radiusKm, float64(limit)}
	return f.nearby, nil
}

func (f *fakeCatalog) GetPharmacy(ctx context.Context, id int64) (*models.Pharmacy, error) {
	return &models.Pharmacy{ID: id}, nil
}

func (f *fakeCatalog) PharmacyAvailability(ctx context.Context, id int64, page, limit int) (models.Availability[models.Pharmacy], error) {
	return models.Availability[models.Pharmacy]{}, &api.Error{Kind: api.ErrNotFound, Status: 404, Message: "Pharmacy not found"}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/pager"
	"github.com/dmitrijs2005/medfinder/internal/client/session"
	"github.com/dmitrijs2005/medfinder/internal/client/validate"
	"github.com/dmitrijs2005/medfinder/internal/logging"
)

var (
	// ErrLoginRequired is returned, without contacting the backend, when a
	// report operation is attempted while logged out.
	ErrLoginRequired = errors.New("login required")
	// ErrAdminOnly is returned, without contacting the backend, when a
	// non-admin user submits a report.
	ErrAdminOnly = errors.New("only administrators can report availability")
	// ErrMissingSelection matches validate.ErrValidation as well.
	ErrMissingSelection = fmt.Errorf("%w: a drug and a pharmacy must be selected", validate.ErrValidation)
)

// SessionReader is the read side of session.Store.
type SessionReader interface {
	Session() session.Session
}

// ReportDraft is the report form as filled in by the user.
type ReportDraft struct {
	Drug       *models.Drug
	Pharmacy   *models.Pharmacy
	Status     models.Status
	Price      *float64
	Notes      string
	ExpiryDate *time.Time
}

type ReportService interface {
	Submit(ctx context.Context, draft ReportDraft) (*models.AvailabilityReport, error)
	// Mine lists the user's reports, optionally filtered by status.
	Mine(status models.Status) *pager.Pager[models.AvailabilityReport]
	// Delete removes the report on the backend and returns reports without
	// it. On failure reports is returned unchanged.
	Delete(ctx context.Context, reports []models.AvailabilityReport, id int64) ([]models.AvailabilityReport, error)
	Update(ctx context.Context, id int64, req models.UpdateReportRequest) (*models.AvailabilityReport, error)
	Confirm(ctx context.Context, id int64) error
	Dispute(ctx context.Context, id int64) error
}

type reportService struct {
	client   api.ReportClient
	sessions SessionReader
	pageSize int
	log      logging.Logger
}

func NewReportService(client api.ReportClient, sessions SessionReader, pageSize int, log logging.Logger) ReportService {
	if log == nil {
		log = logging.Nop()
	}
	return &reportService{client: client, sessions: sessions, pageSize: pageSize, log: log.With("component", "reports")}
}

func (s *reportService) requireLogin() error {
	if !s.sessions.Session().IsAuthenticated {
		return ErrLoginRequired
	}
	return nil
}

// Submit checks, in order: logged in, admin, drug and pharmacy selected.
// Only then is the report sent. An empty status means in stock.
func (s *reportService) Submit(ctx context.Context, draft ReportDraft) (*models.AvailabilityReport, error) {
	sess := s.sessions.Session()
	if !sess.IsAuthenticated {
		return nil, ErrLoginRequired
	}
	if !sess.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if draft.Drug == nil || draft.Pharmacy == nil {
		return nil, ErrMissingSelection
	}

	status := draft.Status
	if status == "" {
		status = models.StatusInStock
	}
	resp, err := s.client.CreateReport(ctx, models.CreateReportRequest{
		PharmacyID: draft.Pharmacy.ID,
		DrugID:     draft.Drug.ID,
		Status:     status,
		Price:      draft.Price,
		Notes:      draft.Notes,
		ExpiryDate: draft.ExpiryDate,
	})
	if err != nil {
		s.log.Warn(ctx, "report submission failed", "drug_id", draft.Drug.ID, "pharmacy_id", draft.Pharmacy.ID, "error", err)
		return nil, err
	}
	s.log.Info(ctx, "report submitted", "report_id", resp.Report.ID)
	return &resp.Report, nil
}

func (s *reportService) Mine(status models.Status) *pager.Pager[models.AvailabilityReport] {
	return pager.New("reports/me?status="+string(status), func(ctx context.Context, page int) (models.Page[models.AvailabilityReport], error) {
		if err := s.requireLogin(); err != nil {
			return models.Page[models.AvailabilityReport]{}, err
		}
		return s.client.MyReports(ctx, page, s.pageSize, status)
	}, nil)
}

func (s *reportService) Delete(ctx context.Context, reports []models.AvailabilityReport, id int64) ([]models.AvailabilityReport, error) {
	if err := s.requireLogin(); err != nil {
		return reports, err
	}
	if _, err := s.client.DeleteReport(ctx, id); err != nil {
		s.log.Warn(ctx, "report deletion failed", "report_id", id, "status", api.StatusOf(err), "error", err)
		return reports, err
	}
	return slices.DeleteFunc(slices.Clone(reports), func(r models.AvailabilityReport) bool {
		return r.ID == id
	}), nil
}

func (s *reportService) Update(ctx context.Context, id int64, req models.UpdateReportRequest) (*models.AvailabilityReport, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	resp, err := s.client.UpdateReport(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return &resp.Report, nil
}

func (s *reportService) Confirm(ctx context.Context, id int64) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	_, err := s.client.ConfirmReport(ctx, id)
	return err
}

func (s *reportService) Dispute(ctx context.Context, id int64) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	_, err := s.client.DisputeReport(ctx, id)
	return err
}

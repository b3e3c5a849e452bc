package api

import (
	"context"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
)

// TokenSource yields the current bearer token, or "" when logged out.
// It is consulted on every request.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// AuthClient covers the unauthenticated account endpoints.
type AuthClient interface {
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.MessageResponse, error)
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.MessageResponse, error)
}

type DrugClient interface {
	SearchDrugs(ctx context.Context, query string, lang models.Language, page, limit int) (models.Page[models.Drug], error)
	GetDrug(ctx context.Context, id int64) (*models.Drug, error)
	DrugAvailability(ctx context.Context, id int64, page, limit int) (models.Availability[models.Drug], error)
}

type PharmacyClient interface {
	SearchPharmacies(ctx context.Context, query, city string, page, limit int, verified *bool) (models.Page[models.Pharmacy], error)
	NearbyPharmacies(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Pharmacy, error)
	GetPharmacy(ctx context.Context, id int64) (*models.Pharmacy, error)
	PharmacyAvailability(ctx context.Context, id int64, page, limit int) (models.Availability[models.Pharmacy], error)
}

type ReportClient interface {
	CreateReport(ctx context.Context, req models.CreateReportRequest) (*models.ReportResponse, error)
	// MyReports lists the caller's reports; an empty status means all.
	MyReports(ctx context.Context, page, limit int, status models.Status) (models.Page[models.AvailabilityReport], error)
	UpdateReport(ctx context.Context, id int64, req models.UpdateReportRequest) (*models.ReportResponse, error)
	DeleteReport(ctx context.Context, id int64) (*models.MessageResponse, error)
	ConfirmReport(ctx context.Context, id int64) (*models.MessageResponse, error)
	DisputeReport(ctx context.Context, id int64) (*models.MessageResponse, error)
}

// Client is the full backend surface.
type Client interface {
	AuthClient
	DrugClient
	PharmacyClient
	ReportClient
}

var _ Client = (*HTTPClient)(nil)

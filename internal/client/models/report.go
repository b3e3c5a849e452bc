package models

import "time"

// Status is the availability state a report asserts.
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusOutOfStock Status = "out_of_stock"
	StatusUnknown    Status = "unknown"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInStock, StatusOutOfStock, StatusUnknown:
		return true
	}
	return false
}

type Reporter struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type AvailabilityReport struct {
	ID             int64            `json:"id"`
	PharmacyID     int64            `json:"pharmacyId"`
	DrugID         int64            `json:"drugId"`
	Status         Status           `json:"status"`
	Price          *float64         `json:"price,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	ConfirmedCount int              `json:"confirmedCount"`
	DisputedCount  int              `json:"disputedCount"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt,omitempty"`
	Pharmacy       *PharmacySummary `json:"pharmacy,omitempty"`
	Drug           *DrugSummary     `json:"drug,omitempty"`
	Reporter       *Reporter        `json:"reporter,omitempty"`
}

type CreateReportRequest struct {
	PharmacyID int64      `json:"pharmacyId" validate:"required,gt=0"`
	DrugID     int64      `json:"drugId" validate:"required,gt=0"`
	Status     Status     `json:"status" validate:"required,oneof=in_stock out_of_stock unknown"`
	Price      *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Notes      string     `json:"notes,omitempty" validate:"max=500"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

// UpdateReportRequest carries only the fields being changed.
type UpdateReportRequest struct {
	PharmacyID *int64     `json:"pharmacyId,omitempty" validate:"omitempty,gt=0"`
	DrugID     *int64     `json:"drugId,omitempty" validate:"omitempty,gt=0"`
	Status     *Status    `json:"status,omitempty" validate:"omitempty,oneof=in_stock out_of_stock unknown"`
	Price      *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Notes      *string    `json:"notes,omitempty" validate:"omitempty,max=500"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

type ReportResponse struct {
	Message string             `json:"message"`
	Report  AvailabilityReport `json:"report"`
}

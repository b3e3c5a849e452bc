package models

type Pharmacy struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	City         string            `json:"city"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	PhoneNumber  string            `json:"phoneNumber,omitempty"`
	OpeningHours map[string]string `json:"openingHours,omitempty"`
	IsVerified   bool              `json:"isVerified"`
	IsActive     bool              `json:"isActive"`
}

// PharmacySummary is the pharmacy as embedded in a report.
type PharmacySummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

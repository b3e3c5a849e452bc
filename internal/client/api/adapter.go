package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
)

// reportListBody is the union of the two report-list shapes the backend
// produces:
//
//	{"reports": [...], "total": n, "page": p, "totalPages": t, "<subject>": {...}}
//	{"availability": [...], "<subject>": {...}}
//
// The second shape carries no pagination and is always a single page.
type reportListBody struct {
	Reports      json.RawMessage `json:"reports"`
	Availability json.RawMessage `json:"availability"`
	Total        *int            `json:"total"`
	Page         *int            `json:"page"`
	TotalPages   *int            `json:"totalPages"`
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

// decodeReportPage normalizes either report-list shape into one page.
// requestedPage fills in the page number for the unpaginated shape.
func decodeReportPage(raw []byte, requestedPage int) (models.Page[models.AvailabilityReport], error) {
	var body reportListBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return models.Page[models.AvailabilityReport]{}, err
	}

	var items []models.AvailabilityReport
	switch {
	case isJSONArray(body.Reports):
		if err := json.Unmarshal(body.Reports, &items); err != nil {
			return models.Page[models.AvailabilityReport]{}, fmt.Errorf("reports: %w", err)
		}
		page := models.Page[models.AvailabilityReport]{Items: items, Total: len(items), Page: requestedPage, TotalPages: 1}
		if body.Total != nil {
			page.Total = *body.Total
		}
		if body.Page != nil {
			page.Page = *body.Page
		}
		if body.TotalPages != nil {
			page.TotalPages = *body.TotalPages
		}
		return page, nil

	case isJSONArray(body.Availability):
		if err := json.Unmarshal(body.Availability, &items); err != nil {
			return models.Page[models.AvailabilityReport]{}, fmt.Errorf("availability: %w", err)
		}
		return models.Page[models.AvailabilityReport]{Items: items, Total: len(items), Page: requestedPage, TotalPages: 1}, nil

	default:
		return models.Page[models.AvailabilityReport]{}, errors.New("neither reports nor availability list present")
	}
}

// decodeAvailability decodes a report list plus the subject entity stored
// under subjectField ("drug" or "pharmacy"). A missing or null subject is
// allowed.
func decodeAvailability[S any](raw []byte, subjectField string, requestedPage int) (models.Availability[S], error) {
	page, err := decodeReportPage(raw, requestedPage)
	if err != nil {
		return models.Availability[S]{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Availability[S]{}, err
	}

	out := models.Availability[S]{Reports: page}
	if subj, ok := fields[subjectField]; ok && string(subj) != "null" {
		var s S
		if err := json.Unmarshal(subj, &s); err != nil {
			return models.Availability[S]{}, fmt.Errorf("%s: %w", subjectField, err)
		}
		out.Subject = &s
	}
	return out, nil
}

// decodeList decodes {"<listField>": [...], "total", "page", "totalPages"}.
// A missing list is an error rather than an empty page.
func decodeList[T any](raw []byte, listField string) (models.Page[T], error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Page[T]{}, err
	}
	list, ok := fields[listField]
	if !ok || !isJSONArray(list) {
		return models.Page[T]{}, fmt.Errorf("%s list missing", listField)
	}

	var page models.Page[T]
	if err := json.Unmarshal(list, &page.Items); err != nil {
		return models.Page[T]{}, fmt.Errorf("%s: %w", listField, err)
	}
	counters := map[string]*int{"total": &page.Total, "page": &page.Page, "totalPages": &page.TotalPages}
	for key, dst := range counters {
		if v, ok := fields[key]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return models.Page[T]{}, fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return page, nil
}

package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/validate"
)

func (c *HTTPClient) CreateReport(ctx context.Context, req models.CreateReportRequest) (*models.ReportResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationFailed(opCreateReport, err)
	}
	var out models.ReportResponse
	err := c.doJSON(ctx, request{op: opCreateReport, method: http.MethodPost, path: []string{"reports"}, body: req}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyReports(ctx context.Context, page, limit int, status models.Status) (models.Page[models.AvailabilityReport], error) {
	op := opMyReports
	if err := checkPaging(op, page, limit); err != nil {
		return models.Page[models.AvailabilityReport]{}, err
	}
	q := pagingQuery(page, limit)
	if status != "" {
		if !status.Valid() {
			return models.Page[models.AvailabilityReport]{}, validationFailed(op, validate.Failed("status", "unknown report status "+string(status)))
		}
		q.Set("status", string(status))
	}

	raw, err := c.do(ctx, request{op: op, method: http.MethodGet, path: []string{"reports", "me"}, query: q})
	if err != nil {
		return models.Page[models.AvailabilityReport]{}, err
	}
	result, err := decodeReportPage(raw, page)
	if err != nil {
		return models.Page[models.AvailabilityReport]{}, invalidResponse(op, err)
	}
	return result, nil
}

func (c *HTTPClient) UpdateReport(ctx context.Context, id int64, req models.UpdateReportRequest) (*models.ReportResponse, error) {
	op := opUpdateReport
	if err := checkID(op, "report ID", id); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, validationFailed(op, err)
	}
	var out models.ReportResponse
	err := c.doJSON(ctx, request{op: op, method: http.MethodPut, path: []string{"reports", idSegment(id)}, body: req}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) reportAction(ctx context.Context, op operation, method string, id int64, action string) (*models.MessageResponse, error) {
	if err := checkID(op, "report ID", id); err != nil {
		return nil, err
	}
	path := []string{"reports", idSegment(id)}
	if action != "" {
		path = append(path, action)
	}
	raw, err := c.do(ctx, request{op: op, method: method, path: path})
	if err != nil {
		return nil, err
	}
	var out models.MessageResponse
	if len(raw) == 0 {
		// 204 No Content is a valid answer to these actions.
		return &out, nil
	}
	if err := decode(op, raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteReport(ctx context.Context, id int64) (*models.MessageResponse, error) {
	return c.reportAction(ctx, opDeleteReport, http.MethodDelete, id, "")
}

func (c *HTTPClient) ConfirmReport(ctx context.Context, id int64) (*models.MessageResponse, error) {
	return c.reportAction(ctx, opConfirmReport, http.MethodPost, id, "confirm")
}

func (c *HTTPClient) DisputeReport(ctx context.Context, id int64) (*models.MessageResponse, error) {
	return c.reportAction(ctx, opDisputeReport, http.MethodPost, id, "dispute")
}

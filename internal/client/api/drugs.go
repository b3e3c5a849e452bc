package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
)

func (c *HTTPClient) SearchDrugs(ctx context.Context, query string, lang models.Language, page, limit int) (models.Page[models.Drug], error) {
	op := opSearchDrugs
	if err := checkPaging(op, page, limit); err != nil {
		return models.Page[models.Drug]{}, err
	}
	if !lang.Valid() {
		lang = models.LanguageFR
	}

	q := pagingQuery(page, limit)
	if query != "" {
		q.Set("query", query)
	}
	q.Set("language", string(lang))

	raw, err := c.do(ctx, request{op: op, method: http.MethodGet, path: []string{"drugs"}, query: q})
	if err != nil {
		return models.Page[models.Drug]{}, err
	}
	result, err := decodeList[models.Drug](raw, "drugs")
	if err != nil {
		return models.Page[models.Drug]{}, invalidResponse(op, err)
	}
	return result, nil
}

func (c *HTTPClient) GetDrug(ctx context.Context, id int64) (*models.Drug, error) {
	if err := checkID(opGetDrug, "drug ID", id); err != nil {
		return nil, err
	}
	var out models.Drug
	err := c.doJSON(ctx, request{op: opGetDrug, method: http.MethodGet, path: []string{"drugs", idSegment(id)}}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DrugAvailability(ctx context.Context, id int64, page, limit int) (models.Availability[models.Drug], error) {
	op := opDrugAvailability
	if err := checkID(op, "drug ID", id); err != nil {
		return models.Availability[models.Drug]{}, err
	}
	if err := checkPaging(op, page, limit); err != nil {
		return models.Availability[models.Drug]{}, err
	}

	raw, err := c.do(ctx, request{op: op, method: http.MethodGet,
		path: []string{"drugs", idSegment(id), "availability"}, query: pagingQuery(page, limit)})
	if err != nil {
		return models.Availability[models.Drug]{}, err
	}
	result, err := decodeAvailability[models.Drug](raw, "drug", page)
	if err != nil {
		return models.Availability[models.Drug]{}, invalidResponse(op, err)
	}
	return result, nil
}

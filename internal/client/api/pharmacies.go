package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/validate"
)

func (c *HTTPClient) SearchPharmacies(ctx context.Context, query, city string, page, limit int, verified *bool) (models.Page[models.Pharmacy], error) {
	op := opSearchPharmacies
	if err := checkPaging(op, page, limit); err != nil {
		return models.Page[models.Pharmacy]{}, err
	}

	q := pagingQuery(page, limit)
	if query != "" {
		q.Set("query", query)
	}
	if city != "" {
		q.Set("city", city)
	}
	if verified != nil {
		q.Set("verified", strconv.FormatBool(*verified))
	}

	raw, err := c.do(ctx, request{op: op, method: http.MethodGet, path: []string{"pharmacies"}, query: q})
	if err != nil {
		return models.Page[models.Pharmacy]{}, err
	}
	result, err := decodeList[models.Pharmacy](raw, "pharmacies")
	if err != nil {
		return models.Page[models.Pharmacy]{}, invalidResponse(op, err)
	}
	return result, nil
}

type nearbyQuery struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
	RadiusKm  float64 `validate:"gt=0"`
	Limit     int     `validate:"gte=1,lte=100"`
}

// NearbyPharmacies is unpaginated: the backend answers a bare array and
// the result never holds more than limit entries.
func (c *HTTPClient) NearbyPharmacies(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Pharmacy, error) {
	op := opNearbyPharmacies
	if err := validate.Struct(nearbyQuery{Latitude: lat, Longitude: lng, RadiusKm: radiusKm, Limit: limit}); err != nil {
		return nil, validationFailed(op, err)
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	q.Set("limit", strconv.Itoa(limit))

	raw, err := c.do(ctx, request{op: op, method: http.MethodGet, path: []string{"pharmacies", "nearby"}, query: q})
	if err != nil {
		return nil, err
	}
	if !isJSONArray(raw) {
		return nil, invalidResponse(op, errNotArray)
	}
	var out []models.Pharmacy
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, invalidResponse(op, err)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *HTTPClient) GetPharmacy(ctx context.Context, id int64) (*models.Pharmacy, error) {
	if err := checkID(opGetPharmacy, "pharmacy ID", id); err != nil {
		return nil, err
	}
	var out models.Pharmacy
	err := c.doJSON(ctx, request{op: opGetPharmacy, method: http.MethodGet, path: []string{"pharmacies", idSegment(id)}}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PharmacyAvailability(ctx context.Context, id int64, page, limit int) (models.Availability[models.Pharmacy], error) {
	op := opPharmacyAvailability
	if err := checkID(op, "pharmacy ID", id); err != nil {
		return models.Availability[models.Pharmacy]{}, err
	}
	if err := checkPaging(op, page, limit); err != nil {
		return models.Availability[models.Pharmacy]{}, err
	}

	raw, err := c.do(ctx, request{op: op, method: http.MethodGet,
		path: []string{"pharmacies", idSegment(id), "availability"}, query: pagingQuery(page, limit)})
	if err != nil {
		return models.Availability[models.Pharmacy]{}, err
	}
	result, err := decodeAvailability[models.Pharmacy](raw, "pharmacy", page)
	if err != nil {
		return models.Availability[models.Pharmacy]{}, invalidResponse(op, err)
	}
	return result, nil
}

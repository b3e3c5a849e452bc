package services

import (
	"context"
	"net/url"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/geo"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/pager"
	"github.com/dmitrijs2005/medfinder/internal/logging"
)

// NearbyPharmacy is a nearby result with its distance from the user.
type NearbyPharmacy struct {
	models.Pharmacy
	DistanceKm float64
}

// CatalogService browses drugs and pharmacies.
type CatalogService interface {
	SearchDrugs(query string, lang models.Language) *pager.Pager[models.Drug]
	Drug(ctx context.Context, id int64) (*models.Drug, error)
	DrugAvailability(id int64) *pager.Pager[models.AvailabilityReport]

	SearchPharmacies(query, city string, verifiedOnly bool) *pager.Pager[models.Pharmacy]
	Pharmacy(ctx context.Context, id int64) (*models.Pharmacy, error)
	PharmacyAvailability(id int64) *pager.Pager[models.AvailabilityReport]

	// Nearby locates the user and lists pharmacies within radiusKm,
	// closest first. A denied location permission is geo.ErrPermissionDenied.
	Nearby(ctx context.Context, radiusKm float64) ([]NearbyPharmacy, error)
}

type catalogService struct {
	drugs      api.DrugClient
	pharmacies api.PharmacyClient
	location   geo.Provider
	pageSize   int
	// inflight is shared by every pager handed out, so two screens on the
	// same list never fetch the same page twice at once.
	inflight *pager.Group
	log      logging.Logger
}

// NewCatalogService wires the catalog to its clients. pageSize is used for
// every list and as the nearby result cap.
func NewCatalogService(drugs api.DrugClient, pharmacies api.PharmacyClient, location geo.Provider, pageSize int, log logging.Logger) CatalogService {
	if log == nil {
		log = logging.Nop()
	}
	return &catalogService{
		drugs:      drugs,
		pharmacies: pharmacies,
		location:   location,
		pageSize:   pageSize,
		inflight:   pager.NewGroup(),
		log:        log.With("component", "catalog"),
	}
}

func (s *catalogService) SearchDrugs(query string, lang models.Language) *pager.Pager[models.Drug] {
	q := url.Values{"query": {query}, "lang": {string(lang)}}
	return pager.New("drugs?"+q.Encode(), func(ctx context.Context, page int) (models.Page[models.Drug], error) {
		return s.drugs.SearchDrugs(ctx, query, lang, page, s.pageSize)
	}, s.inflight)
}

func (s *catalogService) Drug(ctx context.Context, id int64) (*models.Drug, error) {
	return s.drugs.GetDrug(ctx, id)
}

func (s *catalogService) DrugAvailability(id int64) *pager.Pager[models.AvailabilityReport] {
	identity := "drugs/" + strconv.FormatInt(id, 10) + "/availability"
	return pager.New(identity, func(ctx context.Context, page int) (models.Page[models.AvailabilityReport], error) {
		a, err := s.drugs.DrugAvailability(ctx, id, page, s.pageSize)
		return a.Reports, err
	}, s.inflight)
}

func (s *catalogService) SearchPharmacies(query, city string, verifiedOnly bool) *pager.Pager[models.Pharmacy] {
	var verified *bool
	if verifiedOnly {
		verified = &verifiedOnly
	}
	q := url.Values{"query": {query}, "city": {city}, "verified": {strconv.FormatBool(verifiedOnly)}}
	return pager.New("pharmacies?"+q.Encode(), func(ctx context.Context, page int) (models.Page[models.Pharmacy], error) {
		return s.pharmacies.SearchPharmacies(ctx, query, city, page, s.pageSize, verified)
	}, s.inflight)
}

func (s *catalogService) Pharmacy(ctx context.Context, id int64) (*models.Pharmacy, error) {
	return s.pharmacies.GetPharmacy(ctx, id)
}

func (s *catalogService) PharmacyAvailability(id int64) *pager.Pager[models.AvailabilityReport] {
	identity := "pharmacies/" + strconv.FormatInt(id, 10) + "/availability"
	return pager.New(identity, func(ctx context.Context, page int) (models.Page[models.AvailabilityReport], error) {
		a, err := s.pharmacies.PharmacyAvailability(ctx, id, page, s.pageSize)
		return a.Reports, err
	}, s.inflight)
}

func (s *catalogService) Nearby(ctx context.Context, radiusKm float64) ([]NearbyPharmacy, error) {
	pos, err := geo.Locate(ctx, s.location)
	if err != nil {
		s.log.Info(ctx, "location unavailable", "error", err)
		return nil, err
	}

	found, err := s.pharmacies.NearbyPharmacies(ctx, pos.Latitude, pos.Longitude, radiusKm, s.pageSize)
	if err != nil {
		return nil, err
	}

	out := make([]NearbyPharmacy, 0, len(found))
	for _, p := range found {
		d := geo.Distance(pos, geo.Position{Latitude: p.Latitude, Longitude: p.Longitude})
		out = append(out, NearbyPharmacy{Pharmacy: p, DistanceKm: d})
	}
	slices.SortStableFunc(out, func(a, b NearbyPharmacy) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return 0
	})
	return out, nil
}

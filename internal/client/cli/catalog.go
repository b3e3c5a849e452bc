package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/medfinder/internal/client/i18n"
	"github.com/dmitrijs2005/medfinder/internal/client/nav"
	"github.com/dmitrijs2005/medfinder/internal/client/pager"
	"github.com/dmitrijs2005/medfinder/internal/client/services"
)

// showList loads the first page of p and prints it, then arms the "more"
// command for the following pages. onLoad receives each batch of items as
// it is printed. A failed fetch degrades to the empty message.
func showList[T any](ctx context.Context, a *App, p *pager.Pager[T], empty i18n.Key, line func(T) string, onLoad func([]T)) error {
	if _, err := p.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "list not loaded", "list", p.Identity(), "err", err)
		a.println(services.EmptyState(a.tr, err, empty))
		return err
	}

	items := p.Items()
	if len(items) == 0 {
		a.println(a.tr.T(empty))
	}
	for _, it := range items {
		a.println(line(it))
	}
	if onLoad != nil {
		onLoad(items)
	}
	a.moreHint(p)

	a.more = func(ctx context.Context) error {
		if !p.HasMore() {
			return nil
		}
		before := len(p.Items())
		started, err := p.LoadMore(ctx)
		if err != nil {
			return a.fail(ctx, "load more", err)
		}
		if !started {
			return nil
		}
		batch := p.Items()[before:]
		for _, it := range batch {
			a.println(line(it))
		}
		if onLoad != nil {
			onLoad(batch)
		}
		a.moreHint(p)
		return nil
	}
	return nil
}

func (a *App) moreHint(p interface {
	HasMore() bool
	Total() int
}) {
	if p.HasMore() {
		a.printf("(%d) %s: more\n", p.Total(), a.tr.T(i18n.LoadMore))
	}
}

// Home opens the tab root.
func (a *App) Home(ctx context.Context) error {
	if !a.open(ctx, nav.Home) {
		return nil
	}
	a.println(a.tr.T(i18n.WelcomeMessage))
	return nil
}

// SearchDrugs looks drugs up by name in the current language.
func (a *App) SearchDrugs(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = getSimpleText(a.reader, "?", a.out); err != nil || query == "" {
			return err
		}
	}
	if !a.open(ctx, nav.DrugSearch) {
		return nil
	}
	p := a.catalog.SearchDrugs(query, a.tr.Language())
	return showList(ctx, a, p, i18n.NoDrugsFound, a.drugLine, nil)
}

// ShowDrug shows a drug and the latest reports about it.
func (a *App) ShowDrug(ctx context.Context, args []string) error {
	id, ok := firstID(args)
	if !ok {
		a.println(a.tr.T(i18n.InvalidDrugID))
		return nil
	}
	if !a.open(ctx, nav.Drug(id)) {
		return nil
	}

	d, err := a.catalog.Drug(ctx, id)
	if err != nil {
		return a.fail(ctx, "get drug", err)
	}
	a.printDrug(d)
	return showList(ctx, a, a.catalog.DrugAvailability(id), i18n.NoReports, a.reportLine, nil)
}

// SearchPharmacies lists pharmacies, optionally filtered by name. A
// "city=<name>" word filters by city and "verified" keeps verified
// pharmacies only.
func (a *App) SearchPharmacies(ctx context.Context, args []string) error {
	var (
		words    []string
		city     string
		verified bool
	)
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "city="):
			city = strings.TrimPrefix(arg, "city=")
		case arg == "verified":
			verified = true
		default:
			words = append(words, arg)
		}
	}
	if !a.open(ctx, nav.PharmaciesTab) {
		return nil
	}
	p := a.catalog.SearchPharmacies(strings.Join(words, " "), city, verified)
	return showList(ctx, a, p, i18n.NoPharmaciesFound, a.pharmacyLine, nil)
}

// ShowPharmacy shows a pharmacy and the drugs reported there.
func (a *App) ShowPharmacy(ctx context.Context, args []string) error {
	id, ok := firstID(args)
	if !ok {
		a.println(a.tr.T(i18n.InvalidPharmacyID))
		return nil
	}
	if !a.open(ctx, nav.Pharmacy(id)) {
		return nil
	}

	p, err := a.catalog.Pharmacy(ctx, id)
	if err != nil {
		return a.fail(ctx, "get pharmacy", err)
	}
	a.printPharmacy(p)
	return showList(ctx, a, a.catalog.PharmacyAvailability(id), i18n.NoReports, a.reportLine, nil)
}

// Nearby lists pharmacies around the configured position, closest first.
// The radius defaults to the configured one.
func (a *App) Nearby(ctx context.Context, args []string) error {
	radius := a.config.NearbyRadiusKm
	if len(args) > 0 {
		r, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "km"), 64)
		if err != nil || r <= 0 {
			a.printf("%s: %q\n", a.tr.T(i18n.Error), args[0])
			return nil
		}
		radius = r
	}
	if !a.open(ctx, nav.NearbySearch) {
		return nil
	}

	found, err := a.catalog.Nearby(ctx, radius)
	if err != nil {
		return a.fail(ctx, "nearby search", err)
	}
	if len(found) == 0 {
		a.println(a.tr.T(i18n.NoNearbyPharmacies))
	}
	for _, p := range found {
		a.println(a.nearbyLine(p))
	}
	return nil
}

// More loads the next page of the list on screen.
func (a *App) More(ctx context.Context) error {
	if a.more == nil {
		return nil
	}
	return a.more(ctx)
}

func firstID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	return parseID(args[0])
}

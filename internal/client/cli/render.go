package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/client/geo"
	"github.com/dmitrijs2005/medfinder/internal/client/i18n"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/services"
)

const timeLayout = "2006-01-02 15:04"

func formatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

func (a *App) formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64) + " " + a.tr.T(i18n.Currency)
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func (a *App) drugLine(d models.Drug) string {
	return fmt.Sprintf("#%d %s", d.ID, joinNonEmpty(" ", d.LocalizedName(a.tr.Language()), d.Strength, d.DosageForm))
}

func (a *App) pharmacyLine(p models.Pharmacy) string {
	line := fmt.Sprintf("#%d %s", p.ID, joinNonEmpty(", ", p.Name, p.Address, p.City))
	if p.IsVerified {
		line += " [verified]"
	}
	return line
}

func (a *App) nearbyLine(p services.NearbyPharmacy) string {
	return a.pharmacyLine(p.Pharmacy) + " (" + geo.FormatDistance(p.DistanceKm) + ")"
}

// reportLine renders a report. The drug or the pharmacy is named when the
// backend embedded it.
func (a *App) reportLine(r models.AvailabilityReport) string {
	var subject []string
	if r.Drug != nil {
		subject = append(subject, r.Drug.LocalizedName(a.tr.Language()))
	}
	if r.Pharmacy != nil {
		subject = append(subject, r.Pharmacy.Name)
	}

	line := fmt.Sprintf("#%d %s | %s | %s | +%d/-%d",
		r.ID,
		a.tr.T(i18n.StatusKey(r.Status)),
		a.formatPrice(r.Price),
		joinNonEmpty(" @ ", subject...),
		r.ConfirmedCount, r.DisputedCount,
	)
	if r.Reporter != nil {
		line += " | " + a.tr.T(i18n.ReportedBy, r.Reporter.Username)
	}
	if !r.CreatedAt.IsZero() {
		line += " | " + a.tr.T(i18n.LastReported, formatTime(r.CreatedAt))
	}
	return line
}

func (a *App) printDrug(d *models.Drug) {
	a.println(a.drugLine(*d))
	if desc := d.LocalizedDescription(a.tr.Language()); desc != "" {
		a.println("  " + desc)
	}
	if len(d.CommonBrandNames) > 0 {
		a.println("  " + strings.Join(d.CommonBrandNames, ", "))
	}
}

func (a *App) printPharmacy(p *models.Pharmacy) {
	a.println(a.pharmacyLine(*p))
	if p.PhoneNumber != "" {
		a.println("  tel: " + p.PhoneNumber)
	}
	for _, day := range weekdays {
		if hours, ok := p.OpeningHours[day]; ok {
			a.printf("  %-9s %s\n", day, hours)
		}
	}
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/client/i18n"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/nav"
	"github.com/dmitrijs2005/medfinder/internal/client/pager"
	"github.com/dmitrijs2005/medfinder/internal/client/services"
)

const dateLayout = "2006-01-02"

var errInvalidInput = errors.New("invalid input")

// pick lets the user choose an item either by "#id" or by searching for it
// and choosing from the first page of results. An empty answer picks nothing.
func pick[T any](
	ctx context.Context,
	a *App,
	prompt string,
	byID func(ctx context.Context, id int64) (*T, error),
	search func(query string) *pager.Pager[T],
	line func(T) string,
	empty i18n.Key,
) (*T, error) {
	answer, err := getSimpleText(a.reader, prompt+" (#id / name)", a.out)
	if err != nil || answer == "" {
		return nil, err
	}
	if id, ok := parseID(answer); ok {
		return byID(ctx, id)
	}

	p := search(answer)
	if _, err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	items := p.Items()
	if len(items) == 0 {
		a.println(a.tr.T(empty))
		return nil, nil
	}
	for i, it := range items {
		a.printf("%2d) %s\n", i+1, line(it))
	}
	choice, err := getSimpleText(a.reader, "1-"+strconv.Itoa(len(items)), a.out)
	if err != nil || choice == "" {
		return nil, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(items) {
		return nil, fmt.Errorf("%w: %q", errInvalidInput, choice)
	}
	return &items[n-1], nil
}

func (a *App) readStatus(optional bool) (models.Status, error) {
	prompt := fmt.Sprintf("status (%s / %s / %s)", models.StatusInStock, models.StatusOutOfStock, models.StatusUnknown)
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if answer == "" {
		if optional {
			return "", nil
		}
		return models.StatusInStock, nil
	}
	s := models.Status(answer)
	if !s.Valid() {
		return "", fmt.Errorf("%w: status %q", errInvalidInput, answer)
	}
	return s, nil
}

func (a *App) readPrice() (*float64, error) {
	answer, err := getSimpleText(a.reader, "price ("+a.tr.T(i18n.Currency)+")", a.out)
	if err != nil {
		return nil, err
	}
	price, err := parseOptionalFloat(answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	return price, nil
}

func (a *App) readExpiry() (*time.Time, error) {
	answer, err := getSimpleText(a.reader, "expiry ("+dateLayout+")", a.out)
	if err != nil || answer == "" {
		return nil, err
	}
	t, err := time.Parse(dateLayout, answer)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", errInvalidInput, answer)
	}
	return &t, nil
}

// invalidInput reports a malformed answer to a form prompt.
func (a *App) invalidInput(err error) error {
	a.printf("%s: %s\n", a.tr.T(i18n.Error), err)
	return err
}

// SubmitReport walks an administrator through the availability form.
func (a *App) SubmitReport(ctx context.Context) error {
	if !a.open(ctx, nav.ReportTab) {
		return nil
	}
	// Checked again on submission; asking first spares a user the form.
	if !a.sessions.Session().IsAdmin() {
		a.showAlert(services.ErrorAlert(a.tr, services.ErrAdminOnly))
		return services.ErrAdminOnly
	}

	var (
		draft services.ReportDraft
		err   error
	)
	draft.Drug, err = pick(ctx, a, "drug", a.catalog.Drug, func(q string) *pager.Pager[models.Drug] {
		return a.catalog.SearchDrugs(q, a.tr.Language())
	}, a.drugLine, i18n.NoDrugsFound)
	if err != nil {
		if errors.Is(err, errInvalidInput) {
			return a.invalidInput(err)
		}
		return a.fail(ctx, "pick drug", err)
	}
	draft.Pharmacy, err = pick(ctx, a, "pharmacy", a.catalog.Pharmacy, func(q string) *pager.Pager[models.Pharmacy] {
		return a.catalog.SearchPharmacies(q, "", false)
	}, a.pharmacyLine, i18n.NoPharmaciesFound)
	if err != nil {
		if errors.Is(err, errInvalidInput) {
			return a.invalidInput(err)
		}
		return a.fail(ctx, "pick pharmacy", err)
	}

	if draft.Status, err = a.readStatus(false); err != nil {
		return a.invalidInput(err)
	}
	if draft.Price, err = a.readPrice(); err != nil {
		return a.invalidInput(err)
	}
	if draft.Notes, err = GetMultiline(a.reader, "notes", a.out); err != nil {
		return err
	}
	if draft.ExpiryDate, err = a.readExpiry(); err != nil {
		return a.invalidInput(err)
	}

	report, err := a.reports.Submit(ctx, draft)
	if err != nil {
		return a.fail(ctx, "submit report", err)
	}
	a.println(a.tr.T(i18n.ReportSuccess))
	a.println(a.reportLine(*report))
	return nil
}

// MyReports lists the user's own reports, optionally for one status.
func (a *App) MyReports(ctx context.Context, args []string) error {
	var status models.Status
	if len(args) > 0 {
		status = models.Status(args[0])
		if !status.Valid() {
			return a.invalidInput(fmt.Errorf("%w: status %q", errInvalidInput, args[0]))
		}
	}
	if !a.open(ctx, nav.MyReports) {
		return nil
	}

	a.myReports = nil
	return showList(ctx, a, a.reports.Mine(status), i18n.NoReports, a.reportLine, func(batch []models.AvailabilityReport) {
		a.myReports = append(a.myReports, batch...)
	})
}

// openReport opens the screen of one report on top of the list it was
// picked from. leave goes back to that list, whose "more" still works.
func (a *App) openReport(ctx context.Context, id int64) (leave func(), ok bool) {
	from, more := a.nav.Current(), a.more
	if !a.open(ctx, nav.Report(id)) {
		return nil, false
	}
	return func() {
		a.back(ctx)
		if a.nav.Current() == from {
			a.more = more
		}
	}, true
}

// EditReport changes the status, price or notes of a report. Fields left
// empty are not sent.
func (a *App) EditReport(ctx context.Context, args []string) error {
	id, ok := firstID(args)
	if !ok {
		return a.invalidInput(fmt.Errorf("%w: report id", errInvalidInput))
	}
	leave, ok := a.openReport(ctx, id)
	if !ok {
		return nil
	}
	defer leave()

	var req models.UpdateReportRequest
	status, err := a.readStatus(true)
	if err != nil {
		return a.invalidInput(err)
	}
	if status != "" {
		req.Status = &status
	}
	if req.Price, err = a.readPrice(); err != nil {
		return a.invalidInput(err)
	}
	notes, err := getSimpleText(a.reader, "notes", a.out)
	if err != nil {
		return err
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		req.Notes = &notes
	}
	if req.Status == nil && req.Price == nil && req.Notes == nil {
		return nil
	}

	report, err := a.reports.Update(ctx, id, req)
	if err != nil {
		return a.fail(ctx, "update report", err)
	}
	a.println(a.tr.T(i18n.Success))
	a.println(a.reportLine(*report))
	return nil
}

// DeleteReport deletes one of the user's reports after confirmation.
func (a *App) DeleteReport(ctx context.Context, args []string) error {
	id, ok := firstID(args)
	if !ok {
		return a.invalidInput(fmt.Errorf("%w: report id", errInvalidInput))
	}
	leave, ok := a.openReport(ctx, id)
	if !ok {
		return nil
	}
	defer leave()

	yes, err := GetConfirmation(a.reader, a.tr.T(i18n.DeleteReportConfirmation), a.out)
	if err != nil || !yes {
		return err
	}

	remaining, err := a.reports.Delete(ctx, a.myReports, id)
	if err != nil {
		a.log.Error(ctx, "delete report failed", "report_id", id, "err", err)
		a.showAlert(services.DeleteAlert(a.tr, err))
		return err
	}
	a.myReports = remaining
	a.println(a.tr.T(i18n.ReportDeleted))
	return nil
}

// ConfirmReport vouches for a report made by someone else.
func (a *App) ConfirmReport(ctx context.Context, args []string) error {
	return a.reportAction(ctx, args, "confirm report", a.reports.Confirm)
}

// DisputeReport flags a report as wrong.
func (a *App) DisputeReport(ctx context.Context, args []string) error {
	return a.reportAction(ctx, args, "dispute report", a.reports.Dispute)
}

func (a *App) reportAction(ctx context.Context, args []string, op string, action func(context.Context, int64) error) error {
	id, ok := firstID(args)
	if !ok {
		return a.invalidInput(fmt.Errorf("%w: report id", errInvalidInput))
	}
	leave, ok := a.openReport(ctx, id)
	if !ok {
		return nil
	}
	defer leave()

	if err := action(ctx, id); err != nil {
		return a.fail(ctx, op, err)
	}
	a.println(a.tr.T(i18n.Success))
	return nil
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/medfinder/internal/client/api"
	"github.com/dmitrijs2005/medfinder/internal/client/config"
	"github.com/dmitrijs2005/medfinder/internal/client/credstore"
	"github.com/dmitrijs2005/medfinder/internal/client/geo"
	"github.com/dmitrijs2005/medfinder/internal/client/guard"
	"github.com/dmitrijs2005/medfinder/internal/client/i18n"
	"github.com/dmitrijs2005/medfinder/internal/client/localdb"
	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"github.com/dmitrijs2005/medfinder/internal/client/nav"
	"github.com/dmitrijs2005/medfinder/internal/client/services"
	"github.com/dmitrijs2005/medfinder/internal/client/session"
	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/cryptox"
	"github.com/dmitrijs2005/medfinder/internal/filex"
	"github.com/dmitrijs2005/medfinder/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions session.Store
	nav      *nav.Navigator
	guard    *guard.Guard
	catalog  services.CatalogService
	reports  services.ReportService
	account  services.AccountService
	prefs    i18n.PreferenceStore
	tr       *i18n.Translator
	reader   *bufio.Reader
	out      io.Writer

	// more loads the next page of the list shown last; nil when that
	// screen has no list.
	more func(ctx context.Context) error
	// myReports mirrors the report list on screen for deletion.
	myReports []models.AvailabilityReport
	stopGuard func()
}

// NewApp opens local storage, builds the backend client and the services on
// top of it, and attaches the route guard to the session.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	return build(ctx, c, log, os.Stdin, os.Stdout)
}

func build(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	if _, err := filex.EnsureParentDir(c.DBPath, 0o700); err != nil {
		return nil, err
	}
	secret, err := cryptox.LoadOrCreateSecret(c.SecretPath)
	if err != nil {
		return nil, err
	}
	db, err := localdb.Open(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}
	store := credstore.New(db, secret)
	common.WipeByteArray(secret)

	// The client reads the token from the manager, which in turn logs in
	// through the client.
	var manager *session.Manager
	client, err := api.NewHTTPClient(c.APIURL, c.RequestTimeout, api.TokenFunc(func() string {
		return manager.Token()
	}), log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	manager = session.NewManager(client, store, log)

	location := geo.NewStaticProvider(c.Latitude, c.Longitude)
	a := &App{
		config:   c,
		log:      log.With("component", "cli"),
		db:       db,
		sessions: manager,
		catalog:  services.NewCatalogService(client, client, location, c.PageSize, log),
		reports:  services.NewReportService(client, manager, c.PageSize, log),
		account:  services.NewAccountService(client, log),
		prefs:    store,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	a.tr = i18n.New(i18n.Resolve(ctx, store, i18n.DeviceLocale()))
	a.attachGuard(ctx, log)
	return a, nil
}

func (a *App) attachGuard(ctx context.Context, log logging.Logger) {
	a.nav = nav.New(nav.Home)
	a.guard = guard.New(a.nav, log)
	a.stopGuard = a.guard.Watch(ctx, a.sessions)
}

// Run restores the persisted session and serves commands until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.sessions.Hydrate(ctx); err != nil {
		a.log.Warn(ctx, "session not restored", "err", err)
	}
	a.println(a.tr.T(i18n.WelcomeMessage))
	if u := a.sessions.Session().User; u != nil && a.isLoggedIn() {
		a.println(a.tr.T(i18n.WelcomeBack, u.Username))
	}
	a.Root(ctx)
}

// Root blocks in the REPL.
func (a *App) Root(ctx context.Context) {
	runREPL(ctx, a, a.status, a.reader)
}

// Close detaches the guard and closes local storage. It is safe to call
// more than once.
func (a *App) Close() {
	if a.stopGuard != nil {
		a.stopGuard()
		a.stopGuard = nil
	}
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Session().IsAuthenticated
}

// status is shown in the prompt: who is logged in and where they are.
func (a *App) status() string {
	s := a.sessions.Session()
	who := a.tr.T(i18n.Guest)
	if s.IsAuthenticated && s.User != nil {
		who = s.User.Email
		if s.IsAdmin() {
			who += " (admin)"
		}
	}
	return fmt.Sprintf("%s %s", who, a.nav.Current())
}

// open navigates to location and lets the guard decide whether the screen
// may be shown. It reports false when the guard redirected, after telling
// the user why.
func (a *App) open(ctx context.Context, location string) bool {
	a.nav.Push(location)
	a.more = nil
	return a.enforce(ctx, location)
}

// back returns to the previous location, which the guard checks like any
// other. It reports false at the bottom of the stack.
func (a *App) back(ctx context.Context) bool {
	if !a.nav.Back() {
		return false
	}
	a.enforce(ctx, a.nav.Current())
	return true
}

// enforce runs the guard on location and reports whether it may be shown.
func (a *App) enforce(ctx context.Context, location string) bool {
	switch a.guard.Evaluate(ctx, location, a.sessions.Session()) {
	case "":
		return true
	case nav.Login:
		a.showAlert(services.Alert{Title: a.tr.T(i18n.LoginRequired), Message: a.tr.T(i18n.LoginToAccess), Redirect: nav.Login})
	default:
		if u := a.sessions.Session().User; u != nil {
			a.println(a.tr.T(i18n.WelcomeBack, u.Username))
		}
	}
	return false
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) showAlert(al services.Alert) {
	a.printf("%s: %s\n", al.Title, al.Message)
	if al.Redirect == nav.Login {
		a.printf("  %s: login\n", a.tr.T(i18n.Login))
	}
}

// fail reports err to the user and the log, and returns it.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.log.Error(ctx, op+" failed", "err", err)
	a.showAlert(services.ErrorAlert(a.tr, err))
	return err
}

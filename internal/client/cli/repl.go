package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// args are the words typed after the command.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Profile(ctx context.Context) error
	Home(ctx context.Context) error
	SearchDrugs(ctx context.Context, args []string) error
	ShowDrug(ctx context.Context, args []string) error
	SearchPharmacies(ctx context.Context, args []string) error
	ShowPharmacy(ctx context.Context, args []string) error
	Nearby(ctx context.Context, args []string) error
	More(ctx context.Context) error
	SubmitReport(ctx context.Context) error
	MyReports(ctx context.Context, args []string) error
	EditReport(ctx context.Context, args []string) error
	DeleteReport(ctx context.Context, args []string) error
	ConfirmReport(ctx context.Context, args []string) error
	DisputeReport(ctx context.Context, args []string) error
	SetLanguage(ctx context.Context, args []string) error
	Back(ctx context.Context) error
	About(ctx context.Context) error
}

const (
	guestHelp = "Available commands: search <name>, drug <id>, pharmacies [name], pharmacy <id>, " +
		"nearby [km], more, login, register, forgot, lang <fr|en>, back, about, exit"
	userHelp = "Available commands: search <name>, drug <id>, pharmacies [name], pharmacy <id>, " +
		"nearby [km], more, report, myreports [status], edit <id>, delete <id>, confirm <id>, dispute <id>, " +
		"profile, lang <fr|en>, back, about, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the MedFinder CLI.
//
// It reads a line from reader, parses the first word as the command, and
// dispatches to methods on 'a'. The same reader serves the prompts inside
// commands, so no typed-ahead input is lost between them. Unknown commands
// are reported back to the user. The loop exits on EOF, on context
// cancellation or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn): the logged-in user,
// or the guest label, and the current location.
//
// Any errors returned by command handlers are ignored here; handlers report
// and log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("mf> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "h":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "home":
			_ = a.Home(ctx)

		case "s", "search":
			_ = a.SearchDrugs(ctx, args)

		case "drug":
			_ = a.ShowDrug(ctx, args)

		case "pharmacies":
			_ = a.SearchPharmacies(ctx, args)

		case "pharmacy":
			_ = a.ShowPharmacy(ctx, args)

		case "nearby":
			_ = a.Nearby(ctx, args)

		case "m", "more":
			_ = a.More(ctx)

		case "report":
			_ = a.SubmitReport(ctx)

		case "myreports":
			_ = a.MyReports(ctx, args)

		case "edit":
			_ = a.EditReport(ctx, args)

		case "delete":
			_ = a.DeleteReport(ctx, args)

		case "confirm":
			_ = a.ConfirmReport(ctx, args)

		case "dispute":
			_ = a.DisputeReport(ctx, args)

		case "lang":
			_ = a.SetLanguage(ctx, args)

		case "back":
			_ = a.Back(ctx)

		case "about":
			_ = a.About(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

package cli

import (
	"context"

	"github.com/dmitrijs2005/medfinder/internal/buildinfo"
	"github.com/dmitrijs2005/medfinder/internal/client/i18n"
	"github.com/dmitrijs2005/medfinder/internal/client/nav"
)

// SetLanguage switches the interface and search language and remembers the
// choice on the device.
func (a *App) SetLanguage(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("lang: %s\n", a.tr.Language())
		return nil
	}
	lang, err := i18n.Parse(args[0])
	if err != nil {
		return a.invalidInput(err)
	}
	if err := a.prefs.SetLanguage(ctx, string(lang)); err != nil {
		a.log.Warn(ctx, "language not saved", "err", err)
	}
	a.tr = i18n.New(lang)
	a.println(a.tr.T(i18n.LanguageChanged))
	return nil
}

// Back returns to the previous location.
func (a *App) Back(ctx context.Context) error {
	a.more = nil
	if !a.back(ctx) {
		return nil
	}
	a.println(a.nav.Current())
	return nil
}

// About shows the disclaimer and the build.
func (a *App) About(ctx context.Context) error {
	if !a.open(ctx, nav.About) {
		return nil
	}
	a.println(a.tr.T(i18n.Disclaimer))
	buildinfo.PrintBuildData(a.out)
	return nil
}

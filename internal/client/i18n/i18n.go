// Package i18n holds the French and English message catalog and resolves
// which language the client speaks.
package i18n

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
	"golang.org/x/text/language"
)

// Default is used when neither a stored preference nor the device locale
// selects a supported language.
const Default = models.LanguageFR

// Translator renders catalog messages in one language.
type Translator struct {
	lang models.Language
}

func New(lang models.Language) *Translator {
	if !lang.Valid() {
		lang = Default
	}
	return &Translator{lang: lang}
}

func (t *Translator) Language() models.Language { return t.lang }

// T returns the message for key. args are applied with fmt.Sprintf when
// present. A key missing from the language falls back to French, then to
// the key itself.
func (t *Translator) T(key Key, args ...any) string {
	msg, ok := catalog[t.lang][key]
	if !ok {
		if msg, ok = catalog[Default][key]; !ok {
			msg = string(key)
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// PreferenceStore persists the chosen language; credstore.Store is one.
type PreferenceStore interface {
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, lang string) error
}

var matcher = language.NewMatcher([]language.Tag{language.French, language.English})

// MatchLocale maps a POSIX or BCP 47 locale such as "en_GB.UTF-8" to a
// supported language, or Default.
func MatchLocale(locale string) models.Language {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Default
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Default
	}
	matched, _, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	if base, _ := matched.Base(); base.String() == "en" {
		return models.LanguageEN
	}
	return models.LanguageFR
}

// DeviceLocale reads the locale from the usual environment variables.
func DeviceLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// Resolve picks the stored preference when it names a supported language,
// otherwise the device locale. A store error is treated as no preference.
func Resolve(ctx context.Context, store PreferenceStore, deviceLocale string) models.Language {
	if store != nil {
		if stored, err := store.Language(ctx); err == nil {
			if lang := models.Language(strings.ToUpper(stored)); lang.Valid() {
				return lang
			}
		}
	}
	return MatchLocale(deviceLocale)
}

// Parse accepts "fr", "FR", "en", "EN".
func Parse(s string) (models.Language, error) {
	lang := models.Language(strings.ToUpper(strings.TrimSpace(s)))
	if !lang.Valid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return lang, nil
}

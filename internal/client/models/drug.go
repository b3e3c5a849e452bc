package models

// Language selects which localized drug name the backend searches.
type Language string

const (
	LanguageFR Language = "FR"
	LanguageEN Language = "EN"
)

func (l Language) Valid() bool {
	return l == LanguageFR || l == LanguageEN
}

type Drug struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	NameFR           string   `json:"nameFR"`
	NameEN           string   `json:"nameEN"`
	Description      string   `json:"description,omitempty"`
	DescriptionFR    string   `json:"descriptionFR,omitempty"`
	DescriptionEN    string   `json:"descriptionEN,omitempty"`
	DosageForm       string   `json:"dosageForm,omitempty"`
	Strength         string   `json:"strength,omitempty"`
	CommonBrandNames []string `json:"commonBrandNames,omitempty"`
	IsActive         bool     `json:"isActive"`
}

func localized(lang Language, fallback, fr, en string) string {
	switch {
	case lang == LanguageEN && en != "":
		return en
	case lang == LanguageFR && fr != "":
		return fr
	default:
		return fallback
	}
}

// LocalizedName picks the name for lang, falling back to Name.
func (d Drug) LocalizedName(lang Language) string {
	return localized(lang, d.Name, d.NameFR, d.NameEN)
}

// LocalizedDescription picks the description for lang, falling back to
// Description.
func (d Drug) LocalizedDescription(lang Language) string {
	return localized(lang, d.Description, d.DescriptionFR, d.DescriptionEN)
}

// DrugSummary is the drug as embedded in a report.
type DrugSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NameFR     string `json:"nameFR"`
	NameEN     string `json:"nameEN"`
	DosageForm string `json:"dosageForm,omitempty"`
	Strength   string `json:"strength,omitempty"`
}

func (d DrugSummary) LocalizedName(lang Language) string {
	return localized(lang, d.Name, d.NameFR, d.NameEN)
}

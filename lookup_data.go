package locfmt

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// xtextLookupProvider serves display names from golang.org/x/text where the
// library has data (languages, regions, locale tags) and from embedded tables
// where it does not (currencies, timezones).
type xtextLookupProvider struct{}

func newXTextLookupProvider() *xtextLookupProvider {
	return &xtextLookupProvider{}
}

func (p *xtextLookupProvider) DisplayName(kind LookupKind, code, locale string) (string, error) {
	switch kind {
	case LookupCountry:
		return countryDisplayName(code, locale)
	case LookupCurrency:
		return currencyDisplayName(code)
	case LookupCurrencySymbol:
		return currencyDisplaySymbol(code, locale)
	case LookupLanguage:
		return languageDisplayName(code, locale)
	case LookupLocale:
		return localeDisplayName(code, locale)
	case LookupTimezone:
		return timezoneDisplayName(code)
	default:
		return "", ErrNotFound
	}
}

func (p *xtextLookupProvider) CountryTimezones(code string) ([]string, error) {
	zones, ok := countryTimezonesData[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string{}, zones...), nil
}

func countryDisplayName(code, locale string) (string, error) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", ErrNotFound
	}

	name := display.Regions(displayTag(locale)).Name(region)
	if name == "" {
		name = display.Regions(language.English).Name(region)
	}
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

func languageDisplayName(code, locale string) (string, error) {
	base, err := language.ParseBase(code)
	if err != nil {
		return "", ErrNotFound
	}

	name := display.Languages(displayTag(locale)).Name(base)
	if name == "" {
		name = display.Languages(language.English).Name(base)
	}
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

func localeDisplayName(code, locale string) (string, error) {
	tag, err := language.Parse(normalizeLocale(code))
	if err != nil {
		return "", ErrNotFound
	}

	name := display.Tags(displayTag(locale)).Name(tag)
	if name == "" {
		name = display.Tags(language.English).Name(tag)
	}
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

// currencyDisplayName serves English names only: x/text exposes currency
// symbols but no localized currency display names, so the embedded table is
// the data source and the request locale is not consulted. Localized names
// need a custom LookupProvider.
func currencyDisplayName(code string) (string, error) {
	name, ok := currencyNamesData[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return "", ErrNotFound
	}
	return name, nil
}

func currencyDisplaySymbol(code, locale string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return "", ErrNotFound
	}

	if symbol := extractCurrencySymbol(unit, displayTag(locale)); symbol != "" {
		return symbol, nil
	}
	if symbol := extractCurrencySymbol(unit, language.English); symbol != "" {
		return symbol, nil
	}
	return unit.String(), nil
}

func timezoneDisplayName(code string) (string, error) {
	name, ok := timezoneNamesData[strings.TrimSpace(code)]
	if !ok {
		return "", ErrNotFound
	}
	return name, nil
}

func displayTag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag := language.Make(normalizeLocale(locale))
	if tag == language.Und {
		return language.English
	}
	return tag
}

var currencyNamesData = map[string]string{
	"AUD": "Australian Dollar",
	"BRL": "Brazilian Real",
	"CAD": "Canadian Dollar",
	"CHF": "Swiss Franc",
	"CNY": "Chinese Yuan",
	"EUR": "Euro",
	"GBP": "British Pound",
	"INR": "Indian Rupee",
	"JPY": "Japanese Yen",
	"MXN": "Mexican Peso",
	"RUB": "Russian Ruble",
	"UAH": "Ukrainian Hryvnia",
	"USD": "US Dollar",
}

var timezoneNamesData = map[string]string{
	"UTC":                  "Coordinated Universal Time",
	"America/Chicago":      "Central Time",
	"America/Denver":       "Mountain Time",
	"America/Los_Angeles":  "Pacific Time",
	"America/New_York":     "Eastern Time",
	"America/Sao_Paulo":    "Brasilia Time",
	"Asia/Shanghai":        "China Standard Time",
	"Asia/Tokyo":           "Japan Standard Time",
	"Australia/Sydney":     "Australian Eastern Time",
	"Europe/Berlin":        "Central European Time",
	"Europe/Kyiv":          "Eastern European Time",
	"Europe/London":        "Greenwich Mean Time",
	"Europe/Madrid":        "Central European Time",
	"Europe/Moscow":        "Moscow Standard Time",
	"Europe/Paris":         "Central European Time",
}

var countryTimezonesData = map[string][]string{
	"AU": {"Australia/Perth", "Australia/Adelaide", "Australia/Brisbane", "Australia/Sydney"},
	"BR": {"America/Manaus", "America/Sao_Paulo"},
	"CN": {"Asia/Shanghai"},
	"DE": {"Europe/Berlin"},
	"ES": {"Europe/Madrid", "Atlantic/Canary"},
	"FR": {"Europe/Paris"},
	"GB": {"Europe/London"},
	"JP": {"Asia/Tokyo"},
	"RU": {"Europe/Kaliningrad", "Europe/Moscow", "Asia/Yekaterinburg", "Asia/Novosibirsk", "Asia/Vladivostok"},
	"UA": {"Europe/Kyiv"},
	"US": {"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles", "America/Anchorage", "Pacific/Honolulu"},
}

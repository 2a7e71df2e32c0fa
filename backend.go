package locfmt

import "time"

// NumberBackend materializes number formatters for a locale and style. The
// backend is the opaque formatting capability: it owns locale data and digit
// rendering, while the resolvers own option merging and caching.
type NumberBackend interface {
	NewNumberFormatter(locale string, style NumberStyle) (NumberFormatter, error)
}

// NumberFormatter is a mutable, locale-bound number formatter. Instances are
// cached by the number resolver and re-configured in place on every
// resolution, so all access must stay behind the resolver's lock.
type NumberFormatter interface {
	Attribute(attr NumberAttribute) int
	SetAttribute(attr NumberAttribute, value int)
	TextAttribute(name string) string
	SetTextAttribute(name, value string)
	Symbol(name string) string
	SetSymbol(name, value string)
	Format(value any, numericType NumericType) (string, error)
	Locale() string
	Style() NumberStyle
}

// DateFormatterConfig is the fully-resolved configuration a date formatter is
// built from. A nil Timezone means "leave the value's own zone untouched".
type DateFormatterConfig struct {
	Locale    string
	DateStyle DateStyle
	TimeStyle DateStyle
	Pattern   string
	Timezone  *time.Location
	Calendar  Calendar
}

// DateBackend materializes date formatters from resolved configurations.
type DateBackend interface {
	NewDateFormatter(cfg DateFormatterConfig) (DateFormatter, error)

	// SupportsRelative reports whether relative_* styles render day tokens.
	// When false the resolver degrades them to their absolute counterpart.
	SupportsRelative() bool
}

// DateFormatter is an immutable, fully-configured date/time formatter. Unlike
// number formatters it is never mutated after construction and is safe for
// concurrent use.
type DateFormatter interface {
	Format(t time.Time) (string, error)
	Config() DateFormatterConfig
}

// LookupKind names the display-name tables served by a LookupProvider.
type LookupKind int

const (
	LookupCountry LookupKind = iota
	LookupCurrency
	LookupCurrencySymbol
	LookupLanguage
	LookupLocale
	LookupTimezone
)

// LookupProvider is the opaque display-name capability. Missing resources are
// reported as ErrNotFound; the lookup service turns that into graceful
// degradation.
type LookupProvider interface {
	DisplayName(kind LookupKind, code, locale string) (string, error)
	CountryTimezones(code string) ([]string, error)
}

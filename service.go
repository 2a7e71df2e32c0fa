package locfmt

import (
	"fmt"
	"time"
)

// TimezoneUnchanged is the sentinel timezone value meaning "render in the
// value's own zone" instead of deferring to prototype or process defaults.
var TimezoneUnchanged = unchangedZone{}

type unchangedZone struct{}

// NumberOptions carries the per-call knobs for number formatting. Zero values
// mean "absent": empty style resolves to decimal, empty type to default, and
// an empty locale falls back to the prototype locale, then the service
// default.
type NumberOptions struct {
	Attributes map[string]any
	Style      string
	Type       string
	Locale     string
}

// DateOptions carries the per-call knobs for date and time formatting. Empty
// style names are "absent" and resolve through the prototype. Timezone
// accepts a *time.Location, an IANA zone name, or TimezoneUnchanged.
type DateOptions struct {
	DateStyle string
	TimeStyle string
	Pattern   string
	Timezone  any
	Calendar  string
	Locale    string
}

type numberPrototypeSpec struct {
	locale    string
	style     string
	configure func(NumberFormatter)
}

// FormatService is the facade over formatter resolution, caching, pretty
// rendering, and display-name lookups.
type FormatService struct {
	clock         func() time.Time
	defaultLocale string
	defaultZone   *time.Location

	rulesPath      string
	rulesOverrides map[string]string
	fallback       FallbackResolver
	rules          *FormattingRulesProvider

	numberBackend  NumberBackend
	dateBackend    DateBackend
	lookupProvider LookupProvider
	lookup         *LookupService

	pretty PrettyStrategy
	hooks  []FormatHook

	numberProto *numberPrototypeSpec
	dateProto   *DateFormatterConfig

	numbers *numberResolver
	dates   *dateResolver
}

// Option configures a FormatService during construction.
type Option func(*FormatService) error

// WithDefaultLocale sets the locale used when neither the call nor the
// prototype names one.
func WithDefaultLocale(locale string) Option {
	return func(s *FormatService) error {
		s.defaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithDefaultTimezone sets the zone applied when neither the call nor the
// prototype names one.
func WithDefaultTimezone(loc *time.Location) Option {
	return func(s *FormatService) error {
		s.defaultZone = loc
		return nil
	}
}

// WithClock replaces the time source. Used by relative day tokens and pretty
// formatting.
func WithClock(clock func() time.Time) Option {
	return func(s *FormatService) error {
		if clock != nil {
			s.clock = clock
		}
		return nil
	}
}

// WithRulesPath loads a formatting rules file over the embedded defaults.
func WithRulesPath(path string) Option {
	return func(s *FormatService) error {
		s.rulesPath = path
		return nil
	}
}

// WithRulesOverride loads a locale-specific rules file that wins over both
// the embedded defaults and the base rules file.
func WithRulesOverride(locale, path string) Option {
	return func(s *FormatService) error {
		if s.rulesOverrides == nil {
			s.rulesOverrides = make(map[string]string)
		}
		s.rulesOverrides[normalizeLocale(locale)] = path
		return nil
	}
}

// WithFallbackResolver sets the locale fallback chain used by rules lookup.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(s *FormatService) error {
		s.fallback = resolver
		return nil
	}
}

// WithNumberBackend replaces the number formatting capability.
func WithNumberBackend(backend NumberBackend) Option {
	return func(s *FormatService) error {
		s.numberBackend = backend
		return nil
	}
}

// WithDateBackend replaces the date formatting capability.
func WithDateBackend(backend DateBackend) Option {
	return func(s *FormatService) error {
		s.dateBackend = backend
		return nil
	}
}

// WithLookupProvider replaces the display-name capability.
func WithLookupProvider(provider LookupProvider) Option {
	return func(s *FormatService) error {
		s.lookupProvider = provider
		return nil
	}
}

// WithPrettyStrategy sets the strategy behind the pretty entry points. A nil
// strategy makes them fail with ErrNoPrettyStrategy.
func WithPrettyStrategy(strategy PrettyStrategy) Option {
	return func(s *FormatService) error {
		s.pretty = strategy
		return nil
	}
}

// WithFormatHooks appends hooks that observe every formatting call.
func WithFormatHooks(hooks ...FormatHook) Option {
	return func(s *FormatService) error {
		s.hooks = append(s.hooks, hooks...)
		return nil
	}
}

// WithNumberPrototype installs a prototype number formatter. The configure
// callback receives the freshly built formatter and may set attributes, text
// attributes, and symbols; call-time attributes win over prototype values.
func WithNumberPrototype(locale, style string, configure func(NumberFormatter)) Option {
	return func(s *FormatService) error {
		s.numberProto = &numberPrototypeSpec{locale: locale, style: style, configure: configure}
		return nil
	}
}

// WithDatePrototype installs a prototype date formatter configuration that
// fills call-time gaps.
func WithDatePrototype(cfg DateFormatterConfig) Option {
	return func(s *FormatService) error {
		s.dateProto = &cfg
		return nil
	}
}

// NewFormatService builds a service with the default rules-driven backends,
// the x/text lookup provider, and the relative-day pretty strategy.
func NewFormatService(opts ...Option) (*FormatService, error) {
	s := &FormatService{
		clock:  time.Now,
		pretty: RelativeDayStrategy{},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.defaultLocale == "" {
		s.defaultLocale = detectDefaultLocale()
	}
	if s.defaultZone == nil {
		s.defaultZone = detectDefaultTimezone()
	}

	loader := NewRulesLoader(s.rulesPath)
	for locale, path := range s.rulesOverrides {
		loader.AddOverride(locale, path)
	}
	loaded, err := loader.Load()
	if err != nil {
		return nil, err
	}
	s.rules = NewFormattingRulesProvider(loaded, s.fallback)

	if s.numberBackend == nil {
		s.numberBackend = newDefaultNumberBackend(s.rules)
	}
	if s.dateBackend == nil {
		s.dateBackend = newDefaultDateBackend(s.rules, s.clock)
	}
	if s.lookupProvider == nil {
		s.lookupProvider = newXTextLookupProvider()
	}
	s.lookup = NewLookupService(s.lookupProvider)

	var numberProto NumberFormatter
	if s.numberProto != nil {
		numberProto, err = s.buildNumberPrototype(*s.numberProto)
		if err != nil {
			return nil, err
		}
	}

	var dateProto DateFormatter
	if s.dateProto != nil {
		dateProto, err = s.dateBackend.NewDateFormatter(*s.dateProto)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormatFailure, err)
		}
	}

	localeFn := func() string { return s.defaultLocale }
	zoneFn := func() *time.Location { return s.defaultZone }
	s.numbers = newNumberResolver(s.numberBackend, numberProto, localeFn)
	s.dates = newDateResolver(s.dateBackend, dateProto, localeFn, zoneFn)

	return s, nil
}

func (s *FormatService) buildNumberPrototype(spec numberPrototypeSpec) (NumberFormatter, error) {
	styleName := spec.style
	if styleName == "" {
		styleName = "decimal"
	}
	style, err := ParseNumberStyle(styleName)
	if err != nil {
		return nil, err
	}

	locale := normalizeLocale(spec.locale)
	if locale == "" {
		locale = s.defaultLocale
	}

	proto, err := s.numberBackend.NewNumberFormatter(locale, style)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormatFailure, err)
	}
	if spec.configure != nil {
		spec.configure(proto)
	}
	return proto, nil
}

// Rules exposes the resolved formatting rules provider.
func (s *FormatService) Rules() *FormattingRulesProvider { return s.rules }

// DefaultLocale reports the locale used when calls omit one.
func (s *FormatService) DefaultLocale() string { return s.defaultLocale }

func (s *FormatService) runHooks(op, locale string, value any, fn func() (string, error)) (string, error) {
	ctx := FormatHookContext{Op: op, Locale: locale, Value: value}
	for _, hook := range s.hooks {
		hook.Before(ctx)
	}

	result, err := fn()

	ctx.Result = result
	ctx.Err = err
	for _, hook := range s.hooks {
		hook.After(ctx)
	}
	return result, err
}

// FormatNumber renders a numeric value. Empty options resolve through the
// prototype, then the service defaults.
func (s *FormatService) FormatNumber(value any, opts NumberOptions) (string, error) {
	return s.runHooks("number", opts.Locale, value, func() (string, error) {
		return s.numbers.format(value, opts.Attributes, opts.Style, opts.Type, normalizeLocale(opts.Locale), "")
	})
}

// FormatCurrency renders a monetary amount with the given ISO 4217 code.
func (s *FormatService) FormatCurrency(value any, currencyCode string, opts NumberOptions) (string, error) {
	style := opts.Style
	if style == "" {
		style = "currency"
	}
	return s.runHooks("currency", opts.Locale, value, func() (string, error) {
		return s.numbers.format(value, opts.Attributes, style, opts.Type, normalizeLocale(opts.Locale), currencyCode)
	})
}

// FormatDateTime renders an instant with both date and time components.
func (s *FormatService) FormatDateTime(value any, opts DateOptions) (string, error) {
	return s.runHooks("datetime", opts.Locale, value, func() (string, error) {
		return s.formatDate(value, opts)
	})
}

// FormatDate renders the date component only.
func (s *FormatService) FormatDate(value any, opts DateOptions) (string, error) {
	opts.TimeStyle = "none"
	return s.runHooks("date", opts.Locale, value, func() (string, error) {
		return s.formatDate(value, opts)
	})
}

// FormatTime renders the time component only.
func (s *FormatService) FormatTime(value any, opts DateOptions) (string, error) {
	opts.DateStyle = "none"
	return s.runHooks("time", opts.Locale, value, func() (string, error) {
		return s.formatDate(value, opts)
	})
}

func (s *FormatService) formatDate(value any, opts DateOptions) (string, error) {
	formatter, err := s.resolveDateFormatter(opts)
	if err != nil {
		return "", err
	}

	t, err := s.inputTime(value, formatter.Config().Timezone)
	if err != nil {
		return "", err
	}

	result, err := formatter.Format(t)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormatFailure, err)
	}
	return result, nil
}

// FormatDateTimePretty renders an instant conversationally, keeping the time
// component for nearby days.
func (s *FormatService) FormatDateTimePretty(value any, opts DateOptions) (string, error) {
	return s.runHooks("datetime_pretty", opts.Locale, value, func() (string, error) {
		return s.formatPretty(value, opts)
	})
}

// FormatDatePretty renders a date conversationally without a time component.
func (s *FormatService) FormatDatePretty(value any, opts DateOptions) (string, error) {
	opts.TimeStyle = "none"
	return s.runHooks("date_pretty", opts.Locale, value, func() (string, error) {
		return s.formatPretty(value, opts)
	})
}

func (s *FormatService) formatPretty(value any, opts DateOptions) (string, error) {
	if s.pretty == nil {
		return "", ErrNoPrettyStrategy
	}

	base, err := s.resolveDateFormatter(opts)
	if err != nil {
		return "", err
	}

	target, err := s.inputTime(value, base.Config().Timezone)
	if err != nil {
		return "", err
	}

	return s.pretty.FormatPretty(s.clock(), target, base, s.dates)
}

func (s *FormatService) resolveDateFormatter(opts DateOptions) (DateFormatter, error) {
	tz, err := s.resolveTimezone(opts.Timezone)
	if err != nil {
		return nil, err
	}
	return s.dates.resolve(normalizeLocale(opts.Locale), opts.DateStyle, opts.TimeStyle, opts.Pattern, tz, opts.Calendar)
}

// resolveTimezone turns the DateOptions timezone value into resolver input.
func (s *FormatService) resolveTimezone(value any) (timezoneInput, error) {
	switch v := value.(type) {
	case nil:
		return timezoneInput{}, nil
	case unchangedZone:
		return timezoneInput{set: true}, nil
	case *time.Location:
		return timezoneInput{set: true, loc: v}, nil
	case string:
		if v == "" {
			return timezoneInput{}, nil
		}
		loc, err := time.LoadLocation(v)
		if err != nil {
			return timezoneInput{}, fmt.Errorf("%w: timezone %q: %v", ErrFormatFailure, v, err)
		}
		return timezoneInput{set: true, loc: loc}, nil
	default:
		return timezoneInput{}, fmt.Errorf("%w: unsupported timezone value %T", ErrFormatFailure, value)
	}
}

func (s *FormatService) inputTime(value any, formatterZone *time.Location) (time.Time, error) {
	hint := formatterZone
	if hint == nil {
		hint = s.defaultZone
	}
	t, err := toTime(value, s.clock, hint)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrFormatFailure, err)
	}
	return t, nil
}

// CountryName returns the localized country name for an ISO 3166 code, or the
// code itself when unknown.
func (s *FormatService) CountryName(code, locale string) string {
	return s.lookup.CountryName(code, s.lookupLocale(locale))
}

// CurrencyName returns the localized currency name for an ISO 4217 code.
func (s *FormatService) CurrencyName(code, locale string) string {
	return s.lookup.CurrencyName(code, s.lookupLocale(locale))
}

// CurrencySymbol returns the display symbol for an ISO 4217 code.
func (s *FormatService) CurrencySymbol(code, locale string) string {
	return s.lookup.CurrencySymbol(code, s.lookupLocale(locale))
}

// LanguageName returns the localized language name for an ISO 639 code.
func (s *FormatService) LanguageName(code, locale string) string {
	return s.lookup.LanguageName(code, s.lookupLocale(locale))
}

// LocaleName returns the localized display name of a locale identifier.
func (s *FormatService) LocaleName(code, locale string) string {
	return s.lookup.LocaleName(code, s.lookupLocale(locale))
}

// TimezoneName returns the display name of an IANA timezone identifier.
func (s *FormatService) TimezoneName(code, locale string) string {
	return s.lookup.TimezoneName(code, s.lookupLocale(locale))
}

// CountryTimezones lists the IANA timezone identifiers of a country.
func (s *FormatService) CountryTimezones(code string) []string {
	return s.lookup.CountryTimezones(code)
}

func (s *FormatService) lookupLocale(locale string) string {
	if locale == "" {
		return s.defaultLocale
	}
	return normalizeLocale(locale)
}

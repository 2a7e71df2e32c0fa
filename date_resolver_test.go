package locfmt

import (
	"testing"
	"time"
)

type stubDateFormatter struct {
	cfg DateFormatterConfig
}

func (f stubDateFormatter) Format(time.Time) (string, error) { return "", nil }
func (f stubDateFormatter) Config() DateFormatterConfig      { return f.cfg }

type stubDateBackend struct {
	built    int
	relative bool
}

func (b *stubDateBackend) NewDateFormatter(cfg DateFormatterConfig) (DateFormatter, error) {
	b.built++
	return stubDateFormatter{cfg: cfg}, nil
}

func (b *stubDateBackend) SupportsRelative() bool { return b.relative }

func newStubDateResolver(prototype DateFormatter, relative bool) (*dateResolver, *stubDateBackend) {
	backend := &stubDateBackend{relative: relative}
	resolver := newDateResolver(backend, prototype,
		func() string { return "en" },
		func() *time.Location { return time.UTC },
	)
	return resolver, backend
}

func resolveConfig(t *testing.T, r *dateResolver, locale, dateStyle, timeStyle, pattern string, tz timezoneInput, calendar string) DateFormatterConfig {
	t.Helper()
	formatter, err := r.resolve(locale, dateStyle, timeStyle, pattern, tz, calendar)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return formatter.Config()
}

func TestDateResolverNoPrototypeDefaults(t *testing.T) {
	resolver, _ := newStubDateResolver(nil, true)

	cfg := resolveConfig(t, resolver, "", "", "", "", timezoneInput{}, "")
	if cfg.DateStyle != DateStyleMedium || cfg.TimeStyle != DateStyleMedium {
		t.Fatalf("both styles should default to medium, got %v/%v", cfg.DateStyle, cfg.TimeStyle)
	}
	if cfg.Locale != "en" {
		t.Fatalf("locale should fall back to the default, got %q", cfg.Locale)
	}
	if cfg.Timezone != time.UTC {
		t.Fatalf("timezone should fall back to the default zone, got %v", cfg.Timezone)
	}
}

func TestDateResolverCachesResolvedConfig(t *testing.T) {
	resolver, backend := newStubDateResolver(nil, true)

	for i := 0; i < 3; i++ {
		resolveConfig(t, resolver, "en", "medium", "short", "", timezoneInput{}, "")
	}
	if backend.built != 1 {
		t.Fatalf("identical resolutions should share one formatter, built %d", backend.built)
	}

	resolveConfig(t, resolver, "en", "medium", "short", "yyyy", timezoneInput{}, "")
	if backend.built != 2 {
		t.Fatalf("a pattern change must construct a new formatter, built %d", backend.built)
	}
}

func TestDateResolverPrototypeFillsGaps(t *testing.T) {
	prototype := stubDateFormatter{cfg: DateFormatterConfig{
		Locale:    "ru",
		DateStyle: DateStyleLong,
		TimeStyle: DateStyleNone,
		Timezone:  time.UTC,
		Calendar:  CalendarGregorian,
	}}
	resolver, _ := newStubDateResolver(prototype, true)

	cfg := resolveConfig(t, resolver, "", "", "", "", timezoneInput{}, "")
	if cfg.Locale != "ru" || cfg.DateStyle != DateStyleLong || cfg.TimeStyle != DateStyleNone {
		t.Fatalf("prototype should fill all gaps, got %+v", cfg)
	}

	// A time-style-only call still pulls the prototype date style, not the
	// no-prototype medium default.
	cfg = resolveConfig(t, resolver, "", "", "short", "", timezoneInput{}, "")
	if cfg.DateStyle != DateStyleLong {
		t.Fatalf("date style should come from the prototype, got %v", cfg.DateStyle)
	}
	if cfg.TimeStyle != DateStyleShort {
		t.Fatalf("time style should come from the call, got %v", cfg.TimeStyle)
	}
}

func TestDateResolverPrototypePatternRules(t *testing.T) {
	prototype := stubDateFormatter{cfg: DateFormatterConfig{
		Locale:    "ru",
		DateStyle: DateStyleLong,
		TimeStyle: DateStyleNone,
		Pattern:   "yyyy.MM.dd",
	}}
	resolver, _ := newStubDateResolver(prototype, true)

	// No styles, no locale conflict: the prototype pattern applies.
	cfg := resolveConfig(t, resolver, "", "", "", "", timezoneInput{}, "")
	if cfg.Pattern != "yyyy.MM.dd" {
		t.Fatalf("prototype pattern should apply, got %q", cfg.Pattern)
	}

	// Same locale named explicitly: still applies.
	cfg = resolveConfig(t, resolver, "ru", "", "", "", timezoneInput{}, "")
	if cfg.Pattern != "yyyy.MM.dd" {
		t.Fatalf("prototype pattern should apply for the prototype locale, got %q", cfg.Pattern)
	}

	// A different locale makes the pattern locale-bound and drops it.
	cfg = resolveConfig(t, resolver, "en", "", "", "", timezoneInput{}, "")
	if cfg.Pattern != "" {
		t.Fatalf("prototype pattern must not cross locales, got %q", cfg.Pattern)
	}
	if cfg.DateStyle != DateStyleLong {
		t.Fatalf("styles still come from the prototype, got %v", cfg.DateStyle)
	}

	// Any explicit style suppresses the prototype pattern.
	cfg = resolveConfig(t, resolver, "", "short", "", "", timezoneInput{}, "")
	if cfg.Pattern != "" {
		t.Fatalf("an explicit style must suppress the prototype pattern, got %q", cfg.Pattern)
	}

	// A call-side pattern wins outright.
	cfg = resolveConfig(t, resolver, "", "", "", "dd/MM", timezoneInput{}, "")
	if cfg.Pattern != "dd/MM" {
		t.Fatalf("call pattern should win, got %q", cfg.Pattern)
	}
}

func TestDateResolverCalendarFallback(t *testing.T) {
	prototype := stubDateFormatter{cfg: DateFormatterConfig{
		Locale:   "en",
		Calendar: CalendarGregorian,
	}}
	resolver, _ := newStubDateResolver(prototype, true)

	// Unnamed and non-gregorian calendars normalize to the traditional zero
	// value, which always defers to the prototype.
	cfg := resolveConfig(t, resolver, "", "medium", "none", "", timezoneInput{}, "")
	if cfg.Calendar != CalendarGregorian {
		t.Fatalf("calendar should defer to the prototype, got %v", cfg.Calendar)
	}

	cfg = resolveConfig(t, resolver, "", "medium", "none", "", timezoneInput{}, "buddhist")
	if cfg.Calendar != CalendarGregorian {
		t.Fatalf("non-gregorian names should also defer, got %v", cfg.Calendar)
	}

	cfg = resolveConfig(t, resolver, "", "medium", "none", "", timezoneInput{}, "gregorian")
	if cfg.Calendar != CalendarGregorian {
		t.Fatalf("explicit gregorian should hold, got %v", cfg.Calendar)
	}
}

func TestDateResolverTimezonePrecedence(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("no tzdata: %v", err)
	}

	prototype := stubDateFormatter{cfg: DateFormatterConfig{Locale: "en", Timezone: berlin}}
	resolver, _ := newStubDateResolver(prototype, true)

	// Unset defers to the prototype zone.
	cfg := resolveConfig(t, resolver, "", "medium", "none", "", timezoneInput{}, "")
	if cfg.Timezone != berlin {
		t.Fatalf("timezone should come from the prototype, got %v", cfg.Timezone)
	}

	// Explicitly set wins over the prototype.
	cfg = resolveConfig(t, resolver, "", "medium", "none", "", timezoneInput{set: true, loc: time.UTC}, "")
	if cfg.Timezone != time.UTC {
		t.Fatalf("explicit timezone should win, got %v", cfg.Timezone)
	}

	// Set with a nil location means "leave the value's zone alone".
	cfg = resolveConfig(t, resolver, "", "medium", "none", "", timezoneInput{set: true}, "")
	if cfg.Timezone != nil {
		t.Fatalf("unchanged timezone should stay nil, got %v", cfg.Timezone)
	}
}

func TestDateResolverRelativeDegradation(t *testing.T) {
	resolver, _ := newStubDateResolver(nil, false)

	cfg := resolveConfig(t, resolver, "en", "relative_long", "short", "", timezoneInput{}, "")
	if cfg.DateStyle != DateStyleLong {
		t.Fatalf("relative style should degrade without backend support, got %v", cfg.DateStyle)
	}

	resolver, _ = newStubDateResolver(nil, true)
	cfg = resolveConfig(t, resolver, "en", "relative_long", "short", "", timezoneInput{}, "")
	if cfg.DateStyle != DateStyleRelativeLong {
		t.Fatalf("relative style should survive with backend support, got %v", cfg.DateStyle)
	}
}

func TestDateFormatterForDegradesRelativeStyles(t *testing.T) {
	resolver, _ := newStubDateResolver(nil, false)

	// Direct construction, the path pretty strategies use for their
	// sub-formatters, must respect capability detection too.
	formatter, err := resolver.DateFormatterFor(DateFormatterConfig{
		Locale:    "en",
		DateStyle: DateStyleRelativeLong,
		TimeStyle: DateStyleRelativeShort,
	})
	if err != nil {
		t.Fatalf("DateFormatterFor: %v", err)
	}

	cfg := formatter.Config()
	if cfg.DateStyle != DateStyleLong || cfg.TimeStyle != DateStyleShort {
		t.Fatalf("relative styles should degrade, got %v/%v", cfg.DateStyle, cfg.TimeStyle)
	}
}

func TestDateResolverUnknownStyles(t *testing.T) {
	resolver, _ := newStubDateResolver(nil, true)

	if _, err := resolver.resolve("en", "tiny", "", "", timezoneInput{}, ""); err == nil {
		t.Fatal("expected an error for an unknown date style")
	}
	if _, err := resolver.resolve("en", "", "tiny", "", timezoneInput{}, ""); err == nil {
		t.Fatal("expected an error for an unknown time style")
	}
}

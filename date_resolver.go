package locfmt

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// timezoneInput carries the facade's pre-resolved timezone choice into the
// resolver. Unset means "defer to the prototype, then the process default";
// set with a nil location means "leave the value's own zone untouched".
type timezoneInput struct {
	set bool
	loc *time.Location
}

// DateFormatterSource exposes the date resolver's construct-or-reuse path so
// pretty strategies build their sub-formatters through the same cache.
type DateFormatterSource interface {
	DateFormatterFor(cfg DateFormatterConfig) (DateFormatter, error)
}

// dateResolver merges call-time date options with prototype defaults and
// caches the resulting immutable formatters.
type dateResolver struct {
	mu            sync.Mutex
	backend       DateBackend
	prototype     DateFormatter
	cache         map[string]DateFormatter
	defaultLocale func() string
	defaultZone   func() *time.Location
}

func newDateResolver(backend DateBackend, prototype DateFormatter, defaultLocale func() string, defaultZone func() *time.Location) *dateResolver {
	return &dateResolver{
		backend:       backend,
		prototype:     prototype,
		cache:         make(map[string]DateFormatter),
		defaultLocale: defaultLocale,
		defaultZone:   defaultZone,
	}
}

// resolve applies the precedence policy and returns a cached or newly built
// formatter. Empty style names mean "absent".
func (r *dateResolver) resolve(locale, dateStyleName, timeStyleName, pattern string, tz timezoneInput, calendarName string) (DateFormatter, error) {
	var (
		dateStyle, timeStyle DateStyle
		err                  error
	)

	hasDate := dateStyleName != ""
	if hasDate {
		if dateStyle, err = ParseDateStyle(dateStyleName); err != nil {
			return nil, err
		}
	}

	hasTime := timeStyleName != ""
	if hasTime {
		if timeStyle, err = ParseTimeStyle(timeStyleName); err != nil {
			return nil, err
		}
	}

	calendar := NormalizeCalendar(calendarName)

	if r.prototype != nil {
		pcfg := r.prototype.Config()

		// The prototype pattern applies only when the caller picked no style,
		// no pattern, and no conflicting locale. A pattern is tied to the
		// locale it was built for.
		if !hasDate && !hasTime && (locale == "" || locale == pcfg.Locale) && pattern == "" {
			pattern = pcfg.Pattern
		}

		if !hasDate {
			dateStyle = pcfg.DateStyle
		}
		if !hasTime {
			timeStyle = pcfg.TimeStyle
		}
		if !tz.set {
			tz = timezoneInput{set: true, loc: pcfg.Timezone}
		}
		// Normalization always yields a non-zero constant for "gregorian";
		// this fallback fires only on the zero-valued traditional constant.
		if calendar == CalendarTraditional {
			calendar = pcfg.Calendar
		}
		if locale == "" {
			locale = pcfg.Locale
		}
	} else {
		if !hasDate {
			dateStyle = DateStyleMedium
		}
		if !hasTime {
			timeStyle = DateStyleMedium
		}
	}

	if locale == "" {
		locale = r.defaultLocale()
	}
	if !tz.set {
		tz.loc = r.defaultZone()
	}

	return r.DateFormatterFor(DateFormatterConfig{
		Locale:    locale,
		DateStyle: dateStyle,
		TimeStyle: timeStyle,
		Pattern:   pattern,
		Timezone:  tz.loc,
		Calendar:  calendar,
	})
}

// DateFormatterFor returns the cached formatter for a resolved configuration,
// constructing it on first use. Relative styles degrade to their absolute
// counterpart here so capability detection also covers sub-formatters built
// by pretty strategies. Date formatters are immutable, so the lock covers
// only the cache.
func (r *dateResolver) DateFormatterFor(cfg DateFormatterConfig) (DateFormatter, error) {
	if !r.backend.SupportsRelative() {
		if cfg.DateStyle.IsRelative() {
			cfg.DateStyle = cfg.DateStyle.Absolute()
		}
		if cfg.TimeStyle.IsRelative() {
			cfg.TimeStyle = cfg.TimeStyle.Absolute()
		}
	}

	key := dateCacheKey(cfg)

	r.mu.Lock()
	defer r.mu.Unlock()

	if formatter, ok := r.cache[key]; ok {
		return formatter, nil
	}

	formatter, err := r.backend.NewDateFormatter(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormatFailure, err)
	}
	r.cache[key] = formatter
	return formatter, nil
}

func dateCacheKey(cfg DateFormatterConfig) string {
	tzName := "none"
	if cfg.Timezone != nil {
		tzName = cfg.Timezone.String()
	}
	return strings.Join([]string{
		cfg.Locale,
		strconv.Itoa(int(cfg.DateStyle)),
		strconv.Itoa(int(cfg.TimeStyle)),
		tzName,
		strconv.Itoa(int(cfg.Calendar)),
		cfg.Pattern,
	}, "|")
}

package locfmt

import (
	"strconv"
	"strings"
	"time"
)

// defaultDateBackend builds rules-driven date formatters. The clock is shared
// with the owning service so relative tokens agree with pretty formatting.
type defaultDateBackend struct {
	rules *FormattingRulesProvider
	clock func() time.Time
}

func newDefaultDateBackend(rules *FormattingRulesProvider, clock func() time.Time) *defaultDateBackend {
	if clock == nil {
		clock = time.Now
	}
	return &defaultDateBackend{rules: rules, clock: clock}
}

func (b *defaultDateBackend) SupportsRelative() bool { return true }

func (b *defaultDateBackend) NewDateFormatter(cfg DateFormatterConfig) (DateFormatter, error) {
	return &stdDateFormatter{
		cfg:   cfg,
		rules: b.rules.Get(cfg.Locale),
		clock: b.clock,
	}, nil
}

// stdDateFormatter is immutable once constructed; the full configuration must
// be resolved before NewDateFormatter.
type stdDateFormatter struct {
	cfg   DateFormatterConfig
	rules *FormattingRules
	clock func() time.Time
}

func (f *stdDateFormatter) Config() DateFormatterConfig { return f.cfg }

func (f *stdDateFormatter) Format(t time.Time) (string, error) {
	if f.cfg.Timezone != nil {
		t = t.In(f.cfg.Timezone)
	}

	// An explicit pattern overrides both styles.
	if f.cfg.Pattern != "" {
		return renderPattern(f.cfg.Pattern, t, f.rules), nil
	}

	var parts []string

	if f.cfg.DateStyle != DateStyleNone {
		datePart := ""
		if f.cfg.DateStyle.IsRelative() {
			datePart = f.relativeDayToken(t)
		}
		if datePart == "" {
			datePart = renderPattern(f.rules.DateLayouts.Pattern(f.cfg.DateStyle), t, f.rules)
		}
		if datePart != "" {
			parts = append(parts, datePart)
		}
	}

	if f.cfg.TimeStyle != DateStyleNone {
		if timePart := renderPattern(f.rules.TimeLayouts.Pattern(f.cfg.TimeStyle), t, f.rules); timePart != "" {
			parts = append(parts, timePart)
		}
	}

	return strings.Join(parts, " "), nil
}

// relativeDayToken returns the localized yesterday/today/tomorrow token when
// the target falls on one of those calendar days, otherwise "".
func (f *stdDateFormatter) relativeDayToken(t time.Time) string {
	now := f.clock()
	if f.cfg.Timezone != nil {
		now = now.In(f.cfg.Timezone)
	} else {
		now = now.In(t.Location())
	}

	switch calendarDayDiff(now, t) {
	case 0:
		return f.rules.RelativeDays.Today
	case 1:
		return f.rules.RelativeDays.Yesterday
	case -1:
		return f.rules.RelativeDays.Tomorrow
	default:
		return ""
	}
}

// calendarDayDiff counts calendar day boundaries crossed between now and the
// target, positive when the target is in the past. Both times must already be
// in the reference zone.
func calendarDayDiff(now, target time.Time) int {
	ny, nm, nd := now.Date()
	ty, tm, td := target.Date()
	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	targetDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(nowDay.Sub(targetDay) / (24 * time.Hour))
}

// renderPattern renders a compact ICU-style pattern subset. Quoted runs are
// literals; '' is a literal apostrophe.
func renderPattern(pattern string, t time.Time, rules *FormattingRules) string {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			b.WriteString(string(runes[i+1 : end]))
			i = end + 1
			continue
		}

		if !isPatternLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		count := 1
		for i+count < len(runes) && runes[i+count] == r {
			count++
		}
		b.WriteString(renderPatternField(r, count, t, rules))
		i += count
	}

	return b.String()
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func renderPatternField(letter rune, count int, t time.Time, rules *FormattingRules) string {
	switch letter {
	case 'y':
		year := t.Year()
		if count == 2 {
			return zeroPad(year%100, 2)
		}
		return strconv.Itoa(year)
	case 'M':
		month := int(t.Month())
		switch {
		case count >= 4:
			return indexName(rules.MonthNames, month-1)
		case count == 3:
			return indexName(rules.MonthAbbrev, month-1)
		default:
			return zeroPad(month, count)
		}
	case 'd':
		return zeroPad(t.Day(), count)
	case 'E':
		weekday := int(t.Weekday())
		if count >= 4 {
			return indexName(rules.DayNames, weekday)
		}
		return indexName(rules.DayAbbrev, weekday)
	case 'H':
		return zeroPad(t.Hour(), count)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return zeroPad(hour, count)
	case 'm':
		return zeroPad(t.Minute(), count)
	case 's':
		return zeroPad(t.Second(), count)
	case 'a':
		period := 0
		if t.Hour() >= 12 {
			period = 1
		}
		return indexName(rules.DayPeriods, period)
	case 'z':
		zone, _ := t.Zone()
		return zone
	default:
		return strings.Repeat(string(letter), count)
	}
}

func zeroPad(value, width int) string {
	s := strconv.Itoa(value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func indexName(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return ""
	}
	return names[idx]
}

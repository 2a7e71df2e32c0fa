package locfmt

import (
	"strings"
	"time"
)

// PrettyStrategy turns an instant into a conversational rendering such as
// "yesterday 1:37 PM" or a bare weekday name, falling back to the base
// formatter when the target is too far from now.
type PrettyStrategy interface {
	FormatPretty(now, target time.Time, base DateFormatter, source DateFormatterSource) (string, error)
}

// RelativeDayStrategy is the default pretty strategy. Targets within the last
// week get a weekday name, today and yesterday get relative day tokens with an
// optional short time, and everything else falls back to the base date style.
type RelativeDayStrategy struct{}

func (RelativeDayStrategy) FormatPretty(now, target time.Time, base DateFormatter, source DateFormatterSource) (string, error) {
	cfg := base.Config()

	nowLocal := now
	targetLocal := target
	if cfg.Timezone != nil {
		nowLocal = nowLocal.In(cfg.Timezone)
		targetLocal = targetLocal.In(cfg.Timezone)
	} else {
		nowLocal = nowLocal.In(targetLocal.Location())
	}

	daysAgo := calendarDayDiff(nowLocal, targetLocal)

	switch {
	case daysAgo > 1 && daysAgo < 7:
		weekday, err := source.DateFormatterFor(DateFormatterConfig{
			Locale:    cfg.Locale,
			DateStyle: DateStyleNone,
			TimeStyle: DateStyleNone,
			Pattern:   "EEEE",
			Timezone:  cfg.Timezone,
			Calendar:  cfg.Calendar,
		})
		if err != nil {
			return "", err
		}
		return weekday.Format(target)

	case daysAgo == 0 || daysAgo == 1:
		day, err := source.DateFormatterFor(DateFormatterConfig{
			Locale:    cfg.Locale,
			DateStyle: DateStyleRelativeLong,
			TimeStyle: DateStyleNone,
			Timezone:  cfg.Timezone,
			Calendar:  cfg.Calendar,
		})
		if err != nil {
			return "", err
		}
		dayPart, err := day.Format(target)
		if err != nil {
			return "", err
		}

		if cfg.TimeStyle == DateStyleNone {
			return dayPart, nil
		}

		clock, err := source.DateFormatterFor(DateFormatterConfig{
			Locale:    cfg.Locale,
			DateStyle: DateStyleNone,
			TimeStyle: DateStyleShort,
			Timezone:  cfg.Timezone,
			Calendar:  cfg.Calendar,
		})
		if err != nil {
			return "", err
		}
		timePart, err := clock.Format(target)
		if err != nil {
			return "", err
		}

		if daysAgo == 1 || nowLocal.Day() != targetLocal.Day() {
			return strings.Join([]string{dayPart, timePart}, " "), nil
		}
		return timePart, nil

	default:
		fallback, err := source.DateFormatterFor(DateFormatterConfig{
			Locale:    cfg.Locale,
			DateStyle: cfg.DateStyle,
			TimeStyle: DateStyleNone,
			Pattern:   cfg.Pattern,
			Timezone:  cfg.Timezone,
			Calendar:  cfg.Calendar,
		})
		if err != nil {
			return "", err
		}
		return fallback.Format(target)
	}
}

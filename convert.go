package locfmt

import (
	"fmt"
	"time"
)

// dateInputLayouts is the ladder of accepted string representations, tried in
// order.
var dateInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// toTime converts a raw caller value into a concrete instant. A nil value
// means "the current moment". Strings without zone information are parsed in
// the hint location.
func toTime(value any, clock func() time.Time, hint *time.Location) (time.Time, error) {
	if hint == nil {
		hint = time.UTC
	}

	switch v := value.(type) {
	case nil:
		return clock(), nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return clock(), nil
		}
		return *v, nil
	case int:
		return time.Unix(int64(v), 0).In(hint), nil
	case int64:
		return time.Unix(v, 0).In(hint), nil
	case string:
		for _, layout := range dateInputLayouts {
			parsed, err := time.ParseInLocation(layout, v, hint)
			if err != nil {
				continue
			}
			// Time-only layouts carry a zero date; anchor them on today.
			if parsed.Year() == 0 {
				now := clock().In(hint)
				parsed = time.Date(now.Year(), now.Month(), now.Day(),
					parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(), hint)
			}
			return parsed, nil
		}
		return time.Time{}, fmt.Errorf("unparseable date value %q", v)
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %T", value)
	}
}

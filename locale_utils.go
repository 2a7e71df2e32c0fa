package locfmt

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a locale identifier by replacing underscores
// with hyphens, trimming whitespace, and dropping any encoding suffix
// ("en_US.UTF-8" becomes "en-US").
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexByte(locale, '.'); idx != -1 {
		locale = locale[:idx]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns all parent locales ordered from closest parent to
// root, combining x/text parent data with syntactic truncation.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// detectDefaultLocale resolves the process locale from the usual environment
// variables, falling back to "en".
func detectDefaultLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if raw := os.Getenv(key); raw != "" {
			if normalized := normalizeLocale(raw); normalized != "" && normalized != "C" && normalized != "POSIX" {
				return normalized
			}
		}
	}
	return "en"
}

// detectDefaultTimezone resolves the process timezone, honoring TZ before
// falling back to the system location.
func detectDefaultTimezone() *time.Location {
	if name := os.Getenv("TZ"); name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.Local
}

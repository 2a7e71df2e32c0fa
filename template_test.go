package locfmt

import (
	"testing"
	"time"
)

func TestExtractLocale(t *testing.T) {
	type pageData struct {
		Locale string
	}
	type customData struct {
		Lang string
	}

	tests := []struct {
		name string
		data any
		key  string
		want string
	}{
		{"string", "de", "", "de"},
		{"map any", map[string]any{"Locale": "fr"}, "", "fr"},
		{"map string", map[string]string{"Locale": "es"}, "", "es"},
		{"struct", pageData{Locale: "ru"}, "", "ru"},
		{"struct pointer", &pageData{Locale: "ru"}, "", "ru"},
		{"custom key", customData{Lang: "de"}, "Lang", "de"},
		{"nil", nil, "", ""},
		{"missing key", map[string]any{"Other": 1}, "", ""},
		{"nil pointer", (*pageData)(nil), "", ""},
	}

	for _, tt := range tests {
		if got := extractLocale(tt.data, tt.key); got != tt.want {
			t.Fatalf("[%s] extractLocale = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTemplateHelpers(t *testing.T) {
	svc := newTestService(t)
	helpers := TemplateHelpers(svc, "Locale")

	data := map[string]any{"Locale": "de"}

	formatNumber, ok := helpers["format_number"].(func(any, any) (string, error))
	if !ok {
		t.Fatal("format_number helper has the wrong shape")
	}
	got, err := formatNumber(data, 1234.5)
	if err != nil {
		t.Fatalf("format_number: %v", err)
	}
	if got != "1.234,5" {
		t.Fatalf("format_number = %q", got)
	}

	formatCurrency, ok := helpers["format_currency"].(func(any, any, string) (string, error))
	if !ok {
		t.Fatal("format_currency helper has the wrong shape")
	}
	got, err = formatCurrency(data, 10.0, "EUR")
	if err != nil {
		t.Fatalf("format_currency: %v", err)
	}
	if got != "10,00 €" {
		t.Fatalf("format_currency = %q", got)
	}

	formatDate, ok := helpers["format_date"].(func(any, any) (string, error))
	if !ok {
		t.Fatal("format_date helper has the wrong shape")
	}
	got, err = formatDate(data, time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("format_date: %v", err)
	}
	if got != "23.08.2026" {
		t.Fatalf("format_date = %q", got)
	}

	countryName, ok := helpers["country_name"].(func(any, string) string)
	if !ok {
		t.Fatal("country_name helper has the wrong shape")
	}
	if got := countryName(data, "FR"); got != "Frankreich" {
		t.Fatalf("country_name = %q", got)
	}
}

func TestTemplateHelpersFullSurface(t *testing.T) {
	svc := newTestService(t)
	helpers := TemplateHelpers(svc, "Locale")

	for _, name := range []string{
		"format_number", "format_currency", "format_percent",
		"format_date", "format_datetime", "format_time",
		"format_pretty", "format_date_pretty",
		"country_name", "currency_name", "currency_symbol",
		"language_name", "locale_name", "timezone_name",
		"country_timezones",
	} {
		if _, ok := helpers[name]; !ok {
			t.Fatalf("missing template helper %q", name)
		}
	}

	data := map[string]any{"Locale": "en"}

	formatPretty, ok := helpers["format_pretty"].(func(any, any) (string, error))
	if !ok {
		t.Fatal("format_pretty helper has the wrong shape")
	}
	got, err := formatPretty(data, testClock())
	if err != nil {
		t.Fatalf("format_pretty: %v", err)
	}
	if got != "1:37 PM" {
		t.Fatalf("format_pretty = %q", got)
	}

	currencyName, ok := helpers["currency_name"].(func(any, string) string)
	if !ok {
		t.Fatal("currency_name helper has the wrong shape")
	}
	if got := currencyName(data, "EUR"); got != "Euro" {
		t.Fatalf("currency_name = %q", got)
	}

	localeName, ok := helpers["locale_name"].(func(any, string) string)
	if !ok {
		t.Fatal("locale_name helper has the wrong shape")
	}
	if got := localeName(data, "de"); got != "German" {
		t.Fatalf("locale_name = %q", got)
	}

	timezoneName, ok := helpers["timezone_name"].(func(any, string) string)
	if !ok {
		t.Fatal("timezone_name helper has the wrong shape")
	}
	if got := timezoneName(data, "Europe/London"); got != "Greenwich Mean Time" {
		t.Fatalf("timezone_name = %q", got)
	}

	countryTimezones, ok := helpers["country_timezones"].(func(string) []string)
	if !ok {
		t.Fatal("country_timezones helper has the wrong shape")
	}
	if zones := countryTimezones("GB"); len(zones) != 1 || zones[0] != "Europe/London" {
		t.Fatalf("country_timezones = %v", zones)
	}
}

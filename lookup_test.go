package locfmt

import (
	"errors"
	"testing"
)

type failingLookupProvider struct{}

func (failingLookupProvider) DisplayName(LookupKind, string, string) (string, error) {
	return "", errors.New("backend offline")
}

func (failingLookupProvider) CountryTimezones(string) ([]string, error) {
	return nil, errors.New("backend offline")
}

func TestLookupServiceDegradation(t *testing.T) {
	svc := NewLookupService(failingLookupProvider{})

	if got := svc.CountryName("DE", "en"); got != "DE" {
		t.Fatalf("provider failure should echo the code, got %q", got)
	}
	if got := svc.CountryName("", "en"); got != "" {
		t.Fatalf("empty code should yield empty output, got %q", got)
	}
	if got := svc.CountryTimezones("DE"); len(got) != 0 {
		t.Fatalf("provider failure should yield an empty list, got %v", got)
	}
}

func TestLookupServiceNilProvider(t *testing.T) {
	svc := NewLookupService(nil)

	if got := svc.CurrencyName("EUR", "en"); got != "EUR" {
		t.Fatalf("nil provider should echo the code, got %q", got)
	}
	if got := svc.CountryTimezones("US"); len(got) != 0 {
		t.Fatalf("nil provider should yield an empty list, got %v", got)
	}
}

func TestXTextProviderCountryNames(t *testing.T) {
	provider := newXTextLookupProvider()

	tests := []struct {
		code   string
		locale string
		want   string
	}{
		{"DE", "en", "Germany"},
		{"US", "en", "United States"},
		{"DE", "de", "Deutschland"},
		{"FR", "es", "Francia"},
	}

	for _, tt := range tests {
		got, err := provider.DisplayName(LookupCountry, tt.code, tt.locale)
		if err != nil {
			t.Fatalf("DisplayName(%s, %s): %v", tt.code, tt.locale, err)
		}
		if got != tt.want {
			t.Fatalf("country %s in %s = %q, want %q", tt.code, tt.locale, got, tt.want)
		}
	}

	if _, err := provider.DisplayName(LookupCountry, "ZZZZ", "en"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestXTextProviderLanguageNames(t *testing.T) {
	provider := newXTextLookupProvider()

	got, err := provider.DisplayName(LookupLanguage, "de", "en")
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if got != "German" {
		t.Fatalf("language de in en = %q", got)
	}

	got, err = provider.DisplayName(LookupLanguage, "en", "de")
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if got != "Englisch" {
		t.Fatalf("language en in de = %q", got)
	}
}

func TestXTextProviderCurrency(t *testing.T) {
	provider := newXTextLookupProvider()

	got, err := provider.DisplayName(LookupCurrency, "EUR", "en")
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if got != "Euro" {
		t.Fatalf("currency name = %q", got)
	}

	got, err = provider.DisplayName(LookupCurrencySymbol, "USD", "en")
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if got != "$" {
		t.Fatalf("currency symbol = %q", got)
	}

	if _, err := provider.DisplayName(LookupCurrency, "ZZZ", "en"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an unknown currency, got %v", err)
	}
}

func TestXTextProviderTimezones(t *testing.T) {
	provider := newXTextLookupProvider()

	got, err := provider.DisplayName(LookupTimezone, "America/New_York", "en")
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if got != "Eastern Time" {
		t.Fatalf("timezone name = %q", got)
	}

	zones, err := provider.CountryTimezones("us")
	if err != nil {
		t.Fatalf("CountryTimezones: %v", err)
	}
	if len(zones) == 0 || zones[0] != "America/New_York" {
		t.Fatalf("US timezones = %v", zones)
	}

	if _, err := provider.CountryTimezones("ZZ"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package locfmt

// LookupService wraps a LookupProvider with the uniform degradation policy:
// empty input yields an empty string, a missing resource echoes the input
// back, and timezone listings degrade to an empty list. Lookups never fail
// the caller.
type LookupService struct {
	provider LookupProvider
}

func NewLookupService(provider LookupProvider) *LookupService {
	return &LookupService{provider: provider}
}

func (s *LookupService) name(kind LookupKind, code, locale string) string {
	if code == "" {
		return ""
	}
	if s == nil || s.provider == nil {
		return code
	}

	display, err := s.provider.DisplayName(kind, code, locale)
	if err != nil || display == "" {
		// Not-found and provider failures both degrade to the raw code.
		return code
	}
	return display
}

// CountryName returns the localized country name for an ISO 3166 code.
func (s *LookupService) CountryName(code, locale string) string {
	return s.name(LookupCountry, code, locale)
}

// CurrencyName returns the localized currency name for an ISO 4217 code.
func (s *LookupService) CurrencyName(code, locale string) string {
	return s.name(LookupCurrency, code, locale)
}

// CurrencySymbol returns the display symbol for an ISO 4217 code.
func (s *LookupService) CurrencySymbol(code, locale string) string {
	return s.name(LookupCurrencySymbol, code, locale)
}

// LanguageName returns the localized language name for an ISO 639 code.
func (s *LookupService) LanguageName(code, locale string) string {
	return s.name(LookupLanguage, code, locale)
}

// LocaleName returns the localized display name of a locale identifier.
func (s *LookupService) LocaleName(code, locale string) string {
	return s.name(LookupLocale, code, locale)
}

// TimezoneName returns the display name of an IANA timezone identifier.
func (s *LookupService) TimezoneName(code, locale string) string {
	return s.name(LookupTimezone, code, locale)
}

// CountryTimezones lists the IANA timezone identifiers of a country, or an
// empty list when the country is unknown.
func (s *LookupService) CountryTimezones(code string) []string {
	if code == "" || s == nil || s.provider == nil {
		return []string{}
	}

	zones, err := s.provider.CountryTimezones(code)
	if err != nil || zones == nil {
		return []string{}
	}
	return zones
}

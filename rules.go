package locfmt

import "golang.org/x/text/language"

// FormattingRules contains the locale-specific data the default backend is
// driven by. User-supplied rules files can extend or replace the embedded set.
type FormattingRules struct {
	Locale       string           `json:"locale" yaml:"locale"`
	Numbers      NumberRules      `json:"numbers" yaml:"numbers"`
	Currency     CurrencyRules    `json:"currency" yaml:"currency"`
	DateLayouts  StyleLayouts     `json:"date_layouts" yaml:"date_layouts"`
	TimeLayouts  StyleLayouts     `json:"time_layouts" yaml:"time_layouts"`
	MonthNames   []string         `json:"month_names" yaml:"month_names"`
	MonthAbbrev  []string         `json:"month_abbrev" yaml:"month_abbrev"`
	DayNames     []string         `json:"day_names" yaml:"day_names"`
	DayAbbrev    []string         `json:"day_abbrev" yaml:"day_abbrev"`
	DayPeriods   []string         `json:"day_periods" yaml:"day_periods"`
	RelativeDays RelativeDayNames `json:"relative_days" yaml:"relative_days"`
	Ordinal      string           `json:"ordinal" yaml:"ordinal"`
}

// NumberRules defines digit rendering conventions.
type NumberRules struct {
	DecimalSep         string `json:"decimal_separator" yaml:"decimal_separator"`
	GroupSep           string `json:"group_separator" yaml:"group_separator"`
	GroupSize          int    `json:"group_size" yaml:"group_size"`
	SecondaryGroupSize int    `json:"secondary_group_size" yaml:"secondary_group_size"`
	MinusSign          string `json:"minus_sign" yaml:"minus_sign"`
	PlusSign           string `json:"plus_sign" yaml:"plus_sign"`
	PercentSymbol      string `json:"percent_symbol" yaml:"percent_symbol"`
	ExponentSymbol     string `json:"exponent_symbol" yaml:"exponent_symbol"`
	Infinity           string `json:"infinity" yaml:"infinity"`
	NaN                string `json:"nan" yaml:"nan"`
}

// CurrencyRules defines currency symbol placement.
type CurrencyRules struct {
	SymbolPosition string `json:"symbol_position" yaml:"symbol_position"` // "before", "after"
	SymbolSpace    bool   `json:"symbol_space" yaml:"symbol_space"`
	Decimals       int    `json:"decimals" yaml:"decimals"`
}

// StyleLayouts maps the four absolute styles to ICU-style patterns.
type StyleLayouts struct {
	Short  string `json:"short" yaml:"short"`
	Medium string `json:"medium" yaml:"medium"`
	Long   string `json:"long" yaml:"long"`
	Full   string `json:"full" yaml:"full"`
}

// Pattern returns the layout for an absolute style; relative styles resolve
// through their absolute counterpart.
func (l StyleLayouts) Pattern(style DateStyle) string {
	switch style.Absolute() {
	case DateStyleShort:
		return l.Short
	case DateStyleMedium:
		return l.Medium
	case DateStyleLong:
		return l.Long
	case DateStyleFull:
		return l.Full
	default:
		return ""
	}
}

// RelativeDayNames carries the localized day tokens for relative styles.
type RelativeDayNames struct {
	Yesterday string `json:"yesterday" yaml:"yesterday"`
	Today     string `json:"today" yaml:"today"`
	Tomorrow  string `json:"tomorrow" yaml:"tomorrow"`
}

// FormattingRulesProvider resolves rules per locale with fallback chains.
type FormattingRulesProvider struct {
	rules    map[string]FormattingRules
	resolver FallbackResolver
}

// NewFormattingRulesProvider seeds a provider with the embedded defaults,
// overlaid with any user-supplied rules.
func NewFormattingRulesProvider(extra map[string]FormattingRules, resolver FallbackResolver) *FormattingRulesProvider {
	rules := make(map[string]FormattingRules, len(formattingRulesData)+len(extra))
	for locale, entry := range formattingRulesData {
		rules[locale] = entry
	}
	for locale, entry := range extra {
		rules[locale] = entry
	}
	return &FormattingRulesProvider{rules: rules, resolver: resolver}
}

// Get loads formatting rules for a locale: exact match, resolver candidates,
// parent chain, base language, then English.
func (p *FormattingRulesProvider) Get(locale string) *FormattingRules {
	if p == nil || p.rules == nil {
		rules := formattingRulesData["en"]
		return &rules
	}

	if rules, ok := p.rules[locale]; ok {
		return &rules
	}

	if p.resolver != nil {
		for _, candidate := range p.resolver.Resolve(locale) {
			if rules, ok := p.rules[candidate]; ok {
				return &rules
			}
		}
	}

	for _, candidate := range localeParentChain(locale) {
		if rules, ok := p.rules[candidate]; ok {
			return &rules
		}
	}

	tag := language.Make(locale)
	base, _ := tag.Base()
	if rules, ok := p.rules[base.String()]; ok {
		return &rules
	}

	if rules, ok := p.rules["en"]; ok {
		return &rules
	}

	rules := formattingRulesData["en"]
	return &rules
}

// Available lists the locales the provider holds explicit rules for.
func (p *FormattingRulesProvider) Available() []string {
	if p == nil {
		return nil
	}
	return sortedKeys(p.rules)
}

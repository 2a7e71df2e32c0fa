package locfmt

// FallbackResolver resolves fallback locale chains for rules lookups.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps explicit fallback chains in memory.
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || s.chains == nil {
		return nil
	}
	return s.chains[locale]
}

// Set replaces the fallback chain for a locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[locale] = append([]string{}, fallbacks...)
}

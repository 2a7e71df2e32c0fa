package locfmt

import (
	"errors"
	"strings"
	"testing"
)

type countingNumberBackend struct {
	inner NumberBackend
	built int
}

func (b *countingNumberBackend) NewNumberFormatter(locale string, style NumberStyle) (NumberFormatter, error) {
	b.built++
	return b.inner.NewNumberFormatter(locale, style)
}

func newTestNumberResolver(prototype NumberFormatter) (*numberResolver, *countingNumberBackend) {
	backend := &countingNumberBackend{inner: newDefaultNumberBackend(NewFormattingRulesProvider(nil, nil))}
	resolver := newNumberResolver(backend, prototype, func() string { return "en" })
	return resolver, backend
}

func TestNumberResolverCachesByCanonicalKey(t *testing.T) {
	resolver, backend := newTestNumberResolver(nil)

	first := map[string]any{"max_fraction_digits": 2, "grouping_used": 0, "min_integer_digits": 1}
	second := map[string]any{"min_integer_digits": 1, "max_fraction_digits": 2, "grouping_used": 0}

	a, err := resolver.format(1234.5, first, "decimal", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	b, err := resolver.format(1234.5, second, "decimal", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	if a != b {
		t.Fatalf("identical options produced %q and %q", a, b)
	}
	if backend.built != 1 {
		t.Fatalf("attribute order should not affect the cache key, built %d formatters", backend.built)
	}
}

func TestNumberResolverDistinctKeysConstructSeparately(t *testing.T) {
	resolver, backend := newTestNumberResolver(nil)

	if _, err := resolver.format(1, map[string]any{"max_fraction_digits": 2}, "decimal", "default", "en", ""); err != nil {
		t.Fatalf("format: %v", err)
	}
	if _, err := resolver.format(1, map[string]any{"max_fraction_digits": 3}, "decimal", "default", "en", ""); err != nil {
		t.Fatalf("format: %v", err)
	}
	if _, err := resolver.format(1, map[string]any{"max_fraction_digits": 2}, "decimal", "default", "de", ""); err != nil {
		t.Fatalf("format: %v", err)
	}

	if backend.built != 3 {
		t.Fatalf("expected 3 distinct formatters, built %d", backend.built)
	}
}

func TestNumberResolverIdempotentReapply(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)
	attrs := map[string]any{"max_fraction_digits": 1}

	first, err := resolver.format(12.35, attrs, "decimal", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	second, err := resolver.format(12.35, attrs, "decimal", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if first != second {
		t.Fatalf("repeated resolution changed output: %q then %q", first, second)
	}
}

func TestNumberResolverDefaults(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)

	got, err := resolver.format(1234.5, nil, "", "", "", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "1,234.5" {
		t.Fatalf("default style/type/locale = %q", got)
	}
}

func TestNumberResolverPrototypeMerge(t *testing.T) {
	backend := newDefaultNumberBackend(NewFormattingRulesProvider(nil, nil))
	prototype, err := backend.NewNumberFormatter("de", StyleDecimal)
	if err != nil {
		t.Fatalf("prototype: %v", err)
	}
	prototype.SetAttribute(AttrMaxFractionDigits, 1)
	prototype.SetTextAttribute("positive_prefix", "++")

	resolver, _ := newTestNumberResolver(prototype)

	got, err := resolver.format("12.3456", nil, "decimal", "default", "de", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "++12,3" {
		t.Fatalf("prototype merge = %q, want ++12,3", got)
	}
}

func TestNumberResolverCallAttributesWin(t *testing.T) {
	backend := newDefaultNumberBackend(NewFormattingRulesProvider(nil, nil))
	prototype, err := backend.NewNumberFormatter("en", StyleDecimal)
	if err != nil {
		t.Fatalf("prototype: %v", err)
	}
	prototype.SetAttribute(AttrMaxFractionDigits, 1)

	resolver, _ := newTestNumberResolver(prototype)

	got, err := resolver.format(12.3456, map[string]any{"max_fraction_digits": 3}, "decimal", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "12.346" {
		t.Fatalf("call attribute should win over prototype, got %q", got)
	}
}

func TestNumberResolverCurrencyCode(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)

	got, err := resolver.format(1234.5, nil, "currency", "default", "en", "USD")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "$1,234.50" {
		t.Fatalf("currency = %q", got)
	}
}

func TestNumberResolverCurrencyCodeDoesNotLeak(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)

	before, err := resolver.format(1234.5, nil, "currency", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if _, err := resolver.format(1234.5, nil, "currency", "default", "en", "USD"); err != nil {
		t.Fatalf("format: %v", err)
	}
	after, err := resolver.format(1234.5, nil, "currency", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	if before != after {
		t.Fatalf("identical calls diverged after a currency-coded call: %q then %q", before, after)
	}
	if before != "1,234.50" {
		t.Fatalf("codeless currency format = %q, want 1,234.50", before)
	}
}

func TestNumberResolverPrototypeCurrencyCodeRestored(t *testing.T) {
	backend := newDefaultNumberBackend(NewFormattingRulesProvider(nil, nil))
	prototype, err := backend.NewNumberFormatter("en", StyleCurrency)
	if err != nil {
		t.Fatalf("prototype: %v", err)
	}
	prototype.SetTextAttribute("currency_code", "EUR")

	resolver, _ := newTestNumberResolver(prototype)

	got, err := resolver.format(10, nil, "currency", "default", "en", "USD")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "$10.00" {
		t.Fatalf("call code should win over the prototype, got %q", got)
	}

	// Without a call code the prototype default comes back, every time.
	got, err = resolver.format(10, nil, "currency", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "€10.00" {
		t.Fatalf("prototype code should be restored, got %q", got)
	}
}

func TestNumberResolverUnknownStyle(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)

	_, err := resolver.format(1, nil, "fancy", "default", "en", "")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestNumberResolverUnknownType(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)

	_, err := resolver.format(1, nil, "decimal", "quad", "en", "")
	if !errors.Is(err, ErrUnknownNumericType) {
		t.Fatalf("expected ErrUnknownNumericType, got %v", err)
	}
}

func TestNumberResolverUnknownAttribute(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)

	_, err := resolver.format(1, map[string]any{"glitter": 1}, "decimal", "default", "en", "")
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}
	if !strings.Contains(err.Error(), "max_fraction_digits") {
		t.Fatalf("error should list valid attribute names: %s", err.Error())
	}
}

func TestNumberResolverEnumAttributeValues(t *testing.T) {
	resolver, _ := newTestNumberResolver(nil)

	got, err := resolver.format(1.25, map[string]any{"max_fraction_digits": 1, "rounding_mode": "half_up"}, "decimal", "default", "en", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "1.3" {
		t.Fatalf("rounding_mode attribute = %q", got)
	}

	if _, err := resolver.format(1, map[string]any{"rounding_mode": "sideways"}, "decimal", "default", "en", ""); !errors.Is(err, ErrUnknownRoundingMode) {
		t.Fatalf("expected ErrUnknownRoundingMode, got %v", err)
	}
	if _, err := resolver.format(1, map[string]any{"padding_position": "center"}, "decimal", "default", "en", ""); !errors.Is(err, ErrUnknownPaddingPosition) {
		t.Fatalf("expected ErrUnknownPaddingPosition, got %v", err)
	}
}

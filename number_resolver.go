package locfmt

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// numberResolver merges call-time number attributes with prototype defaults,
// caches constructed formatters by canonical key, and re-applies attributes
// on every resolution. Because cached number formatters are mutated in place,
// resolve+apply+format all run under one lock.
type numberResolver struct {
	mu            sync.Mutex
	backend       NumberBackend
	prototype     NumberFormatter
	cache         map[string]NumberFormatter
	defaultLocale func() string
}

func newNumberResolver(backend NumberBackend, prototype NumberFormatter, defaultLocale func() string) *numberResolver {
	return &numberResolver{
		backend:       backend,
		prototype:     prototype,
		cache:         make(map[string]NumberFormatter),
		defaultLocale: defaultLocale,
	}
}

// resolveLocked returns a configured formatter for the request. Callers must
// hold r.mu and keep holding it for the lifetime of any use of the result.
func (r *numberResolver) resolveLocked(locale, styleName string, attributes map[string]any) (NumberFormatter, error) {
	style, err := ParseNumberStyle(styleName)
	if err != nil {
		return nil, err
	}

	if locale == "" {
		locale = r.defaultLocale()
	}

	merged := make(map[string]any, len(attributes))
	for name, value := range attributes {
		merged[name] = value
	}

	var textAttrs, symbols []string
	if r.prototype != nil {
		// Numeric attributes: prototype fills only the gaps. Enum-coded
		// attributes come back as raw codes and must be reverse-mapped to
		// their symbolic names before merging.
		for _, name := range numberAttributeOrder {
			if _, ok := merged[name]; ok {
				continue
			}
			attr := numberAttributeNames[name]
			value := r.prototype.Attribute(attr)
			switch attr {
			case AttrRoundingMode:
				merged[name] = roundingModeCodes[RoundingMode(value)]
			case AttrPaddingPosition:
				merged[name] = paddingPositionCodes[PaddingPosition(value)]
			default:
				merged[name] = value
			}
		}

		// Text attributes and symbols are prototype-only namespaces: there is
		// no per-call override path, so they are pulled wholesale.
		for _, name := range textAttributeOrder {
			textAttrs = append(textAttrs, r.prototype.TextAttribute(name))
		}
		for _, name := range symbolOrder {
			symbols = append(symbols, r.prototype.Symbol(name))
		}
	}

	key := numberCacheKey(locale, styleName, merged, textAttrs, symbols)

	formatter, ok := r.cache[key]
	if !ok {
		formatter, err = r.backend.NewNumberFormatter(locale, style)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormatFailure, err)
		}
		r.cache[key] = formatter
	}

	// Attributes are re-applied on every call, hit or miss; repeated calls
	// with the same key are idempotent but not free.
	if err := applyNumberAttributes(formatter, merged); err != nil {
		return nil, err
	}
	if r.prototype != nil {
		for i, name := range textAttributeOrder {
			formatter.SetTextAttribute(name, textAttrs[i])
		}
		for i, name := range symbolOrder {
			formatter.SetSymbol(name, symbols[i])
		}
	}

	return formatter, nil
}

// format validates the numeric type, resolves a formatter, and applies it.
// An optional currency code is installed as a text attribute before use.
func (r *numberResolver) format(value any, attributes map[string]any, styleName, typeName, locale, currencyCode string) (string, error) {
	if styleName == "" {
		styleName = "decimal"
	}
	if typeName == "" {
		typeName = "default"
	}

	numericType, err := ParseNumericType(typeName)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	formatter, err := r.resolveLocked(locale, styleName, attributes)
	if err != nil {
		return "", err
	}

	// Cached formatters carry state between calls, so the currency code must
	// be reconciled on every resolution: a call-supplied code wins, and with
	// no prototype to restore a default the slot is cleared outright.
	if currencyCode != "" {
		formatter.SetTextAttribute("currency_code", currencyCode)
	} else if r.prototype == nil {
		formatter.SetTextAttribute("currency_code", "")
	}

	result, err := formatter.Format(value, numericType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormatFailure, err)
	}
	return result, nil
}

// applyNumberAttributes validates and applies merged numeric attributes.
// Enum-coded attributes carry symbolic values that translate to codes here.
func applyNumberAttributes(formatter NumberFormatter, merged map[string]any) error {
	for name, raw := range merged {
		attr, ok := numberAttributeNames[name]
		if !ok {
			return unknownOption(ErrUnknownAttribute, name, sortedKeys(numberAttributeNames))
		}

		switch attr {
		case AttrRoundingMode:
			mode, err := ParseRoundingMode(fmt.Sprintf("%v", raw))
			if err != nil {
				return err
			}
			formatter.SetAttribute(attr, int(mode))
		case AttrPaddingPosition:
			position, err := ParsePaddingPosition(fmt.Sprintf("%v", raw))
			if err != nil {
				return err
			}
			formatter.SetAttribute(attr, int(position))
		default:
			value, err := coerceAttributeValue(raw)
			if err != nil {
				return fmt.Errorf("%w: attribute %q: %v", ErrUnknownAttribute, name, err)
			}
			formatter.SetAttribute(attr, value)
		}
	}
	return nil
}

func coerceAttributeValue(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}

// numberCacheKey builds the canonical key: locale, style, numeric attributes
// sorted by name, then the prototype-derived text attributes and symbols in
// their fixed namespace order.
func numberCacheKey(locale, styleName string, merged map[string]any, textAttrs, symbols []string) string {
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(locale)
	b.WriteString("|")
	b.WriteString(styleName)
	for _, name := range names {
		b.WriteString("|")
		b.WriteString(name)
		b.WriteString("=")
		fmt.Fprintf(&b, "%v", merged[name])
	}
	b.WriteString("|t:")
	b.WriteString(strings.Join(textAttrs, "\x1f"))
	b.WriteString("|s:")
	b.WriteString(strings.Join(symbols, "\x1f"))
	return b.String()
}

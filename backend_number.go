package locfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// defaultNumberBackend builds rules-driven number formatters. Currency symbol
// discovery goes through golang.org/x/text.
type defaultNumberBackend struct {
	rules *FormattingRulesProvider
}

func newDefaultNumberBackend(rules *FormattingRulesProvider) *defaultNumberBackend {
	return &defaultNumberBackend{rules: rules}
}

func (b *defaultNumberBackend) NewNumberFormatter(locale string, style NumberStyle) (NumberFormatter, error) {
	rules := b.rules.Get(locale)

	f := &stdNumberFormatter{
		locale:  locale,
		style:   style,
		rules:   rules,
		attrs:   make(map[NumberAttribute]int, 16),
		text:    make(map[string]string, 4),
		symbols: make(map[string]string, 4),
	}

	f.attrs[AttrGroupingUsed] = 1
	f.attrs[AttrMinIntegerDigits] = 1
	f.attrs[AttrMaxIntegerDigits] = 309
	f.attrs[AttrMultiplier] = 1
	f.attrs[AttrRoundingMode] = int(RoundHalfEven)
	f.attrs[AttrPaddingPosition] = int(PadBeforePrefix)
	f.attrs[AttrGroupingSize] = rules.Numbers.GroupSize
	f.attrs[AttrSecondaryGroupingSize] = rules.Numbers.SecondaryGroupSize

	switch style {
	case StyleCurrency:
		f.attrs[AttrMinFractionDigits] = rules.Currency.Decimals
		f.attrs[AttrMaxFractionDigits] = rules.Currency.Decimals
	case StylePercent:
		f.attrs[AttrMultiplier] = 100
	case StyleScientific:
		f.attrs[AttrMaxFractionDigits] = 6
	default:
		f.attrs[AttrMaxFractionDigits] = 3
	}

	return f, nil
}

// stdNumberFormatter is the default backend's mutable formatter. The number
// resolver re-applies attributes on every resolution, so no field is final.
type stdNumberFormatter struct {
	locale  string
	style   NumberStyle
	rules   *FormattingRules
	attrs   map[NumberAttribute]int
	text    map[string]string
	symbols map[string]string
}

func (f *stdNumberFormatter) Locale() string     { return f.locale }
func (f *stdNumberFormatter) Style() NumberStyle { return f.style }

func (f *stdNumberFormatter) Attribute(attr NumberAttribute) int {
	return f.attrs[attr]
}

func (f *stdNumberFormatter) SetAttribute(attr NumberAttribute, value int) {
	f.attrs[attr] = value
}

// TextAttribute returns the effective value, not just explicit overrides, so
// prototype reads propagate faithfully into merged configurations.
func (f *stdNumberFormatter) TextAttribute(name string) string {
	if value, ok := f.text[name]; ok {
		return value
	}
	switch name {
	case "negative_prefix":
		return f.Symbol("minus_sign")
	case "padding_character":
		return " "
	default:
		return ""
	}
}

func (f *stdNumberFormatter) SetTextAttribute(name, value string) {
	f.text[name] = value
}

// Symbol returns the explicit override when set, otherwise the rules default.
func (f *stdNumberFormatter) Symbol(name string) string {
	if value, ok := f.symbols[name]; ok {
		return value
	}
	switch name {
	case "decimal_separator":
		return f.rules.Numbers.DecimalSep
	case "grouping_separator":
		return f.rules.Numbers.GroupSep
	case "monetary_separator":
		return f.rules.Numbers.DecimalSep
	case "monetary_grouping_separator":
		return f.rules.Numbers.GroupSep
	case "percent_symbol":
		return f.rules.Numbers.PercentSymbol
	case "minus_sign":
		return f.rules.Numbers.MinusSign
	case "plus_sign":
		return f.rules.Numbers.PlusSign
	case "exponential_symbol":
		return f.rules.Numbers.ExponentSymbol
	case "infinity_symbol":
		return f.rules.Numbers.Infinity
	case "nan_symbol":
		return f.rules.Numbers.NaN
	default:
		return ""
	}
}

func (f *stdNumberFormatter) SetSymbol(name, value string) {
	f.symbols[name] = value
}

func (f *stdNumberFormatter) Format(value any, numericType NumericType) (string, error) {
	v, err := coerceNumber(value)
	if err != nil {
		return "", err
	}

	switch numericType {
	case TypeInt32:
		v = float64(int32(int64(v)))
	case TypeInt64:
		v = float64(int64(v))
	}

	if math.IsNaN(v) {
		return f.Symbol("nan_symbol"), nil
	}
	if math.IsInf(v, 0) {
		if v < 0 {
			return f.Symbol("minus_sign") + f.Symbol("infinity_symbol"), nil
		}
		return f.Symbol("infinity_symbol"), nil
	}

	switch f.style {
	case StyleDuration:
		return f.formatDuration(v), nil
	case StyleOrdinal:
		return f.formatOrdinal(int(v)), nil
	case StyleScientific:
		return f.formatScientific(v), nil
	default:
		return f.formatDecimal(v), nil
	}
}

func (f *stdNumberFormatter) formatDecimal(v float64) string {
	if multiplier := f.attrs[AttrMultiplier]; multiplier != 0 && multiplier != 1 {
		v *= float64(multiplier)
	}

	negative := v < 0 || math.Signbit(v)
	mode := RoundingMode(f.attrs[AttrRoundingMode])
	if negative {
		v = -v
		// Ceiling/floor are direction modes; on the magnitude they swap.
		switch mode {
		case RoundCeiling:
			mode = RoundDown
		case RoundFloor:
			mode = RoundUp
		}
	} else {
		switch mode {
		case RoundCeiling:
			mode = RoundUp
		case RoundFloor:
			mode = RoundDown
		}
	}

	if increment := f.attrs[AttrRoundingIncrement]; increment > 0 {
		v = roundMagnitude(v/float64(increment), 0, mode) * float64(increment)
	}

	maxFrac := f.attrs[AttrMaxFractionDigits]
	minFrac := f.attrs[AttrMinFractionDigits]
	if minFrac > maxFrac {
		maxFrac = minFrac
	}

	if f.attrs[AttrSignificantDigitsUsed] != 0 {
		if sig := f.attrs[AttrMaxSignificantDigits]; sig > 0 {
			v = roundSignificant(v, sig, mode)
		}
	} else {
		v = roundMagnitude(v, maxFrac, mode)
	}

	intPart, fracPart := splitDigits(v, maxFrac)
	fracPart = trimFraction(fracPart, minFrac)
	intPart = padInteger(intPart, f.attrs[AttrMinIntegerDigits], f.attrs[AttrMaxIntegerDigits])

	if f.attrs[AttrGroupingUsed] != 0 {
		sep := f.Symbol("grouping_separator")
		if f.style == StyleCurrency {
			sep = f.Symbol("monetary_grouping_separator")
		}
		intPart = groupDigits(intPart, sep, f.attrs[AttrGroupingSize], f.attrs[AttrSecondaryGroupingSize])
	}

	decimalSep := f.Symbol("decimal_separator")
	if f.style == StyleCurrency {
		decimalSep = f.Symbol("monetary_separator")
	}

	body := intPart
	if fracPart != "" {
		body += decimalSep + fracPart
	} else if f.attrs[AttrDecimalAlwaysShown] != 0 {
		body += decimalSep
	}

	switch f.style {
	case StylePercent:
		body += f.Symbol("percent_symbol")
	case StyleCurrency:
		body = f.placeCurrencySymbol(body)
	}

	prefix, suffix := f.affixes(negative)
	return f.pad(prefix, body, suffix)
}

func (f *stdNumberFormatter) affixes(negative bool) (string, string) {
	if negative {
		prefix, okPrefix := f.text["negative_prefix"]
		if !okPrefix {
			prefix = f.Symbol("minus_sign")
		}
		return prefix, f.text["negative_suffix"]
	}
	return f.text["positive_prefix"], f.text["positive_suffix"]
}

// pad assembles prefix+body+suffix, inserting pad characters when a format
// width is configured.
func (f *stdNumberFormatter) pad(prefix, body, suffix string) string {
	width := f.attrs[AttrFormatWidth]
	total := len([]rune(prefix)) + len([]rune(body)) + len([]rune(suffix))
	if width <= 0 || total >= width {
		return prefix + body + suffix
	}

	padChar := f.text["padding_character"]
	if padChar == "" {
		padChar = " "
	}
	padding := strings.Repeat(padChar, width-total)

	switch PaddingPosition(f.attrs[AttrPaddingPosition]) {
	case PadAfterPrefix:
		return prefix + padding + body + suffix
	case PadBeforeSuffix:
		return prefix + body + padding + suffix
	case PadAfterSuffix:
		return prefix + body + suffix + padding
	default:
		return padding + prefix + body + suffix
	}
}

func (f *stdNumberFormatter) placeCurrencySymbol(body string) string {
	symbol := f.currencySymbol()
	if symbol == "" {
		return body
	}

	space := ""
	if f.rules.Currency.SymbolSpace {
		space = " "
	}
	if f.rules.Currency.SymbolPosition == "after" {
		return body + space + symbol
	}
	return symbol + space + body
}

// currencySymbol resolves the display symbol: explicit override, then x/text
// lookup for the configured currency code, then the code itself.
func (f *stdNumberFormatter) currencySymbol() string {
	if symbol, ok := f.symbols["currency_symbol"]; ok && symbol != "" {
		return symbol
	}

	code := strings.TrimSpace(f.text["currency_code"])
	if code == "" {
		return ""
	}

	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return strings.ToUpper(code)
	}

	if symbol := extractCurrencySymbol(unit, language.Make(f.locale)); symbol != "" {
		return symbol
	}
	if symbol := extractCurrencySymbol(unit, language.English); symbol != "" {
		return symbol
	}
	return unit.String()
}

// extractCurrencySymbol renders an amount with the currency symbol and strips
// the numeric portion back out to isolate the symbol.
func extractCurrencySymbol(unit currency.Unit, tag language.Tag) string {
	printer := message.NewPrinter(tag)
	opts := []number.Option{number.MinFractionDigits(2), number.MaxFractionDigits(2)}

	full := printer.Sprintf("%v", currency.Symbol(unit.Amount(0.0)))
	amount := printer.Sprintf("%v", number.Decimal(0.0, opts...))

	return strings.TrimSpace(strings.ReplaceAll(full, amount, ""))
}

func (f *stdNumberFormatter) formatScientific(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	maxFrac := f.attrs[AttrMaxFractionDigits]
	raw := strconv.FormatFloat(v, 'e', maxFrac, 64)
	mantissa, exponent, _ := strings.Cut(raw, "e")

	mantissa = strings.Replace(mantissa, ".", f.Symbol("decimal_separator"), 1)

	expNegative := strings.HasPrefix(exponent, "-")
	exponent = strings.TrimLeft(exponent, "+-")
	exponent = strings.TrimLeft(exponent, "0")
	if exponent == "" {
		exponent = "0"
	}

	var b strings.Builder
	if negative {
		b.WriteString(f.Symbol("minus_sign"))
	}
	b.WriteString(mantissa)
	b.WriteString(f.Symbol("exponential_symbol"))
	if expNegative {
		b.WriteString(f.Symbol("minus_sign"))
	}
	b.WriteString(exponent)
	return b.String()
}

func (f *stdNumberFormatter) formatDuration(v float64) string {
	total := int64(math.Round(math.Abs(v)))
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	sign := ""
	if v < 0 {
		sign = f.Symbol("minus_sign")
	}
	if hours > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes, seconds)
}

func (f *stdNumberFormatter) formatOrdinal(value int) string {
	switch f.rules.Ordinal {
	case "english":
		return strconv.Itoa(value) + ordinalSuffix(value)
	case "spanish":
		return strconv.Itoa(value) + "º"
	case "dot":
		return strconv.Itoa(value) + "."
	default:
		return strconv.Itoa(value)
	}
}

func ordinalSuffix(value int) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	if mod100 := abs % 100; mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func coerceNumber(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("nil numeric value")
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid numeric string %q", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported numeric value %T", value)
	}
}

// roundMagnitude rounds a non-negative value to the given fraction digits
// using a magnitude rounding mode (up = away from zero).
func roundMagnitude(v float64, digits int, mode RoundingMode) float64 {
	scale := math.Pow(10, float64(digits))
	scaled := v * scale

	const eps = 1e-9
	floor := math.Floor(scaled)
	diff := scaled - floor

	switch mode {
	case RoundUp:
		if diff > eps {
			floor++
		}
	case RoundDown:
		if diff > 1-eps {
			floor++
		}
	case RoundHalfUp:
		if diff >= 0.5-eps {
			floor++
		}
	case RoundHalfDown:
		if diff > 0.5+eps {
			floor++
		}
	default: // half even
		switch {
		case math.Abs(diff-0.5) <= eps:
			if math.Mod(floor, 2) != 0 {
				floor++
			}
		case diff > 0.5:
			floor++
		}
	}

	return floor / scale
}

func roundSignificant(v float64, digits int, mode RoundingMode) float64 {
	if v == 0 {
		return 0
	}
	magnitude := int(math.Floor(math.Log10(v)))
	shift := digits - magnitude - 1
	scale := math.Pow(10, float64(shift))
	return roundMagnitude(v*scale, 0, mode) / scale
}

func splitDigits(v float64, maxFrac int) (string, string) {
	if maxFrac < 0 {
		maxFrac = 0
	}
	formatted := strconv.FormatFloat(v, 'f', maxFrac, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")
	return intPart, fracPart
}

func trimFraction(frac string, minFrac int) string {
	trimmed := strings.TrimRight(frac, "0")
	for len(trimmed) < minFrac {
		trimmed += "0"
	}
	return trimmed
}

func padInteger(digits string, minDigits, maxDigits int) string {
	for len(digits) < minDigits {
		digits = "0" + digits
	}
	if maxDigits > 0 && len(digits) > maxDigits {
		digits = digits[len(digits)-maxDigits:]
	}
	return digits
}

func groupDigits(digits, sep string, size, secondary int) string {
	if sep == "" || size <= 0 || len(digits) <= size {
		return digits
	}
	if secondary <= 0 {
		secondary = size
	}

	var groups []string
	remaining := digits

	head := len(remaining) - size
	groups = append(groups, remaining[head:])
	remaining = remaining[:head]

	for len(remaining) > secondary {
		head = len(remaining) - secondary
		groups = append(groups, remaining[head:])
		remaining = remaining[:head]
	}
	if remaining != "" {
		groups = append(groups, remaining)
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(sep)
		}
	}
	return b.String()
}

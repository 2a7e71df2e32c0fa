package locfmt

import "sort"

// NumberStyle selects the overall rendering family of a number formatter.
type NumberStyle int

const (
	StyleDecimal NumberStyle = iota
	StyleCurrency
	StylePercent
	StyleScientific
	StyleSpellout
	StyleOrdinal
	StyleDuration
)

var numberStyleNames = map[string]NumberStyle{
	"decimal":    StyleDecimal,
	"currency":   StyleCurrency,
	"percent":    StylePercent,
	"scientific": StyleScientific,
	"spellout":   StyleSpellout,
	"ordinal":    StyleOrdinal,
	"duration":   StyleDuration,
}

var numberStyleCodes = invert(numberStyleNames)

// ParseNumberStyle resolves a symbolic style name to its code.
func ParseNumberStyle(name string) (NumberStyle, error) {
	if style, ok := numberStyleNames[name]; ok {
		return style, nil
	}
	return 0, unknownOption(ErrUnknownStyle, name, sortedKeys(numberStyleNames))
}

func (s NumberStyle) String() string {
	return numberStyleCodes[s]
}

// NumericType narrows how a raw value is coerced before formatting.
type NumericType int

const (
	TypeDefault NumericType = iota
	TypeInt32
	TypeInt64
	TypeDouble
	TypeCurrency
)

var numericTypeNames = map[string]NumericType{
	"default":  TypeDefault,
	"int32":    TypeInt32,
	"int64":    TypeInt64,
	"double":   TypeDouble,
	"currency": TypeCurrency,
}

var numericTypeCodes = invert(numericTypeNames)

// ParseNumericType resolves a symbolic numeric type name to its code.
func ParseNumericType(name string) (NumericType, error) {
	if typ, ok := numericTypeNames[name]; ok {
		return typ, nil
	}
	return 0, unknownOption(ErrUnknownNumericType, name, sortedKeys(numericTypeNames))
}

func (t NumericType) String() string {
	return numericTypeCodes[t]
}

// NumberAttribute identifies an integer-valued formatter attribute.
type NumberAttribute int

const (
	AttrParseIntegerOnly NumberAttribute = iota
	AttrGroupingUsed
	AttrDecimalAlwaysShown
	AttrMaxIntegerDigits
	AttrMinIntegerDigits
	AttrMaxFractionDigits
	AttrMinFractionDigits
	AttrMultiplier
	AttrGroupingSize
	AttrRoundingMode
	AttrRoundingIncrement
	AttrFormatWidth
	AttrPaddingPosition
	AttrSecondaryGroupingSize
	AttrSignificantDigitsUsed
	AttrMinSignificantDigits
	AttrMaxSignificantDigits
)

var numberAttributeNames = map[string]NumberAttribute{
	"parse_integer_only":      AttrParseIntegerOnly,
	"grouping_used":           AttrGroupingUsed,
	"decimal_always_shown":    AttrDecimalAlwaysShown,
	"max_integer_digits":      AttrMaxIntegerDigits,
	"min_integer_digits":      AttrMinIntegerDigits,
	"max_fraction_digits":     AttrMaxFractionDigits,
	"min_fraction_digits":     AttrMinFractionDigits,
	"multiplier":              AttrMultiplier,
	"grouping_size":           AttrGroupingSize,
	"rounding_mode":           AttrRoundingMode,
	"rounding_increment":      AttrRoundingIncrement,
	"format_width":            AttrFormatWidth,
	"padding_position":        AttrPaddingPosition,
	"secondary_grouping_size": AttrSecondaryGroupingSize,
	"significant_digits_used": AttrSignificantDigitsUsed,
	"min_significant_digits":  AttrMinSignificantDigits,
	"max_significant_digits":  AttrMaxSignificantDigits,
}

var numberAttributeCodes = invert(numberAttributeNames)

// numberAttributeOrder fixes the iteration order used when pulling attribute
// defaults from a prototype, keeping cache keys deterministic.
var numberAttributeOrder = sortedKeys(numberAttributeNames)

// ParseNumberAttribute resolves a symbolic attribute name to its code.
func ParseNumberAttribute(name string) (NumberAttribute, error) {
	if attr, ok := numberAttributeNames[name]; ok {
		return attr, nil
	}
	return 0, unknownOption(ErrUnknownAttribute, name, sortedKeys(numberAttributeNames))
}

func (a NumberAttribute) String() string {
	return numberAttributeCodes[a]
}

// RoundingMode selects how excess fraction digits are resolved.
type RoundingMode int

const (
	RoundCeiling RoundingMode = iota
	RoundFloor
	RoundDown
	RoundUp
	RoundHalfEven
	RoundHalfDown
	RoundHalfUp
)

var roundingModeNames = map[string]RoundingMode{
	"ceiling":   RoundCeiling,
	"floor":     RoundFloor,
	"down":      RoundDown,
	"up":        RoundUp,
	"half_even": RoundHalfEven,
	"half_down": RoundHalfDown,
	"half_up":   RoundHalfUp,
}

var roundingModeCodes = invert(roundingModeNames)

// ParseRoundingMode resolves a symbolic rounding mode name to its code.
func ParseRoundingMode(name string) (RoundingMode, error) {
	if mode, ok := roundingModeNames[name]; ok {
		return mode, nil
	}
	return 0, unknownOption(ErrUnknownRoundingMode, name, sortedKeys(roundingModeNames))
}

func (m RoundingMode) String() string {
	return roundingModeCodes[m]
}

// PaddingPosition selects where pad characters are inserted when a format
// width is configured.
type PaddingPosition int

const (
	PadBeforePrefix PaddingPosition = iota
	PadAfterPrefix
	PadBeforeSuffix
	PadAfterSuffix
)

var paddingPositionNames = map[string]PaddingPosition{
	"before_prefix": PadBeforePrefix,
	"after_prefix":  PadAfterPrefix,
	"before_suffix": PadBeforeSuffix,
	"after_suffix":  PadAfterSuffix,
}

var paddingPositionCodes = invert(paddingPositionNames)

// ParsePaddingPosition resolves a symbolic padding position name to its code.
func ParsePaddingPosition(name string) (PaddingPosition, error) {
	if pos, ok := paddingPositionNames[name]; ok {
		return pos, nil
	}
	return 0, unknownOption(ErrUnknownPaddingPosition, name, sortedKeys(paddingPositionNames))
}

func (p PaddingPosition) String() string {
	return paddingPositionCodes[p]
}

// textAttributeOrder fixes the prototype-only text attribute namespace. There
// is no per-call override path for these.
var textAttributeOrder = []string{
	"positive_prefix",
	"positive_suffix",
	"negative_prefix",
	"negative_suffix",
	"padding_character",
	"currency_code",
}

// symbolOrder fixes the prototype-only symbol namespace.
var symbolOrder = []string{
	"decimal_separator",
	"grouping_separator",
	"pattern_separator",
	"percent_symbol",
	"zero_digit",
	"digit_symbol",
	"minus_sign",
	"plus_sign",
	"currency_symbol",
	"intl_currency_symbol",
	"monetary_separator",
	"exponential_symbol",
	"permill_symbol",
	"infinity_symbol",
	"nan_symbol",
	"monetary_grouping_separator",
}

// DateStyle selects a date or time rendering style.
type DateStyle int

const (
	DateStyleNone DateStyle = iota
	DateStyleShort
	DateStyleMedium
	DateStyleLong
	DateStyleFull
	DateStyleRelativeShort
	DateStyleRelativeMedium
	DateStyleRelativeLong
	DateStyleRelativeFull
)

var dateStyleNames = map[string]DateStyle{
	"none":            DateStyleNone,
	"short":           DateStyleShort,
	"medium":          DateStyleMedium,
	"long":            DateStyleLong,
	"full":            DateStyleFull,
	"relative_short":  DateStyleRelativeShort,
	"relative_medium": DateStyleRelativeMedium,
	"relative_long":   DateStyleRelativeLong,
	"relative_full":   DateStyleRelativeFull,
}

var dateStyleCodes = invert(dateStyleNames)

func parseDateStyle(name string, sentinel error) (DateStyle, error) {
	if style, ok := dateStyleNames[name]; ok {
		return style, nil
	}
	return 0, unknownOption(sentinel, name, sortedKeys(dateStyleNames))
}

// ParseDateStyle resolves a symbolic date style name to its code.
func ParseDateStyle(name string) (DateStyle, error) {
	return parseDateStyle(name, ErrUnknownDateFormat)
}

// ParseTimeStyle resolves a symbolic time style name to its code.
func ParseTimeStyle(name string) (DateStyle, error) {
	return parseDateStyle(name, ErrUnknownTimeFormat)
}

func (s DateStyle) String() string {
	return dateStyleCodes[s]
}

// IsRelative reports whether the style carries relative-day semantics.
func (s DateStyle) IsRelative() bool {
	return s >= DateStyleRelativeShort
}

// Absolute returns the non-relative counterpart of a relative style.
func (s DateStyle) Absolute() DateStyle {
	if s.IsRelative() {
		return s - DateStyleRelativeShort + DateStyleShort
	}
	return s
}

// Calendar selects the calendar system a date formatter is built on.
type Calendar int

// The traditional calendar is deliberately the zero value: calendar
// normalization yields it for every name other than "gregorian", and the
// prototype fallback in the date resolver fires only on the zero value.
const (
	CalendarTraditional Calendar = iota
	CalendarGregorian
)

// NormalizeCalendar maps "gregorian" to the Gregorian constant and anything
// else to the traditional constant.
func NormalizeCalendar(name string) Calendar {
	if name == "gregorian" {
		return CalendarGregorian
	}
	return CalendarTraditional
}

func (c Calendar) String() string {
	if c == CalendarGregorian {
		return "gregorian"
	}
	return "traditional"
}

func invert[K comparable, V comparable](source map[K]V) map[V]K {
	result := make(map[V]K, len(source))
	for key, value := range source {
		result[value] = key
	}
	return result
}

func sortedKeys[V any](source map[string]V) []string {
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package locfmt

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownStyle indicates a number style name outside the fixed enumeration.
var ErrUnknownStyle = errors.New("locfmt: unknown number style")

// ErrUnknownDateFormat indicates a date style name outside the fixed enumeration.
var ErrUnknownDateFormat = errors.New("locfmt: unknown date format")

// ErrUnknownTimeFormat indicates a time style name outside the fixed enumeration.
var ErrUnknownTimeFormat = errors.New("locfmt: unknown time format")

// ErrUnknownNumericType indicates a numeric type name outside the fixed enumeration.
var ErrUnknownNumericType = errors.New("locfmt: unknown numeric type")

// ErrUnknownAttribute indicates a numeric attribute name outside the fixed enumeration.
var ErrUnknownAttribute = errors.New("locfmt: unknown number attribute")

// ErrUnknownRoundingMode indicates a rounding mode value outside the fixed enumeration.
var ErrUnknownRoundingMode = errors.New("locfmt: unknown rounding mode")

// ErrUnknownPaddingPosition indicates a padding position value outside the fixed enumeration.
var ErrUnknownPaddingPosition = errors.New("locfmt: unknown padding position")

// ErrFormatFailure surfaces a rejection from the underlying formatting capability.
var ErrFormatFailure = errors.New("locfmt: format failure")

// ErrNoPrettyStrategy marks pretty-format calls on a service configured without a strategy.
var ErrNoPrettyStrategy = errors.New("locfmt: no pretty-format strategy configured")

// ErrNotFound signals a missing display-name resource. It never escapes the
// lookup service, which converts it into the echo-the-input fallback.
var ErrNotFound = errors.New("locfmt: resource not found")

// unknownOption builds a validation error naming the offending value and the
// full, sorted list of valid alternatives.
func unknownOption(sentinel error, value string, valid []string) error {
	choices := append([]string{}, valid...)
	sort.Strings(choices)
	return fmt.Errorf("%w: %q (valid options: %s)", sentinel, value, strings.Join(choices, ", "))
}

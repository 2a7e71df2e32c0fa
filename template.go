package locfmt

import "reflect"

// TemplateHelpers returns formatting helper functions for use with
// html/template or text/template. Each helper takes the template data as its
// first argument and extracts the locale from it using localeKey.
func TemplateHelpers(service *FormatService, localeKey string) map[string]any {
	return map[string]any{
		"format_number": func(data any, value any) (string, error) {
			return service.FormatNumber(value, NumberOptions{Locale: extractLocale(data, localeKey)})
		},

		"format_currency": func(data any, value any, code string) (string, error) {
			return service.FormatCurrency(value, code, NumberOptions{Locale: extractLocale(data, localeKey)})
		},

		"format_percent": func(data any, value any) (string, error) {
			return service.FormatNumber(value, NumberOptions{
				Style:  "percent",
				Locale: extractLocale(data, localeKey),
			})
		},

		"format_date": func(data any, value any) (string, error) {
			return service.FormatDate(value, DateOptions{Locale: extractLocale(data, localeKey)})
		},

		"format_datetime": func(data any, value any) (string, error) {
			return service.FormatDateTime(value, DateOptions{Locale: extractLocale(data, localeKey)})
		},

		"format_time": func(data any, value any) (string, error) {
			return service.FormatTime(value, DateOptions{Locale: extractLocale(data, localeKey)})
		},

		"format_pretty": func(data any, value any) (string, error) {
			return service.FormatDateTimePretty(value, DateOptions{Locale: extractLocale(data, localeKey)})
		},

		"format_date_pretty": func(data any, value any) (string, error) {
			return service.FormatDatePretty(value, DateOptions{Locale: extractLocale(data, localeKey)})
		},

		"country_name": func(data any, code string) string {
			return service.CountryName(code, extractLocale(data, localeKey))
		},

		"currency_name": func(data any, code string) string {
			return service.CurrencyName(code, extractLocale(data, localeKey))
		},

		"currency_symbol": func(data any, code string) string {
			return service.CurrencySymbol(code, extractLocale(data, localeKey))
		},

		"language_name": func(data any, code string) string {
			return service.LanguageName(code, extractLocale(data, localeKey))
		},

		"locale_name": func(data any, code string) string {
			return service.LocaleName(code, extractLocale(data, localeKey))
		},

		"timezone_name": func(data any, code string) string {
			return service.TimezoneName(code, extractLocale(data, localeKey))
		},

		"country_timezones": func(code string) []string {
			return service.CountryTimezones(code)
		},
	}
}

// extractLocale pulls the locale out of template data using the configured
// key. It handles plain strings, maps, and struct fields via reflection.
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}

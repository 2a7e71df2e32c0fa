package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	locfmt "github.com/goliatone/go-locfmt"
)

type cliConfig struct {
	locale   string
	timezone string
	style    string
	kind     string
	currency string
	pattern  string
	rules    string
}

func main() {
	cfg := parseFlags()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: locfmt [flags] <value>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	out, err := run(cfg, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "locfmt: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func parseFlags() cliConfig {
	var cfg cliConfig
	flag.StringVar(&cfg.locale, "locale", "", "locale to format for (defaults to the environment)")
	flag.StringVar(&cfg.timezone, "tz", "", "IANA timezone for date output")
	flag.StringVar(&cfg.style, "style", "", "style: decimal, percent, ordinal... or short, medium, long, full")
	flag.StringVar(&cfg.kind, "kind", "number", "what to format: number, currency, date, time, datetime, pretty")
	flag.StringVar(&cfg.currency, "currency", "USD", "ISO 4217 code for -kind currency")
	flag.StringVar(&cfg.pattern, "pattern", "", "explicit date pattern, overrides -style for dates")
	flag.StringVar(&cfg.rules, "rules", "", "path to a formatting rules file")
	flag.Parse()
	return cfg
}

func run(cfg cliConfig, value string) (string, error) {
	opts := []locfmt.Option{}
	if cfg.locale != "" {
		opts = append(opts, locfmt.WithDefaultLocale(cfg.locale))
	}
	if cfg.timezone != "" {
		loc, err := time.LoadLocation(cfg.timezone)
		if err != nil {
			return "", fmt.Errorf("timezone %q: %w", cfg.timezone, err)
		}
		opts = append(opts, locfmt.WithDefaultTimezone(loc))
	}
	if cfg.rules != "" {
		opts = append(opts, locfmt.WithRulesPath(cfg.rules))
	}

	svc, err := locfmt.NewFormatService(opts...)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(cfg.kind) {
	case "number":
		return svc.FormatNumber(value, locfmt.NumberOptions{Style: cfg.style})
	case "currency":
		return svc.FormatCurrency(value, cfg.currency, locfmt.NumberOptions{})
	case "date":
		return svc.FormatDate(value, locfmt.DateOptions{DateStyle: cfg.style, Pattern: cfg.pattern})
	case "time":
		return svc.FormatTime(value, locfmt.DateOptions{TimeStyle: cfg.style})
	case "datetime":
		return svc.FormatDateTime(value, locfmt.DateOptions{
			DateStyle: cfg.style,
			TimeStyle: cfg.style,
			Pattern:   cfg.pattern,
		})
	case "pretty":
		return svc.FormatDateTimePretty(value, locfmt.DateOptions{TimeStyle: "short"})
	default:
		return "", fmt.Errorf("unknown kind %q", cfg.kind)
	}
}

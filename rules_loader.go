package locfmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk shape of a formatting rules document: a mapping
// from locale to rules, in JSON or YAML.
type rulesFile struct {
	FormattingRules map[string]FormattingRules `json:"formatting_rules" yaml:"formatting_rules"`
}

// RulesLoader loads formatting rules from user files layered over the
// embedded defaults.
type RulesLoader struct {
	defaultPath string
	overrides   map[string]string
}

// NewRulesLoader creates a loader. An empty path loads only the embedded
// defaults plus any per-locale overrides.
func NewRulesLoader(defaultPath string) *RulesLoader {
	return &RulesLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// AddOverride registers a locale-specific rules file that wins over both the
// embedded defaults and the base rules file.
func (l *RulesLoader) AddOverride(locale, path string) {
	if l == nil || locale == "" || path == "" {
		return
	}
	l.overrides[normalizeLocale(locale)] = path
}

// Load reads and merges all configured sources.
func (l *RulesLoader) Load() (map[string]FormattingRules, error) {
	result := make(map[string]FormattingRules)
	if l == nil {
		return result, nil
	}

	if l.defaultPath != "" {
		loaded, err := readRulesFile(l.defaultPath)
		if err != nil {
			return nil, fmt.Errorf("load formatting rules: %w", err)
		}
		for locale, rules := range loaded {
			result[normalizeLocale(locale)] = rules
		}
	}

	for locale, path := range l.overrides {
		loaded, err := readRulesFile(path)
		if err != nil {
			return nil, fmt.Errorf("load rules override for %q: %w", locale, err)
		}
		if rules, ok := loaded[locale]; ok {
			result[locale] = rules
			continue
		}
		// Single-locale override files may omit the locale key entirely.
		if len(loaded) == 1 {
			for _, rules := range loaded {
				result[locale] = rules
			}
		}
	}

	return result, nil
}

func readRulesFile(path string) (map[string]FormattingRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc rulesFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if doc.FormattingRules == nil {
		return map[string]FormattingRules{}, nil
	}
	return doc.FormattingRules, nil
}

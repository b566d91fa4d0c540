// Package i18n holds the two dashboard locales and their presentation strings.
// Locales affect rendering only, never the data model.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects display language and direction.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Direction is the reading direction of a locale.
type Direction int

const (
	LTR Direction = iota
	RTL
)

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

// Locales returns the supported locales in switch order.
func Locales() []Locale {
	return []Locale{English, Arabic}
}

// ParseLocale maps a BCP 47 tag ("ar-EG", "en_US", "ar") to a supported locale.
// Well-formed tags in other languages fall back to English.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return English, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English, fmt.Errorf("parse locale %q: %w", s, err)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, nil
	}
	if supported[idx] == language.Arabic {
		return Arabic, nil
	}
	return English, nil
}

// Valid returns true if the locale is a known value.
func (l Locale) Valid() bool {
	return l == English || l == Arabic
}

// Direction returns the reading direction.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Next returns the other locale, for a single-key language toggle.
func (l Locale) Next() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}

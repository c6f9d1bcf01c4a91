// Package locale resolves bilingual content and formats dates and fixed
// labels for the two supported languages. Spanish is the base language;
// English is an optional override per field.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a UI/content language. It is always passed explicitly; there is no
// process-wide current language.
type Lang string

const (
	ES Lang = "es"
	EN Lang = "en"

	Default = ES
)

var matcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

// ParseLang maps a query value such as "en" or "en-GB" to a Lang. Anything
// that is not English resolves to the base language.
func ParseLang(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "en" || strings.HasPrefix(s, "en-") || strings.HasPrefix(s, "en_") {
		return EN
	}
	return Default
}

// MatchAcceptLanguage picks a Lang from an Accept-Language header value.
func MatchAcceptLanguage(header string) Lang {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	if idx == 1 {
		return EN
	}
	return ES
}

// Pick returns the explicit query language when set, the negotiated header
// language otherwise.
func Pick(query, acceptLanguage string) Lang {
	if strings.TrimSpace(query) != "" {
		return ParseLang(query)
	}
	return MatchAcceptLanguage(acceptLanguage)
}

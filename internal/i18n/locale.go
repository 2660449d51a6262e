// Package i18n resolves the visitor's locale from the URL and looks up translated
// messages.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale struct {
	Code string
	Name string
	Flag string
	Tag  language.Tag
}

var (
	English = Locale{Code: "en", Name: "English", Flag: "🇺🇸", Tag: language.Raw.MustParse("en")}
	Tagalog = Locale{Code: "tl", Name: "Tagalog", Flag: "🇵🇭", Tag: language.Raw.MustParse("tl")}
	Polish  = Locale{Code: "pl", Name: "Polski", Flag: "🇵🇱", Tag: language.Raw.MustParse("pl")}

	// Default is served on unprefixed paths.
	Default = English

	Supported = []Locale{English, Tagalog, Polish}
)

// IsDefault reports whether paths for this locale carry no prefix.
func (l Locale) IsDefault() bool { return l.Code == Default.Code }

// Lookup returns the supported locale named by a path segment. Only the exact
// lower-case codes match, so "/EN" or "/en-US" are not locale prefixes.
func Lookup(segment string) (Locale, bool) {
	if segment == "" || segment != strings.ToLower(segment) {
		return Locale{}, false
	}
	tag, err := language.Raw.Parse(segment)
	if err != nil || tag.String() != segment {
		return Locale{}, false
	}
	for _, l := range Supported {
		if l.Tag == tag {
			return l, true
		}
	}
	return Locale{}, false
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported[index]
}

var matcher = language.NewMatcher([]language.Tag{English.Tag, Tagalog.Tag, Polish.Tag})

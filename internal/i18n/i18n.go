// Package i18n resolves the visitor's display language and translates the
// small set of messages the application produces itself (validation errors,
// flash notifications). Backend error messages are shown verbatim and are
// not translated.
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // first entry is the matcher fallback
	language.Polish,
}

// Bundle holds the message catalogs and the language matcher. It is created
// once at startup and passed explicitly to whatever needs it; there is no
// package-level instance.
type Bundle struct {
	matcher  language.Matcher
	fallback language.Tag
}

// New creates a bundle. defaultLang overrides the fallback when it names a
// supported language.
func New(defaultLang string) *Bundle {
	fallback := language.English
	if tag, err := language.Parse(defaultLang); err == nil {
		for _, s := range supported {
			if s == tag {
				fallback = tag
				break
			}
		}
	}
	return &Bundle{
		matcher:  language.NewMatcher(supported),
		fallback: fallback,
	}
}

// Resolve picks the display language: the persisted preference wins, then
// the Accept-Language header, then the configured default.
func (b *Bundle) Resolve(preference, acceptHeader string) language.Tag {
	if preference != "" {
		if tag, err := language.Parse(preference); err == nil {
			if matched, _, conf := b.matcher.Match(tag); conf >= language.High {
				return confine(matched)
			}
		}
	}
	if acceptHeader != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptHeader); err == nil && len(tags) > 0 {
			if matched, _, conf := b.matcher.Match(tags...); conf > language.No {
				return confine(matched)
			}
		}
	}
	return b.fallback
}

// Supported reports whether code names a language the UI can switch to.
func (b *Bundle) Supported(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	for _, s := range supported {
		if s == tag {
			return true
		}
	}
	return false
}

// T returns the message for key in the given language. Unknown keys come
// back unchanged so a missing entry is visible instead of silent.
func (b *Bundle) T(tag language.Tag, key string) string {
	if catalog, ok := catalogs[tag]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[language.English][key]; ok {
		return msg
	}
	return key
}

// confine maps matcher output (which may carry a region) back onto one of
// the supported base tags.
func confine(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}
	return language.English
}

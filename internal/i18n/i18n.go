// Package i18n holds the Polish and English message tables of the clinic client.
package i18n

import (
	"golang.org/x/text/language"

	"medclinic-client/internal/models"
)

// Lang is a supported interface language.
type Lang string

const (
	Polish  Lang = "pl"
	English Lang = "en"
)

var (
	supported = []language.Tag{language.Polish, language.English}
	matcher   = language.NewMatcher(supported)
)

// ParseLang picks the closest supported language for a BCP 47 tag or
// Accept-Language style list. Anything unrecognised resolves to Polish.
func ParseLang(s string) Lang {
	tag, _ := language.MatchStrings(matcher, s)
	if base, _ := tag.Base(); base.String() == "en" {
		return English
	}
	return Polish
}

// Tag returns the language tag for l.
func (l Lang) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Polish
}

// Catalog resolves keys for one language.
type Catalog struct {
	lang Lang
}

// New returns a catalog for lang.
func New(lang Lang) *Catalog {
	if lang != English {
		lang = Polish
	}
	return &Catalog{lang: lang}
}

// Lang returns the catalog language.
func (c *Catalog) Lang() Lang {
	return c.lang
}

// T resolves k in the catalog language, then English, then the key's built-in default.
func (c *Catalog) T(k Key) string {
	if !k.valid() {
		return ""
	}
	if c.lang == Polish && polish[k] != "" {
		return polish[k]
	}
	if english[k] != "" {
		return english[k]
	}
	return keyTable[k].fallback
}

// Translate picks between two inline variants.
func (c *Catalog) Translate(pl, en string) string {
	if c.lang == English {
		return en
	}
	return pl
}

// Weekdays returns the day names Monday first.
func (c *Catalog) Weekdays() [7]string {
	return weekdays[c.lang]
}

// Status returns the label of an appointment status.
func (c *Catalog) Status(s models.AppointmentStatus) string {
	switch s {
	case models.StatusAvailable:
		return c.T(CalendarAvailable)
	case models.StatusBooked:
		return c.T(CalendarBooked)
	case models.StatusCompleted:
		return c.T(CalendarCompleted)
	}
	return string(s)
}

// Package locale renders dates in the long, human form used on order pages.
package locale

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type longForm struct {
	locale monday.Locale
	layout string
	// Portuguese writes month names in lower case inside a date.
	lower bool
}

var supported = []language.Tag{
	language.AmericanEnglish,
	language.EuropeanPortuguese,
}

var forms = map[language.Tag]longForm{
	language.AmericanEnglish:    {locale: monday.LocaleEnUS, layout: "January 2, 2006"},
	language.EuropeanPortuguese: {locale: monday.LocalePtPT, layout: "2 de January de 2006", lower: true},
}

var matcher = language.NewMatcher(supported)

// DateFormatter formats dates for one of the supported locales.
type DateFormatter struct {
	tag  language.Tag
	form longForm
}

// NewDateFormatter picks the closest supported locale; unknown or malformed
// locales fall back to American English.
func NewDateFormatter(locale string) DateFormatter {
	tag := language.AmericanEnglish
	if parsed, err := language.Parse(locale); err == nil {
		if _, idx, conf := matcher.Match(parsed); conf != language.No {
			tag = supported[idx]
		}
	}
	return DateFormatter{tag: tag, form: forms[tag]}
}

// Tag returns the resolved locale.
func (f DateFormatter) Tag() language.Tag {
	return f.tag
}

// Long renders a date as "September 10, 2025" or "10 de setembro de 2025".
func (f DateFormatter) Long(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	s := monday.Format(t, f.form.layout, f.form.locale)
	if f.form.lower {
		s = cases.Lower(f.tag).String(s)
	}
	return s
}

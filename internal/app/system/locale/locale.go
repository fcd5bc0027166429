// internal/app/system/locale/locale.go

// Package locale formats dates and money for the German-language dashboard.
package locale

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown where a value is missing or unreadable.
const Placeholder = "—"

// DefaultTimeZone is used when no zone is configured.
const DefaultTimeZone = "Europe/Berlin"

// monthAbbr holds the abbreviated German month names used in long dates.
var monthAbbr = [12]string{
	"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
	"Juli", "Aug.", "Sep.", "Okt.", "Nov.", "Dez.",
}

// dateLayouts are the ISO-8601 shapes the data service produces.
// Layouts without an offset are read in the caller's location.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ErrBadDate is returned for strings that are not ISO-8601 dates.
var ErrBadDate = errors.New("not an ISO-8601 date")

var printer = message.NewPrinter(language.German)

// ParseDate reads an ISO-8601 date or date-time. Values without an explicit
// offset are interpreted in loc; a nil loc means UTC.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadDate
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

// CourseDate renders s as "dd. MMM yyyy", e.g. "05. März 2027".
// The second result is false when s is empty or unreadable.
func CourseDate(s string, loc *time.Location) (string, bool) {
	t, err := ParseDate(s, loc)
	if err != nil {
		return Placeholder, false
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("02. ") + monthAbbr[t.Month()-1] + t.Format(" 2006"), true
}

// ShortDate renders s as "dd.MM.yy".
func ShortDate(s string, loc *time.Location) (string, bool) {
	t, err := ParseDate(s, loc)
	if err != nil {
		return "", false
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("02.01.06"), true
}

// Euro renders v with German separators and a trailing euro sign,
// e.g. 1234.5 → "1.234,5 €".
func Euro(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3))) + " €"
}

// LoadLocation resolves a zone name, falling back to DefaultTimeZone.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultTimeZone
	}
	return time.LoadLocation(name)
}

package timeutil

import (
	"strings"

	"golang.org/x/text/language"
)

// FormatUnit selects which date/time fields a formatted string contains.
type FormatUnit int

const (
	// UnitDateTime renders the full date and time.
	UnitDateTime FormatUnit = iota
	// UnitDate renders the date only.
	UnitDate
	// UnitYear renders the four-digit year.
	UnitYear
	// UnitYearMonth renders year and month.
	UnitYearMonth
	// UnitMonthDay renders month and day.
	UnitMonthDay
	// UnitTime renders the time of day only.
	UnitTime
	// UnitCamera renders the fixed-width "DD-MM-YYYY HH:MM:SS" form,
	// bypassing locale conventions entirely.
	UnitCamera
)

// NotAvailable is returned when the source value cannot be parsed and the
// caller did not ask for an empty string instead.
const NotAvailable = "N/A"

// FormatOptions tunes FormatLocal.
type FormatOptions struct {
	// Locale is a BCP-47 tag ("en-US", "de", ...). Unknown or empty tags
	// fall back to en-US conventions.
	Locale string
	// HideSeconds drops the seconds field from time-bearing units.
	HideSeconds bool
	// EmptyOnError returns "" instead of the NotAvailable sentinel when
	// the source fails to parse.
	EmptyOnError bool
}

var localeTags = []language.Tag{
	language.AmericanEnglish, // the default
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(localeTags)

// layoutSet holds the locale-dependent layouts. Time-only and year-only
// rendering is locale-independent on a 24-hour clock.
type layoutSet struct {
	dateTime  string
	date      string
	yearMonth string
	monthDay  string
}

var localeLayouts = []layoutSet{
	{dateTime: "01/02/2006 15:04:05", date: "01/02/2006", yearMonth: "01/2006", monthDay: "01/02"},
	{dateTime: "02/01/2006 15:04:05", date: "02/01/2006", yearMonth: "01/2006", monthDay: "02/01"},
	{dateTime: "02.01.2006 15:04:05", date: "02.01.2006", yearMonth: "01.2006", monthDay: "02.01."},
	{dateTime: "02/01/2006 15:04:05", date: "02/01/2006", yearMonth: "01/2006", monthDay: "02/01"},
	{dateTime: "02/01/2006 15:04:05", date: "02/01/2006", yearMonth: "01/2006", monthDay: "02/01"},
}

const cameraLayout = "02-01-2006 15:04:05"

// FormatLocal renders the source value in local time using the fields
// selected by unit and the conventions of the requested locale. All units
// use a 24-hour clock. Unparseable input yields the NotAvailable sentinel,
// or "" when opts.EmptyOnError is set.
func FormatLocal(v any, unit FormatUnit, opts FormatOptions) string {
	t, ok := ParseDate(v)
	if !ok {
		if opts.EmptyOnError {
			return ""
		}
		return NotAvailable
	}
	lt := t.Local()

	if unit == UnitCamera {
		return lt.Format(cameraLayout)
	}

	_, idx := language.MatchStrings(localeMatcher, opts.Locale)
	set := localeLayouts[idx]

	var layout string
	switch unit {
	case UnitDate:
		layout = set.date
	case UnitYear:
		layout = "2006"
	case UnitYearMonth:
		layout = set.yearMonth
	case UnitMonthDay:
		layout = set.monthDay
	case UnitTime:
		layout = "15:04:05"
	default:
		layout = set.dateTime
	}

	if opts.HideSeconds {
		layout = strings.TrimSuffix(layout, ":05")
	}
	return lt.Format(layout)
}

package timeutil

import (
	"math"
	"strings"
	"time"
)

// String layouts tried in order when parsing date strings.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate interprets v as a point in time. Accepted inputs are time.Time
// values (and pointers to them), integer or float epoch milliseconds, and
// strings in common ISO-style layouts (surrounding whitespace is trimmed
// first). The second return is false when the value cannot be interpreted
// or represents an invalid date.
func ParseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case int:
		return time.UnixMilli(int64(t)), true
	case int64:
		return time.UnixMilli(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(t)), true
	case string:
		return parseDateString(t)
	}
	return time.Time{}, false
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToUTCString renders a parsed date as its ISO-8601 UTC representation.
// The second return is false on unparseable input.
func ToUTCString(v any) (string, bool) {
	t, ok := ParseDate(v)
	if !ok {
		return "", false
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z"), true
}

// UTCStartOfLocalDay returns an ISO-8601 UTC string for midnight of the
// source's local calendar day: year, month and day are read in local time,
// then reconstructed as a UTC instant at 00:00:00.000. This normalizes a
// user-perceived day into a stable UTC key regardless of timezone offset.
func UTCStartOfLocalDay(v any) (string, bool) {
	t, ok := ParseDate(v)
	if !ok {
		return "", false
	}
	lt := t.Local()
	day := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
	return day.Format("2006-01-02T15:04:05.000Z"), true
}

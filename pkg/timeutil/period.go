// Package timeutil resolves named relative time windows to absolute
// timestamps and provides defensive date parsing and locale-aware
// formatting.
package timeutil

import "time"

// Period is a named, calendar- or clock-relative time window.
type Period string

const (
	PeriodAllTime     Period = "all-time"
	PeriodCustom      Period = "custom"
	PeriodOne         Period = "1day"
	PeriodThree       Period = "3days"
	PeriodSeven       Period = "7days"
	PeriodThirty      Period = "30days"
	PeriodThisWeek    Period = "this-week"
	PeriodThisMonth   Period = "this-month"
	PeriodThreeMonths Period = "3months"
	PeriodToday       Period = "today"
)

// Boundaries is an absolute time window in epoch milliseconds.
type Boundaries struct {
	Start int64
	End   int64
}

const dayMillis = 24 * 60 * 60 * 1000

// lookbackDays maps the fixed-lookback periods to their day counts. The
// calendar-relative periods are handled case by case.
var lookbackDays = map[Period]int64{
	PeriodOne:         1,
	PeriodThree:       3,
	PeriodSeven:       7,
	PeriodThirty:      30,
	PeriodThreeMonths: 90,
}

// PeriodBoundaries resolves p into a window ending now. See
// PeriodBoundariesAt for the per-period rules.
func PeriodBoundaries(p Period) Boundaries {
	return PeriodBoundariesAt(p, time.Now())
}

// PeriodBoundariesAt resolves p into a window ending at now. Fixed-lookback
// periods subtract whole 24-hour days; Today, ThisWeek and ThisMonth start
// at local midnight of the day, most recent Monday, or first of the month
// respectively; Custom collapses to [now, now] for the caller to override;
// AllTime starts at the epoch. Unknown values behave like AllTime, so the
// function is total over its input.
func PeriodBoundariesAt(p Period, now time.Time) Boundaries {
	end := now.UnixMilli()

	if days, ok := lookbackDays[p]; ok {
		return Boundaries{Start: end - days*dayMillis, End: end}
	}

	switch p {
	case PeriodToday:
		return Boundaries{Start: startOfDay(now).UnixMilli(), End: end}
	case PeriodThisWeek:
		// Weekday counts Sunday as 0; the week here starts on Monday, so
		// Sunday is treated as day 7.
		wd := int(now.Weekday())
		if wd == 0 {
			wd = 7
		}
		start := startOfDay(now).AddDate(0, 0, -(wd - 1))
		return Boundaries{Start: start.UnixMilli(), End: end}
	case PeriodThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Boundaries{Start: start.UnixMilli(), End: end}
	case PeriodCustom:
		return Boundaries{Start: end, End: end}
	default:
		return Boundaries{Start: 0, End: end}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package domain

import (
	"time"

	"github.com/framelight/FLS-BookingService/pkg/types"
)

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether two instants fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPastDate reports whether date's calendar day is strictly before today's.
func IsPastDate(date, today time.Time) bool {
	return DateOnly(date).Before(DateOnly(today))
}

// MonthCursor identifies a calendar month for picker navigation.
type MonthCursor struct {
	Year  int
	Month time.Month
}

// MonthCursorFor returns the cursor for the month containing t.
func MonthCursorFor(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// Next moves one month forward, December wrapping to January of the next year.
func (c MonthCursor) Next() MonthCursor {
	if c.Month == time.December {
		return MonthCursor{Year: c.Year + 1, Month: time.January}
	}
	return MonthCursor{Year: c.Year, Month: c.Month + 1}
}

// Prev moves one month back, January wrapping to December of the previous year.
func (c MonthCursor) Prev() MonthCursor {
	if c.Month == time.January {
		return MonthCursor{Year: c.Year - 1, Month: time.December}
	}
	return MonthCursor{Year: c.Year, Month: c.Month - 1}
}

// Days returns the number of days in the cursor's month.
func (c MonthCursor) Days() int {
	// Day 0 of the following month normalizes to this month's last day.
	return time.Date(c.Year, c.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains reports whether t falls inside the cursor's month.
func (c MonthCursor) Contains(t time.Time) bool {
	return t.Year() == c.Year && t.Month() == c.Month
}

// FormatShortDate renders a date in D/M/YYYY form for display.
func FormatShortDate(t time.Time) string {
	return t.Format(ShortDateFormat)
}

// FormatDateHeader renders a date in "Weekday, D Mon" form for display.
func FormatDateHeader(t time.Time) string {
	return t.Format(DateHeaderFormat)
}

// FormatTime12h renders a slot in 12-hour "h:mm AM/PM" form for display.
// Malformed values render as-is rather than failing a display path.
func FormatTime12h(slot types.TimeString) string {
	parsed, err := time.Parse(TimeFormat, slot.String())
	if err != nil {
		return slot.String()
	}
	return parsed.Format(Time12hFormat)
}

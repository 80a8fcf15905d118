package calendar

import (
	"fmt"
	"slices"
	"time"
)

// Layout is the wire format of a Date.
const Layout = "2006-01-02"

// unixEpochDay is the day number of 1970-01-01.
const unixEpochDay = 719162

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date without a time component.
type Date int32

// New returns the Date for the given year, month and day.
// Out of range values are normalized the same way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	unix := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return Date(unix/secondsPerDay + unixEpochDay)
}

// Parse parses a "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	if s == "" {
		return 0, fmt.Errorf("empty date")
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DayNumber returns the number of days elapsed since 0001-01-01.
func (d Date) DayNumber() int {
	return int(d)
}

// IsZero reports whether d is the zero Date (0001-01-01), used as "missing".
func (d Date) IsZero() bool {
	return d == 0
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Unix((int64(d)-unixEpochDay)*secondsPerDay, 0).UTC()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return d + Date(n)
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d < o
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d > o
}

func (d Date) String() string {
	return d.Time().Format(Layout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Days returns the number of days in the inclusive range [start, end],
// or 0 when start is after end.
func Days(start, end Date) int {
	if start > end {
		return 0
	}
	return int(end-start) + 1
}

// Range returns every date of the inclusive range [start, end] in order.
func Range(start, end Date) []Date {
	n := Days(start, end)
	if n == 0 {
		return nil
	}
	dates := make([]Date, n)
	for i := range dates {
		dates[i] = start.AddDays(i)
	}
	return dates
}

// Normalize returns a sorted copy of dates with duplicates removed.
func Normalize(dates []Date) []Date {
	if len(dates) == 0 {
		return []Date{}
	}
	out := slices.Clone(dates)
	slices.Sort(out)
	return slices.Compact(out)
}

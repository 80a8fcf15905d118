// Package calendar provides a day-granularity calendar date.
//
// A Date carries no time of day and no location. It is stored as a day number
// (days elapsed since 0001-01-01 in the proleptic Gregorian calendar), which makes
// it cheap to compare, hash and step through.
//
// # Zero Value
//
// The zero Date is 0001-01-01 and is treated as "missing" by callers that need to
// distinguish an absent date from a supplied one (see IsZero).
//
// # Wire Format
//
// Dates are parsed from and formatted to "YYYY-MM-DD", both as plain strings and as
// JSON string values.
//
// # Usage
//
//	start, err := calendar.Parse("2025-09-02")
//	end := start.AddDays(3)
//	for _, d := range calendar.Range(start, end) {
//	    fmt.Println(d)
//	}
package calendar

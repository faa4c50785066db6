// Package date provides a day-granular Date type: every event in a cost
// basis computation happens on a calendar day, never at a time of day.
package date

import (
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const readDMYFormat = "2/1/2006" // Permissive day-first format used by exchange-rate schedules.

// DMYFormat is the day-first format used by the HMRC exchange-rate schedules.
const DMYFormat = "02/01/2006"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// ParseError reports a date string that matches none of the accepted layouts.
type ParseError struct {
	Value  string
	Layout string
	err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q want format %q: %v", e.Value, e.Layout, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

// Parse parses a year-first Date from a string. It is lenient: it accepts
// "2025-7-1" as well as "2025/07/01" (slashes are normalized to dashes,
// matching what broker exports actually contain).
func Parse(str string) (Date, error) {
	s := strings.ReplaceAll(strings.TrimSpace(str), "/", "-")
	on, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, &ParseError{Value: str, Layout: readDateFormat, err: err}
	}
	return New(on.Date()), nil
}

// ParseDMY parses a day-first Date such as "31/12/2024", the layout of the
// HMRC exchange-rate schedules.
func ParseDMY(str string) (Date, error) {
	on, err := time.Parse(readDMYFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, &ParseError{Value: str, Layout: readDMYFormat, err: err}
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// NeutralHour is the local hour every canonical day is pinned to, so that
// conversions to time.Time never cross a day boundary on DST or offset shifts
const NeutralHour = 12

// DayKeyLayout is the time layout of a day key
const DayKeyLayout = "2006-01-02"

// CanonicalDate is a calendar day without time-of-day semantics
type CanonicalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCanonicalDate builds a canonical day. Out-of-range month/day values are
// normalized the same way time.Date does (e.g. 32 January is 1 February).
func NewCanonicalDate(year int, month time.Month, day int) CanonicalDate {
	t := time.Date(year, month, day, NeutralHour, 0, 0, 0, time.UTC)
	return CanonicalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// CanonicalDateOf takes the calendar day of t as seen in t's own location
func CanonicalDateOf(t time.Time) CanonicalDate {
	return CanonicalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDayKey parses a YYYY-MM-DD day key
func ParseDayKey(key string) (CanonicalDate, error) {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return CanonicalDate{}, goerr.Wrap(ErrInvalidDayKey, "day key must be YYYY-MM-DD",
			goerr.V("key", key),
			goerr.V("cause", err.Error()))
	}
	return CanonicalDateOf(t), nil
}

// Key returns the YYYY-MM-DD day key
func (d CanonicalDate) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// String returns the day key
func (d CanonicalDate) String() string {
	return d.Key()
}

// Time returns the day at NeutralHour in loc
func (d CanonicalDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, NeutralHour, 0, 0, 0, loc)
}

// Before reports whether d is an earlier day than o
func (d CanonicalDate) Before(o CanonicalDate) bool {
	return d.Key() < o.Key()
}

// MarshalText encodes the date as its day key
func (d CanonicalDate) MarshalText() ([]byte, error) {
	return []byte(d.Key()), nil
}

// DateStatus tells why a DateResult does or does not hold a date
type DateStatus int

const (
	// DateParsed means a canonical day was derived
	DateParsed DateStatus = iota
	// DateUnknown means the raw value was empty or the "Unknown" sentinel
	DateUnknown
	// DateUnparseable means the raw value was present but not a date
	DateUnparseable
)

// String returns the status name
func (s DateStatus) String() string {
	switch s {
	case DateParsed:
		return "parsed"
	case DateUnknown:
		return "unknown"
	case DateUnparseable:
		return "unparseable"
	default:
		return "invalid"
	}
}

// DateResult is the outcome of normalizing a raw date value
type DateResult struct {
	Date   CanonicalDate
	Status DateStatus
}

// Ok reports whether a canonical day is available
func (r DateResult) Ok() bool {
	return r.Status == DateParsed
}

// Key returns the day key and whether one is available
func (r DateResult) Key() (string, bool) {
	if !r.Ok() {
		return "", false
	}
	return r.Date.Key(), true
}

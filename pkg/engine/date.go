package engine

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
)

// serialEpoch is day zero of the common spreadsheet date system. Serial
// 25569 is 1970-01-01.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerialDays keeps serial arithmetic far from overflow; the year range
// check in parsed is the tighter bound
const maxSerialDays = 3_000_000

// Day keys only sort in date order while the year has four digits
const (
	minYear = 1
	maxYear = 9999
)

// standardDateLayouts are tried before the positional day-first fallback.
// Only unambiguous year-first or month-name layouts belong here: "05-03-2024"
// must reach the fallback and be read as 5 March.
var standardDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-1-2T15:04:05",
	"2006-1-2T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2",
	"2006.1.2",
	time.RFC1123Z,
	time.RFC1123,
	"Mon Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-Jan-06",
}

var dateSeparators = regexp.MustCompile(`[/.\-]`)

var serialPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// NormalizeDate converts a raw date value into a canonical day. Numbers (and
// purely numeric strings) are spreadsheet serials; text is tried against
// standard layouts and then read positionally as day, month, year.
func NormalizeDate(raw any) model.DateResult {
	switch v := raw.(type) {
	case nil:
		return model.DateResult{Status: model.DateUnknown}
	case string:
		return normalizeDateString(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return model.DateResult{Status: model.DateUnparseable}
		}
		return fromSerial(f)
	case float64:
		return fromSerial(v)
	case float32:
		return fromSerial(float64(v))
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	default:
		return model.DateResult{Status: model.DateUnparseable}
	}
}

// NormalizeDateValue normalizes a resolved field; unresolved fields are unknown
func NormalizeDateValue(v model.FieldValue) model.DateResult {
	if !v.Found() {
		return model.DateResult{Status: model.DateUnknown}
	}
	return NormalizeDate(v.Raw())
}

// DayKey returns the YYYY-MM-DD key of a raw date value, if it has one
func DayKey(raw any) (string, bool) {
	return NormalizeDate(raw).Key()
}

func normalizeDateString(s string) model.DateResult {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, model.UnknownValue) {
		return model.DateResult{Status: model.DateUnknown}
	}

	if serialPattern.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.DateResult{Status: model.DateUnparseable}
		}
		return fromSerial(f)
	}

	for _, layout := range standardDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return parsed(model.CanonicalDateOf(t))
		}
	}

	parts := dateSeparators.Split(s, -1)
	if len(parts) < 3 {
		return model.DateResult{Status: model.DateUnparseable}
	}
	day, ok1 := leadingInt(parts[0])
	month, ok2 := leadingInt(parts[1])
	year, ok3 := leadingInt(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return model.DateResult{Status: model.DateUnparseable}
	}
	if year < 100 {
		year += 2000
	}
	return parsed(model.NewCanonicalDate(year, time.Month(month), day))
}

func fromSerial(f float64) model.DateResult {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return model.DateResult{Status: model.DateUnparseable}
	}
	days := math.Floor(f)
	if math.Abs(days) > maxSerialDays {
		return model.DateResult{Status: model.DateUnparseable}
	}
	return parsed(model.CanonicalDateOf(serialEpoch.AddDate(0, 0, int(days))))
}

func parsed(d model.CanonicalDate) model.DateResult {
	if d.Year < minYear || d.Year > maxYear {
		return model.DateResult{Status: model.DateUnparseable}
	}
	return model.DateResult{Date: d, Status: model.DateParsed}
}

// leadingInt parses the leading decimal digits of s, ignoring surrounding
// whitespace and any trailing text ("2026 10:30" -> 2026)
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && end < 9 && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

package engine_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/engine"
	"github.com/m-mizutani/gt"
)

func TestNormalizeDateSameDay(t *testing.T) {
	// 2024-03-05 in every supported representation
	inputs := []any{
		float64(45356),
		45356.75,
		json.Number("45356"),
		45356,
		"45356",
		"2024-03-05",
		"2024-3-5",
		"2024/03/05",
		"2024-03-05T23:30:00Z",
		"2024-03-05T00:30:00+09:00",
		"05-03-2024",
		"5.3.2024",
		"05/03/2024",
		"5-3-24",
		" 05-03-2024 ",
		"Mar 5, 2024",
		"5 March 2024",
		"05-Mar-2024",
	}

	for _, in := range inputs {
		key, ok := engine.DayKey(in)
		gt.True(t, ok)
		gt.Equal(t, key, "2024-03-05")
	}
}

func TestNormalizeDateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		raw      any
		expected model.DateStatus
	}{
		{"nil", nil, model.DateUnknown},
		{"empty", "", model.DateUnknown},
		{"blank", "   ", model.DateUnknown},
		{"unknown sentinel", "Unknown", model.DateUnknown},
		{"garbage", "not a date", model.DateUnparseable},
		{"two parts", "05-03", model.DateUnparseable},
		{"non numeric parts", "aa-bb-cc", model.DateUnparseable},
		{"bool", true, model.DateUnparseable},
		{"NaN", math.NaN(), model.DateUnparseable},
		{"infinity", math.Inf(1), model.DateUnparseable},
		{"huge serial", 1e12, model.DateUnparseable},
		{"serial past year 9999", float64(2_958_466), model.DateUnparseable},
		{"serial before year 1", float64(-693_960), model.DateUnparseable},
		{"five digit year", "01-01-10000", model.DateUnparseable},
		{"valid", "20-01-2026", model.DateParsed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, engine.NormalizeDate(tc.raw).Status, tc.expected)
		})
	}
}

func TestNormalizeDateValues(t *testing.T) {
	testCases := []struct {
		raw      any
		expected string
	}{
		{float64(25569), "1970-01-01"},
		{float64(1), "1899-12-31"},
		{float64(2_958_465), "9999-12-31"},
		{"46044", "2026-01-22"},
		{"20-01-2026 ", "2026-01-20"},
		{"31/12/99", "2099-12-31"},
		{"1.2.2024 10:30", "2024-02-01"},
		{"32-01-2024", "2024-02-01"},
		{"29-02-2023", "2023-03-01"},
		{"2026-01-20T10:00:00", "2026-01-20"},
	}

	for _, tc := range testCases {
		key, ok := engine.DayKey(tc.raw)
		gt.True(t, ok)
		gt.Equal(t, key, tc.expected)
	}
}

func TestNormalizeDateValue(t *testing.T) {
	gt.Equal(t, engine.NormalizeDateValue(model.Unknown()).Status, model.DateUnknown)

	r := engine.NormalizeDateValue(model.Resolved("01-02-2024"))
	gt.True(t, r.Ok())
	gt.Equal(t, r.Date.Key(), "2024-02-01")
	gt.Equal(t, r.Date.Time(nil).Hour(), model.NeutralHour)
}

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"booking-api/core/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"Valid", "2025-09-02", "2025-09-02", false},
		{"LeapDay", "2024-02-29", "2024-02-29", false},
		{"InvalidMonth", "2025-13-01", "", true},
		{"NotALeapYear", "2025-02-29", "", true},
		{"Empty", "", "", true},
		{"WrongLayout", "02/09/2025", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := calendar.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDayNumber(t *testing.T) {
	assert.Equal(t, 0, calendar.New(1, time.January, 1).DayNumber())
	assert.True(t, calendar.New(1, time.January, 1).IsZero())
	assert.Equal(t, 719162, calendar.New(1970, time.January, 1).DayNumber())

	d := calendar.MustParse("2025-09-01")
	assert.Equal(t, "2025-09-30", d.AddDays(29).String())
	assert.Equal(t, "2025-08-31", d.AddDays(-1).String())
	assert.False(t, d.IsZero())
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2025, time.September, 2, 23, 30, 0, 0, loc)

	assert.Equal(t, "2025-09-02", calendar.FromTime(ts).String())
	assert.Equal(t, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC), calendar.FromTime(ts).Time())
}

func TestRange(t *testing.T) {
	start := calendar.MustParse("2025-09-02")
	end := calendar.MustParse("2025-09-05")

	got := calendar.Range(start, end)
	require.Len(t, got, 4)
	assert.Equal(t, start, got[0])
	assert.Equal(t, end, got[3])
	assert.Equal(t, 4, calendar.Days(start, end))

	assert.Equal(t, []calendar.Date{start}, calendar.Range(start, start))
	assert.Empty(t, calendar.Range(end, start))
	assert.Equal(t, 0, calendar.Days(end, start))
}

func TestRange_AcrossMonthAndYear(t *testing.T) {
	got := calendar.Range(calendar.MustParse("2024-12-30"), calendar.MustParse("2025-01-02"))

	var names []string
	for _, d := range got {
		names = append(names, d.String())
	}
	assert.Equal(t, []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}, names)
}

func TestNormalize(t *testing.T) {
	a := calendar.MustParse("2025-09-03")
	b := calendar.MustParse("2025-09-01")
	input := []calendar.Date{a, b, a, b, a}

	got := calendar.Normalize(input)
	assert.Equal(t, []calendar.Date{b, a}, got)
	// input untouched
	assert.Equal(t, a, input[0])

	assert.NotNil(t, calendar.Normalize(nil))
	assert.Empty(t, calendar.Normalize(nil))
}

func TestJSON(t *testing.T) {
	type payload struct {
		Dates []calendar.Date `json:"dates"`
	}

	var p payload
	err := json.Unmarshal([]byte(`{"dates":["2025-09-02","2025-09-03"]}`), &p)
	require.NoError(t, err)
	require.Len(t, p.Dates, 2)
	assert.Equal(t, "2025-09-03", p.Dates[1].String())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dates":["2025-09-02","2025-09-03"]}`, string(out))

	err = json.Unmarshal([]byte(`{"dates":["2025-13-01"]}`), &p)
	assert.Error(t, err)
}

package dateutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastelo/palco/internal/dateutil"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{name: "LeapDay", date: "2024-02-28", n: 1, want: "2024-02-29"},
		{name: "NonLeapYear", date: "2023-02-28", n: 1, want: "2023-03-01"},
		{name: "MonthRollover", date: "2024-01-31", n: 1, want: "2024-02-01"},
		{name: "YearRollover", date: "2023-12-31", n: 1, want: "2024-01-01"},
		{name: "PaymentWindow", date: "2024-02-21", n: 30, want: "2024-03-22"},
		{name: "TestFeeWindow", date: "2024-03-02", n: 15, want: "2024-03-17"},
		{name: "Zero", date: "2024-06-15", n: 0, want: "2024-06-15"},
		{name: "Negative", date: "2024-03-01", n: -1, want: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateutil.AddDays(tt.date, tt.n))
		})
	}
}

func TestParse(t *testing.T) {
	y, m, d, err := dateutil.Parse("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 2, m)
	assert.Equal(t, 15, d)

	_, _, _, err = dateutil.Parse("15/03/2024")
	assert.Error(t, err)
}

func TestMonthIndexAndYear(t *testing.T) {
	assert.Equal(t, 0, dateutil.MonthIndex("2024-01-31"))
	assert.Equal(t, 11, dateutil.MonthIndex("2023-12-01"))
	assert.Equal(t, 2023, dateutil.Year("2023-12-01"))
}

func TestPeriodContains(t *testing.T) {
	tests := []struct {
		period dateutil.Period
		month  int
		want   bool
	}{
		{dateutil.PeriodYear, 0, true},
		{dateutil.PeriodYear, 11, true},
		{dateutil.PeriodSemester1, 5, true},
		{dateutil.PeriodSemester1, 6, false},
		{dateutil.PeriodSemester2, 6, true},
		{dateutil.PeriodSemester2, 5, false},
		{dateutil.PeriodQuarter1, 2, true},
		{dateutil.PeriodQuarter1, 3, false},
		{dateutil.PeriodQuarter2, 3, true},
		{dateutil.PeriodQuarter3, 8, true},
		{dateutil.PeriodQuarter3, 9, false},
		{dateutil.PeriodQuarter4, 9, true},
		{dateutil.PeriodQuarter4, 11, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.period.Contains(tt.month),
			"period %s month %d", tt.period, tt.month)
	}
}

func TestPeriodMonthRangeUnknownDefaultsToYear(t *testing.T) {
	start, end := dateutil.Period("whatever").MonthRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 11, end)
}

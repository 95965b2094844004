package timeentry

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestHoursBetween(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		start string
		end   string
		want  string
	}{
		{"08:00", "16:30", "8.5"},
		{"08:00", "16:00", "8"},
		{"09:15", "09:30", "0.25"},
		{"07:00", "19:10", "12.17"},
	}
	for _, c := range cases {
		start, _ := time.Parse("15:04", c.start)
		end, _ := time.Parse("15:04", c.end)
		startAt := day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
		endAt := day.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute)

		got := HoursBetween(startAt, endAt)
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("HoursBetween(%s, %s) = %s, want %s", c.start, c.end, got, c.want)
		}
	}
}

func TestComputeTotalCost(t *testing.T) {
	hours := decimal.RequireFromString("8.5")

	if got := ComputeTotalCost(hours, nil); got != nil {
		t.Errorf("ComputeTotalCost without rate = %v, want nil", got)
	}

	rate := decimal.RequireFromString("25.50")
	got := ComputeTotalCost(hours, &rate)
	if got == nil {
		t.Fatal("ComputeTotalCost with rate returned nil")
	}
	if want := decimal.RequireFromString("216.75"); !got.Equal(want) {
		t.Errorf("ComputeTotalCost = %s, want %s", got, want)
	}
}

func TestHoursInRange(t *testing.T) {
	cases := []struct {
		hours string
		want  bool
	}{
		{"0", false},
		{"-1", false},
		{"0.01", true},
		{"8", true},
		{"24", true},
		{"24.01", false},
	}
	for _, c := range cases {
		got := HoursInRange(decimal.RequireFromString(c.hours))
		if got != c.want {
			t.Errorf("HoursInRange(%s) = %v, want %v", c.hours, got, c.want)
		}
	}
}

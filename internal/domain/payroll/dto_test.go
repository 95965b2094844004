package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitDaily(t *testing.T) {
	cases := []struct {
		hours    string
		regular  string
		overtime string
	}{
		{"0", "0", "0"},
		{"4", "4", "0"},
		{"8", "8", "0"},
		{"10", "8", "2"},
		{"8.5", "8", "0.5"},
		{"24", "8", "16"},
	}
	for _, c := range cases {
		hours := decimal.RequireFromString(c.hours)
		regular, overtime := SplitDaily(hours)
		if !regular.Equal(decimal.RequireFromString(c.regular)) {
			t.Errorf("SplitDaily(%s) regular = %s, want %s", c.hours, regular, c.regular)
		}
		if !overtime.Equal(decimal.RequireFromString(c.overtime)) {
			t.Errorf("SplitDaily(%s) overtime = %s, want %s", c.hours, overtime, c.overtime)
		}
	}
}

func TestSplitWeekly(t *testing.T) {
	cases := []struct {
		hours    string
		regular  string
		overtime string
	}{
		{"0", "0", "0"},
		{"38", "38", "0"},
		{"40", "40", "0"},
		{"45", "40", "5"},
		{"40.25", "40", "0.25"},
	}
	for _, c := range cases {
		hours := decimal.RequireFromString(c.hours)
		regular, overtime := SplitWeekly(hours)
		if !regular.Equal(decimal.RequireFromString(c.regular)) {
			t.Errorf("SplitWeekly(%s) regular = %s, want %s", c.hours, regular, c.regular)
		}
		if !overtime.Equal(decimal.RequireFromString(c.overtime)) {
			t.Errorf("SplitWeekly(%s) overtime = %s, want %s", c.hours, overtime, c.overtime)
		}
	}
}

func TestEntryRowEffectiveRate(t *testing.T) {
	entryRate := decimal.NewFromInt(30)
	employeeRate := decimal.NewFromInt(25)

	row := EntryRow{Rate: &entryRate, EmployeeRate: &employeeRate}
	if got := row.EffectiveRate(); got == nil || !got.Equal(entryRate) {
		t.Errorf("EffectiveRate with override = %v, want %s", got, entryRate)
	}

	row = EntryRow{EmployeeRate: &employeeRate}
	if got := row.EffectiveRate(); got == nil || !got.Equal(employeeRate) {
		t.Errorf("EffectiveRate with default = %v, want %s", got, employeeRate)
	}

	row = EntryRow{}
	if got := row.EffectiveRate(); got != nil {
		t.Errorf("EffectiveRate with no rates = %v, want nil", got)
	}
}

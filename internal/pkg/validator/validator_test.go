package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	if !IsValidUUID("0195e7c2-0b6e-7c1e-9f5a-3b2a1c4d5e6f") {
		t.Error("expected valid UUID to pass")
	}
	if !IsValidUUID("0195E7C2-0B6E-7C1E-9F5A-3B2A1C4D5E6F") {
		t.Error("expected uppercase UUID to pass")
	}
	for _, bad := range []string{"", "not-a-uuid", "0195e7c2-0b6e-7c1e-9f5a"} {
		if IsValidUUID(bad) {
			t.Errorf("IsValidUUID(%q) = true, want false", bad)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-11")
	if !ok {
		t.Fatal("expected 2024-03-11 to parse")
	}
	if date.Year() != 2024 || date.Month() != 3 || date.Day() != 11 {
		t.Errorf("parsed wrong date: %v", date)
	}

	for _, bad := range []string{"", "11-03-2024", "2024/03/11", "2024-13-01"} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	for _, good := range []string{"08:00", "23:59", "07:30:15"} {
		if _, ok := IsValidTimeOfDay(good); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", good)
		}
	}
	for _, bad := range []string{"", "25:00", "8am", "08:60"} {
		if _, ok := IsValidTimeOfDay(bad); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", bad)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "password is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap returned %d entries, want 2", len(m))
	}
	if m["email"] != "a valid email is required" {
		t.Errorf("unexpected email message: %q", m["email"])
	}

	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

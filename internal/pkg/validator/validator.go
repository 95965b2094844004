package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// UUID validation (any version, case-insensitive)
func IsValidUUID(id string) bool {
	return uuidRegex.MatchString(strings.ToLower(id))
}

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsValidDate parses a calendar date in "YYYY-MM-DD" format.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidTimeOfDay parses a wall-clock time in "HH:MM" or "HH:MM:SS" format.
func IsValidTimeOfDay(timeStr string) (time.Time, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, timeStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00".
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Employee numbers look like "EMP-0042": a short alpha prefix, a dash,
// then digits.
var employeeNumberRegex = regexp.MustCompile(`^[A-Z]{2,5}-\d{1,6}$`)

func IsValidEmployeeNumber(number string) bool {
	return employeeNumberRegex.MatchString(number)
}

// Project numbers look like "P-2024-013".
var projectNumberRegex = regexp.MustCompile(`^P-\d{4}-\d{1,5}$`)

func IsValidProjectNumber(number string) bool {
	return projectNumberRegex.MatchString(number)
}

// Quote numbers look like "Q20240005": Q, four-digit year, sequence.
var quoteNumberRegex = regexp.MustCompile(`^Q\d{4}\d{1,6}$`)

func IsValidQuoteNumber(number string) bool {
	return quoteNumberRegex.MatchString(number)
}

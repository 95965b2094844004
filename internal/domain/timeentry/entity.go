package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// TimeEntry records hours an employee worked on a project on a date.
// Hours must satisfy 0 < hours <= 24. TotalCost is hours * rate and is
// recomputed whenever either side changes.
type TimeEntry struct {
	ID              string
	EmployeeID      string
	ProjectID       string
	TimesheetID     *string
	SignInID        *string // set when derived from an attendance pair
	Date            time.Time
	Hours           decimal.Decimal
	WorkType        string
	Description     *string
	Rate            *decimal.Decimal
	TotalCost       *decimal.Decimal
	StartTime       *time.Time
	EndTime         *time.Time
	Status          Status
	RejectionReason *string
	CreatedBy       *string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
	ProjectName    *string
	ProjectNumber  *string
}

// ComputeTotalCost returns hours * rate, or nil when no rate is known.
func ComputeTotalCost(hours decimal.Decimal, rate *decimal.Decimal) *decimal.Decimal {
	if rate == nil {
		return nil
	}
	total := hours.Mul(*rate).Round(2)
	return &total
}

// HoursBetween computes the span between two timestamps in hours, rounded
// to 2 decimals. Used when deriving entries from sign-in/sign-out pairs.
func HoursBetween(start, end time.Time) decimal.Decimal {
	minutes := end.Sub(start).Minutes()
	return decimal.NewFromFloat(minutes / 60).Round(2)
}

package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	EmploymentFullTime   EmploymentStatus = "FULL_TIME"
	EmploymentPartTime   EmploymentStatus = "PART_TIME"
	EmploymentContract   EmploymentStatus = "CONTRACT"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
)

var ValidEmploymentStatuses = []EmploymentStatus{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentContract,
	EmploymentTerminated,
}

type Employee struct {
	ID                string
	EmployeeNumber    string
	FirstName         string
	LastName          string
	JobClassification string
	UserID            *string // linked login account, at most one employee per user
	HourlyRate        *decimal.Decimal
	EmploymentStatus  EmploymentStatus
	IsActive          bool
	CreatedBy         *string
	UpdatedBy         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time

	// Joined fields
	UserEmail *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

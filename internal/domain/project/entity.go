package project

import "time"

type Status string

const (
	StatusPlanning  Status = "PLANNING"
	StatusActive    Status = "ACTIVE"
	StatusOnHold    Status = "ON_HOLD"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

var ValidStatuses = []Status{
	StatusPlanning,
	StatusActive,
	StatusOnHold,
	StatusCompleted,
	StatusCancelled,
}

func IsValidStatus(s Status) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

type Project struct {
	ID            string
	ProjectNumber string
	Name          string
	ClientID      *string
	Status        Status
	Address       *string
	Description   *string
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedBy     *string
	UpdatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Joined fields
	ClientName *string
}

// Member assigns an employee to a project with a site role.
type Member struct {
	ID         string
	ProjectID  string
	EmployeeID string
	SiteRole   *string
	AssignedAt time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
}

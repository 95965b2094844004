package timesheet

import "time"

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
)

// Timesheet groups time entries under one submit/approve workflow.
// DRAFT -> SUBMITTED -> APPROVED; APPROVED is terminal and locks the
// timesheet and all owned entries.
type Timesheet struct {
	ID          string
	Date        time.Time
	Title       *string
	Notes       *string
	Status      Status
	CreatedBy   *string
	SubmittedBy *string
	SubmittedAt *time.Time
	ApprovedBy  *string
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EntryCount int64
}

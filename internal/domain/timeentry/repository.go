package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access for time entries. Entries
// hard-delete; there is no deleted_at column.
type TimeEntryRepository interface {
	Create(ctx context.Context, e TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	List(ctx context.Context, filter ListTimeEntriesFilter) ([]TimeEntry, int64, error)
	Update(ctx context.Context, e TimeEntry) error
	Delete(ctx context.Context, id string) error

	// ListByTimesheet returns all entries owned by a timesheet.
	ListByTimesheet(ctx context.Context, timesheetID string) ([]TimeEntry, error)

	// DeleteByTimesheet removes all entries owned by a timesheet. Runs
	// inside the timesheet replace/delete transaction.
	DeleteByTimesheet(ctx context.Context, timesheetID string) error

	// ApproveByTimesheet cascades APPROVED to every owned entry. Runs
	// inside the timesheet approval transaction.
	ApproveByTimesheet(ctx context.Context, timesheetID string, approvedBy string, approvedAt time.Time) error
}

// TimeEntryService defines time entry ledger operations.
type TimeEntryService interface {
	Create(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateRequest) ([]TimeEntryResponse, error)
	Update(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	Approve(ctx context.Context, id string) (TimeEntryResponse, error)
	Reject(ctx context.Context, req RejectRequest) (TimeEntryResponse, error)
	Delete(ctx context.Context, id string) error

	// CreateFromSignIn derives an entry from a completed sign-in/out
	// pair: hours = span rounded to 2 decimals, rate = the employee's
	// stored default when present.
	CreateFromSignIn(ctx context.Context, req FromSignInRequest) (TimeEntryResponse, error)

	List(ctx context.Context, filter ListTimeEntriesFilter) ([]TimeEntryResponse, int64, error)
	Get(ctx context.Context, id string) (TimeEntryResponse, error)
}

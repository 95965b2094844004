package timesheet

import "context"

type TimesheetRepository interface {
	Create(ctx context.Context, t Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string) (Timesheet, error)
	List(ctx context.Context, filter ListTimesheetsFilter) ([]Timesheet, int64, error)
	Update(ctx context.Context, t Timesheet) error
	Delete(ctx context.Context, id string) error
}

// TimesheetService defines the timesheet workflow. Create, Update (with
// entry replacement), Approve, and Delete are transactional with their
// entry writes.
type TimesheetService interface {
	Create(ctx context.Context, req CreateTimesheetRequest) (TimesheetResponse, error)
	Update(ctx context.Context, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Submit(ctx context.Context, id string) (TimesheetResponse, error)
	Approve(ctx context.Context, id string) (TimesheetResponse, error)
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter ListTimesheetsFilter) ([]TimesheetResponse, int64, error)
	Get(ctx context.Context, id string) (TimesheetResponse, error)

	// Export renders the timesheet and its entries as an XLSX workbook.
	Export(ctx context.Context, id string) (filename string, content []byte, err error)
}

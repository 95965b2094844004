package payroll

import (
	"context"
	"time"
)

// PayrollRepository reads flattened time entry rows for aggregation. The
// aggregation itself happens in the service so the rules stay testable.
type PayrollRepository interface {
	EntriesForRange(ctx context.Context, start, end time.Time) ([]EntryRow, error)
	EntriesForProject(ctx context.Context, projectID string, start, end time.Time) ([]EntryRow, error)
	SignInsForDate(ctx context.Context, date time.Time) ([]AttendanceRow, error)
}

// PayrollService computes payroll reports over the time entry ledger.
type PayrollService interface {
	DailyReport(ctx context.Context, date time.Time) (DailyReport, error)
	WeeklyReport(ctx context.Context, start, end time.Time) (WeeklyReport, error)
	ProjectCostReport(ctx context.Context, projectID string, start, end time.Time) (ProjectCostReport, error)
	Summary(ctx context.Context, start, end time.Time) (Summary, error)

	ExportDailyCSV(ctx context.Context, date time.Time) ([]byte, error)
	ExportWeeklyCSV(ctx context.Context, start, end time.Time) ([]byte, error)
}

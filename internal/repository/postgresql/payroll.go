package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/domain/payroll"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const entryRowColumns = `
	t.id, t.employee_id, e.first_name || ' ' || e.last_name, e.employee_number,
	t.project_id, p.name, t.date, t.hours, t.rate, e.hourly_rate, t.total_cost
`

func (r *payrollRepository) queryEntryRows(ctx context.Context, query string, args ...interface{}) ([]payroll.EntryRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll entries: %w", err)
	}
	defer rows.Close()

	var out []payroll.EntryRow
	for rows.Next() {
		var er payroll.EntryRow
		if err := rows.Scan(
			&er.EntryID, &er.EmployeeID, &er.EmployeeName, &er.EmployeeNumber,
			&er.ProjectID, &er.ProjectName, &er.Date, &er.Hours, &er.Rate, &er.EmployeeRate, &er.TotalCost,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		out = append(out, er)
	}

	return out, rows.Err()
}

func (r *payrollRepository) EntriesForRange(ctx context.Context, start, end time.Time) ([]payroll.EntryRow, error) {
	return r.queryEntryRows(ctx, `
		SELECT `+entryRowColumns+`
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		JOIN projects p ON p.id = t.project_id
		WHERE t.date BETWEEN $1 AND $2
		ORDER BY e.employee_number ASC, t.date ASC
	`, start, end)
}

func (r *payrollRepository) EntriesForProject(ctx context.Context, projectID string, start, end time.Time) ([]payroll.EntryRow, error) {
	return r.queryEntryRows(ctx, `
		SELECT `+entryRowColumns+`
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		JOIN projects p ON p.id = t.project_id
		WHERE t.project_id = $1 AND t.date BETWEEN $2 AND $3
		ORDER BY e.employee_number ASC, t.date ASC
	`, projectID, start, end)
}

func (r *payrollRepository) SignInsForDate(ctx context.Context, date time.Time) ([]payroll.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id, sign_in_time, sign_out_time
		FROM sign_ins
		WHERE date = $1
		ORDER BY sign_in_time ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query sign-ins for date: %w", err)
	}
	defer rows.Close()

	var out []payroll.AttendanceRow
	for rows.Next() {
		var ar payroll.AttendanceRow
		if err := rows.Scan(&ar.EmployeeID, &ar.SignInTime, &ar.SignOutTime); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		out = append(out, ar)
	}

	return out, rows.Err()
}

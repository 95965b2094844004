package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	t.id, t.employee_id, t.project_id, t.timesheet_id, t.sign_in_id,
	t.date, t.hours, t.work_type, t.description, t.rate, t.total_cost,
	t.start_time, t.end_time, t.status, t.rejection_reason,
	t.created_by, t.approved_by, t.approved_at, t.created_at, t.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_number,
	p.name AS project_name, p.project_number
`

const timeEntryJoins = `
	JOIN employees e ON e.id = t.employee_id
	JOIN projects p ON p.id = t.project_id
`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var t timeentry.TimeEntry
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.ProjectID, &t.TimesheetID, &t.SignInID,
		&t.Date, &t.Hours, &t.WorkType, &t.Description, &t.Rate, &t.TotalCost,
		&t.StartTime, &t.EndTime, &t.Status, &t.RejectionReason,
		&t.CreatedBy, &t.ApprovedBy, &t.ApprovedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName, &t.EmployeeNumber, &t.ProjectName, &t.ProjectNumber,
	)
	return t, err
}

func (r *timeEntryRepository) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			employee_id, project_id, timesheet_id, sign_in_id, date, hours,
			work_type, description, rate, total_cost, start_time, end_time,
			status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.EmployeeID, e.ProjectID, e.TimesheetID, e.SignInID, e.Date, e.Hours,
		e.WorkType, e.Description, e.Rate, e.TotalCost, e.StartTime, e.EndTime,
		e.Status, e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "employee") {
				return timeentry.TimeEntry{}, timeentry.ErrEmployeeNotFound
			}
			return timeentry.TimeEntry{}, timeentry.ErrProjectNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return e, nil
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		` + timeEntryJoins + `
		WHERE t.id = $1
	`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return e, nil
}

func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.ListTimeEntriesFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("t.date = $%d", argPos))
		args = append(args, *filter.Date)
		argPos++
	}

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("t.project_id = $%d", argPos))
		args = append(args, *filter.ProjectID)
		argPos++
	}

	if filter.TimesheetID != nil {
		conditions = append(conditions, fmt.Sprintf("t.timesheet_id = $%d", argPos))
		args = append(args, *filter.TimesheetID)
		argPos++
	}

	if filter.UnapprovedOnly {
		conditions = append(conditions, fmt.Sprintf("t.status <> $%d", argPos))
		args = append(args, timeentry.StatusApproved)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM time_entries t WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		` + timeEntryJoins + `
		WHERE ` + where + `
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, total, rows.Err()
}

func (r *timeEntryRepository) Update(ctx context.Context, e timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET employee_id = $2, project_id = $3, timesheet_id = $4, date = $5,
			hours = $6, work_type = $7, description = $8, rate = $9, total_cost = $10,
			start_time = $11, end_time = $12, status = $13, rejection_reason = $14,
			approved_by = $15, approved_at = $16, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		e.ID, e.EmployeeID, e.ProjectID, e.TimesheetID, e.Date,
		e.Hours, e.WorkType, e.Description, e.Rate, e.TotalCost,
		e.StartTime, e.EndTime, e.Status, e.RejectionReason,
		e.ApprovedBy, e.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}

	return nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}

	return nil
}

func (r *timeEntryRepository) ListByTimesheet(ctx context.Context, timesheetID string) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		` + timeEntryJoins + `
		WHERE t.timesheet_id = $1
		ORDER BY t.date ASC, t.created_at ASC
	`

	rows, err := q.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *timeEntryRepository) DeleteByTimesheet(ctx context.Context, timesheetID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM time_entries WHERE timesheet_id = $1`, timesheetID); err != nil {
		return fmt.Errorf("failed to delete timesheet entries: %w", err)
	}

	return nil
}

func (r *timeEntryRepository) ApproveByTimesheet(ctx context.Context, timesheetID string, approvedBy string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE time_entries
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = NULL, updated_at = NOW()
		WHERE timesheet_id = $1
	`, timesheetID, timeentry.StatusApproved, approvedBy, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to approve timesheet entries: %w", err)
	}

	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timesheet"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

const timesheetColumns = `
	t.id, t.date, t.title, t.notes, t.status,
	t.created_by, t.submitted_by, t.submitted_at, t.approved_by, t.approved_at,
	t.created_at, t.updated_at,
	(SELECT COUNT(*) FROM time_entries te WHERE te.timesheet_id = t.id) AS entry_count
`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(
		&t.ID, &t.Date, &t.Title, &t.Notes, &t.Status,
		&t.CreatedBy, &t.SubmittedBy, &t.SubmittedAt, &t.ApprovedBy, &t.ApprovedAt,
		&t.CreatedAt, &t.UpdatedAt,
		&t.EntryCount,
	)
	return t, err
}

func (r *timesheetRepository) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (date, title, notes, status, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Date, t.Title, t.Notes, t.Status, t.CreatedBy).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return t, nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		WHERE t.id = $1
	`

	t, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	return t, nil
}

func (r *timesheetRepository) List(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.Timesheet, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM timesheets t WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count timesheets: %w", err)
	}

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		WHERE ` + where + `
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, t)
	}

	return timesheets, total, rows.Err()
}

func (r *timesheetRepository) Update(ctx context.Context, t timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET date = $2, title = $3, notes = $4, status = $5,
			submitted_by = $6, submitted_at = $7, approved_by = $8, approved_at = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		t.ID, t.Date, t.Title, t.Notes, t.Status,
		t.SubmittedBy, t.SubmittedAt, t.ApprovedBy, t.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

func (r *timesheetRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/attendance"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type signInRepository struct {
	db *database.DB
}

func NewSignInRepository(db *database.DB) attendance.SignInRepository {
	return &signInRepository{db: db}
}

const signInColumns = `
	s.id, s.employee_id, s.date, s.sign_in_time, s.sign_out_time,
	s.project_id, s.location, s.notes, s.signed_in_by, s.signed_out_by,
	s.created_at, s.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_number,
	p.name AS project_name
`

const signInJoins = `
	JOIN employees e ON e.id = s.employee_id
	LEFT JOIN projects p ON p.id = s.project_id
`

func scanSignIn(row pgx.Row) (attendance.SignIn, error) {
	var s attendance.SignIn
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.SignInTime, &s.SignOutTime,
		&s.ProjectID, &s.Location, &s.Notes, &s.SignedInBy, &s.SignedOutBy,
		&s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName, &s.EmployeeNumber, &s.ProjectName,
	)
	return s, err
}

func (r *signInRepository) Create(ctx context.Context, s attendance.SignIn) (attendance.SignIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sign_ins (employee_id, date, sign_in_time, project_id, location, notes, signed_in_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.Date, s.SignInTime, s.ProjectID, s.Location, s.Notes, s.SignedInBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return attendance.SignIn{}, fmt.Errorf("failed to create sign-in: %w", err)
	}

	return s, nil
}

func (r *signInRepository) GetByID(ctx context.Context, id string) (attendance.SignIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + signInColumns + `
		FROM sign_ins s
		` + signInJoins + `
		WHERE s.id = $1
	`

	s, err := scanSignIn(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.SignIn{}, attendance.ErrSignInNotFound
		}
		return attendance.SignIn{}, fmt.Errorf("failed to get sign-in: %w", err)
	}

	return s, nil
}

func (r *signInRepository) GetOpen(ctx context.Context, employeeID string, date time.Time) (*attendance.SignIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + signInColumns + `
		FROM sign_ins s
		` + signInJoins + `
		WHERE s.employee_id = $1 AND s.date = $2 AND s.sign_out_time IS NULL
	`

	s, err := scanSignIn(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open sign-in: %w", err)
	}

	return &s, nil
}

func (r *signInRepository) OpenEmployeeIDs(ctx context.Context, employeeIDs []string, date time.Time) ([]string, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id
		FROM sign_ins
		WHERE employee_id = ANY($1) AND date = $2 AND sign_out_time IS NULL
	`, employeeIDs, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sign-ins: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *signInRepository) SetSignOut(ctx context.Context, id string, signOutTime time.Time, signedOutBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE sign_ins
		SET sign_out_time = $2, signed_out_by = $3, updated_at = NOW()
		WHERE id = $1 AND sign_out_time IS NULL
	`, id, signOutTime, signedOutBy)
	if err != nil {
		return fmt.Errorf("failed to set sign-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadySignedOut
	}

	return nil
}

func (r *signInRepository) List(ctx context.Context, filter attendance.ListSignInsFilter) ([]attendance.SignIn, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("s.date = $%d", argPos))
		args = append(args, *filter.Date)
		argPos++
	}

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("s.project_id = $%d", argPos))
		args = append(args, *filter.ProjectID)
		argPos++
	}

	if filter.ActiveOnly {
		conditions = append(conditions, "s.sign_out_time IS NULL")
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM sign_ins s WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sign-ins: %w", err)
	}

	query := `
		SELECT ` + signInColumns + `
		FROM sign_ins s
		` + signInJoins + `
		WHERE ` + where + `
		ORDER BY s.date DESC, s.sign_in_time DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sign-ins: %w", err)
	}
	defer rows.Close()

	var signIns []attendance.SignIn
	for rows.Next() {
		s, err := scanSignIn(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sign-in: %w", err)
		}
		signIns = append(signIns, s)
	}

	return signIns, total, rows.Err()
}

func (r *signInRepository) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.SignIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + signInColumns + `
		FROM sign_ins s
		` + signInJoins + `
		WHERE s.employee_id = $1 AND s.date BETWEEN $2 AND $3
		ORDER BY s.date ASC, s.sign_in_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list sign-in history: %w", err)
	}
	defer rows.Close()

	var signIns []attendance.SignIn
	for rows.Next() {
		s, err := scanSignIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sign-in: %w", err)
		}
		signIns = append(signIns, s)
	}

	return signIns, rows.Err()
}

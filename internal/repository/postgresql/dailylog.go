package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sitehub/sitehub-backend-go/internal/domain/dailylog"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type dailyLogRepository struct {
	db *database.DB
}

func NewDailyLogRepository(db *database.DB) dailylog.DailyLogRepository {
	return &dailyLogRepository{db: db}
}

const dailyLogColumns = `
	d.id, d.project_id, d.date, d.weather, d.crew_count, d.work_performed,
	d.issues, d.notes, d.created_by, d.updated_by, d.created_at, d.updated_at, d.deleted_at,
	p.name AS project_name, p.project_number
`

func scanDailyLog(row pgx.Row) (dailylog.DailyLog, error) {
	var d dailylog.DailyLog
	err := row.Scan(
		&d.ID, &d.ProjectID, &d.Date, &d.Weather, &d.CrewCount, &d.WorkPerformed,
		&d.Issues, &d.Notes, &d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt,
		&d.ProjectName, &d.ProjectNumber,
	)
	return d, err
}

func (r *dailyLogRepository) Create(ctx context.Context, d dailylog.DailyLog) (dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_logs (project_id, date, weather, crew_count, work_performed, issues, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		d.ProjectID, d.Date, d.Weather, d.CrewCount, d.WorkPerformed, d.Issues, d.Notes, d.CreatedBy,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return dailylog.DailyLog{}, dailylog.ErrProjectNotFound
		}
		return dailylog.DailyLog{}, fmt.Errorf("failed to create daily log: %w", err)
	}

	return d, nil
}

func (r *dailyLogRepository) GetByID(ctx context.Context, id string) (dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyLogColumns + `
		FROM daily_logs d
		JOIN projects p ON p.id = d.project_id
		WHERE d.id = $1 AND d.deleted_at IS NULL
	`

	d, err := scanDailyLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailylog.DailyLog{}, dailylog.ErrDailyLogNotFound
		}
		return dailylog.DailyLog{}, fmt.Errorf("failed to get daily log: %w", err)
	}

	return d, nil
}

func (r *dailyLogRepository) List(ctx context.Context, filter dailylog.ListDailyLogsFilter) ([]dailylog.DailyLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"d.deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(d.work_performed ILIKE $%d OR d.issues ILIKE $%d OR d.notes ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("d.project_id = $%d", argPos))
		args = append(args, *filter.ProjectID)
		argPos++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("d.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("d.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM daily_logs d WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily logs: %w", err)
	}

	query := `
		SELECT ` + dailyLogColumns + `
		FROM daily_logs d
		JOIN projects p ON p.id = d.project_id
		WHERE ` + where + `
		ORDER BY d.date DESC, d.created_at DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily logs: %w", err)
	}
	defer rows.Close()

	var logs []dailylog.DailyLog
	for rows.Next() {
		d, err := scanDailyLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan daily log: %w", err)
		}
		logs = append(logs, d)
	}

	return logs, total, rows.Err()
}

func (r *dailyLogRepository) Update(ctx context.Context, d dailylog.DailyLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_logs
		SET date = $2, weather = $3, crew_count = $4, work_performed = $5,
			issues = $6, notes = $7, updated_by = $8, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		d.ID, d.Date, d.Weather, d.CrewCount, d.WorkPerformed, d.Issues, d.Notes, d.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dailylog.ErrDailyLogNotFound
	}

	return nil
}

func (r *dailyLogRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE daily_logs SET deleted_at = NOW(), updated_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete daily log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dailylog.ErrDailyLogNotFound
	}

	return nil
}

func (r *dailyLogRepository) Stats(ctx context.Context, start, end time.Time) (dailylog.Stats, error) {
	q := GetQuerier(ctx, r.db)

	stats := dailylog.Stats{
		LogsByWeather: make(map[dailylog.Weather]int64),
	}

	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(crew_count), 0)
		FROM daily_logs
		WHERE deleted_at IS NULL AND date BETWEEN $1 AND $2
	`, start, end).Scan(&stats.TotalLogs, &stats.TotalCrewCount)
	if err != nil {
		return dailylog.Stats{}, fmt.Errorf("failed to aggregate daily log totals: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT d.project_id, p.name, COUNT(*)
		FROM daily_logs d
		JOIN projects p ON p.id = d.project_id
		WHERE d.deleted_at IS NULL AND d.date BETWEEN $1 AND $2
		GROUP BY d.project_id, p.name
		ORDER BY COUNT(*) DESC
	`, start, end)
	if err != nil {
		return dailylog.Stats{}, fmt.Errorf("failed to aggregate logs by project: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pc dailylog.ProjectCount
		if err := rows.Scan(&pc.ProjectID, &pc.ProjectName, &pc.Count); err != nil {
			return dailylog.Stats{}, fmt.Errorf("failed to scan project count: %w", err)
		}
		stats.LogsByProject = append(stats.LogsByProject, pc)
	}
	if err := rows.Err(); err != nil {
		return dailylog.Stats{}, err
	}

	weatherRows, err := q.Query(ctx, `
		SELECT weather, COUNT(*)
		FROM daily_logs
		WHERE deleted_at IS NULL AND weather IS NOT NULL AND date BETWEEN $1 AND $2
		GROUP BY weather
	`, start, end)
	if err != nil {
		return dailylog.Stats{}, fmt.Errorf("failed to aggregate logs by weather: %w", err)
	}
	defer weatherRows.Close()

	for weatherRows.Next() {
		var w dailylog.Weather
		var count int64
		if err := weatherRows.Scan(&w, &count); err != nil {
			return dailylog.Stats{}, fmt.Errorf("failed to scan weather count: %w", err)
		}
		stats.LogsByWeather[w] = count
	}

	return stats, weatherRows.Err()
}

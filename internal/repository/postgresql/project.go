package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `
	p.id, p.project_number, p.name, p.client_id, p.status, p.address, p.description,
	p.start_date, p.end_date, p.created_by, p.updated_by, p.created_at, p.updated_at, p.deleted_at,
	c.name AS client_name
`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.ProjectNumber, &p.Name, &p.ClientID, &p.Status, &p.Address, &p.Description,
		&p.StartDate, &p.EndDate, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		&p.ClientName,
	)
	return p, err
}

func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (
			project_number, name, client_id, status, address, description,
			start_date, end_date, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ProjectNumber, p.Name, p.ClientID, p.Status, p.Address, p.Description,
		p.StartDate, p.EndDate, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return project.Project{}, project.ErrProjectNumberExists
			case "23503":
				return project.Project{}, project.ErrClientNotFound
			}
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) getOne(ctx context.Context, where string, arg interface{}) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN clients c ON c.id = p.client_id AND c.deleted_at IS NULL
		WHERE ` + where + ` AND p.deleted_at IS NULL
	`

	p, err := scanProject(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	return r.getOne(ctx, "p.id = $1", id)
}

func (r *projectRepository) GetByNumber(ctx context.Context, projectNumber string) (project.Project, error) {
	return r.getOne(ctx, "p.project_number = $1", projectNumber)
}

func (r *projectRepository) List(ctx context.Context, filter project.ListProjectsFilter) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(p.project_number ILIKE $%d OR p.name ILIKE $%d OR p.address ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("p.client_id = $%d", argPos))
		args = append(args, *filter.ClientID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM projects p WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN clients c ON c.id = p.client_id AND c.deleted_at IS NULL
		WHERE ` + where + `
		ORDER BY p.project_number DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, total, rows.Err()
}

func (r *projectRepository) ListByClient(ctx context.Context, clientID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN clients c ON c.id = p.client_id AND c.deleted_at IS NULL
		WHERE p.client_id = $1 AND p.deleted_at IS NULL
		ORDER BY p.project_number DESC
	`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by client: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET project_number = $2, name = $3, client_id = $4, status = $5, address = $6,
			description = $7, start_date = $8, end_date = $9, updated_by = $10, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.ProjectNumber, p.Name, p.ClientID, p.Status, p.Address,
		p.Description, p.StartDate, p.EndDate, p.UpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return project.ErrProjectNumberExists
			case "23503":
				return project.ErrClientNotFound
			}
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE projects SET deleted_at = NOW(), updated_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) ListMembers(ctx context.Context, projectID string) ([]project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.project_id, m.employee_id, m.site_role, m.assigned_at,
			e.first_name || ' ' || e.last_name AS employee_name, e.employee_number
		FROM project_members m
		JOIN employees e ON e.id = m.employee_id
		WHERE m.project_id = $1
		ORDER BY e.last_name ASC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []project.Member
	for rows.Next() {
		var m project.Member
		if err := rows.Scan(
			&m.ID, &m.ProjectID, &m.EmployeeID, &m.SiteRole, &m.AssignedAt,
			&m.EmployeeName, &m.EmployeeNumber,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *projectRepository) DeleteMembers(ctx context.Context, projectID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM project_members WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to delete project members: %w", err)
	}

	return nil
}

func (r *projectRepository) AddMember(ctx context.Context, m project.Member) (project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_members (project_id, employee_id, site_role)
		VALUES ($1, $2, $3)
		RETURNING id, assigned_at
	`

	err := q.QueryRow(ctx, query, m.ProjectID, m.EmployeeID, m.SiteRole).Scan(&m.ID, &m.AssignedAt)
	if err != nil {
		return project.Member{}, fmt.Errorf("failed to add project member: %w", err)
	}

	return m, nil
}

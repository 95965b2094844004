package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/client"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `
	id, name, email, phone, address, city, state, zip, notes,
	created_by, updated_by, created_at, updated_at, deleted_at
`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.State, &c.Zip, &c.Notes,
		&c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	return c, err
}

func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (name, email, phone, address, city, state, zip, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Notes, c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE id = $1 AND deleted_at IS NULL
	`

	c, err := scanClient(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) List(ctx context.Context, filter client.ListClientsFilter) ([]client.Client, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR city ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM clients WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE ` + where + `
		ORDER BY name ASC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, total, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, c client.Client) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, address = $5, city = $6,
			state = $7, zip = $8, notes = $9, updated_by = $10, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Notes, c.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

func (r *clientRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE clients SET deleted_at = NOW(), updated_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

const contactColumns = `
	id, client_id, first_name, last_name, title, email, phone, is_primary,
	created_at, updated_at, deleted_at
`

func scanContact(row pgx.Row) (client.Contact, error) {
	var c client.Contact
	err := row.Scan(
		&c.ID, &c.ClientID, &c.FirstName, &c.LastName, &c.Title, &c.Email, &c.Phone, &c.IsPrimary,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	return c, err
}

func (r *clientRepository) CreateContact(ctx context.Context, c client.Contact) (client.Contact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO client_contacts (client_id, first_name, last_name, title, email, phone, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ClientID, c.FirstName, c.LastName, c.Title, c.Email, c.Phone, c.IsPrimary,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return client.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return c, nil
}

func (r *clientRepository) GetContactByID(ctx context.Context, id string) (client.Contact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contactColumns + `
		FROM client_contacts
		WHERE id = $1 AND deleted_at IS NULL
	`

	c, err := scanContact(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Contact{}, client.ErrContactNotFound
		}
		return client.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}

	return c, nil
}

func (r *clientRepository) ListContacts(ctx context.Context, clientID string) ([]client.Contact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contactColumns + `
		FROM client_contacts
		WHERE client_id = $1 AND deleted_at IS NULL
		ORDER BY is_primary DESC, last_name ASC
	`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []client.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

func (r *clientRepository) UpdateContact(ctx context.Context, c client.Contact) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE client_contacts
		SET first_name = $2, last_name = $3, title = $4, email = $5, phone = $6,
			is_primary = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, c.ID, c.FirstName, c.LastName, c.Title, c.Email, c.Phone, c.IsPrimary)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrContactNotFound
	}

	return nil
}

func (r *clientRepository) SoftDeleteContact(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE client_contacts SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrContactNotFound
	}

	return nil
}

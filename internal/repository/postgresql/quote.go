package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sitehub/sitehub-backend-go/internal/domain/quote"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
)

type quoteRepository struct {
	db *database.DB
}

func NewQuoteRepository(db *database.DB) quote.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `
	q.id, q.quote_number, q.client_id, q.status, q.title, q.notes,
	q.subtotal, q.tax, q.total, q.valid_until,
	q.created_by, q.updated_by, q.created_at, q.updated_at,
	c.name AS client_name
`

func scanQuote(row pgx.Row) (quote.Quote, error) {
	var qt quote.Quote
	err := row.Scan(
		&qt.ID, &qt.QuoteNumber, &qt.ClientID, &qt.Status, &qt.Title, &qt.Notes,
		&qt.Subtotal, &qt.Tax, &qt.Total, &qt.ValidUntil,
		&qt.CreatedBy, &qt.UpdatedBy, &qt.CreatedAt, &qt.UpdatedAt,
		&qt.ClientName,
	)
	return qt, err
}

func (r *quoteRepository) Create(ctx context.Context, qt quote.Quote) (quote.Quote, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO quotes (quote_number, client_id, status, title, notes, subtotal, tax, total, valid_until, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		qt.QuoteNumber, qt.ClientID, qt.Status, qt.Title, qt.Notes,
		qt.Subtotal, qt.Tax, qt.Total, qt.ValidUntil, qt.CreatedBy,
	).Scan(&qt.ID, &qt.CreatedAt, &qt.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return quote.Quote{}, quote.ErrClientNotFound
		}
		return quote.Quote{}, fmt.Errorf("failed to create quote: %w", err)
	}

	items, err := r.ReplaceLineItems(ctx, qt.ID, qt.LineItems)
	if err != nil {
		return quote.Quote{}, err
	}
	qt.LineItems = items

	return qt, nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (quote.Quote, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + quoteColumns + `
		FROM quotes q
		JOIN clients c ON c.id = q.client_id
		WHERE q.id = $1
	`

	qt, err := scanQuote(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quote.Quote{}, quote.ErrQuoteNotFound
		}
		return quote.Quote{}, fmt.Errorf("failed to get quote: %w", err)
	}

	items, err := r.listLineItems(ctx, id)
	if err != nil {
		return quote.Quote{}, err
	}
	qt.LineItems = items

	return qt, nil
}

func (r *quoteRepository) listLineItems(ctx context.Context, quoteID string) ([]quote.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, quote_id, description, quantity, unit_price, line_total, position
		FROM quote_line_items
		WHERE quote_id = $1
		ORDER BY position ASC
	`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line items: %w", err)
	}
	defer rows.Close()

	var items []quote.LineItem
	for rows.Next() {
		var li quote.LineItem
		if err := rows.Scan(&li.ID, &li.QuoteID, &li.Description, &li.Quantity, &li.UnitPrice, &li.LineTotal, &li.Position); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, li)
	}

	return items, rows.Err()
}

func (r *quoteRepository) List(ctx context.Context, filter quote.ListQuotesFilter) ([]quote.Quote, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(q.quote_number ILIKE $%d OR q.title ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("q.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("q.client_id = $%d", argPos))
		args = append(args, *filter.ClientID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM quotes q WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	query := `
		SELECT ` + quoteColumns + `
		FROM quotes q
		JOIN clients c ON c.id = q.client_id
		WHERE ` + where + `
		ORDER BY q.quote_number DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []quote.Quote
	for rows.Next() {
		qt, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, qt)
	}

	return quotes, total, rows.Err()
}

func (r *quoteRepository) Update(ctx context.Context, qt quote.Quote) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE quotes
		SET client_id = $2, status = $3, title = $4, notes = $5,
			subtotal = $6, tax = $7, total = $8, valid_until = $9,
			updated_by = $10, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		qt.ID, qt.ClientID, qt.Status, qt.Title, qt.Notes,
		qt.Subtotal, qt.Tax, qt.Total, qt.ValidUntil, qt.UpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return quote.ErrClientNotFound
		}
		return fmt.Errorf("failed to update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrQuoteNotFound
	}

	return nil
}

func (r *quoteRepository) ReplaceLineItems(ctx context.Context, quoteID string, items []quote.LineItem) ([]quote.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM quote_line_items WHERE quote_id = $1`, quoteID); err != nil {
		return nil, fmt.Errorf("failed to clear line items: %w", err)
	}

	out := make([]quote.LineItem, 0, len(items))
	for i, li := range items {
		li.QuoteID = quoteID
		li.Position = i
		err := q.QueryRow(ctx, `
			INSERT INTO quote_line_items (quote_id, description, quantity, unit_price, line_total, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, li.QuoteID, li.Description, li.Quantity, li.UnitPrice, li.LineTotal, li.Position).Scan(&li.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert line item: %w", err)
		}
		out = append(out, li)
	}

	return out, nil
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrQuoteNotFound
	}

	return nil
}

func (r *quoteRepository) NextSequence(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	prefix := fmt.Sprintf("Q%d", year)

	var next int
	err := q.QueryRow(ctx, `
		SELECT COALESCE(MAX(CAST(SUBSTRING(quote_number FROM $1) AS INT)), 0) + 1
		FROM quotes
		WHERE quote_number LIKE $2
	`, fmt.Sprintf("^%s(\\d+)$", prefix), prefix+"%").Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next quote sequence: %w", err)
	}

	return next, nil
}

package quote

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type ListQuotesFilter struct {
	Search   string // matches quote number, title
	Status   *Status
	ClientID *string
	Page     int
	Limit    int
}

func (f *ListQuotesFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type LineItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type CreateQuoteRequest struct {
	ClientID   string           `json:"client_id"`
	Title      *string          `json:"title"`
	Notes      *string          `json:"notes"`
	ValidUntil *string          `json:"valid_until"` // YYYY-MM-DD
	Tax        *decimal.Decimal `json:"tax"`         // explicit override; 8% auto when nil
	LineItems  []LineItemInput  `json:"line_items"`
}

func (r *CreateQuoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id must be a valid UUID",
		})
	}

	if len(r.LineItems) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "line_items",
			Message: "at least one line item is required",
		})
	}

	for i, item := range r.LineItems {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("line_items[%d].description", i),
				Message: "description is required",
			})
		}
		if !item.Quantity.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("line_items[%d].quantity", i),
				Message: "quantity must be positive",
			})
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("line_items[%d].unit_price", i),
				Message: "unit_price must not be negative",
			})
		}
		// quantity * unit_price must equal the declared total within a
		// cent.
		expected := item.Quantity.Mul(item.UnitPrice)
		if expected.Sub(item.LineTotal).Abs().GreaterThan(LineTotalTolerance) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("line_items[%d].line_total", i),
				Message: "line_total does not match quantity * unit_price",
			})
		}
	}

	if r.Tax != nil && r.Tax.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "tax",
			Message: "tax must not be negative",
		})
	}

	if r.ValidUntil != nil {
		if _, ok := validator.IsValidDate(*r.ValidUntil); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_until",
				Message: "valid_until must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateQuoteRequest struct {
	ID         string           `json:"-"`
	Title      *string          `json:"title"`
	Notes      *string          `json:"notes"`
	ValidUntil *string          `json:"valid_until"`
	Tax        *decimal.Decimal `json:"tax"`
	LineItems  []LineItemInput  `json:"line_items"` // nil = keep existing
}

func (r *UpdateQuoteRequest) Validate() error {
	if r.LineItems == nil {
		return nil
	}
	// Reuse the create-side line item checks.
	check := CreateQuoteRequest{ClientID: "00000000-0000-0000-0000-000000000000", LineItems: r.LineItems, Tax: r.Tax}
	return check.Validate()
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !IsValidStatus(r.Status) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status is not recognized",
		}}
	}
	return nil
}

type QuoteResponse struct {
	ID          string             `json:"id"`
	QuoteNumber string             `json:"quote_number"`
	ClientID    string             `json:"client_id"`
	ClientName  *string            `json:"client_name,omitempty"`
	Status      Status             `json:"status"`
	Title       *string            `json:"title,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	Tax         decimal.Decimal    `json:"tax"`
	Total       decimal.Decimal    `json:"total"`
	ValidUntil  *string            `json:"valid_until,omitempty"`
	LineItems   []LineItemResponse `json:"line_items"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

func ToResponse(q Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.LineItems))
	for _, item := range q.LineItems {
		items = append(items, LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}

	var validUntil *string
	if q.ValidUntil != nil {
		s := q.ValidUntil.Format("2006-01-02")
		validUntil = &s
	}

	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		Status:      q.Status,
		Title:       q.Title,
		Notes:       q.Notes,
		Subtotal:    q.Subtotal,
		Tax:         q.Tax,
		Total:       q.Total,
		ValidUntil:  validUntil,
		LineItems:   items,
		CreatedAt:   q.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   q.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ParseValidUntil converts the request date string, already validated.
func ParseValidUntil(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

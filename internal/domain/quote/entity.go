package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusSent     Status = "SENT"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
	StatusExpired  Status = "EXPIRED"
)

var ValidStatuses = []Status{StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired}

func IsValidStatus(s Status) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// DefaultTaxRate is applied when a quote does not carry an explicit tax
// amount: 8%.
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// LineTotalTolerance is the allowed drift between quantity*unit_price and
// the declared line total.
var LineTotalTolerance = decimal.NewFromFloat(0.01)

type Quote struct {
	ID          string
	QuoteNumber string
	ClientID    string
	Status      Status
	Title       *string
	Notes       *string
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	ValidUntil  *time.Time
	CreatedBy   *string
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LineItems []LineItem

	// Joined fields
	ClientName *string
}

type LineItem struct {
	ID          string
	QuoteID     string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Position    int
}

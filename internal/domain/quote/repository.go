package quote

import "context"

// QuoteRepository defines data access for quotes. Quotes hard-delete,
// unlike the soft-deleted resources.
type QuoteRepository interface {
	Create(ctx context.Context, q Quote) (Quote, error)
	GetByID(ctx context.Context, id string) (Quote, error)
	List(ctx context.Context, filter ListQuotesFilter) ([]Quote, int64, error)
	Update(ctx context.Context, q Quote) error
	ReplaceLineItems(ctx context.Context, quoteID string, items []LineItem) ([]LineItem, error)
	Delete(ctx context.Context, id string) error

	// NextSequence returns the next quote sequence number for a year,
	// used to build numbers of the form Q<year><sequence>.
	NextSequence(ctx context.Context, year int) (int, error)
}

type QuoteService interface {
	List(ctx context.Context, filter ListQuotesFilter) ([]QuoteResponse, int64, error)
	Get(ctx context.Context, id string) (QuoteResponse, error)
	Create(ctx context.Context, req CreateQuoteRequest) (QuoteResponse, error)
	Update(ctx context.Context, req UpdateQuoteRequest) (QuoteResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (QuoteResponse, error)
	Duplicate(ctx context.Context, id string) (QuoteResponse, error)
	Delete(ctx context.Context, id string) error
}

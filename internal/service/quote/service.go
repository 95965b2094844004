package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/domain/client"
	"github.com/sitehub/sitehub-backend-go/internal/domain/quote"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/repository/postgresql"
)

type QuoteServiceImpl struct {
	db *database.DB
	quote.QuoteRepository
	client.ClientRepository
}

func NewQuoteService(
	db *database.DB,
	quoteRepository quote.QuoteRepository,
	clientRepository client.ClientRepository,
) quote.QuoteService {
	return &QuoteServiceImpl{
		db:               db,
		QuoteRepository:  quoteRepository,
		ClientRepository: clientRepository,
	}
}

// List implements quote.QuoteService.
func (s *QuoteServiceImpl) List(ctx context.Context, filter quote.ListQuotesFilter) ([]quote.QuoteResponse, int64, error) {
	filter.Normalize()

	quotes, total, err := s.QuoteRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]quote.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		responses = append(responses, quote.ToResponse(q))
	}

	return responses, total, nil
}

// Get implements quote.QuoteService.
func (s *QuoteServiceImpl) Get(ctx context.Context, id string) (quote.QuoteResponse, error) {
	q, err := s.QuoteRepository.GetByID(ctx, id)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	return quote.ToResponse(q), nil
}

// totals computes subtotal, tax and total from line items. Tax defaults
// to 8% of the subtotal when no explicit amount is given.
func totals(items []quote.LineItem, taxOverride *decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	if taxOverride != nil {
		tax = *taxOverride
	} else {
		tax = subtotal.Mul(quote.DefaultTaxRate).Round(2)
	}
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

func toLineItems(inputs []quote.LineItemInput) []quote.LineItem {
	items := make([]quote.LineItem, 0, len(inputs))
	for i, in := range inputs {
		items = append(items, quote.LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			LineTotal:   in.LineTotal,
			Position:    i,
		})
	}
	return items
}

// Create implements quote.QuoteService. Numbers are assigned as
// Q<year><sequence>, e.g. Q20261 for the first quote of 2026.
func (s *QuoteServiceImpl) Create(ctx context.Context, req quote.CreateQuoteRequest) (quote.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return quote.QuoteResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	if _, err := s.ClientRepository.GetByID(ctx, req.ClientID); err != nil {
		return quote.QuoteResponse{}, quote.ErrClientNotFound
	}

	items := toLineItems(req.LineItems)
	subtotal, tax, total := totals(items, req.Tax)

	var created quote.Quote
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		year := time.Now().Year()
		seq, err := s.QuoteRepository.NextSequence(txCtx, year)
		if err != nil {
			return err
		}

		created, err = s.QuoteRepository.Create(txCtx, quote.Quote{
			QuoteNumber: fmt.Sprintf("Q%d%d", year, seq),
			ClientID:    req.ClientID,
			Status:      quote.StatusDraft,
			Title:       req.Title,
			Notes:       req.Notes,
			Subtotal:    subtotal,
			Tax:         tax,
			Total:       total,
			ValidUntil:  quote.ParseValidUntil(req.ValidUntil),
			CreatedBy:   &actor.UserID,
			LineItems:   items,
		})
		return err
	})
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Update implements quote.QuoteService.
func (s *QuoteServiceImpl) Update(ctx context.Context, req quote.UpdateQuoteRequest) (quote.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return quote.QuoteResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	existing, err := s.QuoteRepository.GetByID(ctx, req.ID)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	if req.Title != nil {
		existing.Title = req.Title
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	if req.ValidUntil != nil {
		existing.ValidUntil = quote.ParseValidUntil(req.ValidUntil)
	}

	items := existing.LineItems
	if req.LineItems != nil {
		items = toLineItems(req.LineItems)
	}
	existing.Subtotal, existing.Tax, existing.Total = totals(items, req.Tax)
	existing.UpdatedBy = &actor.UserID

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.QuoteRepository.Update(txCtx, existing); err != nil {
			return err
		}
		if req.LineItems != nil {
			if _, err := s.QuoteRepository.ReplaceLineItems(txCtx, existing.ID, items); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// UpdateStatus implements quote.QuoteService.
func (s *QuoteServiceImpl) UpdateStatus(ctx context.Context, req quote.UpdateStatusRequest) (quote.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return quote.QuoteResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	existing, err := s.QuoteRepository.GetByID(ctx, req.ID)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	existing.Status = req.Status
	existing.UpdatedBy = &actor.UserID

	if err := s.QuoteRepository.Update(ctx, existing); err != nil {
		return quote.QuoteResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Duplicate implements quote.QuoteService. The copy gets a fresh number
// and starts over in DRAFT.
func (s *QuoteServiceImpl) Duplicate(ctx context.Context, id string) (quote.QuoteResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	source, err := s.QuoteRepository.GetByID(ctx, id)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	items := make([]quote.LineItem, 0, len(source.LineItems))
	for _, item := range source.LineItems {
		items = append(items, quote.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
			Position:    item.Position,
		})
	}

	var created quote.Quote
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		year := time.Now().Year()
		seq, err := s.QuoteRepository.NextSequence(txCtx, year)
		if err != nil {
			return err
		}

		created, err = s.QuoteRepository.Create(txCtx, quote.Quote{
			QuoteNumber: fmt.Sprintf("Q%d%d", year, seq),
			ClientID:    source.ClientID,
			Status:      quote.StatusDraft,
			Title:       source.Title,
			Notes:       source.Notes,
			Subtotal:    source.Subtotal,
			Tax:         source.Tax,
			Total:       source.Total,
			ValidUntil:  source.ValidUntil,
			CreatedBy:   &actor.UserID,
			LineItems:   items,
		})
		return err
	})
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Delete implements quote.QuoteService. Quotes hard-delete.
func (s *QuoteServiceImpl) Delete(ctx context.Context, id string) error {
	return s.QuoteRepository.Delete(ctx, id)
}

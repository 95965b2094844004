package quote

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/domain/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testQuoteID  = "66666666-6666-4666-8666-666666666666"
	testClientID = "22222222-2222-4222-8222-222222222222"
	testUserID   = "99999999-9999-4999-8999-999999999999"
)

func actorContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": testUserID,
		"email":   "admin@example.com",
		"role":    "OFFICE_ADMIN",
		"type":    "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func item(lineTotal float64) quote.LineItem {
	return quote.LineItem{
		Description: "Framing labor",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromFloat(lineTotal),
		LineTotal:   decimal.NewFromFloat(lineTotal),
	}
}

func TestTotalsDefaultTax(t *testing.T) {
	subtotal, tax, total := totals([]quote.LineItem{item(1000), item(250.50)}, nil)

	assert.True(t, subtotal.Equal(decimal.NewFromFloat(1250.50)), "subtotal = %s", subtotal)
	assert.True(t, tax.Equal(decimal.NewFromFloat(100.04)), "tax = %s", tax)
	assert.True(t, total.Equal(decimal.NewFromFloat(1350.54)), "total = %s", total)
}

func TestTotalsTaxOverride(t *testing.T) {
	override := decimal.NewFromInt(50)
	subtotal, tax, total := totals([]quote.LineItem{item(1000)}, &override)

	assert.True(t, subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, tax.Equal(decimal.NewFromInt(50)))
	assert.True(t, total.Equal(decimal.NewFromInt(1050)))
}

func TestTotalsNoItems(t *testing.T) {
	subtotal, tax, total := totals(nil, nil)

	assert.True(t, subtotal.IsZero())
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}

func TestToLineItemsAssignsPositions(t *testing.T) {
	items := toLineItems([]quote.LineItemInput{
		{Description: "Demolition", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(500), LineTotal: decimal.NewFromInt(500)},
		{Description: "Haul away", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), LineTotal: decimal.NewFromInt(200)},
	})

	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, 1, items[1].Position)
	assert.Equal(t, "Haul away", items[1].Description)
}

type fakeQuoteRepo struct {
	quotes map[string]quote.Quote
}

func newFakeQuoteRepo(seed ...quote.Quote) *fakeQuoteRepo {
	f := &fakeQuoteRepo{quotes: make(map[string]quote.Quote)}
	for _, q := range seed {
		f.quotes[q.ID] = q
	}
	return f
}

func (f *fakeQuoteRepo) Create(ctx context.Context, q quote.Quote) (quote.Quote, error) {
	f.quotes[q.ID] = q
	return q, nil
}

func (f *fakeQuoteRepo) GetByID(ctx context.Context, id string) (quote.Quote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return quote.Quote{}, quote.ErrQuoteNotFound
	}
	return q, nil
}

func (f *fakeQuoteRepo) List(ctx context.Context, filter quote.ListQuotesFilter) ([]quote.Quote, int64, error) {
	var out []quote.Quote
	for _, q := range f.quotes {
		out = append(out, q)
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuoteRepo) Update(ctx context.Context, q quote.Quote) error {
	if _, ok := f.quotes[q.ID]; !ok {
		return quote.ErrQuoteNotFound
	}
	f.quotes[q.ID] = q
	return nil
}

func (f *fakeQuoteRepo) ReplaceLineItems(ctx context.Context, quoteID string, items []quote.LineItem) ([]quote.LineItem, error) {
	q, ok := f.quotes[quoteID]
	if !ok {
		return nil, quote.ErrQuoteNotFound
	}
	q.LineItems = items
	f.quotes[quoteID] = q
	return items, nil
}

func (f *fakeQuoteRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.quotes[id]; !ok {
		return quote.ErrQuoteNotFound
	}
	delete(f.quotes, id)
	return nil
}

func (f *fakeQuoteRepo) NextSequence(ctx context.Context, year int) (int, error) {
	return 1, nil
}

func TestUpdateStatus(t *testing.T) {
	quotes := newFakeQuoteRepo(quote.Quote{
		ID:          testQuoteID,
		QuoteNumber: "Q20251",
		ClientID:    testClientID,
		Status:      quote.StatusDraft,
	})
	svc := NewQuoteService(nil, quotes, nil)

	resp, err := svc.UpdateStatus(actorContext(t), quote.UpdateStatusRequest{
		ID:     testQuoteID,
		Status: quote.StatusSent,
	})
	require.NoError(t, err)

	assert.Equal(t, quote.StatusSent, resp.Status)
	stored := quotes.quotes[testQuoteID]
	require.NotNil(t, stored.UpdatedBy)
	assert.Equal(t, testUserID, *stored.UpdatedBy)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	quotes := newFakeQuoteRepo()
	svc := NewQuoteService(nil, quotes, nil)

	_, err := svc.UpdateStatus(actorContext(t), quote.UpdateStatusRequest{
		ID:     testQuoteID,
		Status: quote.Status("SHIPPED"),
	})
	assert.Error(t, err)
}

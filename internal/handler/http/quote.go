package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/quote"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type QuoteHandler interface {
	ListQuotes(w http.ResponseWriter, r *http.Request)
	GetQuote(w http.ResponseWriter, r *http.Request)
	CreateQuote(w http.ResponseWriter, r *http.Request)
	UpdateQuote(w http.ResponseWriter, r *http.Request)
	UpdateQuoteStatus(w http.ResponseWriter, r *http.Request)
	DuplicateQuote(w http.ResponseWriter, r *http.Request)
	DeleteQuote(w http.ResponseWriter, r *http.Request)
}

type QuoteHandlerImpl struct {
	quoteService quote.QuoteService
}

func NewQuoteHandler(quoteService quote.QuoteService) QuoteHandler {
	return &QuoteHandlerImpl{quoteService: quoteService}
}

// ListQuotes implements QuoteHandler.
func (h *QuoteHandlerImpl) ListQuotes(w http.ResponseWriter, r *http.Request) {
	var filter quote.ListQuotesFilter
	filter.Page, filter.Limit = pageLimit(r)
	filter.Search = r.URL.Query().Get("search")
	if status := r.URL.Query().Get("status"); status != "" {
		parsed := quote.Status(status)
		filter.Status = &parsed
	}
	if clientID := r.URL.Query().Get("client_id"); clientID != "" {
		filter.ClientID = &clientID
	}

	quotes, total, err := h.quoteService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListQuotes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, quotes, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetQuote implements QuoteHandler.
func (h *QuoteHandlerImpl) GetQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quoteResponse, err := h.quoteService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, quoteResponse)
}

// CreateQuote implements QuoteHandler.
func (h *QuoteHandlerImpl) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var createReq quote.CreateQuoteRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateQuote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	quoteResponse, err := h.quoteService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateQuote service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Quote created successfully", quoteResponse)
}

// UpdateQuote implements QuoteHandler.
func (h *QuoteHandlerImpl) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	var updateReq quote.UpdateQuoteRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateQuote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	quoteResponse, err := h.quoteService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateQuote service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quote updated successfully", quoteResponse)
}

// UpdateQuoteStatus implements QuoteHandler.
func (h *QuoteHandlerImpl) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq quote.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("UpdateQuoteStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ID = chi.URLParam(r, "id")

	if err := statusReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	quoteResponse, err := h.quoteService.UpdateStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("UpdateQuoteStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quote status updated successfully", quoteResponse)
}

// DuplicateQuote implements QuoteHandler.
func (h *QuoteHandlerImpl) DuplicateQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quoteResponse, err := h.quoteService.Duplicate(r.Context(), id)
	if err != nil {
		slog.Error("DuplicateQuote service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Quote duplicated successfully", quoteResponse)
}

// DeleteQuote implements QuoteHandler.
func (h *QuoteHandlerImpl) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.quoteService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteQuote service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quote deleted successfully", nil)
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/dailylog"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type DailyLogHandler interface {
	ListDailyLogs(w http.ResponseWriter, r *http.Request)
	ListProjectDailyLogs(w http.ResponseWriter, r *http.Request)
	GetDailyLog(w http.ResponseWriter, r *http.Request)
	CreateDailyLog(w http.ResponseWriter, r *http.Request)
	UpdateDailyLog(w http.ResponseWriter, r *http.Request)
	DeleteDailyLog(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type DailyLogHandlerImpl struct {
	dailyLogService dailylog.DailyLogService
}

func NewDailyLogHandler(dailyLogService dailylog.DailyLogService) DailyLogHandler {
	return &DailyLogHandlerImpl{dailyLogService: dailyLogService}
}

func dailyLogFilter(r *http.Request) dailylog.ListDailyLogsFilter {
	var filter dailylog.ListDailyLogsFilter
	filter.Page, filter.Limit = pageLimit(r)
	filter.Search = r.URL.Query().Get("search")
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if start, ok := queryDate(r, "start_date"); ok {
		filter.StartDate = &start
	}
	if end, ok := queryDate(r, "end_date"); ok {
		filter.EndDate = &end
	}
	return filter
}

// ListDailyLogs implements DailyLogHandler.
func (h *DailyLogHandlerImpl) ListDailyLogs(w http.ResponseWriter, r *http.Request) {
	filter := dailyLogFilter(r)

	var (
		logs  []dailylog.DailyLogResponse
		total int64
		err   error
	)
	if filter.StartDate != nil && filter.EndDate != nil {
		logs, total, err = h.dailyLogService.ListByDateRange(r.Context(), *filter.StartDate, *filter.EndDate, filter)
	} else {
		logs, total, err = h.dailyLogService.List(r.Context(), filter)
	}
	if err != nil {
		slog.Error("ListDailyLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, logs, response.NewMeta(filter.Page, filter.Limit, total))
}

// ListProjectDailyLogs implements DailyLogHandler.
func (h *DailyLogHandlerImpl) ListProjectDailyLogs(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	filter := dailyLogFilter(r)

	logs, total, err := h.dailyLogService.ListByProject(r.Context(), projectID, filter)
	if err != nil {
		slog.Error("ListProjectDailyLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, logs, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetDailyLog implements DailyLogHandler.
func (h *DailyLogHandlerImpl) GetDailyLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	logResponse, err := h.dailyLogService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logResponse)
}

// CreateDailyLog implements DailyLogHandler.
func (h *DailyLogHandlerImpl) CreateDailyLog(w http.ResponseWriter, r *http.Request) {
	var createReq dailylog.CreateDailyLogRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDailyLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	logResponse, err := h.dailyLogService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateDailyLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily log created successfully", logResponse)
}

// UpdateDailyLog implements DailyLogHandler.
func (h *DailyLogHandlerImpl) UpdateDailyLog(w http.ResponseWriter, r *http.Request) {
	var updateReq dailylog.UpdateDailyLogRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateDailyLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	logResponse, err := h.dailyLogService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateDailyLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log updated successfully", logResponse)
}

// DeleteDailyLog implements DailyLogHandler.
func (h *DailyLogHandlerImpl) DeleteDailyLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.dailyLogService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteDailyLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log deleted successfully", nil)
}

// Stats implements DailyLogHandler.
func (h *DailyLogHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	start, ok := queryDate(r, "start_date")
	if !ok {
		response.BadRequest(w, "start_date is required (YYYY-MM-DD)", nil)
		return
	}
	end, ok := queryDate(r, "end_date")
	if !ok {
		response.BadRequest(w, "end_date is required (YYYY-MM-DD)", nil)
		return
	}

	stats, err := h.dailyLogService.Stats(r.Context(), start, end)
	if err != nil {
		slog.Error("DailyLog stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

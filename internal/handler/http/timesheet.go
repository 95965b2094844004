package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timesheet"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	ListTimesheets(w http.ResponseWriter, r *http.Request)
	GetTimesheet(w http.ResponseWriter, r *http.Request)
	CreateTimesheet(w http.ResponseWriter, r *http.Request)
	UpdateTimesheet(w http.ResponseWriter, r *http.Request)
	SubmitTimesheet(w http.ResponseWriter, r *http.Request)
	ApproveTimesheet(w http.ResponseWriter, r *http.Request)
	DeleteTimesheet(w http.ResponseWriter, r *http.Request)
	ExportTimesheet(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// ListTimesheets implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	var filter timesheet.ListTimesheetsFilter
	filter.Page, filter.Limit = pageLimit(r)
	if status := r.URL.Query().Get("status"); status != "" {
		parsed := timesheet.Status(status)
		filter.Status = &parsed
	}
	if start, ok := queryDate(r, "start_date"); ok {
		filter.StartDate = &start
	}
	if end, ok := queryDate(r, "end_date"); ok {
		filter.EndDate = &end
	}

	timesheets, total, err := h.timesheetService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListTimesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, timesheets, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetTimesheet implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	timesheetResponse, err := h.timesheetService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheetResponse)
}

// CreateTimesheet implements TimesheetHandler.
func (h *TimesheetHandlerImpl) CreateTimesheet(w http.ResponseWriter, r *http.Request) {
	var createReq timesheet.CreateTimesheetRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTimesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	timesheetResponse, err := h.timesheetService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created successfully", timesheetResponse)
}

// UpdateTimesheet implements TimesheetHandler.
func (h *TimesheetHandlerImpl) UpdateTimesheet(w http.ResponseWriter, r *http.Request) {
	var updateReq timesheet.UpdateTimesheetRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTimesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	timesheetResponse, err := h.timesheetService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet updated successfully", timesheetResponse)
}

// SubmitTimesheet implements TimesheetHandler.
func (h *TimesheetHandlerImpl) SubmitTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	timesheetResponse, err := h.timesheetService.Submit(r.Context(), id)
	if err != nil {
		slog.Error("SubmitTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted", timesheetResponse)
}

// ApproveTimesheet implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ApproveTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	timesheetResponse, err := h.timesheetService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("ApproveTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved", timesheetResponse)
}

// DeleteTimesheet implements TimesheetHandler.
func (h *TimesheetHandlerImpl) DeleteTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timesheetService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet deleted successfully", nil)
}

// ExportTimesheet implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ExportTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	filename, content, err := h.timesheetService.Export(r.Context(), id)
	if err != nil {
		slog.Error("ExportTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	if _, err := w.Write(content); err != nil {
		slog.Error("ExportTimesheet write error", "error", err)
	}
}

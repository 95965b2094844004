package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type TimeEntryHandler interface {
	ListTimeEntries(w http.ResponseWriter, r *http.Request)
	GetTimeEntry(w http.ResponseWriter, r *http.Request)
	CreateTimeEntry(w http.ResponseWriter, r *http.Request)
	BulkCreateTimeEntries(w http.ResponseWriter, r *http.Request)
	UpdateTimeEntry(w http.ResponseWriter, r *http.Request)
	ApproveTimeEntry(w http.ResponseWriter, r *http.Request)
	RejectTimeEntry(w http.ResponseWriter, r *http.Request)
	DeleteTimeEntry(w http.ResponseWriter, r *http.Request)
	CreateFromSignIn(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &TimeEntryHandlerImpl{timeEntryService: timeEntryService}
}

// ListTimeEntries implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	var filter timeentry.ListTimeEntriesFilter
	filter.Page, filter.Limit = pageLimit(r)
	if date, ok := queryDate(r, "date"); ok {
		filter.Date = &date
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if timesheetID := r.URL.Query().Get("timesheet_id"); timesheetID != "" {
		filter.TimesheetID = &timesheetID
	}
	filter.UnapprovedOnly = r.URL.Query().Get("unapproved") == "true"

	entries, total, err := h.timeEntryService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListTimeEntries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, entries, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetTimeEntry implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) GetTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entryResponse, err := h.timeEntryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entryResponse)
}

// CreateTimeEntry implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var createReq timeentry.CreateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTimeEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entryResponse, err := h.timeEntryService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateTimeEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created successfully", entryResponse)
}

// BulkCreateTimeEntries implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) BulkCreateTimeEntries(w http.ResponseWriter, r *http.Request) {
	var bulkReq timeentry.BulkCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("BulkCreateTimeEntries decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.timeEntryService.BulkCreate(r.Context(), bulkReq)
	if err != nil {
		slog.Error("BulkCreateTimeEntries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entries created successfully", entries)
}

// UpdateTimeEntry implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) UpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var updateReq timeentry.UpdateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTimeEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entryResponse, err := h.timeEntryService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateTimeEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated successfully", entryResponse)
}

// ApproveTimeEntry implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ApproveTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entryResponse, err := h.timeEntryService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("ApproveTimeEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry approved", entryResponse)
}

// RejectTimeEntry implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) RejectTimeEntry(w http.ResponseWriter, r *http.Request) {
	var rejectReq timeentry.RejectRequest

	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("RejectTimeEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")

	if err := rejectReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entryResponse, err := h.timeEntryService.Reject(r.Context(), rejectReq)
	if err != nil {
		slog.Error("RejectTimeEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry rejected", entryResponse)
}

// DeleteTimeEntry implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timeEntryService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteTimeEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}

// CreateFromSignIn implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) CreateFromSignIn(w http.ResponseWriter, r *http.Request) {
	var fromReq timeentry.FromSignInRequest

	if err := json.NewDecoder(r.Body).Decode(&fromReq); err != nil {
		slog.Error("CreateFromSignIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	fromReq.SignInID = chi.URLParam(r, "id")

	if err := fromReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entryResponse, err := h.timeEntryService.CreateFromSignIn(r.Context(), fromReq)
	if err != nil {
		slog.Error("CreateFromSignIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created from sign-in", entryResponse)
}

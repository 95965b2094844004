package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/attendance"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	BulkSignIn(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
	ListSignIns(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	signInService attendance.SignInService
}

func NewAttendanceHandler(signInService attendance.SignInService) AttendanceHandler {
	return &AttendanceHandlerImpl{signInService: signInService}
}

// SignIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	var signInReq attendance.SignInRequest

	if err := json.NewDecoder(r.Body).Decode(&signInReq); err != nil {
		slog.Error("SignIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := signInReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	signInResponse, err := h.signInService.SignIn(r.Context(), signInReq)
	if err != nil {
		slog.Error("SignIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee signed in successfully", signInResponse)
}

// BulkSignIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BulkSignIn(w http.ResponseWriter, r *http.Request) {
	var bulkReq attendance.BulkSignInRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("BulkSignIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	bulkResponse, err := h.signInService.BulkSignIn(r.Context(), bulkReq)
	if err != nil {
		slog.Error("BulkSignIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employees signed in", bulkResponse)
}

// SignOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	var signOutReq attendance.SignOutRequest

	if err := json.NewDecoder(r.Body).Decode(&signOutReq); err != nil {
		slog.Error("SignOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	signOutReq.SignInID = chi.URLParam(r, "id")

	if err := signOutReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	signInResponse, err := h.signInService.SignOut(r.Context(), signOutReq)
	if err != nil {
		slog.Error("SignOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee signed out successfully", signInResponse)
}

// ListSignIns implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListSignIns(w http.ResponseWriter, r *http.Request) {
	var filter attendance.ListSignInsFilter
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
	filter.ActiveOnly = r.URL.Query().Get("active") == "true"

	signIns, total, err := h.signInService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListSignIns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, signIns, response.NewMeta(filter.Page, filter.Limit, total))
}

// ListToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	signIns, err := h.signInService.ListToday(r.Context())
	if err != nil {
		slog.Error("ListToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, signIns)
}

// ListActive implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	signIns, err := h.signInService.ListActive(r.Context())
	if err != nil {
		slog.Error("ListActive service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, signIns)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

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

	signIns, err := h.signInService.History(r.Context(), employeeID, start, end)
	if err != nil {
		slog.Error("Attendance history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, signIns)
}

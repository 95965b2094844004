package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/payroll"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	DailyReport(w http.ResponseWriter, r *http.Request)
	WeeklyReport(w http.ResponseWriter, r *http.Request)
	ProjectCostReport(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ExportDailyCSV(w http.ResponseWriter, r *http.Request)
	ExportWeeklyCSV(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func writeCSV(w http.ResponseWriter, filename string, content []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	if _, err := w.Write(content); err != nil {
		slog.Error("CSV write error", "error", err)
	}
}

// DailyReport implements PayrollHandler.
func (h *PayrollHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	date, ok := queryDate(r, "date")
	if !ok {
		response.BadRequest(w, "date is required (YYYY-MM-DD)", nil)
		return
	}

	report, err := h.payrollService.DailyReport(r.Context(), date)
	if err != nil {
		slog.Error("DailyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// WeeklyReport implements PayrollHandler.
func (h *PayrollHandlerImpl) WeeklyReport(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.payrollService.WeeklyReport(r.Context(), start, end)
	if err != nil {
		slog.Error("WeeklyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ProjectCostReport implements PayrollHandler.
func (h *PayrollHandlerImpl) ProjectCostReport(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

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

	report, err := h.payrollService.ProjectCostReport(r.Context(), projectID, start, end)
	if err != nil {
		slog.Error("ProjectCostReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Summary implements PayrollHandler.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
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

	summary, err := h.payrollService.Summary(r.Context(), start, end)
	if err != nil {
		slog.Error("Payroll summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportDailyCSV implements PayrollHandler.
func (h *PayrollHandlerImpl) ExportDailyCSV(w http.ResponseWriter, r *http.Request) {
	date, ok := queryDate(r, "date")
	if !ok {
		response.BadRequest(w, "date is required (YYYY-MM-DD)", nil)
		return
	}

	content, err := h.payrollService.ExportDailyCSV(r.Context(), date)
	if err != nil {
		slog.Error("ExportDailyCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeCSV(w, fmt.Sprintf("payroll-daily-%s.csv", date.Format("2006-01-02")), content)
}

// ExportWeeklyCSV implements PayrollHandler.
func (h *PayrollHandlerImpl) ExportWeeklyCSV(w http.ResponseWriter, r *http.Request) {
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

	content, err := h.payrollService.ExportWeeklyCSV(r.Context(), start, end)
	if err != nil {
		slog.Error("ExportWeeklyCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeCSV(w, fmt.Sprintf("payroll-weekly-%s.csv", start.Format("2006-01-02")), content)
}

package timesheet

import (
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type CreateTimesheetRequest struct {
	Date    string                             `json:"date"` // YYYY-MM-DD
	Title   *string                            `json:"title"`
	Notes   *string                            `json:"notes"`
	Entries []timeentry.CreateTimeEntryRequest `json:"entries"`
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if len(r.Entries) > 0 {
		bulk := timeentry.BulkCreateRequest{Entries: r.Entries}
		if err := bulk.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type UpdateTimesheetRequest struct {
	ID    string  `json:"-"`
	Title *string `json:"title"`
	Notes *string `json:"notes"`

	// Entries, when supplied, replaces every owned entry inside one
	// transaction.
	Entries []timeentry.CreateTimeEntryRequest `json:"entries"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	if r.Entries != nil {
		bulk := timeentry.BulkCreateRequest{Entries: r.Entries}
		if err := bulk.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ListTimesheetsFilter struct {
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

func (f *ListTimesheetsFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type TimesheetResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Title       *string `json:"title,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Status      Status  `json:"status"`
	CreatedBy   *string `json:"created_by,omitempty"`
	SubmittedBy *string `json:"submitted_by,omitempty"`
	SubmittedAt *string `json:"submitted_at,omitempty"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
	EntryCount  int64   `json:"entry_count"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`

	Entries []timeentry.TimeEntryResponse `json:"entries,omitempty"`
}

func ToResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:          t.ID,
		Date:        t.Date.Format("2006-01-02"),
		Title:       t.Title,
		Notes:       t.Notes,
		Status:      t.Status,
		CreatedBy:   t.CreatedBy,
		SubmittedBy: t.SubmittedBy,
		SubmittedAt: formatTimePtr(t.SubmittedAt),
		ApprovedBy:  t.ApprovedBy,
		ApprovedAt:  formatTimePtr(t.ApprovedAt),
		EntryCount:  t.EntryCount,
		CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

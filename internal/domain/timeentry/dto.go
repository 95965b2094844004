package timeentry

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

var maxHours = decimal.NewFromInt(24)

// HoursInRange checks the 0 < hours <= 24 invariant.
func HoursInRange(hours decimal.Decimal) bool {
	return hours.IsPositive() && hours.LessThanOrEqual(maxHours)
}

type CreateTimeEntryRequest struct {
	EmployeeID  string           `json:"employee_id"`
	ProjectID   string           `json:"project_id"`
	Date        string           `json:"date"` // YYYY-MM-DD
	Hours       decimal.Decimal  `json:"hours"`
	WorkType    string           `json:"work_type"`
	Description *string          `json:"description"`
	Rate        *decimal.Decimal `json:"rate"`
	StartTime   *string          `json:"start_time"` // RFC3339
	EndTime     *string          `json:"end_time"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if !HoursInRange(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be greater than 0 and at most 24",
		})
	}

	if validator.IsEmpty(r.WorkType) {
		r.WorkType = "REGULAR"
	}

	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must not be negative",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidDateTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkCreateRequest struct {
	Entries []CreateTimeEntryRequest `json:"entries"`
}

// Validate checks every entry before any write. The error names the
// offending employee so bulk callers can fix their payload.
func (r *BulkCreateRequest) Validate() error {
	if len(r.Entries) == 0 {
		return validator.ValidationErrors{{
			Field:   "entries",
			Message: "at least one entry is required",
		}}
	}

	for i := range r.Entries {
		if err := r.Entries[i].Validate(); err != nil {
			return validator.ValidationErrors{{
				Field:   fmt.Sprintf("entries[%d]", i),
				Message: fmt.Sprintf("invalid entry for employee %s: %s", r.Entries[i].EmployeeID, err.Error()),
			}}
		}
	}
	return nil
}

type UpdateTimeEntryRequest struct {
	ID          string           `json:"-"`
	ProjectID   *string          `json:"project_id"`
	Date        *string          `json:"date"`
	Hours       *decimal.Decimal `json:"hours"`
	WorkType    *string          `json:"work_type"`
	Description *string          `json:"description"`
	Rate        *decimal.Decimal `json:"rate"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ProjectID != nil && !validator.IsValidUUID(*r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if r.Hours != nil && !HoursInRange(*r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be greater than 0 and at most 24",
		})
	}

	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{
			Field:   "reason",
			Message: "reason is required",
		}}
	}
	return nil
}

type FromSignInRequest struct {
	SignInID  string `json:"-"`
	ProjectID string `json:"project_id"`
}

func (r *FromSignInRequest) Validate() error {
	if !validator.IsValidUUID(r.ProjectID) {
		return validator.ValidationErrors{{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		}}
	}
	return nil
}

type ListTimeEntriesFilter struct {
	Date           *time.Time
	EmployeeID     *string
	ProjectID      *string
	TimesheetID    *string
	UnapprovedOnly bool
	Page           int
	Limit          int
}

func (f *ListTimeEntriesFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
}

type TimeEntryResponse struct {
	ID              string           `json:"id"`
	EmployeeID      string           `json:"employee_id"`
	EmployeeName    *string          `json:"employee_name,omitempty"`
	EmployeeNumber  *string          `json:"employee_number,omitempty"`
	ProjectID       string           `json:"project_id"`
	ProjectName     *string          `json:"project_name,omitempty"`
	ProjectNumber   *string          `json:"project_number,omitempty"`
	TimesheetID     *string          `json:"timesheet_id,omitempty"`
	SignInID        *string          `json:"sign_in_id,omitempty"`
	Date            string           `json:"date"`
	Hours           decimal.Decimal  `json:"hours"`
	WorkType        string           `json:"work_type"`
	Description     *string          `json:"description,omitempty"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	TotalCost       *decimal.Decimal `json:"total_cost,omitempty"`
	Status          Status           `json:"status"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	ApprovedBy      *string          `json:"approved_by,omitempty"`
	ApprovedAt      *string          `json:"approved_at,omitempty"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

func ToResponse(e TimeEntry) TimeEntryResponse {
	var approvedAt *string
	if e.ApprovedAt != nil {
		formatted := e.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &formatted
	}

	return TimeEntryResponse{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		EmployeeName:    e.EmployeeName,
		EmployeeNumber:  e.EmployeeNumber,
		ProjectID:       e.ProjectID,
		ProjectName:     e.ProjectName,
		ProjectNumber:   e.ProjectNumber,
		TimesheetID:     e.TimesheetID,
		SignInID:        e.SignInID,
		Date:            e.Date.Format("2006-01-02"),
		Hours:           e.Hours,
		WorkType:        e.WorkType,
		Description:     e.Description,
		Rate:            e.Rate,
		TotalCost:       e.TotalCost,
		Status:          e.Status,
		RejectionReason: e.RejectionReason,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      approvedAt,
		CreatedAt:       e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

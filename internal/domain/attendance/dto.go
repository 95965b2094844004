package attendance

import (
	"fmt"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type SignInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Time       string  `json:"time"` // HH:MM or HH:MM:SS
	ProjectID  *string `json:"project_id"`
	Location   *string `json:"location"`
	Notes      *string `json:"notes"`
}

func (r *SignInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be HH:MM",
		})
	}

	if r.ProjectID != nil && !validator.IsValidUUID(*r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// At combines the validated date and time into a timestamp.
func (r *SignInRequest) At() time.Time {
	date, _ := validator.IsValidDate(r.Date)
	tod, _ := validator.IsValidTimeOfDay(r.Time)
	return CombineDateTime(date, tod)
}

type BulkSignInRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	ProjectID   *string  `json:"project_id"`
	Location    *string  `json:"location"`
}

func (r *BulkSignInRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee_id is required",
		})
	}

	for i, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("employee_ids[%d]", i),
				Message: "employee_id must be a valid UUID",
			})
		}
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *BulkSignInRequest) At() time.Time {
	date, _ := validator.IsValidDate(r.Date)
	tod, _ := validator.IsValidTimeOfDay(r.Time)
	return CombineDateTime(date, tod)
}

type SignOutRequest struct {
	SignInID string `json:"-"`
	Time     string `json:"time"`
}

func (r *SignOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidTimeOfDay(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSignInsFilter struct {
	Date       *time.Time
	EmployeeID *string
	ProjectID  *string
	ActiveOnly bool
	Page       int
	Limit      int
}

func (f *ListSignInsFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
}

type SignInResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	Date           string  `json:"date"`
	SignInTime     string  `json:"sign_in_time"`
	SignOutTime    *string `json:"sign_out_time,omitempty"`
	ProjectID      *string `json:"project_id,omitempty"`
	ProjectName    *string `json:"project_name,omitempty"`
	Location       *string `json:"location,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Active         bool    `json:"active"`
}

// BulkSignInResponse partitions a bulk request into created records and
// employees that were skipped because they already had an open session.
type BulkSignInResponse struct {
	SignedIn        []SignInResponse `json:"signed_in"`
	AlreadySignedIn []string         `json:"already_signed_in"`
}

func ToResponse(s SignIn) SignInResponse {
	var signOut *string
	if s.SignOutTime != nil {
		formatted := s.SignOutTime.Format("2006-01-02 15:04:05")
		signOut = &formatted
	}

	return SignInResponse{
		ID:             s.ID,
		EmployeeID:     s.EmployeeID,
		EmployeeName:   s.EmployeeName,
		EmployeeNumber: s.EmployeeNumber,
		Date:           s.Date.Format("2006-01-02"),
		SignInTime:     s.SignInTime.Format("2006-01-02 15:04:05"),
		SignOutTime:    signOut,
		ProjectID:      s.ProjectID,
		ProjectName:    s.ProjectName,
		Location:       s.Location,
		Notes:          s.Notes,
		Active:         s.IsOpen(),
	}
}

// CombineDateTime builds a UTC timestamp from a calendar date and a
// wall-clock time.
func CombineDateTime(date, tod time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0,
		time.UTC,
	)
}

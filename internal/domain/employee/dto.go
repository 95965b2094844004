package employee

import (
	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type ListEmployeesFilter struct {
	Search           string // matches employee number, first name, last name
	EmploymentStatus *EmploymentStatus
	ActiveOnly       bool
	Page             int
	Limit            int
}

func (f *ListEmployeesFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type CreateEmployeeRequest struct {
	EmployeeNumber    string           `json:"employee_number"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	JobClassification string           `json:"job_classification"`
	UserID            *string          `json:"user_id"`
	HourlyRate        *decimal.Decimal `json:"hourly_rate"`
	EmploymentStatus  EmploymentStatus `json:"employment_status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeNumber(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee_number must look like EMP-0042",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.JobClassification) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_classification",
			Message: "job_classification is required",
		})
	}

	if r.UserID != nil && !validator.IsValidUUID(*r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if !isValidEmploymentStatus(r.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status is not recognized",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string            `json:"-"`
	FirstName         *string           `json:"first_name"`
	LastName          *string           `json:"last_name"`
	JobClassification *string           `json:"job_classification"`
	UserID            *string           `json:"user_id"`
	HourlyRate        *decimal.Decimal  `json:"hourly_rate"`
	EmploymentStatus  *EmploymentStatus `json:"employment_status"`
	IsActive          *bool             `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if r.EmploymentStatus != nil && !isValidEmploymentStatus(*r.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status is not recognized",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isValidEmploymentStatus(s EmploymentStatus) bool {
	for _, valid := range ValidEmploymentStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

type EmployeeResponse struct {
	ID                string           `json:"id"`
	EmployeeNumber    string           `json:"employee_number"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	JobClassification string           `json:"job_classification"`
	UserID            *string          `json:"user_id,omitempty"`
	UserEmail         *string          `json:"user_email,omitempty"`
	HourlyRate        *decimal.Decimal `json:"hourly_rate,omitempty"`
	EmploymentStatus  EmploymentStatus `json:"employment_status"`
	IsActive          bool             `json:"is_active"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		EmployeeNumber:    e.EmployeeNumber,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		JobClassification: e.JobClassification,
		UserID:            e.UserID,
		UserEmail:         e.UserEmail,
		HourlyRate:        e.HourlyRate,
		EmploymentStatus:  e.EmploymentStatus,
		IsActive:          e.IsActive,
		CreatedAt:         e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:         e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

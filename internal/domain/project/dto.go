package project

import (
	"fmt"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type ListProjectsFilter struct {
	Search   string // matches project number, name, address
	Status   *Status
	ClientID *string
	Page     int
	Limit    int
}

func (f *ListProjectsFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type CreateProjectRequest struct {
	ProjectNumber string  `json:"project_number"`
	Name          string  `json:"name"`
	ClientID      *string `json:"client_id"`
	Status        Status  `json:"status"`
	Address       *string `json:"address"`
	Description   *string `json:"description"`
	StartDate     *string `json:"start_date"` // YYYY-MM-DD
	EndDate       *string `json:"end_date"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidProjectNumber(r.ProjectNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_number",
			Message: "project_number must look like P-2024-013",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Status == "" {
		r.Status = StatusPlanning
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not recognized",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	ClientID    *string `json:"client_id"`
	Status      *Status `json:"status"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not recognized",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignMembersRequest struct {
	ProjectID string         `json:"-"`
	Members   []MemberAssign `json:"members"`
}

type MemberAssign struct {
	EmployeeID string  `json:"employee_id"`
	SiteRole   *string `json:"site_role"`
}

func (r *AssignMembersRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, m := range r.Members {
		if !validator.IsValidUUID(m.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("members[%d].employee_id", i),
				Message: "employee_id must be a valid UUID",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID            string           `json:"id"`
	ProjectNumber string           `json:"project_number"`
	Name          string           `json:"name"`
	ClientID      *string          `json:"client_id,omitempty"`
	ClientName    *string          `json:"client_name,omitempty"`
	Status        Status           `json:"status"`
	Address       *string          `json:"address,omitempty"`
	Description   *string          `json:"description,omitempty"`
	StartDate     *string          `json:"start_date,omitempty"`
	EndDate       *string          `json:"end_date,omitempty"`
	Members       []MemberResponse `json:"members,omitempty"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

type MemberResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	SiteRole       *string `json:"site_role,omitempty"`
	AssignedAt     string  `json:"assigned_at"`
}

func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		ProjectNumber: p.ProjectNumber,
		Name:          p.Name,
		ClientID:      p.ClientID,
		ClientName:    p.ClientName,
		Status:        p.Status,
		Address:       p.Address,
		Description:   p.Description,
		StartDate:     formatDatePtr(p.StartDate),
		EndDate:       formatDatePtr(p.EndDate),
		CreatedAt:     p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToMemberResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		EmployeeID:     m.EmployeeID,
		EmployeeName:   m.EmployeeName,
		EmployeeNumber: m.EmployeeNumber,
		SiteRole:       m.SiteRole,
		AssignedAt:     m.AssignedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

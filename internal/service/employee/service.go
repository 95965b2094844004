package employee

import (
	"context"

	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, int64, error) {
	filter.Normalize()

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, total, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := req.EmploymentStatus
	if status == "" {
		status = employee.EmploymentFullTime
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeNumber:    req.EmployeeNumber,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		JobClassification: req.JobClassification,
		UserID:            req.UserID,
		HourlyRate:        req.HourlyRate,
		EmploymentStatus:  status,
		IsActive:          true,
		CreatedBy:         &actor.UserID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.JobClassification != nil {
		existing.JobClassification = *req.JobClassification
	}
	if req.UserID != nil {
		if *req.UserID == "" {
			existing.UserID = nil
		} else {
			existing.UserID = req.UserID
		}
	}
	if req.HourlyRate != nil {
		existing.HourlyRate = req.HourlyRate
	}
	if req.EmploymentStatus != nil {
		existing.EmploymentStatus = *req.EmploymentStatus
		if *req.EmploymentStatus == employee.EmploymentTerminated {
			existing.IsActive = false
		}
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedBy = &actor.UserID

	if err := s.EmployeeRepository.Update(ctx, existing); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.EmployeeRepository.SoftDelete(ctx, id, actor.UserID)
}

package timeentry

import (
	"context"
	"errors"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/domain/attendance"
	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timesheet"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type TimeEntryServiceImpl struct {
	timeentry.TimeEntryRepository
	timesheet.TimesheetRepository
	employee.EmployeeRepository
	project.ProjectRepository
	attendance.SignInRepository
}

func NewTimeEntryService(
	timeEntryRepository timeentry.TimeEntryRepository,
	timesheetRepository timesheet.TimesheetRepository,
	employeeRepository employee.EmployeeRepository,
	projectRepository project.ProjectRepository,
	signInRepository attendance.SignInRepository,
) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		TimeEntryRepository: timeEntryRepository,
		TimesheetRepository: timesheetRepository,
		EmployeeRepository:  employeeRepository,
		ProjectRepository:   projectRepository,
		SignInRepository:    signInRepository,
	}
}

// guardTimesheet rejects writes against entries owned by an approved
// timesheet.
func (s *TimeEntryServiceImpl) guardTimesheet(ctx context.Context, timesheetID *string) error {
	if timesheetID == nil {
		return nil
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, *timesheetID)
	if err != nil {
		return err
	}
	if ts.Status == timesheet.StatusApproved {
		return timeentry.ErrTimesheetLocked
	}

	return nil
}

func (s *TimeEntryServiceImpl) buildEntry(ctx context.Context, req timeentry.CreateTimeEntryRequest, createdBy string) (timeentry.TimeEntry, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeentry.TimeEntry{}, timeentry.ErrEmployeeNotFound
		}
		return timeentry.TimeEntry{}, err
	}

	if _, err := s.ProjectRepository.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return timeentry.TimeEntry{}, timeentry.ErrProjectNotFound
		}
		return timeentry.TimeEntry{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	// Entry-level rate wins; otherwise fall back to the employee default.
	rate := req.Rate
	if rate == nil {
		rate = emp.HourlyRate
	}

	var startTime, endTime *time.Time
	if req.StartTime != nil {
		if t, ok := validator.IsValidDateTime(*req.StartTime); ok {
			startTime = &t
		}
	}
	if req.EndTime != nil {
		if t, ok := validator.IsValidDateTime(*req.EndTime); ok {
			endTime = &t
		}
	}

	return timeentry.TimeEntry{
		EmployeeID:  req.EmployeeID,
		ProjectID:   req.ProjectID,
		Date:        date,
		Hours:       req.Hours,
		WorkType:    req.WorkType,
		Description: req.Description,
		Rate:        rate,
		TotalCost:   timeentry.ComputeTotalCost(req.Hours, rate),
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      timeentry.StatusPending,
		CreatedBy:   &createdBy,
	}, nil
}

// Create implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Create(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.buildEntry(ctx, req, actor.UserID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	created, err := s.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// BulkCreate implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) BulkCreate(ctx context.Context, req timeentry.BulkCreateRequest) ([]timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve every entry's references before the first write so a bad
	// entry anywhere in the batch persists nothing.
	entries := make([]timeentry.TimeEntry, 0, len(req.Entries))
	for _, entryReq := range req.Entries {
		entry, err := s.buildEntry(ctx, entryReq, actor.UserID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		created, err := s.TimeEntryRepository.Create(ctx, entry)
		if err != nil {
			return nil, err
		}

		resp, err := s.Get(ctx, created.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// Update implements timeentry.TimeEntryService. Hours or rate changes
// recompute total cost; entries under an approved timesheet are locked.
func (s *TimeEntryServiceImpl) Update(ctx context.Context, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	existing, err := s.TimeEntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if err := s.guardTimesheet(ctx, existing.TimesheetID); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if req.ProjectID != nil {
		if _, err := s.ProjectRepository.GetByID(ctx, *req.ProjectID); err != nil {
			return timeentry.TimeEntryResponse{}, timeentry.ErrProjectNotFound
		}
		existing.ProjectID = *req.ProjectID
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		existing.Date = date
	}
	if req.Hours != nil {
		existing.Hours = *req.Hours
	}
	if req.WorkType != nil {
		existing.WorkType = *req.WorkType
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Rate != nil {
		existing.Rate = req.Rate
	}
	existing.TotalCost = timeentry.ComputeTotalCost(existing.Hours, existing.Rate)

	if err := s.TimeEntryRepository.Update(ctx, existing); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Approve implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Approve(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	existing, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if existing.Status == timeentry.StatusApproved {
		// Approving twice is a no-op, not an error.
		return timeentry.ToResponse(existing), nil
	}

	now := time.Now()
	existing.Status = timeentry.StatusApproved
	existing.ApprovedBy = &actor.UserID
	existing.ApprovedAt = &now
	existing.RejectionReason = nil

	if err := s.TimeEntryRepository.Update(ctx, existing); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return s.Get(ctx, id)
}

// Reject implements timeentry.TimeEntryService. The reason lands in a
// dedicated column, leaving the description untouched.
func (s *TimeEntryServiceImpl) Reject(ctx context.Context, req timeentry.RejectRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	existing, err := s.TimeEntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if existing.Status == timeentry.StatusApproved {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyProcessed
	}

	existing.Status = timeentry.StatusRejected
	existing.RejectionReason = &req.Reason
	existing.ApprovedBy = nil
	existing.ApprovedAt = nil

	if err := s.TimeEntryRepository.Update(ctx, existing); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.guardTimesheet(ctx, existing.TimesheetID); err != nil {
		return err
	}

	return s.TimeEntryRepository.Delete(ctx, id)
}

// CreateFromSignIn implements timeentry.TimeEntryService. Hours are the
// sign-in/out span in minutes divided by 60, rounded to 2 decimals.
func (s *TimeEntryServiceImpl) CreateFromSignIn(ctx context.Context, req timeentry.FromSignInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	record, err := s.SignInRepository.GetByID(ctx, req.SignInID)
	if err != nil {
		if errors.Is(err, attendance.ErrSignInNotFound) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrSignInNotFound
		}
		return timeentry.TimeEntryResponse{}, err
	}

	if record.SignOutTime == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrNotSignedOut
	}

	if _, err := s.ProjectRepository.GetByID(ctx, req.ProjectID); err != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrProjectNotFound
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrEmployeeNotFound
	}

	hours := timeentry.HoursBetween(record.SignInTime, *record.SignOutTime)
	if !timeentry.HoursInRange(hours) {
		return timeentry.TimeEntryResponse{}, timeentry.ErrHoursOutOfRange
	}

	created, err := s.TimeEntryRepository.Create(ctx, timeentry.TimeEntry{
		EmployeeID: record.EmployeeID,
		ProjectID:  req.ProjectID,
		SignInID:   &record.ID,
		Date:       record.Date,
		Hours:      hours,
		WorkType:   "REGULAR",
		Rate:       emp.HourlyRate,
		TotalCost:  timeentry.ComputeTotalCost(hours, emp.HourlyRate),
		StartTime:  &record.SignInTime,
		EndTime:    record.SignOutTime,
		Status:     timeentry.StatusPending,
		CreatedBy:  &actor.UserID,
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// List implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) List(ctx context.Context, filter timeentry.ListTimeEntriesFilter) ([]timeentry.TimeEntryResponse, int64, error) {
	filter.Normalize()

	entries, total, err := s.TimeEntryRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, timeentry.ToResponse(e))
	}

	return responses, total, nil
}

// Get implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Get(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	e, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return timeentry.ToResponse(e), nil
}

package attendance

import (
	"context"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/domain/attendance"
	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type SignInServiceImpl struct {
	attendance.SignInRepository
	employee.EmployeeRepository
}

func NewSignInService(
	signInRepository attendance.SignInRepository,
	employeeRepository employee.EmployeeRepository,
) attendance.SignInService {
	return &SignInServiceImpl{
		SignInRepository:   signInRepository,
		EmployeeRepository: employeeRepository,
	}
}

// SignIn implements attendance.SignInService. At most one open session
// may exist per employee per date.
func (s *SignInServiceImpl) SignIn(ctx context.Context, req attendance.SignInRequest) (attendance.SignInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SignInResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.SignInResponse{}, attendance.ErrEmployeeNotFound
	}

	date, _ := validator.IsValidDate(req.Date)

	open, err := s.SignInRepository.GetOpen(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.SignInResponse{}, err
	}
	if open != nil {
		return attendance.SignInResponse{}, attendance.ErrAlreadySignedIn
	}

	created, err := s.SignInRepository.Create(ctx, attendance.SignIn{
		EmployeeID: req.EmployeeID,
		Date:       date,
		SignInTime: req.At(),
		ProjectID:  req.ProjectID,
		Location:   req.Location,
		Notes:      req.Notes,
		SignedInBy: &actor.UserID,
	})
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	full, err := s.SignInRepository.GetByID(ctx, created.ID)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	return attendance.ToResponse(full), nil
}

// BulkSignIn implements attendance.SignInService. Employees with an open
// session are reported back rather than failing the whole batch.
func (s *SignInServiceImpl) BulkSignIn(ctx context.Context, req attendance.BulkSignInRequest) (attendance.BulkSignInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkSignInResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.BulkSignInResponse{}, err
	}

	found, err := s.EmployeeRepository.GetByIDs(ctx, req.EmployeeIDs)
	if err != nil {
		return attendance.BulkSignInResponse{}, err
	}
	foundIDs := make(map[string]struct{}, len(found))
	for _, e := range found {
		foundIDs[e.ID] = struct{}{}
	}
	for _, id := range req.EmployeeIDs {
		if _, ok := foundIDs[id]; !ok {
			return attendance.BulkSignInResponse{}, attendance.ErrEmployeeNotFound
		}
	}

	date, _ := validator.IsValidDate(req.Date)

	openIDs, err := s.SignInRepository.OpenEmployeeIDs(ctx, req.EmployeeIDs, date)
	if err != nil {
		return attendance.BulkSignInResponse{}, err
	}
	openSet := make(map[string]struct{}, len(openIDs))
	for _, id := range openIDs {
		openSet[id] = struct{}{}
	}

	resp := attendance.BulkSignInResponse{
		SignedIn:        []attendance.SignInResponse{},
		AlreadySignedIn: []string{},
	}

	at := req.At()
	for _, employeeID := range req.EmployeeIDs {
		if _, open := openSet[employeeID]; open {
			resp.AlreadySignedIn = append(resp.AlreadySignedIn, employeeID)
			continue
		}

		created, err := s.SignInRepository.Create(ctx, attendance.SignIn{
			EmployeeID: employeeID,
			Date:       date,
			SignInTime: at,
			ProjectID:  req.ProjectID,
			Location:   req.Location,
			SignedInBy: &actor.UserID,
		})
		if err != nil {
			return attendance.BulkSignInResponse{}, err
		}

		full, err := s.SignInRepository.GetByID(ctx, created.ID)
		if err != nil {
			return attendance.BulkSignInResponse{}, err
		}
		resp.SignedIn = append(resp.SignedIn, attendance.ToResponse(full))
	}

	if len(resp.SignedIn) == 0 {
		return attendance.BulkSignInResponse{}, attendance.ErrNoneToSignIn
	}

	return resp, nil
}

// SignOut implements attendance.SignInService.
func (s *SignInServiceImpl) SignOut(ctx context.Context, req attendance.SignOutRequest) (attendance.SignInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SignInResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	record, err := s.SignInRepository.GetByID(ctx, req.SignInID)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	if !record.IsOpen() {
		return attendance.SignInResponse{}, attendance.ErrAlreadySignedOut
	}

	tod, _ := validator.IsValidTimeOfDay(req.Time)
	signOutTime := attendance.CombineDateTime(record.Date, tod)

	if !signOutTime.After(record.SignInTime) {
		return attendance.SignInResponse{}, attendance.ErrSignOutBeforeIn
	}

	if err := s.SignInRepository.SetSignOut(ctx, record.ID, signOutTime, actor.UserID); err != nil {
		return attendance.SignInResponse{}, err
	}

	full, err := s.SignInRepository.GetByID(ctx, record.ID)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	return attendance.ToResponse(full), nil
}

func (s *SignInServiceImpl) list(ctx context.Context, filter attendance.ListSignInsFilter) ([]attendance.SignInResponse, int64, error) {
	filter.Normalize()

	records, total, err := s.SignInRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.SignInResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}

	return responses, total, nil
}

// List implements attendance.SignInService.
func (s *SignInServiceImpl) List(ctx context.Context, filter attendance.ListSignInsFilter) ([]attendance.SignInResponse, int64, error) {
	return s.list(ctx, filter)
}

// ListToday implements attendance.SignInService.
func (s *SignInServiceImpl) ListToday(ctx context.Context) ([]attendance.SignInResponse, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	responses, _, err := s.list(ctx, attendance.ListSignInsFilter{Date: &today})
	return responses, err
}

// ListActive implements attendance.SignInService.
func (s *SignInServiceImpl) ListActive(ctx context.Context) ([]attendance.SignInResponse, error) {
	responses, _, err := s.list(ctx, attendance.ListSignInsFilter{ActiveOnly: true})
	return responses, err
}

// History implements attendance.SignInService.
func (s *SignInServiceImpl) History(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.SignInResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, attendance.ErrEmployeeNotFound
	}

	records, err := s.SignInRepository.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.SignInResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}

	return responses, nil
}

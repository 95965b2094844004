package dailylog

import (
	"context"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/domain/dailylog"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type DailyLogServiceImpl struct {
	dailylog.DailyLogRepository
	project.ProjectRepository
}

func NewDailyLogService(
	dailyLogRepository dailylog.DailyLogRepository,
	projectRepository project.ProjectRepository,
) dailylog.DailyLogService {
	return &DailyLogServiceImpl{
		DailyLogRepository: dailyLogRepository,
		ProjectRepository:  projectRepository,
	}
}

func (s *DailyLogServiceImpl) list(ctx context.Context, filter dailylog.ListDailyLogsFilter) ([]dailylog.DailyLogResponse, int64, error) {
	filter.Normalize()

	logs, total, err := s.DailyLogRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dailylog.DailyLogResponse, 0, len(logs))
	for _, d := range logs {
		responses = append(responses, dailylog.ToResponse(d))
	}

	return responses, total, nil
}

// List implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) List(ctx context.Context, filter dailylog.ListDailyLogsFilter) ([]dailylog.DailyLogResponse, int64, error) {
	return s.list(ctx, filter)
}

// ListByProject implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) ListByProject(ctx context.Context, projectID string, filter dailylog.ListDailyLogsFilter) ([]dailylog.DailyLogResponse, int64, error) {
	if _, err := s.ProjectRepository.GetByID(ctx, projectID); err != nil {
		return nil, 0, dailylog.ErrProjectNotFound
	}

	filter.ProjectID = &projectID
	return s.list(ctx, filter)
}

// ListByDateRange implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) ListByDateRange(ctx context.Context, start, end time.Time, filter dailylog.ListDailyLogsFilter) ([]dailylog.DailyLogResponse, int64, error) {
	filter.StartDate = &start
	filter.EndDate = &end
	return s.list(ctx, filter)
}

// Get implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Get(ctx context.Context, id string) (dailylog.DailyLogResponse, error) {
	d, err := s.DailyLogRepository.GetByID(ctx, id)
	if err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	return dailylog.ToResponse(d), nil
}

// Create implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Create(ctx context.Context, req dailylog.CreateDailyLogRequest) (dailylog.DailyLogResponse, error) {
	if err := req.Validate(); err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.DailyLogRepository.Create(ctx, dailylog.DailyLog{
		ProjectID:     req.ProjectID,
		Date:          date,
		Weather:       req.Weather,
		CrewCount:     req.CrewCount,
		WorkPerformed: req.WorkPerformed,
		Issues:        req.Issues,
		Notes:         req.Notes,
		CreatedBy:     &actor.UserID,
	})
	if err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Update implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Update(ctx context.Context, req dailylog.UpdateDailyLogRequest) (dailylog.DailyLogResponse, error) {
	if err := req.Validate(); err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	existing, err := s.DailyLogRepository.GetByID(ctx, req.ID)
	if err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	if req.Weather != nil {
		existing.Weather = req.Weather
	}
	if req.CrewCount != nil {
		existing.CrewCount = req.CrewCount
	}
	if req.WorkPerformed != nil {
		existing.WorkPerformed = *req.WorkPerformed
	}
	if req.Issues != nil {
		existing.Issues = req.Issues
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	existing.UpdatedBy = &actor.UserID

	if err := s.DailyLogRepository.Update(ctx, existing); err != nil {
		return dailylog.DailyLogResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.DailyLogRepository.SoftDelete(ctx, id, actor.UserID)
}

// Stats implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Stats(ctx context.Context, start, end time.Time) (dailylog.Stats, error) {
	return s.DailyLogRepository.Stats(ctx, start, end)
}

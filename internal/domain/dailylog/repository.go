package dailylog

import (
	"context"
	"time"
)

type DailyLogRepository interface {
	Create(ctx context.Context, d DailyLog) (DailyLog, error)
	GetByID(ctx context.Context, id string) (DailyLog, error)
	List(ctx context.Context, filter ListDailyLogsFilter) ([]DailyLog, int64, error)
	Update(ctx context.Context, d DailyLog) error
	SoftDelete(ctx context.Context, id string, deletedBy string) error
	Stats(ctx context.Context, start, end time.Time) (Stats, error)
}

type DailyLogService interface {
	List(ctx context.Context, filter ListDailyLogsFilter) ([]DailyLogResponse, int64, error)
	ListByProject(ctx context.Context, projectID string, filter ListDailyLogsFilter) ([]DailyLogResponse, int64, error)
	ListByDateRange(ctx context.Context, start, end time.Time, filter ListDailyLogsFilter) ([]DailyLogResponse, int64, error)
	Get(ctx context.Context, id string) (DailyLogResponse, error)
	Create(ctx context.Context, req CreateDailyLogRequest) (DailyLogResponse, error)
	Update(ctx context.Context, req UpdateDailyLogRequest) (DailyLogResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, start, end time.Time) (Stats, error)
}

package dailylog

import (
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

type ListDailyLogsFilter struct {
	Search    string // matches work performed, issues, notes
	ProjectID *string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

func (f *ListDailyLogsFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type CreateDailyLogRequest struct {
	ProjectID     string   `json:"project_id"`
	Date          string   `json:"date"` // YYYY-MM-DD
	Weather       *Weather `json:"weather"`
	CrewCount     *int     `json:"crew_count"`
	WorkPerformed string   `json:"work_performed"`
	Issues        *string  `json:"issues"`
	Notes         *string  `json:"notes"`
}

func (r *CreateDailyLogRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if r.Weather != nil && !IsValidWeather(*r.Weather) {
		errs = append(errs, validator.ValidationError{
			Field:   "weather",
			Message: "weather is not recognized",
		})
	}

	if r.CrewCount != nil && *r.CrewCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "crew_count",
			Message: "crew_count must not be negative",
		})
	}

	if validator.IsEmpty(r.WorkPerformed) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_performed",
			Message: "work_performed is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDailyLogRequest struct {
	ID            string   `json:"-"`
	Weather       *Weather `json:"weather"`
	CrewCount     *int     `json:"crew_count"`
	WorkPerformed *string  `json:"work_performed"`
	Issues        *string  `json:"issues"`
	Notes         *string  `json:"notes"`
}

func (r *UpdateDailyLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Weather != nil && !IsValidWeather(*r.Weather) {
		errs = append(errs, validator.ValidationError{
			Field:   "weather",
			Message: "weather is not recognized",
		})
	}

	if r.WorkPerformed != nil && validator.IsEmpty(*r.WorkPerformed) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_performed",
			Message: "work_performed must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyLogResponse struct {
	ID            string   `json:"id"`
	ProjectID     string   `json:"project_id"`
	ProjectName   *string  `json:"project_name,omitempty"`
	ProjectNumber *string  `json:"project_number,omitempty"`
	Date          string   `json:"date"`
	Weather       *Weather `json:"weather,omitempty"`
	CrewCount     *int     `json:"crew_count,omitempty"`
	WorkPerformed string   `json:"work_performed"`
	Issues        *string  `json:"issues,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// Stats aggregates daily logs over a date range.
type Stats struct {
	TotalLogs      int64             `json:"total_logs"`
	LogsByProject  []ProjectCount    `json:"logs_by_project"`
	LogsByWeather  map[Weather]int64 `json:"logs_by_weather"`
	TotalCrewCount int64             `json:"total_crew_count"`
}

type ProjectCount struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Count       int64  `json:"count"`
}

func ToResponse(d DailyLog) DailyLogResponse {
	return DailyLogResponse{
		ID:            d.ID,
		ProjectID:     d.ProjectID,
		ProjectName:   d.ProjectName,
		ProjectNumber: d.ProjectNumber,
		Date:          d.Date.Format("2006-01-02"),
		Weather:       d.Weather,
		CrewCount:     d.CrewCount,
		WorkPerformed: d.WorkPerformed,
		Issues:        d.Issues,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     d.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

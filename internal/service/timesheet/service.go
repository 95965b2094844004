package timesheet

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timesheet"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
	"github.com/sitehub/sitehub-backend-go/internal/repository/postgresql"
	"github.com/xuri/excelize/v2"
)

type TimesheetServiceImpl struct {
	db *database.DB
	// runTx wraps the multi-step writes; replaceable in tests.
	runTx func(ctx context.Context, fn func(context.Context) error) error
	timesheet.TimesheetRepository
	timeentry.TimeEntryRepository
	employee.EmployeeRepository
	project.ProjectRepository
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepository timesheet.TimesheetRepository,
	timeEntryRepository timeentry.TimeEntryRepository,
	employeeRepository employee.EmployeeRepository,
	projectRepository project.ProjectRepository,
) timesheet.TimesheetService {
	s := &TimesheetServiceImpl{
		db:                  db,
		TimesheetRepository: timesheetRepository,
		TimeEntryRepository: timeEntryRepository,
		EmployeeRepository:  employeeRepository,
		ProjectRepository:   projectRepository,
	}
	s.runTx = func(ctx context.Context, fn func(context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

func (s *TimesheetServiceImpl) buildEntry(ctx context.Context, req timeentry.CreateTimeEntryRequest, timesheetID string, createdBy string) (timeentry.TimeEntry, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeentry.TimeEntry{}, timeentry.ErrEmployeeNotFound
	}

	if _, err := s.ProjectRepository.GetByID(ctx, req.ProjectID); err != nil {
		return timeentry.TimeEntry{}, timeentry.ErrProjectNotFound
	}

	date, _ := validator.IsValidDate(req.Date)

	rate := req.Rate
	if rate == nil {
		rate = emp.HourlyRate
	}

	return timeentry.TimeEntry{
		EmployeeID:  req.EmployeeID,
		ProjectID:   req.ProjectID,
		TimesheetID: &timesheetID,
		Date:        date,
		Hours:       req.Hours,
		WorkType:    req.WorkType,
		Description: req.Description,
		Rate:        rate,
		TotalCost:   timeentry.ComputeTotalCost(req.Hours, rate),
		Status:      timeentry.StatusPending,
		CreatedBy:   &createdBy,
	}, nil
}

// Create implements timesheet.TimesheetService. The header and its
// entries commit atomically.
func (s *TimesheetServiceImpl) Create(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	var created timesheet.Timesheet
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.TimesheetRepository.Create(txCtx, timesheet.Timesheet{
			Date:      date,
			Title:     req.Title,
			Notes:     req.Notes,
			Status:    timesheet.StatusDraft,
			CreatedBy: &actor.UserID,
		})
		if err != nil {
			return err
		}

		for _, entryReq := range req.Entries {
			entry, err := s.buildEntry(txCtx, entryReq, created.ID, actor.UserID)
			if err != nil {
				return err
			}
			if _, err := s.TimeEntryRepository.Create(txCtx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Update implements timesheet.TimesheetService. Supplying entries
// replaces the full set inside one transaction. Approved timesheets are
// immutable.
func (s *TimesheetServiceImpl) Update(ctx context.Context, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	existing, err := s.TimesheetRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if existing.Status == timesheet.StatusApproved {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetLocked
	}

	if req.Title != nil {
		existing.Title = req.Title
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.TimesheetRepository.Update(txCtx, existing); err != nil {
			return err
		}

		if req.Entries == nil {
			return nil
		}

		if err := s.TimeEntryRepository.DeleteByTimesheet(txCtx, existing.ID); err != nil {
			return err
		}
		for _, entryReq := range req.Entries {
			entry, err := s.buildEntry(txCtx, entryReq, existing.ID, actor.UserID)
			if err != nil {
				return err
			}
			if _, err := s.TimeEntryRepository.Create(txCtx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Submit implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Submit(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	existing, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if existing.Status == timesheet.StatusApproved {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetLocked
	}

	now := time.Now()
	existing.Status = timesheet.StatusSubmitted
	existing.SubmittedBy = &actor.UserID
	existing.SubmittedAt = &now

	if err := s.TimesheetRepository.Update(ctx, existing); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.Get(ctx, id)
}

// Approve implements timesheet.TimesheetService. The header flip and the
// cascade to every owned entry commit in one transaction; approving an
// already approved timesheet is a no-op.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	existing, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if existing.Status == timesheet.StatusApproved {
		return timesheet.ToResponse(existing), nil
	}

	now := time.Now()
	existing.Status = timesheet.StatusApproved
	existing.ApprovedBy = &actor.UserID
	existing.ApprovedAt = &now

	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.TimesheetRepository.Update(txCtx, existing); err != nil {
			return err
		}
		return s.TimeEntryRepository.ApproveByTimesheet(txCtx, id, actor.UserID, now)
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.Get(ctx, id)
}

// Delete implements timesheet.TimesheetService. Only drafts delete; the
// owned entries go with the header.
func (s *TimesheetServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.Status != timesheet.StatusDraft {
		return timesheet.ErrDeleteNonDraft
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.TimeEntryRepository.DeleteByTimesheet(txCtx, id); err != nil {
			return err
		}
		return s.TimesheetRepository.Delete(txCtx, id)
	})
}

// List implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) List(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.TimesheetResponse, int64, error) {
	filter.Normalize()

	timesheets, total, err := s.TimesheetRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for _, t := range timesheets {
		responses = append(responses, timesheet.ToResponse(t))
	}

	return responses, total, nil
}

// Get implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Get(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	t, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.ToResponse(t), nil
}

var exportHeaders = []string{"Employee", "Employee #", "Project", "Date", "Work Type", "Hours", "Rate", "Total Cost", "Status", "Description"}

// Export implements timesheet.TimesheetService, rendering the timesheet
// and its entries as an XLSX workbook.
func (s *TimesheetServiceImpl) Export(ctx context.Context, id string) (string, []byte, error) {
	t, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	entries, err := s.TimeEntryRepository.ListByTimesheet(ctx, id)
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timesheet"
	f.SetSheetName("Sheet1", sheet)

	title := "Timesheet"
	if t.Title != nil {
		title = *t.Title
	}
	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s - %s (%s)", title, t.Date.Format("2006-01-02"), t.Status))

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 4
	for _, e := range entries {
		values := []interface{}{
			stringOrEmpty(e.EmployeeName),
			stringOrEmpty(e.EmployeeNumber),
			stringOrEmpty(e.ProjectName),
			e.Date.Format("2006-01-02"),
			e.WorkType,
			e.Hours.InexactFloat64(),
			decimalOrEmpty(e.Rate),
			decimalOrEmpty(e.TotalCost),
			string(e.Status),
			stringOrEmpty(e.Description),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("timesheet-%s.xlsx", t.Date.Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decimalOrEmpty(d *decimal.Decimal) interface{} {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}

package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/domain/payroll"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	project.ProjectRepository
}

func NewPayrollService(
	payrollRepository payroll.PayrollRepository,
	projectRepository project.ProjectRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepository,
		ProjectRepository: projectRepository,
	}
}

const timestampFormat = "2006-01-02 15:04:05"

// DailyReport implements payroll.PayrollService. Each employee's hours
// split at the 8-hour daily threshold.
func (s *PayrollServiceImpl) DailyReport(ctx context.Context, date time.Time) (payroll.DailyReport, error) {
	entries, err := s.PayrollRepository.EntriesForRange(ctx, date, date)
	if err != nil {
		return payroll.DailyReport{}, err
	}

	signIns, err := s.PayrollRepository.SignInsForDate(ctx, date)
	if err != nil {
		return payroll.DailyReport{}, err
	}

	// First sign-in and last sign-out of each employee's day.
	firstIn := make(map[string]time.Time)
	lastOut := make(map[string]time.Time)
	for _, si := range signIns {
		if existing, ok := firstIn[si.EmployeeID]; !ok || si.SignInTime.Before(existing) {
			firstIn[si.EmployeeID] = si.SignInTime
		}
		if si.SignOutTime != nil {
			if existing, ok := lastOut[si.EmployeeID]; !ok || si.SignOutTime.After(existing) {
				lastOut[si.EmployeeID] = *si.SignOutTime
			}
		}
	}

	type acc struct {
		name     string
		number   string
		projects map[string]*payroll.ProjectHours
		total    decimal.Decimal
	}
	byEmployee := make(map[string]*acc)

	for _, row := range entries {
		a, ok := byEmployee[row.EmployeeID]
		if !ok {
			a = &acc{
				name:     row.EmployeeName,
				number:   row.EmployeeNumber,
				projects: make(map[string]*payroll.ProjectHours),
				total:    decimal.Zero,
			}
			byEmployee[row.EmployeeID] = a
		}

		ph, ok := a.projects[row.ProjectID]
		if !ok {
			ph = &payroll.ProjectHours{ProjectID: row.ProjectID, ProjectName: row.ProjectName, Hours: decimal.Zero}
			a.projects[row.ProjectID] = ph
		}
		ph.Hours = ph.Hours.Add(row.Hours)
		a.total = a.total.Add(row.Hours)
	}

	report := payroll.DailyReport{
		Date:          date.Format("2006-01-02"),
		Employees:     []payroll.EmployeeDailyReport{},
		TotalHours:    decimal.Zero,
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		GeneratedAt:   time.Now().Format(timestampFormat),
	}

	for employeeID, a := range byEmployee {
		regular, overtime := payroll.SplitDaily(a.total)

		emp := payroll.EmployeeDailyReport{
			EmployeeID:     employeeID,
			EmployeeName:   a.name,
			EmployeeNumber: a.number,
			Projects:       []payroll.ProjectHours{},
			TotalHours:     a.total,
			RegularHours:   regular,
			OvertimeHours:  overtime,
		}
		for _, ph := range a.projects {
			emp.Projects = append(emp.Projects, *ph)
		}
		sort.Slice(emp.Projects, func(i, j int) bool {
			return emp.Projects[i].ProjectName < emp.Projects[j].ProjectName
		})

		if t, ok := firstIn[employeeID]; ok {
			formatted := t.Format(timestampFormat)
			emp.SignInTime = &formatted
		}
		if t, ok := lastOut[employeeID]; ok {
			formatted := t.Format(timestampFormat)
			emp.SignOutTime = &formatted
		}

		report.Employees = append(report.Employees, emp)
		report.TotalHours = report.TotalHours.Add(a.total)
		report.RegularHours = report.RegularHours.Add(regular)
		report.OvertimeHours = report.OvertimeHours.Add(overtime)
	}

	sort.Slice(report.Employees, func(i, j int) bool {
		return report.Employees[i].EmployeeNumber < report.Employees[j].EmployeeNumber
	})
	report.EmployeeCount = len(report.Employees)

	return report, nil
}

// WeeklyReport implements payroll.PayrollService. The week total splits
// at 40 hours regardless of how any single day went.
func (s *PayrollServiceImpl) WeeklyReport(ctx context.Context, start, end time.Time) (payroll.WeeklyReport, error) {
	if end.Before(start) {
		return payroll.WeeklyReport{}, payroll.ErrInvalidDateRange
	}

	entries, err := s.PayrollRepository.EntriesForRange(ctx, start, end)
	if err != nil {
		return payroll.WeeklyReport{}, err
	}

	type acc struct {
		name   string
		number string
		days   map[string]decimal.Decimal
		total  decimal.Decimal
	}
	byEmployee := make(map[string]*acc)

	for _, row := range entries {
		a, ok := byEmployee[row.EmployeeID]
		if !ok {
			a = &acc{
				name:   row.EmployeeName,
				number: row.EmployeeNumber,
				days:   make(map[string]decimal.Decimal),
				total:  decimal.Zero,
			}
			byEmployee[row.EmployeeID] = a
		}

		day := row.Date.Format("2006-01-02")
		a.days[day] = a.days[day].Add(row.Hours)
		a.total = a.total.Add(row.Hours)
	}

	report := payroll.WeeklyReport{
		StartDate:     start.Format("2006-01-02"),
		EndDate:       end.Format("2006-01-02"),
		Employees:     []payroll.EmployeeWeeklyReport{},
		TotalHours:    decimal.Zero,
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		GeneratedAt:   time.Now().Format(timestampFormat),
	}

	for employeeID, a := range byEmployee {
		regular, overtime := payroll.SplitWeekly(a.total)

		emp := payroll.EmployeeWeeklyReport{
			EmployeeID:     employeeID,
			EmployeeName:   a.name,
			EmployeeNumber: a.number,
			Days:           []payroll.DayHours{},
			TotalHours:     a.total,
			RegularHours:   regular,
			OvertimeHours:  overtime,
		}
		for day, hours := range a.days {
			emp.Days = append(emp.Days, payroll.DayHours{Date: day, Hours: hours})
		}
		sort.Slice(emp.Days, func(i, j int) bool { return emp.Days[i].Date < emp.Days[j].Date })

		report.Employees = append(report.Employees, emp)
		report.TotalHours = report.TotalHours.Add(a.total)
		report.RegularHours = report.RegularHours.Add(regular)
		report.OvertimeHours = report.OvertimeHours.Add(overtime)
	}

	sort.Slice(report.Employees, func(i, j int) bool {
		return report.Employees[i].EmployeeNumber < report.Employees[j].EmployeeNumber
	})
	report.EmployeeCount = len(report.Employees)

	return report, nil
}

// ProjectCostReport implements payroll.PayrollService. Cost per entry is
// the stored total when present, else hours * effective rate.
func (s *PayrollServiceImpl) ProjectCostReport(ctx context.Context, projectID string, start, end time.Time) (payroll.ProjectCostReport, error) {
	if end.Before(start) {
		return payroll.ProjectCostReport{}, payroll.ErrInvalidDateRange
	}

	p, err := s.ProjectRepository.GetByID(ctx, projectID)
	if err != nil {
		return payroll.ProjectCostReport{}, err
	}

	entries, err := s.PayrollRepository.EntriesForProject(ctx, projectID, start, end)
	if err != nil {
		return payroll.ProjectCostReport{}, err
	}
	if len(entries) == 0 {
		return payroll.ProjectCostReport{}, payroll.ErrNoEntriesForProject
	}

	type acc struct {
		name   string
		number string
		hours  decimal.Decimal
		cost   decimal.Decimal
		rate   *decimal.Decimal
	}
	byEmployee := make(map[string]*acc)

	for _, row := range entries {
		a, ok := byEmployee[row.EmployeeID]
		if !ok {
			a = &acc{
				name:   row.EmployeeName,
				number: row.EmployeeNumber,
				hours:  decimal.Zero,
				cost:   decimal.Zero,
				rate:   row.EffectiveRate(),
			}
			byEmployee[row.EmployeeID] = a
		}

		a.hours = a.hours.Add(row.Hours)
		a.cost = a.cost.Add(entryCost(row))
	}

	report := payroll.ProjectCostReport{
		ProjectID:   projectID,
		ProjectName: p.Name,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Rows:        []payroll.EmployeeCostRow{},
		TotalHours:  decimal.Zero,
		TotalCost:   decimal.Zero,
		GeneratedAt: time.Now().Format(timestampFormat),
	}

	for employeeID, a := range byEmployee {
		report.Rows = append(report.Rows, payroll.EmployeeCostRow{
			EmployeeID:     employeeID,
			EmployeeName:   a.name,
			EmployeeNumber: a.number,
			Hours:          a.hours,
			EffectiveRate:  a.rate,
			Cost:           a.cost.Round(2),
		})
		report.TotalHours = report.TotalHours.Add(a.hours)
		report.TotalCost = report.TotalCost.Add(a.cost)
	}
	report.TotalCost = report.TotalCost.Round(2)

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].EmployeeNumber < report.Rows[j].EmployeeNumber
	})

	return report, nil
}

func entryCost(row payroll.EntryRow) decimal.Decimal {
	if row.TotalCost != nil {
		return *row.TotalCost
	}
	if rate := row.EffectiveRate(); rate != nil {
		return row.Hours.Mul(*rate)
	}
	return decimal.Zero
}

// Summary implements payroll.PayrollService.
func (s *PayrollServiceImpl) Summary(ctx context.Context, start, end time.Time) (payroll.Summary, error) {
	if end.Before(start) {
		return payroll.Summary{}, payroll.ErrInvalidDateRange
	}

	entries, err := s.PayrollRepository.EntriesForRange(ctx, start, end)
	if err != nil {
		return payroll.Summary{}, err
	}

	employees := make(map[string]struct{})
	projects := make(map[string]*payroll.ProjectHours)
	totalHours := decimal.Zero
	totalCost := decimal.Zero

	for _, row := range entries {
		employees[row.EmployeeID] = struct{}{}

		ph, ok := projects[row.ProjectID]
		if !ok {
			ph = &payroll.ProjectHours{ProjectID: row.ProjectID, ProjectName: row.ProjectName, Hours: decimal.Zero}
			projects[row.ProjectID] = ph
		}
		ph.Hours = ph.Hours.Add(row.Hours)

		totalHours = totalHours.Add(row.Hours)
		// Stored total_cost only; entries without one contribute zero.
		if row.TotalCost != nil {
			totalCost = totalCost.Add(*row.TotalCost)
		}
	}

	top := make([]payroll.ProjectHours, 0, len(projects))
	for _, ph := range projects {
		top = append(top, *ph)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Hours.GreaterThan(top[j].Hours) })
	if len(top) > 5 {
		top = top[:5]
	}

	return payroll.Summary{
		StartDate:     start.Format("2006-01-02"),
		EndDate:       end.Format("2006-01-02"),
		EmployeeCount: len(employees),
		ProjectCount:  len(projects),
		TotalHours:    totalHours,
		TotalCost:     totalCost.Round(2),
		TopProjects:   top,
		GeneratedAt:   time.Now().Format(timestampFormat),
	}, nil
}

// ExportDailyCSV implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportDailyCSV(ctx context.Context, date time.Time) ([]byte, error) {
	report, err := s.DailyReport(ctx, date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Employee Number", "Employee", "Total Hours", "Regular Hours", "Overtime Hours", "Sign In", "Sign Out"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, emp := range report.Employees {
		record := []string{
			emp.EmployeeNumber,
			emp.EmployeeName,
			emp.TotalHours.String(),
			emp.RegularHours.String(),
			emp.OvertimeHours.String(),
			derefOrEmpty(emp.SignInTime),
			derefOrEmpty(emp.SignOutTime),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportWeeklyCSV implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportWeeklyCSV(ctx context.Context, start, end time.Time) ([]byte, error) {
	report, err := s.WeeklyReport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Employee Number", "Employee", "Total Hours", "Regular Hours", "Overtime Hours"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, emp := range report.Employees {
		record := []string{
			emp.EmployeeNumber,
			emp.EmployeeName,
			emp.TotalHours.String(),
			emp.RegularHours.String(),
			emp.OvertimeHours.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

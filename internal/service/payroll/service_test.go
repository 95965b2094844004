package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/domain/payroll"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID = "11111111-1111-4111-8111-111111111111"
	testProjectID  = "33333333-3333-4333-8333-333333333333"
)

type fakePayrollRepo struct {
	entries []payroll.EntryRow
}

func (f *fakePayrollRepo) EntriesForRange(ctx context.Context, start, end time.Time) ([]payroll.EntryRow, error) {
	return f.entries, nil
}

func (f *fakePayrollRepo) EntriesForProject(ctx context.Context, projectID string, start, end time.Time) ([]payroll.EntryRow, error) {
	var out []payroll.EntryRow
	for _, e := range f.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) SignInsForDate(ctx context.Context, date time.Time) ([]payroll.AttendanceRow, error) {
	return nil, nil
}

type fakeProjectRepo struct {
	projects map[string]project.Project
}

func (f *fakeProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) GetByNumber(ctx context.Context, projectNumber string) (project.Project, error) {
	return project.Project{}, project.ErrProjectNotFound
}

func (f *fakeProjectRepo) List(ctx context.Context, filter project.ListProjectsFilter) ([]project.Project, int64, error) {
	return nil, 0, nil
}

func (f *fakeProjectRepo) ListByClient(ctx context.Context, clientID string) ([]project.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p project.Project) error { return nil }

func (f *fakeProjectRepo) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	return nil
}

func (f *fakeProjectRepo) ListMembers(ctx context.Context, projectID string) ([]project.Member, error) {
	return nil, nil
}

func (f *fakeProjectRepo) DeleteMembers(ctx context.Context, projectID string) error { return nil }

func (f *fakeProjectRepo) AddMember(ctx context.Context, m project.Member) (project.Member, error) {
	return m, nil
}

func row(hours string, totalCost, employeeRate *decimal.Decimal) payroll.EntryRow {
	return payroll.EntryRow{
		EntryID:        "entry-1",
		EmployeeID:     testEmployeeID,
		EmployeeName:   "Dana Mason",
		EmployeeNumber: "E-100",
		ProjectID:      testProjectID,
		ProjectName:    "Riverside",
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Hours:          decimal.RequireFromString(hours),
		EmployeeRate:   employeeRate,
		TotalCost:      totalCost,
	}
}

func TestSummaryCountsStoredCostOnly(t *testing.T) {
	stored := decimal.RequireFromString("100")
	rate := decimal.RequireFromString("25")
	repo := &fakePayrollRepo{entries: []payroll.EntryRow{
		row("4", &stored, nil),
		// No stored total_cost; the employee default rate must not be
		// imputed into the summary total.
		row("8", nil, &rate),
	}}
	svc := NewPayrollService(repo, &fakeProjectRepo{projects: map[string]project.Project{}})

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	summary, err := svc.Summary(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.EmployeeCount)
	assert.Equal(t, 1, summary.ProjectCount)
	assert.True(t, summary.TotalHours.Equal(decimal.RequireFromString("12")), "hours = %s", summary.TotalHours)
	assert.True(t, summary.TotalCost.Equal(decimal.RequireFromString("100")), "cost = %s", summary.TotalCost)
}

func TestProjectCostReportUsesEffectiveRateFallback(t *testing.T) {
	rate := decimal.RequireFromString("25")
	repo := &fakePayrollRepo{entries: []payroll.EntryRow{
		row("8", nil, &rate),
	}}
	svc := NewPayrollService(repo, &fakeProjectRepo{projects: map[string]project.Project{
		testProjectID: {ID: testProjectID, ProjectNumber: "P-100", Name: "Riverside"},
	}})

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	report, err := svc.ProjectCostReport(context.Background(), testProjectID, start, end)
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.True(t, report.Rows[0].Cost.Equal(decimal.RequireFromString("200")), "cost = %s", report.Rows[0].Cost)
	assert.True(t, report.TotalCost.Equal(decimal.RequireFromString("200")))
}

func TestSummaryInvalidRange(t *testing.T) {
	svc := NewPayrollService(&fakePayrollRepo{}, &fakeProjectRepo{projects: map[string]project.Project{}})

	start := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	_, err := svc.Summary(context.Background(), start, start.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, payroll.ErrInvalidDateRange)
}

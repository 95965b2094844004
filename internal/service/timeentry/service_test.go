package timeentry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/domain/attendance"
	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID  = "11111111-1111-4111-8111-111111111111"
	testProjectID   = "33333333-3333-4333-8333-333333333333"
	testTimesheetID = "44444444-4444-4444-8444-444444444444"
	testSignInID    = "55555555-5555-4555-8555-555555555555"
	testUserID      = "99999999-9999-4999-8999-999999999999"
)

func actorContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": testUserID,
		"email":   "manager@example.com",
		"role":    "PROJECT_MANAGER",
		"type":    "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeTimeEntryRepo struct {
	entries map[string]timeentry.TimeEntry
	nextID  int
}

func newFakeTimeEntryRepo() *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{entries: make(map[string]timeentry.TimeEntry)}
}

func (f *fakeTimeEntryRepo) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	f.nextID++
	e.ID = fmt.Sprintf("entry-%d", f.nextID)
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeTimeEntryRepo) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
	}
	return e, nil
}

func (f *fakeTimeEntryRepo) List(ctx context.Context, filter timeentry.ListTimeEntriesFilter) ([]timeentry.TimeEntry, int64, error) {
	var out []timeentry.TimeEntry
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTimeEntryRepo) Update(ctx context.Context, e timeentry.TimeEntry) error {
	if _, ok := f.entries[e.ID]; !ok {
		return timeentry.ErrTimeEntryNotFound
	}
	f.entries[e.ID] = e
	return nil
}

func (f *fakeTimeEntryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return timeentry.ErrTimeEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeTimeEntryRepo) ListByTimesheet(ctx context.Context, timesheetID string) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, e := range f.entries {
		if e.TimesheetID != nil && *e.TimesheetID == timesheetID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTimeEntryRepo) DeleteByTimesheet(ctx context.Context, timesheetID string) error {
	for id, e := range f.entries {
		if e.TimesheetID != nil && *e.TimesheetID == timesheetID {
			delete(f.entries, id)
		}
	}
	return nil
}

func (f *fakeTimeEntryRepo) ApproveByTimesheet(ctx context.Context, timesheetID string, approvedBy string, approvedAt time.Time) error {
	for id, e := range f.entries {
		if e.TimesheetID != nil && *e.TimesheetID == timesheetID {
			e.Status = timeentry.StatusApproved
			e.ApprovedBy = &approvedBy
			e.ApprovedAt = &approvedAt
			e.RejectionReason = nil
			f.entries[id] = e
		}
	}
	return nil
}

type fakeTimesheetRepo struct {
	sheets map[string]timesheet.Timesheet
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{sheets: make(map[string]timesheet.Timesheet)}
}

func (f *fakeTimesheetRepo) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	f.sheets[t.ID] = t
	return t, nil
}

func (f *fakeTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	t, ok := f.sheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return t, nil
}

func (f *fakeTimesheetRepo) List(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.Timesheet, int64, error) {
	return nil, 0, nil
}

func (f *fakeTimesheetRepo) Update(ctx context.Context, t timesheet.Timesheet) error {
	f.sheets[t.ID] = t
	return nil
}

func (f *fakeTimesheetRepo) Delete(ctx context.Context, id string) error {
	delete(f.sheets, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByNumber(ctx context.Context, employeeNumber string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if e, ok := f.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	return nil
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

type fakeSignInRepo struct {
	records map[string]attendance.SignIn
}

func (f *fakeSignInRepo) Create(ctx context.Context, s attendance.SignIn) (attendance.SignIn, error) {
	f.records[s.ID] = s
	return s, nil
}

func (f *fakeSignInRepo) GetByID(ctx context.Context, id string) (attendance.SignIn, error) {
	s, ok := f.records[id]
	if !ok {
		return attendance.SignIn{}, attendance.ErrSignInNotFound
	}
	return s, nil
}

func (f *fakeSignInRepo) GetOpen(ctx context.Context, employeeID string, date time.Time) (*attendance.SignIn, error) {
	return nil, nil
}

func (f *fakeSignInRepo) OpenEmployeeIDs(ctx context.Context, employeeIDs []string, date time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeSignInRepo) SetSignOut(ctx context.Context, id string, signOutTime time.Time, signedOutBy string) error {
	return nil
}

func (f *fakeSignInRepo) List(ctx context.Context, filter attendance.ListSignInsFilter) ([]attendance.SignIn, int64, error) {
	return nil, 0, nil
}

func (f *fakeSignInRepo) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.SignIn, error) {
	return nil, nil
}

type fixture struct {
	entries   *fakeTimeEntryRepo
	sheets    *fakeTimesheetRepo
	employees *fakeEmployeeRepo
	projects  *fakeProjectRepo
	signIns   *fakeSignInRepo
	svc       timeentry.TimeEntryService
}

func newFixture(defaultRate *decimal.Decimal) *fixture {
	f := &fixture{
		entries: newFakeTimeEntryRepo(),
		sheets:  newFakeTimesheetRepo(),
		employees: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			testEmployeeID: {
				ID:             testEmployeeID,
				EmployeeNumber: "E-100",
				FirstName:      "Dana",
				LastName:       "Mason",
				HourlyRate:     defaultRate,
				IsActive:       true,
			},
		}},
		projects: &fakeProjectRepo{projects: map[string]project.Project{
			testProjectID: {ID: testProjectID, ProjectNumber: "P-100", Name: "Riverside"},
		}},
		signIns: &fakeSignInRepo{records: make(map[string]attendance.SignIn)},
	}
	f.svc = NewTimeEntryService(f.entries, f.sheets, f.employees, f.projects, f.signIns)
	return f
}

func TestCreateUsesEmployeeDefaultRate(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("25")
	f := newFixture(&defaultRate)

	resp, err := f.svc.Create(ctx, timeentry.CreateTimeEntryRequest{
		EmployeeID: testEmployeeID,
		ProjectID:  testProjectID,
		Date:       "2024-03-11",
		Hours:      decimal.RequireFromString("8"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Rate)
	assert.True(t, resp.Rate.Equal(defaultRate))
	require.NotNil(t, resp.TotalCost)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("200")))
	assert.Equal(t, timeentry.StatusPending, resp.Status)
}

func TestCreateEntryRateOverridesDefault(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("25")
	f := newFixture(&defaultRate)

	override := decimal.RequireFromString("40")
	resp, err := f.svc.Create(ctx, timeentry.CreateTimeEntryRequest{
		EmployeeID: testEmployeeID,
		ProjectID:  testProjectID,
		Date:       "2024-03-11",
		Hours:      decimal.RequireFromString("2"),
		Rate:       &override,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalCost)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("80")))
}

func TestCreateWithoutAnyRate(t *testing.T) {
	ctx := actorContext(t)
	f := newFixture(nil)

	resp, err := f.svc.Create(ctx, timeentry.CreateTimeEntryRequest{
		EmployeeID: testEmployeeID,
		ProjectID:  testProjectID,
		Date:       "2024-03-11",
		Hours:      decimal.RequireFromString("8"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Rate)
	assert.Nil(t, resp.TotalCost)
}

func TestBulkCreateRejectsBatchBeforeAnyWrite(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("25")
	f := newFixture(&defaultRate)

	_, err := f.svc.BulkCreate(ctx, timeentry.BulkCreateRequest{
		Entries: []timeentry.CreateTimeEntryRequest{
			{
				EmployeeID: testEmployeeID,
				ProjectID:  testProjectID,
				Date:       "2024-03-11",
				Hours:      decimal.RequireFromString("8"),
			},
			{
				// Valid shape but no such employee exists.
				EmployeeID: "88888888-8888-4888-8888-888888888888",
				ProjectID:  testProjectID,
				Date:       "2024-03-11",
				Hours:      decimal.RequireFromString("4"),
			},
		},
	})
	require.ErrorIs(t, err, timeentry.ErrEmployeeNotFound)

	// The failed batch must not leave the leading entries behind.
	assert.Empty(t, f.entries.entries)
}

func TestBulkCreate(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("25")
	f := newFixture(&defaultRate)

	responses, err := f.svc.BulkCreate(ctx, timeentry.BulkCreateRequest{
		Entries: []timeentry.CreateTimeEntryRequest{
			{
				EmployeeID: testEmployeeID,
				ProjectID:  testProjectID,
				Date:       "2024-03-11",
				Hours:      decimal.RequireFromString("8"),
			},
			{
				EmployeeID: testEmployeeID,
				ProjectID:  testProjectID,
				Date:       "2024-03-12",
				Hours:      decimal.RequireFromString("6"),
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Len(t, f.entries.entries, 2)
}

func TestUpdateRecomputesTotalCost(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("20")
	f := newFixture(&defaultRate)

	created, err := f.svc.Create(ctx, timeentry.CreateTimeEntryRequest{
		EmployeeID: testEmployeeID,
		ProjectID:  testProjectID,
		Date:       "2024-03-11",
		Hours:      decimal.RequireFromString("8"),
	})
	require.NoError(t, err)

	newHours := decimal.RequireFromString("10")
	updated, err := f.svc.Update(ctx, timeentry.UpdateTimeEntryRequest{
		ID:    created.ID,
		Hours: &newHours,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TotalCost)
	assert.True(t, updated.TotalCost.Equal(decimal.RequireFromString("200")))
}

func TestUpdateLockedByApprovedTimesheet(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("20")
	f := newFixture(&defaultRate)

	f.sheets.sheets[testTimesheetID] = timesheet.Timesheet{
		ID:     testTimesheetID,
		Status: timesheet.StatusApproved,
	}

	tsID := testTimesheetID
	entry, err := f.entries.Create(ctx, timeentry.TimeEntry{
		EmployeeID:  testEmployeeID,
		ProjectID:   testProjectID,
		TimesheetID: &tsID,
		Hours:       decimal.RequireFromString("8"),
		Status:      timeentry.StatusApproved,
	})
	require.NoError(t, err)

	newHours := decimal.RequireFromString("4")
	_, err = f.svc.Update(ctx, timeentry.UpdateTimeEntryRequest{ID: entry.ID, Hours: &newHours})
	assert.ErrorIs(t, err, timeentry.ErrTimesheetLocked)

	err = f.svc.Delete(ctx, entry.ID)
	assert.ErrorIs(t, err, timeentry.ErrTimesheetLocked)
}

func TestApproveIsIdempotent(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("20")
	f := newFixture(&defaultRate)

	created, err := f.svc.Create(ctx, timeentry.CreateTimeEntryRequest{
		EmployeeID: testEmployeeID,
		ProjectID:  testProjectID,
		Date:       "2024-03-11",
		Hours:      decimal.RequireFromString("8"),
	})
	require.NoError(t, err)

	first, err := f.svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusApproved, first.Status)

	second, err := f.svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusApproved, second.Status)
}

func TestRejectRequiresReasonAndBlocksApproved(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("20")
	f := newFixture(&defaultRate)

	created, err := f.svc.Create(ctx, timeentry.CreateTimeEntryRequest{
		EmployeeID: testEmployeeID,
		ProjectID:  testProjectID,
		Date:       "2024-03-11",
		Hours:      decimal.RequireFromString("8"),
	})
	require.NoError(t, err)

	_, err = f.svc.Reject(ctx, timeentry.RejectRequest{ID: created.ID, Reason: "   "})
	assert.Error(t, err)

	rejected, err := f.svc.Reject(ctx, timeentry.RejectRequest{ID: created.ID, Reason: "hours look wrong"})
	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "hours look wrong", *rejected.RejectionReason)

	_, err = f.svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	_, err = f.svc.Reject(ctx, timeentry.RejectRequest{ID: created.ID, Reason: "too late"})
	assert.ErrorIs(t, err, timeentry.ErrAlreadyProcessed)
}

func TestCreateFromSignIn(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("30")
	f := newFixture(&defaultRate)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	signIn := date.Add(8 * time.Hour)
	signOut := date.Add(16*time.Hour + 30*time.Minute)
	f.signIns.records[testSignInID] = attendance.SignIn{
		ID:          testSignInID,
		EmployeeID:  testEmployeeID,
		Date:        date,
		SignInTime:  signIn,
		SignOutTime: &signOut,
	}

	resp, err := f.svc.CreateFromSignIn(ctx, timeentry.FromSignInRequest{
		SignInID:  testSignInID,
		ProjectID: testProjectID,
	})
	require.NoError(t, err)

	assert.True(t, resp.Hours.Equal(decimal.RequireFromString("8.5")))
	require.NotNil(t, resp.TotalCost)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("255")))
}

func TestCreateFromSignInRequiresSignOut(t *testing.T) {
	ctx := actorContext(t)
	defaultRate := decimal.RequireFromString("30")
	f := newFixture(&defaultRate)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	f.signIns.records[testSignInID] = attendance.SignIn{
		ID:         testSignInID,
		EmployeeID: testEmployeeID,
		Date:       date,
		SignInTime: date.Add(8 * time.Hour),
	}

	_, err := f.svc.CreateFromSignIn(ctx, timeentry.FromSignInRequest{
		SignInID:  testSignInID,
		ProjectID: testProjectID,
	})
	assert.ErrorIs(t, err, timeentry.ErrNotSignedOut)
}

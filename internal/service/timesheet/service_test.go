package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTimesheetID = "44444444-4444-4444-8444-444444444444"
	testUserID      = "99999999-9999-4999-8999-999999999999"
)

func actorContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": testUserID,
		"email":   "admin@example.com",
		"role":    "OFFICE_ADMIN",
		"type":    "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeTimesheetRepo struct {
	sheets map[string]timesheet.Timesheet
}

func newFakeTimesheetRepo(seed ...timesheet.Timesheet) *fakeTimesheetRepo {
	f := &fakeTimesheetRepo{sheets: make(map[string]timesheet.Timesheet)}
	for _, t := range seed {
		f.sheets[t.ID] = t
	}
	return f
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
	var out []timesheet.Timesheet
	for _, t := range f.sheets {
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTimesheetRepo) Update(ctx context.Context, t timesheet.Timesheet) error {
	if _, ok := f.sheets[t.ID]; !ok {
		return timesheet.ErrTimesheetNotFound
	}
	f.sheets[t.ID] = t
	return nil
}

func (f *fakeTimesheetRepo) Delete(ctx context.Context, id string) error {
	delete(f.sheets, id)
	return nil
}

type fakeTimeEntryRepo struct {
	entries map[string]timeentry.TimeEntry
}

func newFakeTimeEntryRepo(seed ...timeentry.TimeEntry) *fakeTimeEntryRepo {
	f := &fakeTimeEntryRepo{entries: make(map[string]timeentry.TimeEntry)}
	for _, e := range seed {
		f.entries[e.ID] = e
	}
	return f
}

func (f *fakeTimeEntryRepo) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
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
	return nil, 0, nil
}

func (f *fakeTimeEntryRepo) Update(ctx context.Context, e timeentry.TimeEntry) error {
	f.entries[e.ID] = e
	return nil
}

func (f *fakeTimeEntryRepo) Delete(ctx context.Context, id string) error {
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
			f.entries[id] = e
		}
	}
	return nil
}

func draftSheet() timesheet.Timesheet {
	title := "Week 11 crew hours"
	return timesheet.Timesheet{
		ID:        testTimesheetID,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Title:     &title,
		Status:    timesheet.StatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestSubmitDraft(t *testing.T) {
	sheets := newFakeTimesheetRepo(draftSheet())
	svc := NewTimesheetService(nil, sheets, newFakeTimeEntryRepo(), nil, nil)

	resp, err := svc.Submit(actorContext(t), testTimesheetID)
	require.NoError(t, err)

	assert.Equal(t, timesheet.StatusSubmitted, resp.Status)
	require.NotNil(t, resp.SubmittedBy)
	assert.Equal(t, testUserID, *resp.SubmittedBy)
	assert.NotNil(t, resp.SubmittedAt)

	stored := sheets.sheets[testTimesheetID]
	assert.Equal(t, timesheet.StatusSubmitted, stored.Status)
}

func TestSubmitApprovedLocked(t *testing.T) {
	sheet := draftSheet()
	sheet.Status = timesheet.StatusApproved
	sheets := newFakeTimesheetRepo(sheet)
	svc := NewTimesheetService(nil, sheets, newFakeTimeEntryRepo(), nil, nil)

	_, err := svc.Submit(actorContext(t), testTimesheetID)
	assert.ErrorIs(t, err, timesheet.ErrTimesheetLocked)
}

func TestUpdateApprovedLocked(t *testing.T) {
	sheet := draftSheet()
	sheet.Status = timesheet.StatusApproved
	sheets := newFakeTimesheetRepo(sheet)
	svc := NewTimesheetService(nil, sheets, newFakeTimeEntryRepo(), nil, nil)

	title := "Corrected hours"
	_, err := svc.Update(actorContext(t), timesheet.UpdateTimesheetRequest{
		ID:    testTimesheetID,
		Title: &title,
	})
	assert.ErrorIs(t, err, timesheet.ErrTimesheetLocked)
}

func TestDeleteNonDraft(t *testing.T) {
	sheet := draftSheet()
	sheet.Status = timesheet.StatusSubmitted
	sheets := newFakeTimesheetRepo(sheet)
	svc := NewTimesheetService(nil, sheets, newFakeTimeEntryRepo(), nil, nil)

	err := svc.Delete(actorContext(t), testTimesheetID)
	assert.ErrorIs(t, err, timesheet.ErrDeleteNonDraft)
	assert.Contains(t, sheets.sheets, testTimesheetID)
}

// inlineTx runs multi-step writes without a database so the fakes can
// observe every write a real transaction would carry.
func inlineTx(svc timesheet.TimesheetService) timesheet.TimesheetService {
	impl := svc.(*TimesheetServiceImpl)
	impl.runTx = func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}
	return impl
}

func pendingEntry(id string) timeentry.TimeEntry {
	sheetID := testTimesheetID
	return timeentry.TimeEntry{
		ID:          id,
		EmployeeID:  "emp-1",
		ProjectID:   "proj-1",
		TimesheetID: &sheetID,
		Hours:       decimal.NewFromInt(8),
		WorkType:    "REGULAR",
		Status:      timeentry.StatusPending,
	}
}

func TestApproveCascadesToEntries(t *testing.T) {
	sheet := draftSheet()
	sheet.Status = timesheet.StatusSubmitted
	sheets := newFakeTimesheetRepo(sheet)
	entries := newFakeTimeEntryRepo(pendingEntry("entry-1"), pendingEntry("entry-2"))
	svc := inlineTx(NewTimesheetService(nil, sheets, entries, nil, nil))

	resp, err := svc.Approve(actorContext(t), testTimesheetID)
	require.NoError(t, err)

	assert.Equal(t, timesheet.StatusApproved, resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, testUserID, *resp.ApprovedBy)

	for id, e := range entries.entries {
		assert.Equal(t, timeentry.StatusApproved, e.Status, "entry %s", id)
		require.NotNil(t, e.ApprovedBy, "entry %s", id)
		assert.Equal(t, testUserID, *e.ApprovedBy, "entry %s", id)
	}
}

func TestDeleteDraftCascadesToEntries(t *testing.T) {
	sheets := newFakeTimesheetRepo(draftSheet())
	entries := newFakeTimeEntryRepo(pendingEntry("entry-1"), pendingEntry("entry-2"))
	svc := inlineTx(NewTimesheetService(nil, sheets, entries, nil, nil))

	err := svc.Delete(actorContext(t), testTimesheetID)
	require.NoError(t, err)

	assert.NotContains(t, sheets.sheets, testTimesheetID)
	assert.Empty(t, entries.entries)
}

func TestApproveAlreadyApproved(t *testing.T) {
	now := time.Now()
	approver := testUserID
	sheet := draftSheet()
	sheet.Status = timesheet.StatusApproved
	sheet.ApprovedBy = &approver
	sheet.ApprovedAt = &now
	sheets := newFakeTimesheetRepo(sheet)
	svc := NewTimesheetService(nil, sheets, newFakeTimeEntryRepo(), nil, nil)

	resp, err := svc.Approve(actorContext(t), testTimesheetID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, resp.Status)
}

func TestExportWorkbook(t *testing.T) {
	sheetID := testTimesheetID
	name := "Dana Mason"
	number := "EMP-0042"
	projectName := "Riverside Retail Center"
	rate := decimal.NewFromInt(30)
	cost := decimal.NewFromFloat(255)

	sheets := newFakeTimesheetRepo(draftSheet())
	entries := newFakeTimeEntryRepo(timeentry.TimeEntry{
		ID:             "entry-1",
		EmployeeID:     "emp-1",
		ProjectID:      "proj-1",
		TimesheetID:    &sheetID,
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Hours:          decimal.NewFromFloat(8.5),
		WorkType:       "REGULAR",
		Rate:           &rate,
		TotalCost:      &cost,
		Status:         timeentry.StatusPending,
		EmployeeName:   &name,
		EmployeeNumber: &number,
		ProjectName:    &projectName,
	})
	svc := NewTimesheetService(nil, sheets, entries, nil, nil)

	filename, content, err := svc.Export(context.Background(), testTimesheetID)
	require.NoError(t, err)

	assert.Equal(t, "timesheet-2025-03-10.xlsx", filename)
	assert.NotEmpty(t, content)
	// XLSX workbooks are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, content[:2])
}
